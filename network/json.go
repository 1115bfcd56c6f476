package network

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/flixstream/flixstream/constant"
	"github.com/flixstream/flixstream/log"
	"github.com/flixstream/flixstream/source"
	"github.com/sirupsen/logrus"
)

// maxErrorBody caps how much of a failed response is drained and logged.
const maxErrorBody = 512

// GetJSON sends a GET to endpoint with params merged into its query and decodes the body into target.
//
// A non-2xx status yields *source.UpstreamError and an undecodable body *source.ResponseShapeError.
// Failures are logged before they are returned.
func GetJSON(ctx context.Context, client *http.Client, sourceID, endpoint string, params url.Values, target any) error {
	u, err := url.Parse(endpoint)
	if err != nil {
		return fmt.Errorf("%s: parse endpoint: %w", sourceID, err)
	}

	query := u.Query()
	for k, values := range params {
		for _, v := range values {
			query.Add(k, v)
		}
	}
	u.RawQuery = query.Encode()

	entry := log.WithFields(logrus.Fields{"source": sourceID, "url": u.String()})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", sourceID, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", constant.UserAgent)

	entry.Debug("requesting")
	resp, err := client.Do(req)
	if err != nil {
		entry.Error(err)
		return fmt.Errorf("%s: request: %w", sourceID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		entry.WithField("body", string(body)).Errorf("unexpected status %s", resp.Status)
		return &source.UpstreamError{
			Source:     sourceID,
			URL:        u.String(),
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		entry.Errorf("decode: %s", err)
		return &source.ResponseShapeError{Source: sourceID, Err: err}
	}

	return nil
}
