// Package hamster is the client of the hamster worker.
package hamster

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/flixstream/flixstream/constant"
	"github.com/flixstream/flixstream/log"
	"github.com/flixstream/flixstream/network"
	"github.com/flixstream/flixstream/source"
)

const (
	ID   = "hamster"
	Name = "xHamster"
)

// Qualities is the preference order of hamster renditions.
var Qualities = source.QualityOrder{"2160p", "1080p", "720p", "480p", "240p", "144p"}

// Client queries the hamster worker.
type Client struct {
	http     *http.Client
	endpoint string
}

// New returns a client for the worker at endpoint. An empty endpoint selects the public worker.
func New(client *http.Client, endpoint string) *Client {
	if endpoint == "" {
		endpoint = constant.HamsterEndpoint
	}
	return &Client{http: client, endpoint: endpoint}
}

func (c *Client) ID() string   { return ID }
func (c *Client) Name() string { return Name }

// Search runs ?q=&page=.
func (c *Client) Search(ctx context.Context, query string, page int) ([]*source.Summary, error) {
	params := url.Values{
		"q":    {query},
		"page": {strconv.Itoa(source.NormalizePage(page))},
	}

	var resp searchResponse
	if err := network.GetJSON(ctx, c.http, ID, c.endpoint, params, &resp); err != nil {
		return nil, err
	}

	results, err := resp.Results.Get(ID, "results")
	if err != nil {
		log.WithField("source", ID).Error(err)
		return nil, err
	}

	return adaptResults(results), nil
}

// VariantsOf runs ?v= for a video path and returns the qualities best first.
// Full video URLs are reduced to their path.
func (c *Client) VariantsOf(ctx context.Context, identifier string) ([]*source.Variant, error) {
	var resp videoResponse
	if err := network.GetJSON(ctx, c.http, ID, c.endpoint, url.Values{"v": {VideoPath(identifier)}}, &resp); err != nil {
		return nil, err
	}

	variants, err := adaptVideo(&resp)
	if err != nil {
		log.WithField("source", ID).Error(err)
		return nil, err
	}

	return Qualities.Sort(variants), nil
}

// VideoPath returns the path component of a video URL, or the input when it is not a URL.
func VideoPath(identifier string) string {
	if !strings.Contains(identifier, "://") {
		return identifier
	}

	u, err := url.Parse(identifier)
	if err != nil {
		return identifier
	}
	return u.Path
}
