// Package xanimu is the client of the xanimu worker.
package xanimu

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/flixstream/flixstream/constant"
	"github.com/flixstream/flixstream/log"
	"github.com/flixstream/flixstream/network"
	"github.com/flixstream/flixstream/source"
)

const (
	ID   = "xanimu"
	Name = "XAnimu"
)

// Qualities ranks the label guessed from the video URL.
// xanimu serves a single file per video, so this only matters for display.
var Qualities = source.QualityOrder{"2160p", "1440p", "1080p", "720p", "480p", "360p", "240p", "144p"}

// Client queries the xanimu worker.
type Client struct {
	http     *http.Client
	endpoint string
}

// New returns a client for the worker at endpoint. An empty endpoint selects the public worker.
func New(client *http.Client, endpoint string) *Client {
	if endpoint == "" {
		endpoint = constant.XAnimuEndpoint
	}
	return &Client{http: client, endpoint: endpoint}
}

func (c *Client) ID() string   { return ID }
func (c *Client) Name() string { return Name }

// Search runs ?action=search&q=&page=.
func (c *Client) Search(ctx context.Context, query string, page int) ([]*source.Summary, error) {
	params := url.Values{
		"action": {"search"},
		"q":      {query},
		"page":   {strconv.Itoa(source.NormalizePage(page))},
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

// VariantsOf runs ?action=video&id= and returns the single file as a variant.
func (c *Client) VariantsOf(ctx context.Context, identifier string) ([]*source.Variant, error) {
	params := url.Values{
		"action": {"video"},
		"id":     {identifier},
	}

	var resp videoResponse
	if err := network.GetJSON(ctx, c.http, ID, c.endpoint, params, &resp); err != nil {
		return nil, err
	}

	variants, err := adaptVideo(&resp)
	if err != nil {
		log.WithField("source", ID).Error(err)
		return nil, err
	}

	return Qualities.Sort(variants), nil
}
