// Package youjizz is the client of the youjizz worker.
package youjizz

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
	ID   = "youjizz"
	Name = "YouJizz"
)

// Qualities is the preference order of youjizz renditions.
var Qualities = source.QualityOrder{"1080p", "720p", "480p", "360p", "240p"}

// Client queries the youjizz worker.
type Client struct {
	http     *http.Client
	endpoint string
}

// New returns a client for the worker at endpoint. An empty endpoint selects the public worker.
func New(client *http.Client, endpoint string) *Client {
	if endpoint == "" {
		endpoint = constant.YouJizzEndpoint
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

// VariantsOf runs ?action=download&id= and returns the links best first.
func (c *Client) VariantsOf(ctx context.Context, identifier string) ([]*source.Variant, error) {
	params := url.Values{
		"action": {"download"},
		"id":     {identifier},
	}

	var resp downloadResponse
	if err := network.GetJSON(ctx, c.http, ID, c.endpoint, params, &resp); err != nil {
		return nil, err
	}

	variants, err := adaptDownload(&resp)
	if err != nil {
		log.WithField("source", ID).Error(err)
		return nil, err
	}

	return Qualities.Sort(variants), nil
}
