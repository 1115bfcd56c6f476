// Package rule34 is the client of the rule34video worker.
package rule34

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
	ID   = "rule34"
	Name = "Rule34Video"
)

// Qualities is the preference order of rule34video renditions.
var Qualities = source.QualityOrder{"2160p", "1440p", "1080p", "720p", "480p", "360p", "240p"}

// Client queries the rule34video worker. Videos are keyed by their page URL.
type Client struct {
	http     *http.Client
	endpoint string
}

// New returns a client for the worker at endpoint. An empty endpoint selects the public worker.
func New(client *http.Client, endpoint string) *Client {
	if endpoint == "" {
		endpoint = constant.Rule34Endpoint
	}
	return &Client{http: client, endpoint: endpoint}
}

func (c *Client) ID() string   { return ID }
func (c *Client) Name() string { return Name }

// Search runs /?q=&page=.
func (c *Client) Search(ctx context.Context, query string, page int) ([]*source.Summary, error) {
	params := url.Values{
		"q":    {query},
		"page": {strconv.Itoa(source.NormalizePage(page))},
	}

	var resp searchResponse
	if err := network.GetJSON(ctx, c.http, ID, c.endpoint, params, &resp); err != nil {
		return nil, err
	}

	videos, err := resp.Videos.Get(ID, "videos")
	if err != nil {
		log.WithField("source", ID).Error(err)
		return nil, err
	}

	return adaptVideos(videos), nil
}

// VariantsOf runs /?url= for a video page URL and returns the resolved files best first.
func (c *Client) VariantsOf(ctx context.Context, identifier string) ([]*source.Variant, error) {
	var resp []*sourceEntry
	if err := network.GetJSON(ctx, c.http, ID, c.endpoint, url.Values{"url": {identifier}}, &resp); err != nil {
		return nil, err
	}

	variants, err := adaptSources(resp)
	if err != nil {
		log.WithField("source", ID).Error(err)
		return nil, err
	}

	return Qualities.Sort(variants), nil
}
