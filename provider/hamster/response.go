package hamster

import (
	"encoding/json"

	"github.com/flixstream/flixstream/source"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

type searchResponse struct {
	Query       string                           `json:"query"`
	CurrentPage source.Text                      `json:"current_page"`
	Results     source.Required[[]*searchResult] `json:"results"`
	NextPage    source.Text                      `json:"next_page"`
}

type searchResult struct {
	Title     string      `json:"title"`
	URL       string      `json:"url"`
	Thumbnail string      `json:"thumbnail"`
	Duration  source.Text `json:"duration"`
	Views     source.Text `json:"views"`
}

type videoResponse struct {
	// qualities maps a label to a URL; the worker's key order is kept
	Qualities source.Required[json.RawMessage] `json:"qualities"`
}

func adaptResults(results []*searchResult) []*source.Summary {
	summaries := make([]*source.Summary, 0, len(results))
	for _, r := range results {
		if r == nil {
			continue
		}

		summaries = append(summaries, &source.Summary{
			URL:       r.URL,
			Title:     r.Title,
			Thumbnail: r.Thumbnail,
			Duration:  r.Duration,
			Views:     r.Views,
			Source:    ID,
		})
	}
	return summaries
}

func adaptVideo(resp *videoResponse) ([]*source.Variant, error) {
	raw, err := resp.Qualities.GetNonNull(ID, "qualities")
	if err != nil {
		return nil, err
	}

	if len(raw) == 0 {
		return []*source.Variant{}, nil
	}

	qualities := orderedmap.New[string, string]()
	if err := json.Unmarshal(raw, qualities); err != nil {
		return nil, &source.ResponseShapeError{Source: ID, Field: "qualities", Err: err}
	}

	variants := make([]*source.Variant, 0, qualities.Len())
	for pair := qualities.Oldest(); pair != nil; pair = pair.Next() {
		variants = append(variants, &source.Variant{
			Quality:   pair.Key,
			URL:       pair.Value,
			Extension: source.ExtensionOf(pair.Value),
		})
	}
	return variants, nil
}
