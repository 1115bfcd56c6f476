package youjizz

import "github.com/flixstream/flixstream/source"

type searchResponse struct {
	Results source.Required[[]*searchResult] `json:"results"`
}

type searchResult struct {
	ID        source.Text `json:"id"`
	URL       string      `json:"url"`
	Title     string      `json:"title"`
	Thumbnail string      `json:"thumbnail"`
	Duration  source.Text `json:"duration"`
	Views     source.Text `json:"views"`
	Rating    source.Text `json:"rating"`
}

type downloadResponse struct {
	Status     string                        `json:"status"`
	VideoLinks source.Required[[]*videoLink] `json:"video_links"`
}

type videoLink struct {
	Quality string `json:"quality"`
	URL     string `json:"url"`
}

func adaptResults(results []*searchResult) []*source.Summary {
	summaries := make([]*source.Summary, 0, len(results))
	for _, r := range results {
		if r == nil {
			continue
		}

		summaries = append(summaries, &source.Summary{
			ID:        r.ID.String(),
			URL:       r.URL,
			Title:     r.Title,
			Thumbnail: r.Thumbnail,
			Duration:  r.Duration,
			Views:     r.Views,
			Rating:    r.Rating,
			Source:    ID,
		})
	}
	return summaries
}

func adaptDownload(resp *downloadResponse) ([]*source.Variant, error) {
	if resp.Status != "success" {
		return nil, &source.ResponseShapeError{Source: ID, Field: "status"}
	}

	links, err := resp.VideoLinks.GetNonNull(ID, "video_links")
	if err != nil {
		return nil, err
	}

	variants := make([]*source.Variant, 0, len(links))
	for _, l := range links {
		if l == nil || l.URL == "" {
			return nil, &source.ResponseShapeError{Source: ID, Field: "video_links.url"}
		}

		variants = append(variants, &source.Variant{
			Quality:   l.Quality,
			URL:       l.URL,
			Extension: source.ExtensionOf(l.URL),
		})
	}
	return variants, nil
}
