package rule34

import "github.com/flixstream/flixstream/source"

type searchResponse struct {
	Videos source.Required[[]*video] `json:"videos"`
}

type video struct {
	URL       string      `json:"url"`
	Title     string      `json:"title"`
	Thumbnail string      `json:"thumbnail"`
	Duration  source.Text `json:"duration"`
	Views     source.Text `json:"views"`
	Added     source.Text `json:"added"`
	Rating    source.Text `json:"rating"`
}

type sourceEntry struct {
	Quality     string `json:"quality"`
	ResolvedURL string `json:"resolved_url"`
	Ext         string `json:"ext"`
}

func adaptVideos(videos []*video) []*source.Summary {
	summaries := make([]*source.Summary, 0, len(videos))
	for _, v := range videos {
		if v == nil {
			continue
		}

		summaries = append(summaries, &source.Summary{
			URL:       v.URL,
			Title:     v.Title,
			Thumbnail: v.Thumbnail,
			Duration:  v.Duration,
			Views:     v.Views,
			Added:     v.Added,
			Rating:    v.Rating,
			Source:    ID,
		})
	}
	return summaries
}

func adaptSources(entries []*sourceEntry) ([]*source.Variant, error) {
	// null decodes to a nil slice, [] to an empty one
	if entries == nil {
		return nil, &source.ResponseShapeError{Source: ID, Field: "sources"}
	}

	variants := make([]*source.Variant, 0, len(entries))
	for _, e := range entries {
		if e == nil || e.ResolvedURL == "" {
			return nil, &source.ResponseShapeError{Source: ID, Field: "resolved_url"}
		}

		ext := e.Ext
		if ext == "" {
			ext = source.ExtensionOf(e.ResolvedURL)
		}

		variants = append(variants, &source.Variant{
			Quality:   e.Quality,
			URL:       e.ResolvedURL,
			Extension: ext,
		})
	}
	return variants, nil
}
