package xanimu

import (
	"regexp"

	"github.com/flixstream/flixstream/source"
)

// DefaultQuality labels a file whose URL carries no resolution.
const DefaultQuality = "default"

var resolution = regexp.MustCompile(`(?i)(\d{3,4})p`)

type searchResponse struct {
	Results     source.Required[[]*searchResult] `json:"results"`
	CurrentPage source.Text                      `json:"current_page"`
}

type searchResult struct {
	ID        source.Text `json:"id"`
	URL       string      `json:"url"`
	Title     string      `json:"title"`
	Thumbnail string      `json:"thumbnail"`
	Duration  source.Text `json:"duration"`
	Views     source.Text `json:"views"`
}

type videoResponse struct {
	ID        source.Text `json:"id"`
	Title     string      `json:"title"`
	Thumbnail string      `json:"thumbnail"`
	VideoURL  string      `json:"video_url"`
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
			Source:    ID,
		})
	}
	return summaries
}

func adaptVideo(resp *videoResponse) ([]*source.Variant, error) {
	if resp.VideoURL == "" {
		return nil, &source.ResponseShapeError{Source: ID, Field: "video_url"}
	}

	return []*source.Variant{{
		Quality:   qualityOf(resp.VideoURL),
		URL:       resp.VideoURL,
		Extension: source.ExtensionOf(resp.VideoURL),
	}}, nil
}

func qualityOf(videoURL string) string {
	match := resolution.FindStringSubmatch(videoURL)
	if match == nil {
		return DefaultQuality
	}
	return match[1] + "p"
}
