package inline

import (
	"encoding/json"
	"io"

	"github.com/flixstream/flixstream/source"
)

type Video struct {
	// Source is the ID of the source the video was found on.
	Source string `json:"source"`
	// Video is the search result as returned by the source.
	Video *source.Summary `json:"video"`
	// Variants are the playable renditions, best first. Only set when requested.
	Variants []*source.Variant `json:"variants,omitempty"`
}

type Output struct {
	Query  string   `json:"query"`
	Page   int      `json:"page"`
	Result []*Video `json:"result"`
}

func writeJson(out io.Writer, videos []*Video, options *Options) error {
	if videos == nil {
		videos = []*Video{}
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(&Output{
		Query:  options.Query,
		Page:   source.NormalizePage(options.Page),
		Result: videos,
	})
}
