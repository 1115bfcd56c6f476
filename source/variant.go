package source

import (
	"net/url"
	"path"
	"strings"
)

// Variant is one playable rendition of a video.
type Variant struct {
	// Quality label, e.g. "1080p". Labels outside the source's known list are kept as is.
	Quality string `json:"quality"`
	// URL is the direct media URL.
	URL string `json:"url"`
	// Extension of the media container, e.g. "mp4". May be empty.
	Extension string `json:"ext,omitempty"`
}

// String returns the quality or URL for display.
func (v *Variant) String() string {
	if v.Quality != "" {
		return v.Quality
	}
	return v.URL
}

// ExtensionOf guesses the container extension from the path of a media URL.
func ExtensionOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return strings.ToLower(strings.TrimPrefix(path.Ext(u.Path), "."))
}
