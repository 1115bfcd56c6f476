package history

import (
	"fmt"
	"time"

	"github.com/flixstream/flixstream/player"
	"github.com/flixstream/flixstream/source"
)

// Entry is a single watched video preserved in the user's history.
type Entry struct {
	Source     string    `json:"source"`
	Identifier string    `json:"identifier"`
	Title      string    `json:"title"`
	Thumbnail  string    `json:"thumbnail,omitempty"`
	Quality    string    `json:"quality,omitempty"`
	Position   float64   `json:"position"`
	Duration   float64   `json:"duration"`
	WatchedAt  time.Time `json:"watched_at"`
}

// NewEntry records summary as watched now.
func NewEntry(summary *source.Summary, quality string) *Entry {
	return &Entry{
		Source:     summary.Source,
		Identifier: summary.Identifier(),
		Title:      summary.Title,
		Thumbnail:  summary.Thumbnail,
		Quality:    quality,
	}
}

func (e *Entry) encode() string {
	return fmt.Sprintf("%s/%s", e.Source, e.Identifier)
}

// Progress is the watched fraction, zero when the duration is unknown.
func (e *Entry) Progress() float64 {
	if e.Duration <= 0 {
		return 0
	}
	return min(e.Position/e.Duration, 1)
}

func (e *Entry) String() string {
	return fmt.Sprintf("%s (%s) %s / %s", e.Title, e.Source, player.FormatDuration(e.Position), player.FormatDuration(e.Duration))
}
