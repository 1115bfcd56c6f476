package player

import "github.com/samber/mo"

// Volume levels as shown by the volume icon.
const (
	VolumeMuted = "muted"
	VolumeLow   = "low"
	VolumeHigh  = "high"
)

// State is a point-in-time copy of the controller.
type State struct {
	Paused          bool
	Scrubbing       bool
	Fullscreen      bool
	Theater         bool
	Mini            bool
	ControlsVisible bool
	Muted           bool

	Volume   float64
	Speed    float64
	Quality  string
	Position float64
	Duration float64

	// Preview is the settled hover time, absent when the pointer is off the timeline.
	Preview mo.Option[float64]
}

// Progress is the playhead position as a fraction of the duration.
func (s State) Progress() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return clamp(s.Position/s.Duration, 0, 1)
}

// VolumeLevel buckets the volume for display.
func (s State) VolumeLevel() string {
	switch {
	case s.Muted || s.Volume == 0:
		return VolumeMuted
	case s.Volume >= 0.5:
		return VolumeHigh
	default:
		return VolumeLow
	}
}

// Classes lists the active modes, e.g. for styling a container.
func (s State) Classes() []string {
	classes := []string{}
	if s.Paused {
		classes = append(classes, "paused")
	}
	if s.Theater {
		classes = append(classes, "theater")
	}
	if s.Fullscreen {
		classes = append(classes, "full-screen")
	}
	if s.Mini {
		classes = append(classes, "mini-player")
	}
	if s.Scrubbing {
		classes = append(classes, "scrubbing")
	}
	if !s.ControlsVisible {
		classes = append(classes, "hide-controls")
	}
	return classes
}
