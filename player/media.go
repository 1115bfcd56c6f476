package player

// Media is the element the controller drives.
// Times are in seconds, volume is in [0, 1].
type Media interface {
	CurrentTime() (float64, error)
	Duration() (float64, error)
	Paused() (bool, error)
	Volume() (float64, error)

	Play() error
	Pause() error
	Seek(seconds float64) error
	// Load swaps the media source, e.g. for another quality of the same video.
	Load(url string) error
	SetSpeed(speed float64) error
	SetMuted(muted bool) error
}

// Display is implemented by media shown in a window of its own.
type Display interface {
	SetFullscreen(fullscreen bool) error
	// SetMini shrinks the window and keeps it above others.
	SetMini(mini bool) error
}
