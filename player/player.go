// Package player drives an external media player and models its on-screen controls.
package player

import "fmt"

// Player is a media backend running in a window of its own.
type Player interface {
	Media
	Display

	// Start begins playing url, reusing a running instance if there is one.
	Start(url, title string) error
	// ResumeAt makes the next Start begin at seconds.
	ResumeAt(seconds float64)
	// Socket is the IPC endpoint events can be observed on.
	Socket() string
	// Wait is closed when the player process exits.
	Wait() <-chan struct{}
	Close() error
}

// New returns the player for name. Any name other than a known one is treated as an mpv binary path.
func New(name string) (Player, error) {
	switch name {
	case "":
		return nil, fmt.Errorf("no player configured")
	default:
		return NewMPV(name), nil
	}
}
