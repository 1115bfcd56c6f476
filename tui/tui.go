// Package tui provides the terminal remote control shown while a video plays.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/flixstream/flixstream/player"
	"github.com/flixstream/flixstream/source"
)

// Options encapsulates the runtime configuration for the remote.
type Options struct {
	Controller *player.Controller
	Title      string
	Variants   []*source.Variant

	// Done is closed when the player exits, which closes the remote.
	Done <-chan struct{}
}

// Run executes the remote until the user quits or the player exits.
func Run(options *Options) error {
	_, err := tea.NewProgram(
		newBubble(options),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithReportFocus(),
	).Run()
	return err
}
