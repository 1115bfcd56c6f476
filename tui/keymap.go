package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/flixstream/flixstream/color"
	"github.com/flixstream/flixstream/style"
)

// remoteKeymap lists the bindings shown in the help bar.
// The player keys themselves are resolved by the controller.
type remoteKeymap struct {
	quit, forceQuit,
	playPause, fullscreen, theater, mini, mute,
	back, forward, speed, quality,
	showHelp key.Binding
}

func newRemoteKeymap() *remoteKeymap {
	return &remoteKeymap{
		quit: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q", "quit"),
		),
		forceQuit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+d"),
			key.WithHelp("ctrl+c", "quit"),
		),
		playPause: key.NewBinding(
			key.WithKeys(" ", "k"),
			key.WithHelp(style.Fg(color.Orange)("space"), style.Fg(color.Orange)("play/pause")),
		),
		fullscreen: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "fullscreen"),
		),
		theater: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theater"),
		),
		mini: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "mini player"),
		),
		mute: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mute"),
		),
		back: key.NewBinding(
			key.WithKeys("left", "j"),
			key.WithHelp("←/j", "-5s"),
		),
		forward: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "+5s"),
		),
		speed: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "speed"),
		),
		quality: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "quality"),
		),
		showHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

func (k *remoteKeymap) ShortHelp() []key.Binding {
	return []key.Binding{k.playPause, k.back, k.forward, k.quality, k.showHelp, k.quit}
}

func (k *remoteKeymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.playPause, k.back, k.forward, k.speed},
		{k.fullscreen, k.theater, k.mini, k.mute},
		{k.quality, k.showHelp, k.quit},
	}
}
