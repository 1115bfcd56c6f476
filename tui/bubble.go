package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/flixstream/flixstream/player"
	"github.com/flixstream/flixstream/source"
	"github.com/flixstream/flixstream/util"
)

// syncInterval is how often the remote pulls the playhead from the player.
const syncInterval = 250 * time.Millisecond

// timelineRow is the screen row the timeline is drawn on.
const timelineRow = 0

type remoteBubble struct {
	controller *player.Controller
	title      string
	variants   []*source.Variant
	done       <-chan struct{}

	keymap *remoteKeymap
	helpC  help.Model

	hovering  bool
	lastError error

	width, height int
}

type syncMsg time.Time

type playerExitedMsg struct{}

func newBubble(options *Options) *remoteBubble {
	bubble := &remoteBubble{
		controller: options.Controller,
		title:      options.Title,
		variants:   options.Variants,
		done:       options.Done,
		keymap:     newRemoteKeymap(),
		helpC:      help.New(),
	}

	if w, h, err := util.TerminalSize(); err == nil {
		bubble.resize(w, h)
	}

	return bubble
}

func (b *remoteBubble) resize(width, height int) {
	x, _ := paddingStyle.GetFrameSize()

	b.width = width
	b.height = height
	b.helpC.Width = width - x
}

// fraction maps a screen column to a position on the timeline.
func (b *remoteBubble) fraction(x int) float64 {
	if b.width <= 1 {
		return 0
	}
	return float64(x) / float64(b.width-1)
}

func tick() tea.Cmd {
	return tea.Tick(syncInterval, func(t time.Time) tea.Msg {
		return syncMsg(t)
	})
}

func (b *remoteBubble) waitForExit() tea.Cmd {
	if b.done == nil {
		return nil
	}

	return func() tea.Msg {
		<-b.done
		return playerExitedMsg{}
	}
}

func (b *remoteBubble) Init() tea.Cmd {
	return tea.Batch(tick(), b.waitForExit())
}
