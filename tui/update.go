package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/flixstream/flixstream/log"
)

func (b *remoteBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
	case syncMsg:
		if err := b.controller.Sync(); err != nil {
			log.Debugf("sync: %s", err)
		}
		return b, tick()
	case playerExitedMsg:
		return b, tea.Quit
	case tea.BlurMsg:
		b.controller.PointerLeave()
	case tea.KeyMsg:
		return b, b.handleKey(msg)
	case tea.MouseMsg:
		b.handleMouse(msg)
	}

	return b, nil
}

func (b *remoteBubble) handleKey(msg tea.KeyMsg) tea.Cmd {
	b.controller.PointerMove()

	switch {
	case key.Matches(msg, b.keymap.forceQuit), key.Matches(msg, b.keymap.quit):
		return tea.Quit
	case key.Matches(msg, b.keymap.showHelp):
		b.helpC.ShowAll = !b.helpC.ShowAll
		return nil
	case key.Matches(msg, b.keymap.speed):
		b.report(b.controller.CycleSpeed())
		return nil
	case key.Matches(msg, b.keymap.quality):
		b.switchQuality(msg.String())
		return nil
	}

	handled, err := b.controller.HandleKey(msg.String())
	if handled {
		b.report(err)
	}
	return nil
}

// switchQuality picks a variant by its 1-based position in the list.
func (b *remoteBubble) switchQuality(digit string) {
	n, err := strconv.Atoi(digit)
	if err != nil || n < 1 || n > len(b.variants) {
		return
	}

	b.report(b.controller.SwitchQuality(b.variants[n-1]))
}

func (b *remoteBubble) handleMouse(msg tea.MouseMsg) {
	b.controller.PointerMove()

	onTimeline := msg.Y == timelineRow
	fraction := b.fraction(msg.X)
	scrubbing := b.controller.Snapshot().Scrubbing

	switch msg.Action {
	case tea.MouseActionPress:
		if onTimeline && msg.Button == tea.MouseButtonLeft {
			b.report(b.controller.BeginScrub(fraction))
		}
	case tea.MouseActionRelease:
		if scrubbing {
			b.report(b.controller.EndScrub(fraction))
		}
	case tea.MouseActionMotion:
		switch {
		case scrubbing:
			b.controller.MoveScrub(fraction)
		case onTimeline:
			b.hovering = true
			b.controller.Hover(fraction)
		case b.hovering:
			b.hovering = false
			b.controller.LeaveTimeline()
		}
	}
}

func (b *remoteBubble) report(err error) {
	b.lastError = err
	if err != nil {
		log.Error(err)
	}
}
