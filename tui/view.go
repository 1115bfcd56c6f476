package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/flixstream/flixstream/color"
	"github.com/flixstream/flixstream/icon"
	"github.com/flixstream/flixstream/player"
	"github.com/flixstream/flixstream/style"
	"github.com/muesli/reflow/truncate"
)

var (
	paddingStyle  = lipgloss.NewStyle().Padding(0, 2)
	playedStyle   = lipgloss.NewStyle().Foreground(style.AccentColor)
	unplayedStyle = lipgloss.NewStyle().Foreground(style.FaintColor)
	previewStyle  = lipgloss.NewStyle().Foreground(style.Yellow)
	currentStyle  = lipgloss.NewStyle().Foreground(style.Base).Background(style.AccentColor).Padding(0, 1)
	otherStyle    = lipgloss.NewStyle().Padding(0, 1)
)

func (b *remoteBubble) View() string {
	state := b.controller.Snapshot()

	lines := []string{
		b.viewTimeline(state),
		paddingStyle.Render(b.viewTime(state)),
		"",
		paddingStyle.Render(style.Title(truncate.StringWithTail(b.title, uint(max(b.width-6, 1)), "…"))),
		"",
		paddingStyle.Render(b.viewModes(state)),
		"",
		paddingStyle.Render(b.viewQualities(state)),
	}

	if b.lastError != nil {
		lines = append(lines, "", paddingStyle.Render(icon.Get(icon.Fail)+" "+style.Fg(color.Red)(b.lastError.Error())))
	}

	h := len(lines)
	view := strings.Join(lines, "\n")
	if b.height > h+1 {
		view += strings.Repeat("\n", b.height-h-1)
	}

	if state.ControlsVisible || b.helpC.ShowAll {
		view += "\n" + paddingStyle.Render(b.helpC.View(b.keymap))
	}

	return view
}

// viewTimeline draws the full-width progress bar with the preview marker.
func (b *remoteBubble) viewTimeline(state player.State) string {
	width := max(b.width, 1)
	played := int(state.Progress() * float64(width))

	marker := -1
	if preview, ok := state.Preview.Get(); ok && state.Duration > 0 {
		marker = min(int(preview/state.Duration*float64(width)), width-1)
	}

	var sb strings.Builder
	for i := 0; i < width; i++ {
		switch {
		case i == marker:
			sb.WriteString(previewStyle.Render("┃"))
		case i < played:
			sb.WriteString(playedStyle.Render("━"))
		default:
			sb.WriteString(unplayedStyle.Render("─"))
		}
	}
	return sb.String()
}

func (b *remoteBubble) viewTime(state player.State) string {
	status := icon.Get(icon.Play)
	if state.Paused {
		status = icon.Get(icon.Pause)
	}

	text := fmt.Sprintf("%s %s / %s", status, player.FormatDuration(state.Position), player.FormatDuration(state.Duration))
	if preview, ok := state.Preview.Get(); ok {
		text += "  " + previewStyle.Render(player.FormatDuration(preview))
	}
	if state.Speed != 1 {
		text += fmt.Sprintf("  %gx", state.Speed)
	}
	return text
}

func (b *remoteBubble) viewModes(state player.State) string {
	var volume icon.Icon
	switch state.VolumeLevel() {
	case player.VolumeMuted:
		volume = icon.Muted
	case player.VolumeLow:
		volume = icon.VolumeLow
	default:
		volume = icon.VolumeHigh
	}

	modes := []string{icon.Get(volume)}
	flag := func(on bool, i icon.Icon, name string) {
		if on {
			modes = append(modes, icon.Get(i)+" "+name)
		}
	}

	flag(state.Fullscreen, icon.Fullscreen, "fullscreen")
	flag(state.Theater, icon.Theater, "theater")
	flag(state.Mini, icon.Mini, "mini")

	return style.Faint(strings.Join(modes, "  "))
}

func (b *remoteBubble) viewQualities(state player.State) string {
	if len(b.variants) == 0 {
		return ""
	}

	items := make([]string, len(b.variants))
	for i, variant := range b.variants {
		label := fmt.Sprintf("%d %s", i+1, variant.Quality)
		if variant.Quality == state.Quality {
			items[i] = currentStyle.Render(label)
		} else {
			items[i] = otherStyle.Render(label)
		}
	}

	return icon.Get(icon.Quality) + " " + lipgloss.JoinHorizontal(lipgloss.Top, items...)
}
