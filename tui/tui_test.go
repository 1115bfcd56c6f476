package tui

import (
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/flixstream/flixstream/player"
	"github.com/flixstream/flixstream/source"
	. "github.com/smartystreets/goconvey/convey"
)

type stubMedia struct {
	mu       sync.Mutex
	position float64
	duration float64
	paused   bool
	loads    []string
	seeks    []float64
}

func (m *stubMedia) CurrentTime() (float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.position, nil
}

func (m *stubMedia) Duration() (float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.duration, nil
}

func (m *stubMedia) Paused() (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.paused, nil
}

func (m *stubMedia) Volume() (float64, error) { return 1, nil }

func (m *stubMedia) Play() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.paused = false
	return nil
}

func (m *stubMedia) Pause() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.paused = true
	return nil
}

func (m *stubMedia) Seek(seconds float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.position = seconds
	m.seeks = append(m.seeks, seconds)
	return nil
}

func (m *stubMedia) Load(url string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loads = append(m.loads, url)
	return nil
}

func (m *stubMedia) SetSpeed(float64) error { return nil }
func (m *stubMedia) SetMuted(bool) error    { return nil }

func newTestBubble(media *stubMedia) *remoteBubble {
	b := newBubble(&Options{
		Controller: player.NewController(media),
		Title:      "Some video",
		Variants: []*source.Variant{
			{Quality: "1080p", URL: "https://cdn/1080.mp4"},
			{Quality: "480p", URL: "https://cdn/480.mp4"},
		},
	})
	b.resize(101, 30)
	return b
}

func mouse(action tea.MouseAction, x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: tea.MouseButtonLeft}
}

func TestRemote(t *testing.T) {
	Convey("Given a remote over a 100 second video", t, func() {
		media := &stubMedia{duration: 100, paused: false}
		b := newTestBubble(media)
		b.Update(syncMsg{})

		Convey("Dragging on the timeline seeks once on release", func() {
			b.Update(mouse(tea.MouseActionPress, 10, timelineRow))
			So(media.paused, ShouldBeTrue)

			b.Update(tea.MouseMsg{X: 40, Y: timelineRow, Action: tea.MouseActionMotion})
			b.Update(tea.MouseMsg{X: 60, Y: 5, Action: tea.MouseActionMotion})
			So(media.seeks, ShouldBeEmpty)

			b.Update(mouse(tea.MouseActionRelease, 50, 3))
			So(media.seeks, ShouldResemble, []float64{50})
			So(media.paused, ShouldBeFalse)
		})

		Convey("Pressing below the timeline does not scrub", func() {
			b.Update(mouse(tea.MouseActionPress, 10, timelineRow+2))
			So(b.controller.Snapshot().Scrubbing, ShouldBeFalse)
		})

		Convey("Digit keys switch quality", func() {
			b.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'2'}})
			So(media.loads, ShouldResemble, []string{"https://cdn/480.mp4"})
			So(b.controller.Snapshot().Quality, ShouldEqual, "480p")

			Convey("Digits past the list are ignored", func() {
				b.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'7'}})
				So(media.loads, ShouldHaveLength, 1)
			})
		})

		Convey("Player keys reach the controller", func() {
			b.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
			So(media.paused, ShouldBeTrue)

			b.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
			So(b.controller.Snapshot().Speed, ShouldEqual, 1.25)
		})

		Convey("Quit keys end the program", func() {
			_, cmd := b.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
			So(cmd, ShouldNotBeNil)
			So(cmd(), ShouldResemble, tea.Quit())
		})

		Convey("The view shows the title and the qualities", func() {
			view := b.View()
			So(view, ShouldContainSubstring, "Some video")
			So(view, ShouldContainSubstring, "1 1080p")
			So(view, ShouldContainSubstring, "2 480p")
			So(strings.Split(view, "\n")[1], ShouldContainSubstring, "0:00 / 1:40")
		})
	})
}
