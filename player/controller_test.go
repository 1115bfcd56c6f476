package player

import (
	"testing"
	"time"

	"github.com/flixstream/flixstream/source"
	. "github.com/smartystreets/goconvey/convey"
)

func newTestController(media *fakeMedia, options ...Option) (*Controller, *manualClock) {
	clock := &manualClock{}
	options = append([]Option{WithClock(clock)}, options...)
	c := NewController(media, options...)
	return c, clock
}

func TestScrubbing(t *testing.T) {
	Convey("Given a playing video of 100 seconds at 10s", t, func() {
		media := newFakeMedia(100)
		media.paused = false
		media.position = 10
		c, _ := newTestController(media)
		So(c.Sync(), ShouldBeNil)

		Convey("When the timeline is pressed at 20%", func() {
			So(c.BeginScrub(0.2), ShouldBeNil)

			Convey("Playback pauses right away", func() {
				So(media.paused, ShouldBeTrue)
				So(c.Snapshot().Scrubbing, ShouldBeTrue)
				So(c.Snapshot().Paused, ShouldBeTrue)
			})

			Convey("And dragging to 70% only moves the pending position", func() {
				c.MoveScrub(0.7)

				So(media.seeks, ShouldBeEmpty)
				So(media.position, ShouldEqual, 10)
				So(c.Snapshot().Position, ShouldEqual, 70)

				Convey("Playhead reports from the media are ignored while dragging", func() {
					c.Observe("time-pos", 11.0)
					So(c.Snapshot().Position, ShouldEqual, 70)
				})

				Convey("And releasing at 75% seeks once and resumes", func() {
					So(c.EndScrub(0.75), ShouldBeNil)

					So(media.seeks, ShouldResemble, []float64{75})
					So(media.paused, ShouldBeFalse)

					state := c.Snapshot()
					So(state.Scrubbing, ShouldBeFalse)
					So(state.Paused, ShouldBeFalse)
					So(state.Position, ShouldEqual, 75)
				})
			})
		})

		Convey("Fractions outside the timeline are clamped", func() {
			So(c.BeginScrub(-1), ShouldBeNil)
			So(c.Snapshot().Position, ShouldEqual, 0)
			So(c.EndScrub(3), ShouldBeNil)
			So(media.seeks, ShouldResemble, []float64{100})
		})

		Convey("Moving or releasing without a press does nothing", func() {
			c.MoveScrub(0.5)
			So(c.EndScrub(0.5), ShouldBeNil)
			So(media.seeks, ShouldBeEmpty)
			So(media.paused, ShouldBeFalse)
		})
	})

	Convey("Given a paused video", t, func() {
		media := newFakeMedia(100)
		c, _ := newTestController(media)

		Convey("Scrubbing seeks but leaves it paused", func() {
			So(c.BeginScrub(0.1), ShouldBeNil)
			So(c.EndScrub(0.5), ShouldBeNil)

			So(media.seeks, ShouldResemble, []float64{50})
			So(media.paused, ShouldBeTrue)
			So(media.plays, ShouldEqual, 0)
			So(c.Snapshot().Paused, ShouldBeTrue)
		})
	})
}

func TestHoverPreview(t *testing.T) {
	Convey("Given a video with a preview element", t, func() {
		media := newFakeMedia(100)
		preview := newFakeMedia(100)
		c, clock := newTestController(media, WithPreview(preview))

		Convey("A hover seeks the preview after the settle delay", func() {
			c.Hover(0.3)
			So(preview.seeks, ShouldBeEmpty)
			So(c.Snapshot().Preview.IsAbsent(), ShouldBeTrue)

			clock.Advance(PreviewDelay)
			So(preview.seeks, ShouldResemble, []float64{30})
			So(c.Snapshot().Preview.OrEmpty(), ShouldEqual, 30)
		})

		Convey("Rapid hovers only seek to the last one", func() {
			c.Hover(0.10)
			clock.Advance(20 * time.Millisecond)
			c.Hover(0.20)
			clock.Advance(20 * time.Millisecond)
			c.Hover(0.40)
			clock.Advance(PreviewDelay)

			So(preview.seeks, ShouldResemble, []float64{40})
		})

		Convey("Moves under half a second are ignored", func() {
			c.Hover(0.300)
			clock.Advance(PreviewDelay)
			c.Hover(0.304)
			clock.Advance(PreviewDelay)

			So(preview.seeks, ShouldResemble, []float64{30})
		})

		Convey("Hovering the very start does nothing", func() {
			c.Hover(0)
			clock.Advance(PreviewDelay)
			So(preview.seeks, ShouldBeEmpty)
		})

		Convey("Hovering while scrubbing does nothing", func() {
			So(c.BeginScrub(0.5), ShouldBeNil)
			c.Hover(0.9)
			clock.Advance(PreviewDelay)
			So(preview.seeks, ShouldBeEmpty)
		})

		Convey("Leaving the timeline cancels and hides the preview", func() {
			c.Hover(0.6)
			c.LeaveTimeline()
			clock.Advance(PreviewDelay)

			So(preview.seeks, ShouldBeEmpty)
			So(c.Snapshot().Preview.IsAbsent(), ShouldBeTrue)

			Convey("And hovering the same spot again still previews it", func() {
				c.Hover(0.6)
				clock.Advance(PreviewDelay)
				So(preview.seeks, ShouldResemble, []float64{60})
			})
		})

		Convey("The main media is never seeked by hovering", func() {
			c.Hover(0.5)
			clock.Advance(PreviewDelay)
			So(media.seeks, ShouldBeEmpty)
		})
	})
}

func TestSwitchQuality(t *testing.T) {
	Convey("Given a 480p video playing at 12.5s", t, func() {
		media := newFakeMedia(300)
		media.paused = false
		media.position = 12.5
		c, clock := newTestController(media, WithQuality("480p"))
		So(c.Sync(), ShouldBeNil)

		hd := &source.Variant{Quality: "1080p", URL: "https://cdn/1080.mp4"}

		Convey("When switching to 1080p", func() {
			So(c.SwitchQuality(hd), ShouldBeNil)

			Convey("The new source is loaded right away", func() {
				So(media.loads, ShouldResemble, []string{hd.URL})
				So(c.Snapshot().Quality, ShouldEqual, "1080p")
				So(media.seeks, ShouldBeEmpty)
			})

			Convey("After the settle delay it resumes at 12.5s, playing", func() {
				clock.Advance(QualitySettleDelay)

				So(media.seeks, ShouldResemble, []float64{12.5})
				So(media.position, ShouldEqual, 12.5)
				So(media.paused, ShouldBeFalse)
				So(c.Snapshot().Paused, ShouldBeFalse)
			})

			Convey("A second switch before settling keeps the first position", func() {
				clock.Advance(QualitySettleDelay / 2)
				So(c.SwitchQuality(&source.Variant{Quality: "720p", URL: "https://cdn/720.mp4"}), ShouldBeNil)
				clock.Advance(QualitySettleDelay)

				So(media.loads, ShouldResemble, []string{hd.URL, "https://cdn/720.mp4"})
				So(media.seeks, ShouldResemble, []float64{12.5})
				So(media.paused, ShouldBeFalse)
				So(c.Snapshot().Quality, ShouldEqual, "720p")
			})
		})
	})

	Convey("Given a paused video at 40s", t, func() {
		media := newFakeMedia(300)
		media.position = 40
		c, clock := newTestController(media)

		Convey("Switching quality keeps it paused at 40s", func() {
			So(c.SwitchQuality(&source.Variant{Quality: "720p", URL: "u"}), ShouldBeNil)
			clock.Advance(QualitySettleDelay)

			So(media.seeks, ShouldResemble, []float64{40})
			So(media.paused, ShouldBeTrue)
			So(media.plays, ShouldEqual, 0)
		})
	})
}

func TestControlsAutoHide(t *testing.T) {
	Convey("Given a playing video in fullscreen", t, func() {
		media := newFakeMedia(100)
		media.paused = false
		c, clock := newTestController(media)
		So(c.Sync(), ShouldBeNil)
		So(c.ToggleFullscreen(), ShouldBeNil)
		So(media.fullscreen, ShouldBeTrue)

		Convey("Controls hide two seconds after the pointer stops", func() {
			c.PointerMove()
			So(c.Snapshot().ControlsVisible, ShouldBeTrue)

			clock.Advance(ControlsHideDelay - time.Millisecond)
			So(c.Snapshot().ControlsVisible, ShouldBeTrue)

			clock.Advance(time.Millisecond)
			So(c.Snapshot().ControlsVisible, ShouldBeFalse)
		})

		Convey("Every move restarts the timer", func() {
			c.PointerMove()
			clock.Advance(1500 * time.Millisecond)
			c.PointerMove()
			clock.Advance(1500 * time.Millisecond)
			So(c.Snapshot().ControlsVisible, ShouldBeTrue)

			clock.Advance(500 * time.Millisecond)
			So(c.Snapshot().ControlsVisible, ShouldBeFalse)

			Convey("And a move brings them back at once", func() {
				c.PointerMove()
				So(c.Snapshot().ControlsVisible, ShouldBeTrue)
			})
		})

		Convey("A move that lands while the hide is firing keeps them shown", func() {
			c.PointerMove()

			c.mu.Lock()
			done := make(chan struct{})
			go func() {
				clock.Advance(ControlsHideDelay)
				close(done)
			}()
			time.Sleep(20 * time.Millisecond)
			c.pointerMoveLocked()
			c.mu.Unlock()
			<-done

			So(c.Snapshot().ControlsVisible, ShouldBeTrue)

			clock.Advance(ControlsHideDelay)
			So(c.Snapshot().ControlsVisible, ShouldBeFalse)
		})

		Convey("Controls stay while paused", func() {
			So(c.TogglePlay(), ShouldBeNil)
			c.PointerMove()
			clock.Advance(ControlsHideDelay)
			So(c.Snapshot().ControlsVisible, ShouldBeTrue)

			c.PointerLeave()
			So(c.Snapshot().ControlsVisible, ShouldBeTrue)
		})

		Convey("Leaving the window hides them at once", func() {
			c.PointerLeave()
			So(c.Snapshot().ControlsVisible, ShouldBeFalse)
		})

		Convey("Leaving fullscreen shows them and cancels the timer", func() {
			c.PointerMove()
			So(c.ToggleFullscreen(), ShouldBeNil)
			clock.Advance(ControlsHideDelay)

			state := c.Snapshot()
			So(state.Fullscreen, ShouldBeFalse)
			So(state.ControlsVisible, ShouldBeTrue)
		})
	})

	Convey("Given a playing video in a window", t, func() {
		media := newFakeMedia(100)
		media.paused = false
		c, clock := newTestController(media)
		So(c.Sync(), ShouldBeNil)

		Convey("Controls never hide", func() {
			c.PointerMove()
			clock.Advance(10 * ControlsHideDelay)
			c.PointerLeave()
			So(c.Snapshot().ControlsVisible, ShouldBeTrue)
		})
	})
}

func TestToggles(t *testing.T) {
	Convey("Given a controller", t, func() {
		media := newFakeMedia(100)
		media.position = 50
		c, _ := newTestController(media)

		Convey("TogglePlay flips the media state", func() {
			So(c.TogglePlay(), ShouldBeNil)
			So(media.paused, ShouldBeFalse)
			So(c.TogglePlay(), ShouldBeNil)
			So(media.paused, ShouldBeTrue)
		})

		Convey("Theater and mini player flip their flags", func() {
			c.ToggleTheater()
			So(c.ToggleMini(), ShouldBeNil)

			state := c.Snapshot()
			So(state.Theater, ShouldBeTrue)
			So(state.Mini, ShouldBeTrue)
			So(media.mini, ShouldBeTrue)
			So(state.Classes(), ShouldContain, "theater")
			So(state.Classes(), ShouldContain, "mini-player")
		})

		Convey("Mute flips the media and the volume level", func() {
			So(c.Snapshot().VolumeLevel(), ShouldEqual, VolumeHigh)
			So(c.ToggleMute(), ShouldBeNil)
			So(media.muted, ShouldBeTrue)
			So(c.Snapshot().VolumeLevel(), ShouldEqual, VolumeMuted)
		})

		Convey("Speed steps by a quarter and wraps after 2x", func() {
			var speeds []float64
			for i := 0; i < 5; i++ {
				So(c.CycleSpeed(), ShouldBeNil)
				speeds = append(speeds, c.Snapshot().Speed)
			}
			So(speeds, ShouldResemble, []float64{1.25, 1.5, 1.75, 2, 0.25})
			So(media.speed, ShouldEqual, 0.25)
		})

		Convey("Skip moves five seconds and stays in bounds", func() {
			So(c.Skip(SkipSeconds), ShouldBeNil)
			So(media.position, ShouldEqual, 55)

			media.position = 2
			So(c.Skip(-SkipSeconds), ShouldBeNil)
			So(media.position, ShouldEqual, 0)

			media.position = 98
			So(c.Skip(SkipSeconds), ShouldBeNil)
			So(media.position, ShouldEqual, 100)
		})
	})
}

func TestHandleKey(t *testing.T) {
	Convey("Given a controller", t, func() {
		media := newFakeMedia(100)
		media.position = 50
		c, _ := newTestController(media)

		press := func(key string) bool {
			handled, err := c.HandleKey(key)
			So(err, ShouldBeNil)
			return handled
		}

		Convey("Play keys", func() {
			So(press(" "), ShouldBeTrue)
			So(media.paused, ShouldBeFalse)
			So(press("k"), ShouldBeTrue)
			So(media.paused, ShouldBeTrue)
		})

		Convey("Mode keys", func() {
			So(press("f"), ShouldBeTrue)
			So(press("t"), ShouldBeTrue)
			So(press("i"), ShouldBeTrue)
			So(press("M"), ShouldBeTrue)

			state := c.Snapshot()
			So(state.Fullscreen, ShouldBeTrue)
			So(state.Theater, ShouldBeTrue)
			So(state.Mini, ShouldBeTrue)
			So(state.Muted, ShouldBeTrue)
		})

		Convey("Seek keys", func() {
			So(press("left"), ShouldBeTrue)
			So(media.position, ShouldEqual, 45)
			So(press("l"), ShouldBeTrue)
			So(media.position, ShouldEqual, 50)
			So(press("j"), ShouldBeTrue)
			So(media.position, ShouldEqual, 45)
		})

		Convey("Unbound keys are reported", func() {
			So(press("x"), ShouldBeFalse)
		})
	})
}

func TestObserve(t *testing.T) {
	Convey("Given events from the media backend", t, func() {
		media := newFakeMedia(100)
		c, _ := newTestController(media)

		c.Observe("pause", false)
		c.Observe("time-pos", 42.0)
		c.Observe("duration", 84.0)
		c.Observe("speed", 1.5)
		c.Observe("volume", 30.0)
		c.Observe("fullscreen", true)
		c.Observe("eof-reached", true)

		state := c.Snapshot()
		So(state.Paused, ShouldBeFalse)
		So(state.Position, ShouldEqual, 42)
		So(state.Progress(), ShouldEqual, 0.5)
		So(state.Speed, ShouldEqual, 1.5)
		So(state.Volume, ShouldEqual, 0.3)
		So(state.VolumeLevel(), ShouldEqual, VolumeLow)
		So(state.Fullscreen, ShouldBeTrue)
	})
}
