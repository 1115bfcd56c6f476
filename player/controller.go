package player

import (
	"math"
	"strings"
	"sync"
	"time"

	"github.com/flixstream/flixstream/log"
	"github.com/flixstream/flixstream/source"
	"github.com/samber/mo"
)

const (
	// PreviewDelay is how long hovering must settle before the preview seeks.
	PreviewDelay = 50 * time.Millisecond
	// PreviewThreshold is the smallest hovered time change, in seconds, that moves the preview.
	PreviewThreshold = 0.5
	// ControlsHideDelay is the pointer idle time after which fullscreen controls hide.
	ControlsHideDelay = 2 * time.Second
	// QualitySettleDelay is the wait between loading a new source and restoring its position.
	QualitySettleDelay = 100 * time.Millisecond

	SpeedStep   = 0.25
	MaxSpeed    = 2.0
	MinSpeed    = 0.25
	SkipSeconds = 5.0
)

// Controller is the player state machine.
// It is safe for concurrent use: timers and media events arrive on other goroutines.
type Controller struct {
	mu sync.Mutex

	media   Media
	preview Media
	clock   Clock

	paused     bool
	muted      bool
	volume     float64
	speed      float64
	quality    string
	position   float64
	duration   float64
	fullscreen bool
	theater    bool
	mini       bool
	controls   bool

	scrubbing bool
	wasPaused bool
	pending   float64

	showPreview bool
	previewTime mo.Option[float64]
	lastPreview float64

	// restore is the position captured by a quality switch that has not settled yet
	restore mo.Option[restorePoint]

	previewTimer *Debouncer
	settleTimer  *Debouncer
	hideTimer    *Debouncer
}

type restorePoint struct {
	position float64
	playing  bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithClock replaces the clock used for debouncing.
func WithClock(clock Clock) Option {
	return func(c *Controller) {
		c.clock = clock
	}
}

// WithPreview sets the media seeked by timeline hovering.
func WithPreview(preview Media) Option {
	return func(c *Controller) {
		c.preview = preview
	}
}

// WithQuality records the quality label of the initial source.
func WithQuality(quality string) Option {
	return func(c *Controller) {
		c.quality = quality
	}
}

// NewController returns a controller for media that starts paused with controls shown.
func NewController(media Media, options ...Option) *Controller {
	c := &Controller{
		media:    media,
		clock:    RealClock,
		paused:   true,
		speed:    1,
		volume:   1,
		controls: true,
	}

	for _, option := range options {
		option(c)
	}

	c.previewTimer = NewDebouncer(c.clock, PreviewDelay)
	c.settleTimer = NewDebouncer(c.clock, QualitySettleDelay)
	c.hideTimer = NewDebouncer(c.clock, ControlsHideDelay)
	return c
}

// Sync pulls the playhead, duration, pause and volume state from the media.
// The playhead is left alone while scrubbing.
func (c *Controller) Sync() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	paused, err := c.media.Paused()
	if err != nil {
		return err
	}
	c.setPausedLocked(paused)

	if duration, err := c.media.Duration(); err == nil {
		c.duration = duration
	}

	if volume, err := c.media.Volume(); err == nil {
		c.volume = volume
	}

	if c.scrubbing {
		return nil
	}

	position, err := c.media.CurrentTime()
	if err != nil {
		return err
	}
	c.position = position
	return nil
}

// TogglePlay resumes paused media and pauses playing media.
func (c *Controller) TogglePlay() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	paused, err := c.media.Paused()
	if err != nil {
		return err
	}

	if paused {
		err = c.media.Play()
	} else {
		err = c.media.Pause()
	}
	if err != nil {
		return err
	}

	c.setPausedLocked(!paused)
	return nil
}

// BeginScrub starts dragging the playhead at fraction of the timeline.
// Playback pauses right away; whether it was playing is remembered for EndScrub.
func (c *Controller) BeginScrub(fraction float64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.scrubbing {
		c.pending = c.timeAtLocked(fraction)
		return nil
	}

	paused, err := c.media.Paused()
	if err != nil {
		return err
	}

	c.wasPaused = paused
	c.scrubbing = true
	c.showPreview = false
	c.previewTimer.Cancel()
	c.pending = c.timeAtLocked(fraction)

	if !paused {
		if err := c.media.Pause(); err != nil {
			return err
		}
	}
	c.setPausedLocked(true)
	return nil
}

// MoveScrub updates the pending position. The media is not seeked until EndScrub.
func (c *Controller) MoveScrub(fraction float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.scrubbing {
		c.pending = c.timeAtLocked(fraction)
	}
}

// EndScrub seeks to fraction of the timeline and resumes if playback was running when the drag began.
func (c *Controller) EndScrub(fraction float64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.scrubbing {
		return nil
	}

	c.scrubbing = false
	c.pending = c.timeAtLocked(fraction)

	if err := c.media.Seek(c.pending); err != nil {
		return err
	}
	c.position = c.pending

	if !c.wasPaused {
		if err := c.media.Play(); err != nil {
			return err
		}
		c.setPausedLocked(false)
	}
	return nil
}

// Hover moves the preview to fraction of the timeline once the pointer settles.
// Moves smaller than PreviewThreshold are ignored.
func (c *Controller) Hover(fraction float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.scrubbing {
		return
	}

	at := c.timeAtLocked(fraction)
	if at <= 0 {
		return
	}
	c.showPreview = true

	if math.Abs(at-c.lastPreview) < PreviewThreshold {
		return
	}
	c.lastPreview = at

	c.previewTimer.Schedule(func(gen uint64) {
		c.mu.Lock()
		defer c.mu.Unlock()

		if !c.previewTimer.Current(gen) {
			return
		}

		if c.preview != nil {
			if err := c.preview.Seek(at); err != nil {
				log.Warnf("preview seek: %s", err)
				return
			}
		}
		c.previewTime = mo.Some(at)
	})
}

// LeaveTimeline hides the preview.
func (c *Controller) LeaveTimeline() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.showPreview = false
	c.previewTimer.Cancel()
	c.lastPreview = c.previewTime.OrElse(0)
}

// SwitchQuality loads another rendition and, once it settles, restores the position and play state.
// Switching again before the settle keeps the position captured by the first switch.
func (c *Controller) SwitchQuality(variant *source.Variant) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	point, ok := c.restore.Get()
	if !ok {
		position, err := c.media.CurrentTime()
		if err != nil {
			position = c.position
		}

		paused, err := c.media.Paused()
		if err != nil {
			return err
		}

		point = restorePoint{position: position, playing: !paused}
	}

	if err := c.media.Load(variant.URL); err != nil {
		return err
	}
	c.quality = variant.Quality
	c.restore = mo.Some(point)

	c.settleTimer.Schedule(func(gen uint64) {
		c.mu.Lock()
		defer c.mu.Unlock()

		if !c.settleTimer.Current(gen) {
			return
		}

		c.restore = mo.None[restorePoint]()

		if point.position > 0 {
			if err := c.media.Seek(point.position); err != nil {
				log.Errorf("restore position: %s", err)
				return
			}
			c.position = point.position
		}

		if point.playing {
			if err := c.media.Play(); err != nil {
				log.Errorf("resume after quality switch: %s", err)
				return
			}
			c.setPausedLocked(false)
		}
	})
	return nil
}

// PointerMove shows the controls. In fullscreen it rearms the hide timer.
func (c *Controller) PointerMove() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pointerMoveLocked()
}

func (c *Controller) pointerMoveLocked() {
	c.controls = true
	if !c.fullscreen {
		return
	}

	c.hideTimer.Schedule(func(gen uint64) {
		c.mu.Lock()
		defer c.mu.Unlock()

		if !c.hideTimer.Current(gen) {
			return
		}

		if !c.paused && c.fullscreen {
			c.controls = false
		}
	})
}

// PointerLeave hides fullscreen controls unless paused.
func (c *Controller) PointerLeave() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.paused && c.fullscreen {
		c.controls = false
	}
}

// ToggleFullscreen enters or leaves fullscreen.
func (c *Controller) ToggleFullscreen() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if display, ok := c.media.(Display); ok {
		if err := display.SetFullscreen(!c.fullscreen); err != nil {
			return err
		}
	}
	c.setFullscreenLocked(!c.fullscreen)
	return nil
}

// ToggleTheater switches the wide layout.
func (c *Controller) ToggleTheater() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.theater = !c.theater
}

// ToggleMini enters or leaves the mini player.
func (c *Controller) ToggleMini() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if display, ok := c.media.(Display); ok {
		if err := display.SetMini(!c.mini); err != nil {
			return err
		}
	}
	c.mini = !c.mini
	return nil
}

// ToggleMute mutes or unmutes the media.
func (c *Controller) ToggleMute() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.media.SetMuted(!c.muted); err != nil {
		return err
	}
	c.muted = !c.muted
	return nil
}

// CycleSpeed raises the playback rate by SpeedStep, wrapping to MinSpeed past MaxSpeed.
func (c *Controller) CycleSpeed() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	speed := c.speed + SpeedStep
	if speed > MaxSpeed {
		speed = MinSpeed
	}

	if err := c.media.SetSpeed(speed); err != nil {
		return err
	}
	c.speed = speed
	return nil
}

// Skip moves the playhead by seconds, clamped to the media bounds.
func (c *Controller) Skip(seconds float64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	current, err := c.media.CurrentTime()
	if err != nil {
		return err
	}

	target := math.Max(0, current+seconds)
	if duration, err := c.media.Duration(); err == nil && duration > 0 {
		target = math.Min(target, duration)
	}

	if err := c.media.Seek(target); err != nil {
		return err
	}
	c.position = target
	return nil
}

// HandleKey runs the action bound to a key and reports whether one was bound.
//
//	space, k     play/pause
//	f            fullscreen
//	t            theater
//	i            mini player
//	m            mute
//	left, j      back 5s
//	right, l     forward 5s
func (c *Controller) HandleKey(key string) (bool, error) {
	switch strings.ToLower(key) {
	case " ", "space", "k":
		return true, c.TogglePlay()
	case "f":
		return true, c.ToggleFullscreen()
	case "t":
		c.ToggleTheater()
		return true, nil
	case "i":
		return true, c.ToggleMini()
	case "m":
		return true, c.ToggleMute()
	case "left", "arrowleft", "j":
		return true, c.Skip(-SkipSeconds)
	case "right", "arrowright", "l":
		return true, c.Skip(SkipSeconds)
	default:
		return false, nil
	}
}

// Observe folds a property change reported by the media backend into the state.
func (c *Controller) Observe(property string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch property {
	case "pause":
		if paused, ok := value.(bool); ok {
			c.setPausedLocked(paused)
		}
	case "mute":
		if muted, ok := value.(bool); ok {
			c.muted = muted
		}
	case "speed":
		if speed, ok := value.(float64); ok {
			c.speed = speed
		}
	case "volume":
		// mpv reports percent
		if volume, ok := value.(float64); ok {
			c.volume = volume / 100
		}
	case "duration":
		if duration, ok := value.(float64); ok {
			c.duration = duration
		}
	case "time-pos":
		if position, ok := value.(float64); ok && !c.scrubbing {
			c.position = position
		}
	case "fullscreen":
		if fullscreen, ok := value.(bool); ok && fullscreen != c.fullscreen {
			c.setFullscreenLocked(fullscreen)
		}
	}
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	position := c.position
	if c.scrubbing {
		position = c.pending
	}

	preview := mo.None[float64]()
	if c.showPreview {
		preview = c.previewTime
	}

	return State{
		Paused:          c.paused,
		Scrubbing:       c.scrubbing,
		Fullscreen:      c.fullscreen,
		Theater:         c.theater,
		Mini:            c.mini,
		ControlsVisible: c.controls,
		Muted:           c.muted,
		Volume:          c.volume,
		Speed:           c.speed,
		Quality:         c.quality,
		Position:        position,
		Duration:        c.duration,
		Preview:         preview,
	}
}

// Close cancels every pending timer.
func (c *Controller) Close() {
	c.previewTimer.Cancel()
	c.settleTimer.Cancel()
	c.hideTimer.Cancel()
}

func (c *Controller) timeAtLocked(fraction float64) float64 {
	if duration, err := c.media.Duration(); err == nil {
		c.duration = duration
	}
	return clamp(fraction, 0, 1) * c.duration
}

func (c *Controller) setPausedLocked(paused bool) {
	if paused == c.paused {
		return
	}
	c.paused = paused

	// paused media keeps its controls
	c.hideTimer.Cancel()
	if paused {
		c.controls = true
	}
}

func (c *Controller) setFullscreenLocked(fullscreen bool) {
	c.fullscreen = fullscreen
	if !fullscreen {
		c.controls = true
		c.hideTimer.Cancel()
	}
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Min(math.Max(v, lo), hi)
}
