package player

import "sync"

// fakeMedia records the calls the controller makes.
type fakeMedia struct {
	mu sync.Mutex

	position float64
	duration float64
	paused   bool
	muted    bool
	volume   float64
	speed    float64
	url      string

	fullscreen bool
	mini       bool

	seeks []float64
	loads []string
	plays int
}

func newFakeMedia(duration float64) *fakeMedia {
	return &fakeMedia{duration: duration, paused: true, volume: 1, speed: 1}
}

func (m *fakeMedia) CurrentTime() (float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.position, nil
}

func (m *fakeMedia) Duration() (float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.duration, nil
}

func (m *fakeMedia) Paused() (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.paused, nil
}

func (m *fakeMedia) Volume() (float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.volume, nil
}

func (m *fakeMedia) Play() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.paused = false
	m.plays++
	return nil
}

func (m *fakeMedia) Pause() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.paused = true
	return nil
}

func (m *fakeMedia) Seek(seconds float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.position = seconds
	m.seeks = append(m.seeks, seconds)
	return nil
}

// Load behaves like a browser video element: the new source starts at zero, paused.
func (m *fakeMedia) Load(url string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.url = url
	m.position = 0
	m.paused = true
	m.loads = append(m.loads, url)
	return nil
}

func (m *fakeMedia) SetSpeed(speed float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.speed = speed
	return nil
}

func (m *fakeMedia) SetMuted(muted bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.muted = muted
	return nil
}

func (m *fakeMedia) SetFullscreen(fullscreen bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fullscreen = fullscreen
	return nil
}

func (m *fakeMedia) SetMini(mini bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mini = mini
	return nil
}
