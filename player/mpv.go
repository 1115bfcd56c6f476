package player

import (
	"crypto/rand"
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/flixstream/flixstream/constant"
	"github.com/flixstream/flixstream/log"
	"github.com/flixstream/flixstream/where"
)

const (
	socketWaitRetries = 10
	socketWaitDelay   = 300 * time.Millisecond

	// miniScale is the window scale used by the mini player
	miniScale = 0.4
)

// ErrNotStarted is returned by calls made before Start.
var ErrNotStarted = errors.New("player is not started")

// MPV drives an mpv process through its JSON-IPC socket.
type MPV struct {
	binary     string
	start      float64
	socketPath string
	cmd        *exec.Cmd
	exited     chan struct{} // closed when mpv process exits
	mu         sync.Mutex    // protects socket writes
}

// NewMPV creates an mpv player running binary. Nothing is started until Start.
func NewMPV(binary string) *MPV {
	if binary == "" {
		binary = "mpv"
	}

	return &MPV{
		binary: binary,
		exited: make(chan struct{}),
	}
}

// Start launches mpv playing rawURL. If mpv is already running the file is loaded into it.
func (m *MPV) Start(rawURL, title string) error {
	safeURL, err := sanitizeMediaTarget(rawURL)
	if err != nil {
		return fmt.Errorf("invalid media target: %w", err)
	}

	if m.IsRunning() {
		if err := m.Load(safeURL); err != nil {
			return err
		}
		return m.set("force-media-title", sanitizeTitle(title))
	}

	if m.socketPath == "" {
		randomBytes := make([]byte, 4)
		if _, err := rand.Read(randomBytes); err != nil {
			return fmt.Errorf("generate socket name: %w", err)
		}
		m.socketPath = filepath.Join(where.Temp(), fmt.Sprintf("mpv-%x.sock", randomBytes))
	}

	m.cmd = exec.Command(m.binary, m.args(safeURL, sanitizeTitle(title))...)
	m.cmd.SysProcAttr = sysProcAttr()
	m.cmd.Stdout = nil
	m.cmd.Stderr = nil
	m.cmd.Stdin = nil

	if err := m.cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", m.binary, err)
	}

	m.exited = make(chan struct{})
	go func(cmd *exec.Cmd, exited chan struct{}) {
		_ = cmd.Wait()
		close(exited)
	}(m.cmd, m.exited)

	if err := m.waitForSocket(); err != nil {
		select {
		case <-m.exited:
		default:
			log.Warnf("killing mpv: socket never became ready")
			_ = killProcess(m.cmd)
		}
		return fmt.Errorf("mpv socket not ready: %w", err)
	}

	log.WithFields(map[string]any{"socket": m.socketPath, "binary": m.binary}).Info("mpv started")
	return nil
}

// args builds the command line. Only the socket, title and target are passed so the user's mpv.conf applies.
func (m *MPV) args(target, title string) []string {
	args := []string{
		"--no-terminal",
		"--really-quiet",
		fmt.Sprintf("--input-ipc-server=%s", m.socketPath),
		fmt.Sprintf("--force-media-title=%s", title),
		fmt.Sprintf("--title=%s", title),
		fmt.Sprintf("--user-agent=%s", constant.UserAgent),
		"--force-window=yes",
		"--idle=yes",
	}

	if m.start > 0 {
		args = append(args, fmt.Sprintf("--start=%g", m.start))
	}

	return append(args, "--", target)
}

// ResumeAt makes the next Start begin at seconds instead of the beginning.
func (m *MPV) ResumeAt(seconds float64) {
	m.start = max(seconds, 0)
}

// Wait returns a channel that is closed when the mpv process exits.
func (m *MPV) Wait() <-chan struct{} {
	return m.exited
}

// Socket returns the IPC socket path.
func (m *MPV) Socket() string {
	return m.socketPath
}

func (m *MPV) waitForSocket() error {
	for i := 0; i < socketWaitRetries; i++ {
		time.Sleep(socketWaitDelay)

		select {
		case <-m.exited:
			return fmt.Errorf("mpv exited before socket was ready")
		default:
		}

		conn, err := net.Dial("unix", m.socketPath)
		if err == nil {
			conn.Close()
			return nil
		}
	}
	return fmt.Errorf("socket %s not ready after %d attempts", m.socketPath, socketWaitRetries)
}

// IsRunning reports whether mpv is responding to IPC commands.
func (m *MPV) IsRunning() bool {
	if m.socketPath == "" || m.cmd == nil {
		return false
	}

	select {
	case <-m.exited:
		return false
	default:
	}

	_, err := m.sendCommand([]any{"get_property", "pid"})
	return err == nil
}

// CurrentTime returns the playback position in seconds.
// Nothing loaded yet counts as zero.
func (m *MPV) CurrentTime() (float64, error) {
	position, err := m.getFloatProperty("time-pos")
	if isUnavailable(err) {
		return 0, nil
	}
	return position, err
}

// Duration returns the length of the loaded media in seconds.
func (m *MPV) Duration() (float64, error) {
	duration, err := m.getFloatProperty("duration")
	if isUnavailable(err) {
		return 0, nil
	}
	return duration, err
}

// Paused reports whether playback is paused.
func (m *MPV) Paused() (bool, error) {
	data, err := m.sendCommand([]any{"get_property", "pause"})
	if err != nil {
		return false, err
	}

	paused, _ := data.(bool)
	return paused, nil
}

// Volume returns the volume in [0, 1]. mpv reports percent.
func (m *MPV) Volume() (float64, error) {
	volume, err := m.getFloatProperty("volume")
	if err != nil {
		return 0, err
	}
	return volume / 100, nil
}

func (m *MPV) Play() error {
	return m.set("pause", false)
}

func (m *MPV) Pause() error {
	return m.set("pause", true)
}

// Seek moves playback to an absolute position in seconds.
func (m *MPV) Seek(seconds float64) error {
	_, err := m.sendCommand([]any{"seek", seconds, "absolute"})
	return err
}

// Load replaces the current file, keeping the mpv window.
func (m *MPV) Load(rawURL string) error {
	target, err := sanitizeMediaTarget(rawURL)
	if err != nil {
		return fmt.Errorf("invalid media target: %w", err)
	}

	_, err = m.sendCommand([]any{"loadfile", target, "replace"})
	return err
}

func (m *MPV) SetSpeed(speed float64) error {
	return m.set("speed", speed)
}

func (m *MPV) SetMuted(muted bool) error {
	return m.set("mute", muted)
}

func (m *MPV) SetFullscreen(fullscreen bool) error {
	return m.set("fullscreen", fullscreen)
}

// SetMini keeps the window on top at a reduced scale.
func (m *MPV) SetMini(mini bool) error {
	if err := m.set("ontop", mini); err != nil {
		return err
	}

	scale := 1.0
	if mini {
		scale = miniScale
	}
	return m.set("window-scale", scale)
}

// Close quits mpv and removes the socket.
func (m *MPV) Close() error {
	if m.socketPath == "" || m.cmd == nil {
		return nil
	}

	_, _ = m.sendCommand([]any{"quit"})

	select {
	case <-m.exited:
	case <-time.After(3 * time.Second):
		_ = killProcess(m.cmd)
	}

	_ = os.Remove(m.socketPath)
	return nil
}

func (m *MPV) set(property string, value any) error {
	_, err := m.sendCommand([]any{"set_property", property, value})
	return err
}

func (m *MPV) getFloatProperty(name string) (float64, error) {
	data, err := m.sendCommand([]any{"get_property", name})
	if err != nil {
		return 0, err
	}

	if data == nil {
		return 0, fmt.Errorf("property %s: nil response", name)
	}

	val, ok := data.(float64)
	if !ok {
		return 0, fmt.Errorf("property %s: expected float64, got %T", name, data)
	}

	return val, nil
}

// sanitizeMediaTarget rejects anything mpv could read as a flag or a non-http URL.
func sanitizeMediaTarget(link string) (string, error) {
	l := strings.TrimSpace(link)
	if l == "" {
		return "", fmt.Errorf("empty URL")
	}

	if strings.ContainsAny(l, "\x00\n\r") {
		return "", fmt.Errorf("invalid control characters in URL")
	}

	if strings.HasPrefix(l, "-") {
		return "", fmt.Errorf("url must not start with '-' (looks like a flag)")
	}

	if strings.Contains(l, "://") {
		u, err := url.Parse(l)
		if err != nil {
			return "", fmt.Errorf("invalid URL: %w", err)
		}
		switch strings.ToLower(u.Scheme) {
		case "http", "https":
			return l, nil
		default:
			return "", fmt.Errorf("unsupported URL scheme: %s", u.Scheme)
		}
	}

	return filepath.Clean(l), nil
}

func sanitizeTitle(title string) string {
	t := strings.NewReplacer("\n", " ", "\r", " ", "\t", " ", "\x00", "").Replace(title)
	return strings.TrimSpace(t)
}
