package player

import (
	"bufio"
	"encoding/json"
	"net"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

// fakeMPV answers JSON-IPC commands on a unix socket like mpv does.
type fakeMPV struct {
	listener net.Listener
	path     string

	mu         sync.Mutex
	commands   [][]any
	properties map[string]any
	conns      []net.Conn
}

func newFakeMPV(t *testing.T) *fakeMPV {
	path := filepath.Join(t.TempDir(), "mpv.sock")
	listener, err := net.Listen("unix", path)
	if err != nil {
		t.Fatal(err)
	}

	f := &fakeMPV{
		listener: listener,
		path:     path,
		properties: map[string]any{
			"pause":    true,
			"volume":   80.0,
			"duration": 120.0,
			"pid":      1.0,
		},
	}

	go f.serve()
	t.Cleanup(func() {
		listener.Close()
		f.mu.Lock()
		for _, conn := range f.conns {
			conn.Close()
		}
		f.mu.Unlock()
	})
	return f
}

func (f *fakeMPV) serve() {
	for {
		conn, err := f.listener.Accept()
		if err != nil {
			return
		}

		f.mu.Lock()
		f.conns = append(f.conns, conn)
		f.mu.Unlock()

		go f.handle(conn)
	}
}

func (f *fakeMPV) handle(conn net.Conn) {
	scanner := bufio.NewScanner(conn)
	for scanner.Scan() {
		var cmd ipcCommand
		if err := json.Unmarshal(scanner.Bytes(), &cmd); err != nil {
			return
		}

		f.mu.Lock()
		f.commands = append(f.commands, cmd.Command)
		reply := map[string]any{"error": "success"}

		switch cmd.Command[0] {
		case "get_property":
			value, ok := f.properties[cmd.Command[1].(string)]
			if ok {
				reply["data"] = value
			} else {
				reply["error"] = "property unavailable"
			}
		case "set_property":
			f.properties[cmd.Command[1].(string)] = cmd.Command[2]
		case "seek":
			f.properties["time-pos"] = cmd.Command[1]
		}
		f.mu.Unlock()

		// an unrelated event before the reply, as mpv may interleave them
		_ = json.NewEncoder(conn).Encode(map[string]any{"event": "playback-restart"})
		_ = json.NewEncoder(conn).Encode(reply)
	}
}

func (f *fakeMPV) push(event map[string]any) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, conn := range f.conns {
		_ = json.NewEncoder(conn).Encode(event)
	}
}

func (f *fakeMPV) sent() [][]any {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([][]any{}, f.commands...)
}

func attached(f *fakeMPV) *MPV {
	m := NewMPV("")
	m.socketPath = f.path
	return m
}

func TestMPV(t *testing.T) {
	Convey("Given mpv listening on a socket", t, func() {
		f := newFakeMPV(t)
		m := attached(f)

		Convey("Media properties are read over IPC", func() {
			paused, err := m.Paused()
			So(err, ShouldBeNil)
			So(paused, ShouldBeTrue)

			volume, err := m.Volume()
			So(err, ShouldBeNil)
			So(volume, ShouldEqual, 0.8)

			duration, err := m.Duration()
			So(err, ShouldBeNil)
			So(duration, ShouldEqual, 120)
		})

		Convey("An unloaded playhead reads as zero", func() {
			position, err := m.CurrentTime()
			So(err, ShouldBeNil)
			So(position, ShouldEqual, 0)
		})

		Convey("Controls are sent as mpv commands", func() {
			So(m.Play(), ShouldBeNil)
			So(m.Seek(12.5), ShouldBeNil)
			So(m.Load("https://cdn.example/1080.mp4"), ShouldBeNil)
			So(m.SetSpeed(1.5), ShouldBeNil)
			So(m.SetMuted(true), ShouldBeNil)
			So(m.SetFullscreen(true), ShouldBeNil)

			So(f.sent(), ShouldResemble, [][]any{
				{"set_property", "pause", false},
				{"seek", 12.5, "absolute"},
				{"loadfile", "https://cdn.example/1080.mp4", "replace"},
				{"set_property", "speed", 1.5},
				{"set_property", "mute", true},
				{"set_property", "fullscreen", true},
			})

			position, err := m.CurrentTime()
			So(err, ShouldBeNil)
			So(position, ShouldEqual, 12.5)
		})

		Convey("The mini player keeps the window on top and shrinks it", func() {
			So(m.SetMini(true), ShouldBeNil)
			So(f.sent(), ShouldResemble, [][]any{
				{"set_property", "ontop", true},
				{"set_property", "window-scale", miniScale},
			})
		})

		Convey("Loading a flag-like target is refused", func() {
			So(m.Load("--script=evil.lua"), ShouldNotBeNil)
			So(f.sent(), ShouldBeEmpty)
		})

		Convey("Events reach the controller", func() {
			c := NewController(m, WithClock(&manualClock{}))

			events := make(chan string, 16)
			listener := NewEventListener(f.path, func(property string, data any) {
				c.Observe(property, data)
				events <- property
			})
			So(listener.Start(), ShouldBeNil)
			defer listener.Stop()

			So(waitFor(f, len(ObservedProperties)), ShouldBeTrue)
			So(f.sent()[0], ShouldResemble, []any{"observe_property", 1.0, "pause"})

			f.push(map[string]any{"event": "property-change", "name": "time-pos", "data": 33.0})
			f.push(map[string]any{"event": "property-change", "name": "pause", "data": false})

			So(awaitEvent(events, "pause"), ShouldBeTrue)

			state := c.Snapshot()
			So(state.Position, ShouldEqual, 33)
			So(state.Paused, ShouldBeFalse)
		})
	})

	Convey("Without a started process", t, func() {
		m := NewMPV("")

		Convey("Calls fail with ErrNotStarted", func() {
			_, err := m.Paused()
			So(err, ShouldEqual, ErrNotStarted)
			So(m.IsRunning(), ShouldBeFalse)
			So(m.Close(), ShouldBeNil)
		})
	})
}

func waitFor(f *fakeMPV, commands int) bool {
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if len(f.sent()) >= commands {
			return true
		}
		time.Sleep(10 * time.Millisecond)
	}
	return false
}

func awaitEvent(events <-chan string, name string) bool {
	timeout := time.After(2 * time.Second)
	for {
		select {
		case got := <-events:
			if got == name {
				return true
			}
		case <-timeout:
			return false
		}
	}
}

func TestSanitize(t *testing.T) {
	Convey("Media targets", t, func() {
		Convey("http and https URLs pass", func() {
			target, err := sanitizeMediaTarget("  https://cdn.example/a.mp4 ")
			So(err, ShouldBeNil)
			So(target, ShouldEqual, "https://cdn.example/a.mp4")
		})

		Convey("Other schemes, flags and control characters are refused", func() {
			for _, bad := range []string{"", "file:///etc/passwd", "-vo=null", "https://a\n--b"} {
				_, err := sanitizeMediaTarget(bad)
				So(err, ShouldNotBeNil)
			}
		})

		Convey("Local paths are cleaned", func() {
			target, err := sanitizeMediaTarget("videos/../clip.mp4")
			So(err, ShouldBeNil)
			So(target, ShouldEqual, "clip.mp4")
		})
	})

	Convey("Titles lose control characters", t, func() {
		So(sanitizeTitle(" a\nb\tc\x00 "), ShouldEqual, "a b c")
	})

	Convey("The command line ends the options before the target", t, func() {
		m := NewMPV("")
		m.socketPath = filepath.Join(os.TempDir(), "x.sock")

		args := m.args("https://cdn.example/a.mp4", "Title")
		So(args[len(args)-2], ShouldEqual, "--")
		So(args[len(args)-1], ShouldEqual, "https://cdn.example/a.mp4")
		So(args, ShouldContain, "--input-ipc-server="+m.socketPath)
		So(args, ShouldContain, "--force-media-title=Title")
		So(strings.Join(args, " "), ShouldNotContainSubstring, "--start")

		Convey("A resumed video starts where it was left", func() {
			m.ResumeAt(42.5)
			So(m.args("https://cdn.example/a.mp4", "Title"), ShouldContain, "--start=42.5")
		})
	})
}
