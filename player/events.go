package player

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net"
	"sync"

	"github.com/flixstream/flixstream/log"
)

// ObservedProperties are the mpv properties the controller folds into its state.
var ObservedProperties = []string{
	"pause",
	"mute",
	"speed",
	"volume",
	"time-pos",
	"duration",
	"fullscreen",
	"eof-reached",
}

// EventCallback receives property changes, and other mpv events by name with the raw event as data.
type EventCallback func(property string, data any)

// EventListener streams mpv property changes over a persistent connection.
type EventListener struct {
	socketPath string
	callback   EventCallback

	mu        sync.Mutex
	conn      net.Conn
	listening bool
	done      chan struct{}
}

// NewEventListener creates a listener for the given socket.
func NewEventListener(socketPath string, callback EventCallback) *EventListener {
	return &EventListener{
		socketPath: socketPath,
		callback:   callback,
		done:       make(chan struct{}),
	}
}

// Start subscribes to ObservedProperties and begins the read loop.
// Subscriptions are tied to the connection, so they are sent on the same one that is read.
func (el *EventListener) Start() error {
	el.mu.Lock()
	defer el.mu.Unlock()

	if el.listening {
		return nil
	}

	conn, err := net.Dial("unix", el.socketPath)
	if err != nil {
		return fmt.Errorf("event listener connect: %w", err)
	}

	for i, name := range ObservedProperties {
		if err := writeCommand(conn, []any{"observe_property", i + 1, name}); err != nil {
			conn.Close()
			return fmt.Errorf("observe %s: %w", name, err)
		}
	}

	el.conn = conn
	el.listening = true
	go el.readLoop(conn)

	log.WithField("socket", el.socketPath).Info("mpv event listener started")
	return nil
}

// Stop closes the connection, which ends the read loop.
func (el *EventListener) Stop() {
	el.mu.Lock()
	defer el.mu.Unlock()

	if !el.listening {
		return
	}

	el.conn.Close()
	el.listening = false
}

// Done is closed once the read loop has returned.
func (el *EventListener) Done() <-chan struct{} {
	return el.done
}

func (el *EventListener) readLoop(conn net.Conn) {
	defer close(el.done)
	defer func() {
		el.mu.Lock()
		el.listening = false
		el.mu.Unlock()
	}()

	scanner := bufio.NewScanner(conn)
	scanner.Buffer(make([]byte, 0, 4096), 1<<20)

	for scanner.Scan() {
		el.processEvent(scanner.Bytes())
	}

	if err := scanner.Err(); err != nil {
		log.Debugf("event listener stopped: %s", err)
	}
}

func (el *EventListener) processEvent(line []byte) {
	if el.callback == nil {
		return
	}

	var event ipcResponse
	if err := json.Unmarshal(line, &event); err != nil || event.Event == "" {
		// command replies and garbage
		return
	}

	if event.Event == "property-change" {
		if event.Name != "" {
			el.callback(event.Name, event.Data)
		}
		return
	}

	var raw map[string]any
	_ = json.Unmarshal(line, &raw)
	el.callback(event.Event, raw)
}
