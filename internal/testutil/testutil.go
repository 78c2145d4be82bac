package testutil

import (
	"context"
	"io"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/leonardotrapani/hyprpick/internal/config"
)

// TestConfig returns a valid configuration for testing
func TestConfig() *config.Config {
	return &config.Config{
		Picker: config.PickerConfig{
			InitialColor: "#0f85fa",
			Format:       "hex",
			ShowAlpha:    false,
		},
		Clipboard: config.ClipboardConfig{
			Backend:     "none",
			Timeout:     time.Second,
			CopiedReset: 50 * time.Millisecond,
		},
		Notifications: config.NotificationsConfig{
			Enabled: true,
			Type:    "log",
		},
	}
}

// Clipboard records writes instead of touching the system clipboard.
type Clipboard struct {
	Err error

	mu     sync.Mutex
	writes []string
}

func (c *Clipboard) Write(_ context.Context, text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Err != nil {
		return c.Err
	}
	c.writes = append(c.writes, text)
	return nil
}

// Last returns the most recent successful write, or "".
func (c *Clipboard) Last() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.writes) == 0 {
		return ""
	}
	return c.writes[len(c.writes)-1]
}

func (c *Clipboard) Writes() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.writes...)
}

// Event is one call recorded by Notifier.
type Event struct {
	Kind  string // "changed", "copied", "error", "notify"
	Title string
	Body  string
}

// Notifier records notifications. Daemons notify from goroutines, so read
// events through Events or WaitForEvents.
type Notifier struct {
	mu     sync.Mutex
	events []Event
}

func (n *Notifier) record(e Event) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, e)
}

func (n *Notifier) ColorChanged(format, value string) {
	n.record(Event{Kind: "changed", Title: format, Body: value})
}

func (n *Notifier) Copied(format, value string) {
	n.record(Event{Kind: "copied", Title: format, Body: value})
}

func (n *Notifier) Error(msg string) {
	n.record(Event{Kind: "error", Body: msg})
}

func (n *Notifier) Notify(title, message string) {
	n.record(Event{Kind: "notify", Title: title, Body: message})
}

func (n *Notifier) Events() []Event {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]Event(nil), n.events...)
}

// WaitForEvents waits until at least count events of kind were recorded and
// returns them.
func (n *Notifier) WaitForEvents(t *testing.T, kind string, count int) []Event {
	t.Helper()

	var matched []Event
	WaitForCondition(t, func() bool {
		matched = matched[:0]
		for _, e := range n.Events() {
			if e.Kind == kind {
				matched = append(matched, e)
			}
		}
		return len(matched) >= count
	}, 2*time.Second)
	return matched
}

func TestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 5*time.Second)
}

func WaitForCondition(t *testing.T, condition func() bool, timeout time.Duration) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	for {
		select {
		case <-ctx.Done():
			t.Fatalf("Condition not met within %v", timeout)
		default:
			if condition() {
				return
			}
			time.Sleep(10 * time.Millisecond)
		}
	}
}

func CaptureOutput(t *testing.T, fn func()) string {
	t.Helper()

	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	fn()

	w.Close()
	os.Stdout = old

	out, _ := io.ReadAll(r)
	return string(out)
}
