package notify

import (
	"bytes"
	"log"
	"os"
	"strings"
	"testing"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })
	return &buf
}

func TestNew(t *testing.T) {
	tests := []struct {
		typ  string
		want Notifier
	}{
		{"desktop", Desktop{}},
		{"log", Log{}},
		{"none", Nop{}},
		{"", Log{}},
		{"carrier-pigeon", Log{}},
	}

	for _, tt := range tests {
		t.Run(tt.typ, func(t *testing.T) {
			if got := New(tt.typ); got != tt.want {
				t.Errorf("New(%q) = %T, want %T", tt.typ, got, tt.want)
			}
		})
	}
}

func TestLogNotifierOutput(t *testing.T) {
	buf := captureLog(t)
	n := Log{}

	tests := []struct {
		name   string
		call   func()
		expect []string
	}{
		{"ColorChanged", func() { n.ColorChanged("hex", "#0f85fa") }, []string{"Hyprpick", "hex", "#0f85fa"}},
		{"Copied", func() { n.Copied("rgb", "rgb(1, 2, 3)") }, []string{"copied", "rgb(1, 2, 3)"}},
		{"Error", func() { n.Error("socket closed") }, []string{"Hyprpick Error", "socket closed"}},
		{"Notify", func() { n.Notify("Title", "Body") }, []string{"Title: Body"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			tt.call()
			out := buf.String()
			for _, want := range tt.expect {
				if !strings.Contains(out, want) {
					t.Errorf("log output %q should contain %q", out, want)
				}
			}
		})
	}
}

func TestNopNotifier(t *testing.T) {
	buf := captureLog(t)
	n := Nop{}

	n.ColorChanged("hex", "#000000")
	n.Copied("hex", "#000000")
	n.Error("boom")
	n.Notify("a", "b")

	if buf.Len() != 0 {
		t.Errorf("Nop should not log, got %q", buf.String())
	}
}

func TestDesktopNotifier(t *testing.T) {
	// Calls notify-send when present; only checks that nothing panics.
	captureLog(t)
	d := Desktop{}
	d.ColorChanged("hex", "#ff0000")
	d.Copied("hex", "#ff0000")
	d.Error("test error message")
	d.Notify("Test Title", "Test Message")
}
