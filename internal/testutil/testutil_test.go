package testutil

import (
	"errors"
	"fmt"
	"testing"
)

func TestTestConfigIsValid(t *testing.T) {
	if err := TestConfig().Validate(); err != nil {
		t.Errorf("TestConfig should validate: %v", err)
	}
}

func TestClipboard(t *testing.T) {
	ctx, cancel := TestContext()
	defer cancel()

	c := &Clipboard{}
	if c.Last() != "" {
		t.Error("new clipboard should be empty")
	}
	_ = c.Write(ctx, "#fff")
	_ = c.Write(ctx, "#000")
	if c.Last() != "#000" || len(c.Writes()) != 2 {
		t.Errorf("writes = %v", c.Writes())
	}

	c.Err = errors.New("boom")
	if err := c.Write(ctx, "red"); err == nil {
		t.Error("Err should be returned")
	}
	if c.Last() != "#000" {
		t.Error("failed writes must not be recorded")
	}
}

func TestNotifierWaitForEvents(t *testing.T) {
	n := &Notifier{}
	go func() {
		n.ColorChanged("hex", "#ff0000")
		n.Copied("rgb", "rgb(255, 0, 0)")
	}()

	got := n.WaitForEvents(t, "copied", 1)
	if got[0].Title != "rgb" || got[0].Body != "rgb(255, 0, 0)" {
		t.Errorf("copied event = %+v", got[0])
	}
}

func TestCaptureOutput(t *testing.T) {
	out := CaptureOutput(t, func() { fmt.Print("hello") })
	if out != "hello" {
		t.Errorf("captured %q", out)
	}
}
