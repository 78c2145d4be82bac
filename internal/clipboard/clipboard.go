package clipboard

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	sysclip "github.com/atotto/clipboard"

	"github.com/leonardotrapani/hyprpick/internal/deps"
)

// Writer puts text on the system clipboard.
type Writer interface {
	Write(ctx context.Context, text string) error
}

// Config for clipboard writes
type Config struct {
	Backend string        // "wl-copy", "system", "none"
	Timeout time.Duration // Timeout for a single write
}

// DefaultConfig returns sensible defaults for clipboard writes
func DefaultConfig() Config {
	return Config{
		Backend: "wl-copy",
		Timeout: 3 * time.Second,
	}
}

// New returns the writer for cfg.Backend. It does not check that the backend
// is installed; see CheckAvailable.
func New(cfg Config) (Writer, error) {
	switch cfg.Backend {
	case "wl-copy":
		return &wlCopy{timeout: cfg.Timeout}, nil
	case "system":
		return system{}, nil
	case "none":
		return Nop{}, nil
	}
	return nil, fmt.Errorf("unsupported clipboard backend: %s", cfg.Backend)
}

// CheckAvailable reports whether the backend's tools can be used.
func CheckAvailable(backend string) error {
	switch backend {
	case "wl-copy":
		if !deps.CheckWlCopy().Installed {
			return fmt.Errorf("wl-copy not found in PATH (install wl-clipboard)")
		}
	case "system":
		if sysclip.Unsupported {
			return fmt.Errorf("system clipboard not supported on this platform (install xclip, xsel or wl-clipboard)")
		}
	}
	return nil
}

type wlCopy struct {
	timeout time.Duration
}

func (w *wlCopy) Write(ctx context.Context, text string) error {
	ctx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "wl-copy")
	cmd.Stdin = strings.NewReader(text)

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("wl-copy failed: %w", err)
	}
	return nil
}

type system struct{}

func (system) Write(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := sysclip.WriteAll(text); err != nil {
		return fmt.Errorf("system clipboard write failed: %w", err)
	}
	return nil
}

// Nop discards writes. Useful in tests and headless runs.
type Nop struct{}

func (Nop) Write(context.Context, string) error { return nil }
