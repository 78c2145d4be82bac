package tui

import (
	"strings"
	"testing"

	"github.com/leonardotrapani/hyprpick/internal/colormodel"
	"github.com/leonardotrapani/hyprpick/internal/config"
)

func TestMenuLabels(t *testing.T) {
	cfg := config.DefaultConfig()

	if got := formatPickerLabel(cfg); got != "Picker (#0f85fa, hex)" {
		t.Errorf("picker label = %q", got)
	}
	if got := formatClipboardLabel(cfg); got != "Clipboard (wl-copy)" {
		t.Errorf("clipboard label = %q", got)
	}
	if got := formatNotificationsLabel(cfg); got != "Notifications (log)" {
		t.Errorf("notifications label = %q", got)
	}

	cfg.Notifications.Enabled = false
	if got := formatNotificationsLabel(cfg); got != "Notifications (off)" {
		t.Errorf("notifications label = %q", got)
	}
}

func TestSummaryLines(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Picker.ShowAlpha = false
	cfg.Notifications.Enabled = false

	summary := strings.Join(summaryLines(cfg), "\n")
	for _, want := range []string{"#0f85fa", "hidden", "wl-copy", "timeout 3s", "disabled"} {
		if !strings.Contains(summary, want) {
			t.Errorf("summary missing %q:\n%s", want, summary)
		}
	}
}

func TestFormValidators(t *testing.T) {
	tests := []struct {
		name    string
		check   func(string) error
		input   string
		wantErr bool
	}{
		{"hex color", validateColor, "#0f85fa", false},
		{"named color", validateColor, "rebeccapurple", false},
		{"bad color", validateColor, "rgb(300, 0, 0)", true},
		{"duration", validateDuration, "500ms", false},
		{"zero duration", validateDuration, "0s", true},
		{"not a duration", validateDuration, "soon", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.check(tt.input); (err != nil) != tt.wantErr {
				t.Errorf("error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestFormatOptions(t *testing.T) {
	if got := len(formatOptions()); got != len(colormodel.Formats) {
		t.Errorf("got %d options, want %d", got, len(colormodel.Formats))
	}
}

func TestRunRequiresConfig(t *testing.T) {
	if _, err := Run(nil); err == nil {
		t.Error("Run(nil) should fail")
	}
}
