package config

import (
	"fmt"

	"github.com/leonardotrapani/hyprpick/internal/clipboard"
	"github.com/leonardotrapani/hyprpick/internal/colormodel"
	"github.com/leonardotrapani/hyprpick/internal/editor"
)

func (c *Config) ToClipboardConfig() clipboard.Config {
	return clipboard.Config{
		Backend: c.Clipboard.Backend,
		Timeout: c.Clipboard.Timeout,
	}
}

func (c *Config) ToEditorOptions() editor.Options {
	return editor.Options{
		ShowAlpha:   c.Picker.ShowAlpha,
		CopiedReset: c.Clipboard.CopiedReset,
	}
}

// InitialColor parses picker.initial_color in whichever format it is written.
func (c *Config) InitialColor() (colormodel.Color, error) {
	col, _, err := colormodel.ParseAny(c.Picker.InitialColor)
	if err != nil {
		return colormodel.Color{}, fmt.Errorf("failed to parse initial color: %w", err)
	}
	return col, nil
}

// ActiveFormat returns picker.format, falling back to hex when invalid.
func (c *Config) ActiveFormat() colormodel.Format {
	f, err := colormodel.ParseFormat(c.Picker.Format)
	if err != nil {
		return colormodel.FormatHex
	}
	return f
}

// NotifierType resolves the effective notifier, honouring notifications.enabled.
func (c *Config) NotifierType() string {
	if !c.Notifications.Enabled {
		return "none"
	}
	return c.Notifications.Type
}
