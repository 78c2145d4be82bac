package config

import (
	"fmt"

	"github.com/leonardotrapani/hyprpick/internal/colormodel"
)

func (c *Config) Validate() error {
	if c.Picker.InitialColor == "" {
		return fmt.Errorf("invalid picker.initial_color: empty")
	}
	if _, _, err := colormodel.ParseAny(c.Picker.InitialColor); err != nil {
		return fmt.Errorf("invalid picker.initial_color: %w", err)
	}
	if _, err := colormodel.ParseFormat(c.Picker.Format); err != nil {
		return fmt.Errorf("invalid picker.format: %w", err)
	}

	validBackends := map[string]bool{"wl-copy": true, "system": true, "none": true}
	if !validBackends[c.Clipboard.Backend] {
		return fmt.Errorf("invalid clipboard.backend: %s (must be wl-copy, system, or none)", c.Clipboard.Backend)
	}
	if c.Clipboard.Timeout <= 0 {
		return fmt.Errorf("invalid clipboard.timeout: %v", c.Clipboard.Timeout)
	}
	if c.Clipboard.CopiedReset <= 0 {
		return fmt.Errorf("invalid clipboard.copied_reset: %v", c.Clipboard.CopiedReset)
	}

	validTypes := map[string]bool{"desktop": true, "log": true, "none": true}
	if !validTypes[c.Notifications.Type] {
		return fmt.Errorf("invalid notifications.type: %s (must be desktop, log, or none)", c.Notifications.Type)
	}

	return nil
}
