package config

import "time"

// DefaultConfig returns the configuration written on first run.
func DefaultConfig() *Config {
	return &Config{
		Picker: PickerConfig{
			InitialColor: "#0f85fa",
			Format:       "hex",
			ShowAlpha:    true,
		},
		Clipboard: ClipboardConfig{
			Backend:     "wl-copy",
			Timeout:     3 * time.Second,
			CopiedReset: 2 * time.Second,
		},
		Notifications: NotificationsConfig{
			Enabled: true,
			Type:    "log",
		},
	}
}
