package config

import "time"

type Config struct {
	Picker        PickerConfig        `toml:"picker"`
	Clipboard     ClipboardConfig     `toml:"clipboard"`
	Notifications NotificationsConfig `toml:"notifications"`
}

type PickerConfig struct {
	InitialColor string `toml:"initial_color"`
	Format       string `toml:"format"` // active format for change notifications
	ShowAlpha    bool   `toml:"show_alpha"`
}

type ClipboardConfig struct {
	Backend     string        `toml:"backend"` // "wl-copy", "system", "none"
	Timeout     time.Duration `toml:"timeout"`
	CopiedReset time.Duration `toml:"copied_reset"`
}

type NotificationsConfig struct {
	Enabled bool   `toml:"enabled"`
	Type    string `toml:"type"` // "desktop", "log", "none"
}
