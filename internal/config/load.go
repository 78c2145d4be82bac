package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

func GetConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}

	hyprpickDir := filepath.Join(configDir, "hyprpick")
	if err := os.MkdirAll(hyprpickDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return filepath.Join(hyprpickDir, "config.toml"), nil
}

// Load reads the config file, creating it with defaults on first run. Keys
// missing from the file keep their default values.
func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Printf("Config: no config file found at %s, creating with defaults", configPath)
		if err := SaveDefaultConfig(); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("failed to stat config file %s: %w", configPath, err)
	}

	log.Printf("Config: loading configuration from %s", configPath)
	config := DefaultConfig()
	if _, err := toml.DecodeFile(configPath, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}

	log.Printf("Config: configuration loaded successfully")
	return config, nil
}

// Save writes c to the config file, replacing its contents.
func Save(c *Config) error {
	configPath, err := GetConfigPath()
	if err != nil {
		return err
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()

	if _, err := file.WriteString("# Hyprpick Configuration\n# Written by hyprpick configure.\n\n"); err != nil {
		return fmt.Errorf("failed to write config header: %w", err)
	}
	if err := toml.NewEncoder(file).Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

func SaveDefaultConfig() error {
	configPath, err := GetConfigPath()
	if err != nil {
		return err
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()

	configContent := `# Hyprpick Configuration
# This file is automatically generated with defaults.
# Edit values as needed - a running daemon applies changes without restart.

# Picker Configuration
[picker]
  initial_color = "#0f85fa"    # Starting color, in any supported format
  format = "hex"               # Active format ("hex", "rgb", "hsl", "hwb", "cmyk", "lch", "xyz", "name")
  show_alpha = true            # Show the alpha ramp and alpha terms in output

# Clipboard Configuration
[clipboard]
  backend = "wl-copy"          # Clipboard backend ("wl-copy", "system", "none")
  timeout = "3s"               # Timeout for a single clipboard write
  copied_reset = "2s"          # How long a field shows "copied" after a copy

# Notification Configuration
[notifications]
  enabled = true               # Enable notifications
  type = "log"                 # Notification type ("desktop", "log", "none")
`

	if _, err := file.WriteString(configContent); err != nil {
		return fmt.Errorf("failed to write config content: %w", err)
	}

	return nil
}
