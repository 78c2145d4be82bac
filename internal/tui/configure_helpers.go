package tui

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/leonardotrapani/hyprpick/internal/config"
)

// formatPickerLabel formats the picker menu option showing current settings
func formatPickerLabel(cfg *config.Config) string {
	return fmt.Sprintf("Picker (%s, %s)", cfg.Picker.InitialColor, cfg.Picker.Format)
}

func formatClipboardLabel(cfg *config.Config) string {
	return fmt.Sprintf("Clipboard (%s)", cfg.Clipboard.Backend)
}

func formatNotificationsLabel(cfg *config.Config) string {
	if !cfg.Notifications.Enabled {
		return "Notifications (off)"
	}
	return fmt.Sprintf("Notifications (%s)", cfg.Notifications.Type)
}

// summaryLines renders the settings shown before saving.
func summaryLines(cfg *config.Config) []string {
	alpha := "hidden"
	if cfg.Picker.ShowAlpha {
		alpha = "shown"
	}
	notifications := "disabled"
	if cfg.Notifications.Enabled {
		notifications = cfg.Notifications.Type
	}

	return []string{
		fmt.Sprintf("  %s %s", StyleLabel.Render("Initial color:"), cfg.Picker.InitialColor),
		fmt.Sprintf("  %s %s", StyleLabel.Render("Format:"), cfg.Picker.Format),
		fmt.Sprintf("  %s %s", StyleLabel.Render("Alpha:"), alpha),
		fmt.Sprintf("  %s %s (timeout %s)", StyleLabel.Render("Clipboard:"), cfg.Clipboard.Backend, cfg.Clipboard.Timeout),
		fmt.Sprintf("  %s %s", StyleLabel.Render("Copied indicator:"), cfg.Clipboard.CopiedReset),
		fmt.Sprintf("  %s %s", StyleLabel.Render("Notifications:"), notifications),
	}
}

func showSummary(cfg *config.Config) (bool, error) {
	fmt.Println()
	fmt.Println(StyleHeader.Render("Configuration Summary"))
	for _, line := range summaryLines(cfg) {
		fmt.Println(line)
	}
	fmt.Println()

	var confirmed bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Save this configuration?").
				Affirmative("Save").
				Negative("Cancel").
				Value(&confirmed),
		),
	).WithTheme(getTheme())

	if err := form.Run(); err != nil {
		return false, err
	}

	return confirmed, nil
}
