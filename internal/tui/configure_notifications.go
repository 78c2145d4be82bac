package tui

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/leonardotrapani/hyprpick/internal/config"
)

// editNotifications handles the notifications section edit
func editNotifications(cfg *config.Config) error {
	enabled := cfg.Notifications.Enabled

	desc := "Notify when the daemon changes or copies a color"
	if cfg.Notifications.Enabled {
		desc = fmt.Sprintf("Currently: enabled (%s). %s", cfg.Notifications.Type, desc)
	} else {
		desc = "Currently: disabled. " + desc
	}

	enableForm := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Enable notifications?").
				Description(desc).
				Value(&enabled),
		),
	).WithTheme(getTheme())

	if err := enableForm.Run(); err != nil {
		return err
	}

	cfg.Notifications.Enabled = enabled

	if !enabled {
		return nil
	}

	notifType := cfg.Notifications.Type
	if notifType == "" {
		notifType = "desktop"
	}

	typeOptions := []huh.Option[string]{
		huh.NewOption("Desktop notifications (notify-send)", "desktop"),
		huh.NewOption("Log to console only", "log"),
		huh.NewOption("None (silent)", "none"),
	}

	typeForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Notification Type").
				Description("How should notifications be displayed?").
				Options(typeOptions...).
				Value(&notifType),
		),
	).WithTheme(getTheme())

	if err := typeForm.Run(); err != nil {
		return err
	}

	cfg.Notifications.Type = notifType
	return nil
}
