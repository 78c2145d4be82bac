package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/leonardotrapani/hyprpick/internal/clipboard"
	"github.com/leonardotrapani/hyprpick/internal/colormodel"
	"github.com/leonardotrapani/hyprpick/internal/config"
)

// formatOptions lists every output format for select fields.
func formatOptions() []huh.Option[string] {
	options := make([]huh.Option[string], 0, len(colormodel.Formats))
	for _, f := range colormodel.Formats {
		options = append(options, huh.NewOption(fieldLabels[f], f.String()))
	}
	return options
}

func validateColor(s string) error {
	if _, _, err := colormodel.ParseAny(s); err != nil {
		return err
	}
	return nil
}

func validateDuration(s string) error {
	d, err := time.ParseDuration(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("use a duration like 2s or 500ms")
	}
	if d <= 0 {
		return fmt.Errorf("duration must be positive")
	}
	return nil
}

func editPicker(cfg *config.Config) error {
	initial := cfg.Picker.InitialColor
	format := cfg.Picker.Format
	showAlpha := cfg.Picker.ShowAlpha

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Initial color").
				Description("Any supported syntax: #0f85fa, rgb(15, 133, 250), teal ...").
				Value(&initial).
				Validate(validateColor),
			huh.NewSelect[string]().
				Title("Active format").
				Description("Format used for the picked value and change notifications").
				Options(formatOptions()...).
				Value(&format),
			huh.NewConfirm().
				Title("Show alpha?").
				Description("Show the alpha ramp and alpha terms in output").
				Value(&showAlpha),
		),
	).WithTheme(getTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.Picker.InitialColor = strings.TrimSpace(initial)
	cfg.Picker.Format = format
	cfg.Picker.ShowAlpha = showAlpha
	return nil
}

func editClipboard(cfg *config.Config) (string, error) {
	backend := cfg.Clipboard.Backend
	timeout := cfg.Clipboard.Timeout.String()
	reset := cfg.Clipboard.CopiedReset.String()

	backendOptions := []huh.Option[string]{
		huh.NewOption("wl-copy (Wayland)", "wl-copy"),
		huh.NewOption("System clipboard (xclip, xsel, wl-clipboard)", "system"),
		huh.NewOption("None (disable copying)", "none"),
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Clipboard backend").
				Options(backendOptions...).
				Value(&backend),
			huh.NewInput().
				Title("Write timeout").
				Value(&timeout).
				Validate(validateDuration),
			huh.NewInput().
				Title("Copied indicator duration").
				Value(&reset).
				Validate(validateDuration),
		),
	).WithTheme(getTheme())

	if err := form.Run(); err != nil {
		return "", err
	}

	cfg.Clipboard.Backend = backend
	cfg.Clipboard.Timeout, _ = time.ParseDuration(strings.TrimSpace(timeout))
	cfg.Clipboard.CopiedReset, _ = time.ParseDuration(strings.TrimSpace(reset))

	if err := clipboard.CheckAvailable(backend); err != nil {
		return StyleWarning.Render("Warning: " + err.Error()), nil
	}
	return "", nil
}
