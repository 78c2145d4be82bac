package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/leonardotrapani/hyprpick/internal/bus"
	"github.com/leonardotrapani/hyprpick/internal/clipboard"
	"github.com/leonardotrapani/hyprpick/internal/colormodel"
	"github.com/leonardotrapani/hyprpick/internal/config"
	"github.com/leonardotrapani/hyprpick/internal/daemon"
	"github.com/leonardotrapani/hyprpick/internal/deps"
	"github.com/leonardotrapani/hyprpick/internal/notify"
	"github.com/leonardotrapani/hyprpick/internal/tui"
	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hyprpick",
	Short: "Color picker and converter for Wayland/Hyprland",
}

func init() {
	rootCmd.AddCommand(
		convertCmd(),
		pickCmd(),
		serveCmd(),
		setCmd(),
		getCmd(),
		alphaCmd(),
		copyCmd(),
		statusCmd(),
		versionCmd(),
		stopCmd(),
		configureCmd(),
		depsCmd(),
	)
}

func convertCmd() *cobra.Command {
	var format string
	var alpha bool

	cmd := &cobra.Command{
		Use:   "convert <color>",
		Short: "Convert a color to one or every format",
		Long: `Convert a color written in any supported syntax:
hex, rgb(), hsl(), hwb(), device-cmyk(), lch(), color(xyz ...) or a CSS name.
Without --format every format is printed.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd.OutOrStdout(), strings.Join(args, " "), format, alpha)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: hex, rgb, hsl, hwb, cmyk, lch, xyz, name")
	cmd.Flags().BoolVarP(&alpha, "alpha", "a", false, "include the alpha term")

	return cmd
}

func runConvert(w io.Writer, text, format string, alpha bool) error {
	c, _, err := colormodel.ParseAny(text)
	if err != nil {
		return err
	}
	opts := colormodel.Options{ShowAlpha: alpha}

	if format != "" {
		f, err := colormodel.ParseFormat(format)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, colormodel.FormatColor(c, f, opts))
		return nil
	}

	record := colormodel.Describe(c, opts)
	for _, f := range colormodel.Formats {
		value := record.Get(f)
		if f == colormodel.FormatName {
			if match := colormodel.NearestName(c); !match.Exact {
				value = "~" + value
			}
		}
		fmt.Fprintf(w, "%-5s %s\n", f, value)
	}
	return nil
}

func pickCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Open the terminal color picker and print the picked color",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPick(cmd.Context(), cmd.OutOrStdout(), format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "output format (defaults to picker.format)")

	return cmd
}

func runPick(ctx context.Context, w io.Writer, format string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	initial, err := cfg.InitialColor()
	if err != nil {
		return err
	}
	active := cfg.ActiveFormat()
	if format != "" {
		if active, err = colormodel.ParseFormat(format); err != nil {
			return err
		}
	}

	clip, err := clipboard.New(cfg.ToClipboardConfig())
	if err != nil {
		return fmt.Errorf("failed to create clipboard: %w", err)
	}

	result, err := tui.RunPicker(ctx, tui.PickOptions{
		Initial:   initial,
		Format:    active,
		ShowAlpha: cfg.Picker.ShowAlpha,
		Editor:    cfg.ToEditorOptions(),
		Clipboard: clip,
	})
	if err != nil {
		return fmt.Errorf("picker error: %w", err)
	}
	if result.Cancelled {
		return nil
	}

	fmt.Fprintln(w, result.Value)
	return nil
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the daemon",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(ctx context.Context) error {
	manager, err := config.NewManager()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg := manager.GetConfig()

	clip, err := clipboard.New(cfg.ToClipboardConfig())
	if err != nil {
		return fmt.Errorf("failed to create clipboard: %w", err)
	}
	if err := clipboard.CheckAvailable(cfg.Clipboard.Backend); err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}

	if cfg.NotifierType() == "desktop" && !deps.CheckNotifySend().Installed {
		fmt.Fprintln(os.Stderr, "warning: notify-send not found, desktop notifications will fail")
	}

	d, err := daemon.New(cfg, notify.New(cfg.NotifierType()), clip)
	if err != nil {
		return fmt.Errorf("failed to create daemon: %w", err)
	}
	d.Watch(manager)

	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	if err := manager.StartWatching(watchCtx); err != nil {
		return fmt.Errorf("failed to watch config: %w", err)
	}
	defer manager.Stop()

	return d.Run()
}

// send runs one bus command and prints the response body.
func send(w io.Writer, line, what string) error {
	resp, err := bus.SendCommand(line)
	if err != nil {
		return fmt.Errorf("failed to %s: %w", what, err)
	}
	_, body, err := bus.ParseResponse(resp)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, body)
	return nil
}

func setCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <color>",
		Short: "Set the daemon's color",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return send(cmd.OutOrStdout(), "set "+strings.Join(args, " "), "set color")
		},
	}
}

func getCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get [format]",
		Short: "Print the daemon's color",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			line := "get"
			if len(args) == 1 {
				line += " " + args[0]
			}
			return send(cmd.OutOrStdout(), line, "get color")
		},
	}
}

func alphaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "alpha <0-100>",
		Short: "Set the daemon's alpha",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return send(cmd.OutOrStdout(), "alpha "+args[0], "set alpha")
		},
	}
}

func copyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "copy [format]",
		Short: "Copy the daemon's color to the clipboard",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			line := "copy"
			if len(args) == 1 {
				line += " " + args[0]
			}
			return send(cmd.OutOrStdout(), line, "copy color")
		},
	}
}

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Get daemon status",
		RunE: func(cmd *cobra.Command, args []string) error {
			return send(cmd.OutOrStdout(), "status", "get status")
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Get protocol version",
		RunE: func(cmd *cobra.Command, args []string) error {
			return send(cmd.OutOrStdout(), "version", "get version")
		},
	}
}

func stopCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Stop the daemon",
		RunE: func(cmd *cobra.Command, args []string) error {
			return send(cmd.OutOrStdout(), "quit", "stop daemon")
		},
	}
}

func configureCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "configure",
		Short: "Interactive configuration setup",
		Long: `Interactive configuration for hyprpick.
This will guide you through setting up:
- Initial color, output format and alpha
- Clipboard backend and timeouts
- Notification preferences`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigure()
		},
	}
}

func runConfigure() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	result, err := tui.Run(cfg)
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	if result.Cancelled {
		fmt.Println("Configuration cancelled.")
		return nil
	}

	if err := result.Config.Validate(); err != nil {
		fmt.Printf("Configuration validation failed: %v\n", err)
		return err
	}

	if err := config.Save(result.Config); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Println()
	fmt.Println("Configuration saved successfully!")
	fmt.Println()

	showNextSteps()
	return nil
}

func showNextSteps() {
	serviceRunning := false
	if _, err := exec.Command("systemctl", "--user", "is-active", "--quiet", "hyprpick.service").CombinedOutput(); err == nil {
		serviceRunning = true
	}

	fmt.Println("Next Steps:")
	if serviceRunning {
		fmt.Println("1. The running daemon reloads picker settings automatically")
	} else {
		fmt.Println("1. Start the daemon: hyprpick serve (or systemctl --user start hyprpick.service)")
	}
	fmt.Println("2. Try it: hyprpick pick")
	fmt.Println()

	configPath, _ := config.GetConfigPath()
	fmt.Printf("Config file location: %s\n", configPath)
}

func depsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deps",
		Short: "Check external tools used by clipboard and notification backends",
		RunE: func(cmd *cobra.Command, args []string) error {
			printDeps(cmd.OutOrStdout(), deps.CheckAll())
			return nil
		},
	}
}

func printDeps(w io.Writer, statuses []deps.Status) {
	for i, s := range statuses {
		mark := "[ ]"
		detail := "not found"
		if s.Installed {
			mark = "[x]"
			detail = s.Path
			if s.Version != "" {
				detail += " (" + s.Version + ")"
			}
		}
		fmt.Fprintf(w, "%s %-12s %s - %s\n", mark, s.Name, detail, deps.Tools[i].Purpose)
	}
}
