package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Base styles for hyprpick TUI components
var (
	// Header style for section headers
	StyleHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			MarginBottom(1)

	// Title is a single-line header; the picker view relies on exact row counts
	StyleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// Label style for field labels
	StyleLabel = lipgloss.NewStyle().
			Foreground(ColorText).
			Bold(true)

	StyleFieldText = lipgloss.NewStyle().
			Foreground(ColorText)

	// Success style for positive feedback
	StyleSuccess = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	// Error style for error messages
	StyleError = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	// Warning style for warnings
	StyleWarning = lipgloss.NewStyle().
			Foreground(ColorWarning)

	// Muted style for secondary text
	StyleMuted = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// Subtle style for hints and descriptions
	StyleSubtle = lipgloss.NewStyle().
			Foreground(ColorSubtle).
			Italic(true)

	// Highlight style for the focused field
	StyleHighlight = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true)
)

const logoASCII = `
 _                              _      _    
| |__  _   _ _ __  _ __  _ __ (_) ___| | __
| '_ \| | | | '_ \| '__|| '_ \| |/ __| |/ /
| | | | |_| | |_) | |   | |_) | | (__|   < 
|_| |_|\__, | .__/|_|   | .__/|_|\___|_|\_\
       |___/|_|         |_|                `

// Logo returns the hyprpick ASCII art
func Logo() string {
	return StyleHeader.Render(strings.Trim(logoASCII, "\n"))
}
