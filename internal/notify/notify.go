package notify

import (
	"fmt"
	"log"
	"os/exec"
)

type Notifier interface {
	ColorChanged(format, value string)
	Copied(format, value string)
	Error(msg string)
	Notify(title, message string)
}

// New returns the notifier for a notifications.type value. Unknown types fall
// back to Log.
func New(typ string) Notifier {
	switch typ {
	case "desktop":
		return Desktop{}
	case "none":
		return Nop{}
	default:
		return Log{}
	}
}

type Desktop struct{}

func (d Desktop) ColorChanged(format, value string) {
	d.Notify("Hyprpick", fmt.Sprintf("%s: %s", format, value))
}

func (d Desktop) Copied(format, value string) {
	d.Notify("Hyprpick: Copied", fmt.Sprintf("%s %s copied to clipboard", format, value))
}

func (Desktop) Error(msg string) {
	cmd := exec.Command("notify-send", "-a", "Hyprpick", "-u", "critical", "Hyprpick Error", msg)
	if err := cmd.Run(); err != nil {
		log.Printf("Failed to send error notification: %v", err)
	}
}

func (Desktop) Notify(title, message string) {
	cmd := exec.Command("notify-send", "-a", "Hyprpick", title, message)
	if err := cmd.Run(); err != nil {
		log.Printf("Failed to send notification: %v", err)
	}
}

// Log writes notifications to the standard logger.
type Log struct{}

func (Log) ColorChanged(format, value string) {
	log.Printf("Hyprpick: color changed (%s) %s", format, value)
}

func (Log) Copied(format, value string) {
	log.Printf("Hyprpick: copied %s %s", format, value)
}

func (Log) Error(msg string) {
	log.Printf("Hyprpick Error: %s", msg)
}

func (Log) Notify(title, message string) {
	log.Printf("%s: %s", title, message)
}

// Nop is a Notifier that does absolutely nothing.
// Useful in unit tests or headless builds.
type Nop struct{}

func (Nop) ColorChanged(format, value string) {}
func (Nop) Copied(format, value string)       {}
func (Nop) Error(msg string)                  {}
func (Nop) Notify(title, message string)      {}
