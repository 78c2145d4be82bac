package deps

import (
	"os/exec"
	"strings"
)

// Status represents the installation status of a dependency
type Status struct {
	Name      string
	Installed bool
	Path      string
	Version   string
}

// Tool is an external program hyprpick can shell out to.
type Tool struct {
	Name        string
	VersionArgs []string
	Purpose     string
}

// Tools lists every external program used by a backend.
var Tools = []Tool{
	{Name: "wl-copy", VersionArgs: []string{"--version"}, Purpose: "clipboard backend wl-copy"},
	{Name: "xclip", VersionArgs: []string{"-version"}, Purpose: "clipboard backend system (X11)"},
	{Name: "xsel", VersionArgs: []string{"--version"}, Purpose: "clipboard backend system (X11)"},
	{Name: "notify-send", VersionArgs: []string{"--version"}, Purpose: "desktop notifications"},
}

// Check looks tool up in PATH and, when found, asks it for a version.
func Check(tool Tool) Status {
	path, err := exec.LookPath(tool.Name)
	if err != nil {
		return Status{Name: tool.Name, Installed: false}
	}

	status := Status{
		Name:      tool.Name,
		Installed: true,
		Path:      path,
	}

	if len(tool.VersionArgs) == 0 {
		return status
	}
	// some tools print their version on stderr
	output, err := exec.Command(path, tool.VersionArgs...).CombinedOutput()
	if err == nil {
		lines := strings.Split(string(output), "\n")
		if len(lines) > 0 {
			status.Version = strings.TrimSpace(lines[0])
		}
	}

	return status
}

// CheckWlCopy checks if wl-copy is installed and returns its status
func CheckWlCopy() Status {
	return Check(Tools[0])
}

// CheckNotifySend checks if notify-send is installed and returns its status
func CheckNotifySend() Status {
	return Check(Tools[3])
}

// CheckAll returns the status of every tool in Tools.
func CheckAll() []Status {
	statuses := make([]Status, 0, len(Tools))
	for _, t := range Tools {
		statuses = append(statuses, Check(t))
	}
	return statuses
}
