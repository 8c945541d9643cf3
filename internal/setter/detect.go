package setter

import (
	"os"
	"os/exec"
	"strings"

	"github.com/mitchellh/go-ps"
)

// lookPath is swapped by tests to simulate installed tools.
var lookPath = exec.LookPath

// toolInstalled reports whether an executable exists in PATH.
func toolInstalled(tool string) bool {
	_, err := lookPath(tool)
	return err == nil
}

// desktopEnv returns the lowercased desktop environment identifier
// from XDG_CURRENT_DESKTOP, falling back to DESKTOP_SESSION.
func desktopEnv() string {
	env := os.Getenv("XDG_CURRENT_DESKTOP")
	if env == "" {
		env = os.Getenv("DESKTOP_SESSION")
	}
	return strings.ToLower(env)
}

// listProcesses is swapped by tests to simulate running sessions.
var listProcesses = ps.Processes

// processRunning reports whether a process with the given executable
// name exists. Uses go-ps for cross-platform process discovery.
func processRunning(name string) bool {
	processes, err := listProcesses()
	if err != nil {
		return false
	}
	for _, p := range processes {
		if p.Executable() == name {
			return true
		}
	}
	return false
}
