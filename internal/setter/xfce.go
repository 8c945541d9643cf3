package setter

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// xfceSetter applies wallpapers through xfconf-query. Xfdesktop keeps
// one last-image property per monitor and workspace, so the properties
// are enumerated at apply time and every one is updated.
type xfceSetter struct{}

func newXfce() Setter {
	return &xfceSetter{}
}

func (x *xfceSetter) Name() Name { return Xfce }

func (x *xfceSetter) Installed() bool {
	return toolInstalled("xfconf-query")
}

func (x *xfceSetter) Available() bool {
	return x.Installed() && xfceSession()
}

func (x *xfceSetter) Describe(path string) string {
	props, err := x.backdropProperties(context.Background())
	if err != nil || len(props) == 0 {
		return fmt.Sprintf("xfconf-query -c xfce4-desktop -p <each last-image property> -s %s", path)
	}

	var lines []string
	for _, prop := range props {
		lines = append(lines, strings.Join(x.setCommand(prop, path), " "))
	}
	return strings.Join(lines, "\n")
}

func (x *xfceSetter) Apply(ctx context.Context, path string) error {
	props, err := x.backdropProperties(ctx)
	if err != nil {
		return err
	}
	if len(props) == 0 {
		return fmt.Errorf("xfce4-desktop exposes no last-image properties")
	}

	for _, prop := range props {
		argv := x.setCommand(prop, path)
		cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
		if out, err := cmd.CombinedOutput(); err != nil {
			return fmt.Errorf("%s failed: %w (output: %s)",
				strings.Join(argv, " "), err, strings.TrimSpace(string(out)))
		}
	}
	return nil
}

func (x *xfceSetter) setCommand(prop, path string) []string {
	return []string{"xfconf-query", "-c", "xfce4-desktop", "-p", prop, "-s", path}
}

// backdropProperties lists the xfce4-desktop properties holding
// backdrop image paths.
func (x *xfceSetter) backdropProperties(ctx context.Context) ([]string, error) {
	cmd := exec.CommandContext(ctx, "xfconf-query", "-c", "xfce4-desktop", "-l")
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("failed to list xfce4-desktop properties: %w", err)
	}

	var props []string
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimSpace(line)
		if strings.HasSuffix(line, "/last-image") {
			props = append(props, line)
		}
	}
	return props, nil
}

// xfceSession reports whether an XFCE session is live.
func xfceSession() bool {
	if strings.Contains(desktopEnv(), "xfce") {
		return true
	}
	return processRunning("xfsettingsd")
}
