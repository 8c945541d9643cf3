package setter

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// cmdSetter applies wallpapers by running one or more external
// commands built as argument vectors.
type cmdSetter struct {
	name Name
	tool string

	// commands builds the argument vectors to run, in order.
	commands func(path string) [][]string

	// sessionOK gates auto-detection beyond tool presence. Nil means
	// tool presence is sufficient.
	sessionOK func() bool
}

func (c *cmdSetter) Name() Name { return c.name }

func (c *cmdSetter) Installed() bool {
	return toolInstalled(c.tool)
}

func (c *cmdSetter) Available() bool {
	if !c.Installed() {
		return false
	}
	if c.sessionOK != nil {
		return c.sessionOK()
	}
	return true
}

func (c *cmdSetter) Describe(path string) string {
	var lines []string
	for _, argv := range c.commands(path) {
		lines = append(lines, strings.Join(argv, " "))
	}
	return strings.Join(lines, "\n")
}

func (c *cmdSetter) Apply(ctx context.Context, path string) error {
	for _, argv := range c.commands(path) {
		cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
		if out, err := cmd.CombinedOutput(); err != nil {
			return fmt.Errorf("%s failed: %w (output: %s)",
				strings.Join(argv, " "), err, strings.TrimSpace(string(out)))
		}
	}
	return nil
}
