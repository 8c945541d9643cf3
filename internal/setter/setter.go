// Package setter applies a selected wallpaper using the first usable
// external setter tool.
//
// Dispatch policy: a forced setter must be installed or the run fails;
// otherwise setters are probed in a fixed preference order (feh,
// nitrogen, gnome, xfce, plasma) and the first one that can serve the
// current session wins. All invocations are typed argument vectors,
// never interpolated shell strings.
package setter

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-hclog"
)

var (
	// ErrSetterUnavailable is returned when a forced setter's tool is
	// not installed.
	ErrSetterUnavailable = errors.New("requested wallpaper setter is unavailable")

	// ErrNoSetterFound is returned when no setter can serve the
	// current session.
	ErrNoSetterFound = errors.New("no usable wallpaper setter found")
)

// Name identifies a wallpaper setter.
type Name string

// Known setters, in auto-detection preference order.
const (
	Feh      Name = "feh"
	Nitrogen Name = "nitrogen"
	Gnome    Name = "gnome"
	Xfce     Name = "xfce"
	Plasma   Name = "plasma"
)

// ParseName resolves a user-supplied setter name.
func ParseName(s string) (Name, error) {
	switch Name(strings.ToLower(s)) {
	case Feh:
		return Feh, nil
	case Nitrogen:
		return Nitrogen, nil
	case Gnome:
		return Gnome, nil
	case Xfce:
		return Xfce, nil
	case Plasma:
		return Plasma, nil
	}
	return "", fmt.Errorf("unknown setter %q (valid: feh, nitrogen, gnome, xfce, plasma)", s)
}

// Setter applies a wallpaper through one external mechanism.
type Setter interface {
	// Name returns the setter identifier.
	Name() Name

	// Installed reports whether the underlying tool is present. This
	// is the only requirement for a forced setter.
	Installed() bool

	// Available reports whether the setter can serve the current
	// session. Desktop-bound setters additionally require their
	// desktop environment to be live.
	Available() bool

	// Describe renders the action that Apply would take, for dry-run
	// output.
	Describe(path string) string

	// Apply sets the wallpaper at path.
	Apply(ctx context.Context, path string) error
}

// Dispatcher resolves and invokes setters.
type Dispatcher struct {
	logger  hclog.Logger
	setters []Setter
}

// NewDispatcher creates a Dispatcher over the default setters in
// preference order.
func NewDispatcher(logger hclog.Logger) *Dispatcher {
	return &Dispatcher{
		logger: logger,
		setters: []Setter{
			newFeh(),
			newNitrogen(),
			newGnome(),
			newXfce(),
			newPlasma(),
		},
	}
}

// newTestDispatcher builds a Dispatcher over an explicit setter list.
func newTestDispatcher(logger hclog.Logger, setters []Setter) *Dispatcher {
	return &Dispatcher{logger: logger, setters: setters}
}

// Setters returns the dispatcher's setters in preference order.
func (d *Dispatcher) Setters() []Setter {
	return d.setters
}

// Resolve picks the setter to use. A non-empty forced name selects
// that setter and fails with ErrSetterUnavailable when its tool is not
// installed, regardless of other setters. Otherwise the first setter
// available in this session wins, or ErrNoSetterFound.
func (d *Dispatcher) Resolve(forced Name) (Setter, error) {
	if forced != "" {
		for _, s := range d.setters {
			if s.Name() != forced {
				continue
			}
			if !s.Installed() {
				return nil, fmt.Errorf("%w: %s is not installed", ErrSetterUnavailable, forced)
			}
			return s, nil
		}
		return nil, fmt.Errorf("%w: %s is not a known setter", ErrSetterUnavailable, forced)
	}

	for _, s := range d.setters {
		if s.Available() {
			d.logger.Debug("auto-detected setter", "setter", s.Name())
			return s, nil
		}
	}
	return nil, ErrNoSetterFound
}
