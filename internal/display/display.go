// Package display detects the geometry and HDR capability of the
// primary display by querying external display tools.
package display

import (
	"context"
	"errors"
)

// ErrNoDisplay is returned when no connected display can be found or
// its resolution cannot be parsed.
var ErrNoDisplay = errors.New("no connected display detected")

// Info describes the primary display. It is derived once per run and
// never mutated.
type Info struct {
	Width  int
	Height int
	HDR    bool
}

// Provider detects display information.
type Provider interface {
	Detect(ctx context.Context) (Info, error)
}
