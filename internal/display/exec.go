package display

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"strconv"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// runFunc executes an external command and returns its stdout. It is a
// field on ExecProvider so tests can substitute canned output.
type runFunc func(ctx context.Context, name string, args ...string) ([]byte, error)

// ExecProvider detects display information by shelling out to xrandr,
// with xdpyinfo as a fallback, and kscreen-doctor for HDR state.
type ExecProvider struct {
	logger  hclog.Logger
	hdrMode string
	run     runFunc
}

// NewExecProvider creates a provider using the given HDR mode
// ("auto", "on" or "off").
func NewExecProvider(logger hclog.Logger, hdrMode string) *ExecProvider {
	return &ExecProvider{
		logger:  logger,
		hdrMode: hdrMode,
		run: func(ctx context.Context, name string, args ...string) ([]byte, error) {
			return exec.CommandContext(ctx, name, args...).Output()
		},
	}
}

// Detect queries the display stack and returns the primary display's
// resolution and HDR capability.
func (p *ExecProvider) Detect(ctx context.Context) (Info, error) {
	width, height, err := p.resolution(ctx)
	if err != nil {
		return Info{}, err
	}

	info := Info{Width: width, Height: height}
	info.HDR = p.hdrCapable(ctx)

	p.logger.Debug("detected display", "width", info.Width, "height", info.Height, "hdr", info.HDR)
	return info, nil
}

// resolution tries xrandr first and falls back to xdpyinfo.
func (p *ExecProvider) resolution(ctx context.Context) (int, int, error) {
	if out, err := p.run(ctx, "xrandr", "--query"); err == nil {
		if w, h, err := parseXrandr(string(out)); err == nil {
			return w, h, nil
		}
		p.logger.Debug("xrandr output had no usable mode line, trying xdpyinfo")
	} else {
		p.logger.Debug("xrandr unavailable, trying xdpyinfo", "error", err)
	}

	out, err := p.run(ctx, "xdpyinfo")
	if err != nil {
		return 0, 0, fmt.Errorf("%w: xrandr and xdpyinfo both failed: %v", ErrNoDisplay, err)
	}
	return parseXdpyinfo(string(out))
}

// modeRe matches an active mode geometry such as "3840x2160+0+0".
var modeRe = regexp.MustCompile(`^(\d+)x(\d+)\+\d+\+\d+$`)

// parseXrandr extracts the resolution of the primary connected output
// from `xrandr --query` output. When no output is marked primary, the
// first connected output with an active mode wins.
func parseXrandr(out string) (int, int, error) {
	var fallbackW, fallbackH int

	for _, line := range strings.Split(out, "\n") {
		if !strings.Contains(line, " connected") {
			continue
		}

		fields := strings.Fields(line)
		primary := false
		w, h := 0, 0
		for _, f := range fields {
			if f == "primary" {
				primary = true
			}
			if m := modeRe.FindStringSubmatch(f); m != nil {
				w, _ = strconv.Atoi(m[1])
				h, _ = strconv.Atoi(m[2])
			}
		}
		if w == 0 || h == 0 {
			// Connected but inactive output (no mode set).
			continue
		}
		if primary {
			return w, h, nil
		}
		if fallbackW == 0 {
			fallbackW, fallbackH = w, h
		}
	}

	if fallbackW > 0 {
		return fallbackW, fallbackH, nil
	}
	return 0, 0, fmt.Errorf("%w: no active mode in xrandr output", ErrNoDisplay)
}

// parseXdpyinfo extracts the screen resolution from the xdpyinfo
// "dimensions:    1920x1080 pixels (508x285 millimeters)" line.
func parseXdpyinfo(out string) (int, int, error) {
	for _, line := range strings.Split(out, "\n") {
		if !strings.Contains(line, "dimensions:") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		dims := strings.SplitN(fields[1], "x", 2)
		if len(dims) != 2 {
			continue
		}
		w, errW := strconv.Atoi(dims[0])
		h, errH := strconv.Atoi(dims[1])
		if errW != nil || errH != nil {
			continue
		}
		return w, h, nil
	}
	return 0, 0, fmt.Errorf("%w: no dimensions in xdpyinfo output", ErrNoDisplay)
}

// hdrCapable resolves the HDR state from the configured mode, the
// UKIYO_HDR environment variable, or kscreen-doctor probing.
func (p *ExecProvider) hdrCapable(ctx context.Context) bool {
	switch p.hdrMode {
	case "on":
		return true
	case "off":
		return false
	}

	switch strings.ToLower(os.Getenv("UKIYO_HDR")) {
	case "1", "true", "on":
		return true
	case "0", "false", "off":
		return false
	}

	// KDE is the only mainstream Linux desktop reporting HDR state via
	// a queryable tool today.
	out, err := p.run(ctx, "kscreen-doctor", "-o")
	if err != nil {
		p.logger.Debug("kscreen-doctor unavailable, assuming SDR", "error", err)
		return false
	}
	return parseKScreenHDR(string(out))
}

// parseKScreenHDR reports whether any output in `kscreen-doctor -o`
// output has HDR enabled. The tool decorates output with ANSI colour
// codes, which are stripped before matching.
func parseKScreenHDR(out string) bool {
	plain := ansiRe.ReplaceAllString(out, "")
	for _, line := range strings.Split(plain, "\n") {
		if strings.Contains(line, "HDR: enabled") {
			return true
		}
	}
	return false
}

var ansiRe = regexp.MustCompile(`\x1b\[[0-9;]*m`)
