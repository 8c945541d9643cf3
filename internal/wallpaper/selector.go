// Package wallpaper selects a wallpaper image matching the detected
// display from a flat directory of themed assets.
//
// Assets follow the naming scheme
//
//	<Theme>_Ukiyo-e_Linux_Solarized[_HDR][_4K|_2K]_16x9.<ext>
//
// The selector probes candidates from most-specific (theme + HDR +
// resolution tier) to least-specific (theme base file), then falls
// back to any image in the directory.
package wallpaper

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"

	"ukiyo/internal/display"
)

// ErrNoWallpapers is returned when the wallpaper directory contains no
// usable image file at all.
var ErrNoWallpapers = errors.New("no wallpaper images found")

// baseName is the shared portion of every asset filename, between the
// theme and the optional variant suffixes.
const baseName = "_Ukiyo-e_Linux_Solarized"

// aspectSuffix terminates every asset filename before the extension.
const aspectSuffix = "_16x9"

// candidateExtensions are probed for the constructed filenames, in
// order. The directory-scan fallback accepts any supported image type.
var candidateExtensions = []string{".png", ".jpg", ".jpeg"}

// Resolution tier thresholds in horizontal pixels.
const (
	width4K = 3840
	width2K = 2560
)

// Selection is the outcome of a selector run.
type Selection struct {
	// Path is the chosen image file.
	Path string

	// Theme that produced the selection.
	Theme Theme

	// Fallback is true when no constructed candidate existed and the
	// directory scan produced the result.
	Fallback bool
}

// Selector chooses wallpaper files from a configured directory.
type Selector struct {
	dir    string
	themes []Theme
	logger hclog.Logger
}

// NewSelector creates a Selector over the given asset directory. An
// empty theme list falls back to the built-in set.
func NewSelector(logger hclog.Logger, dir string, themes []Theme) *Selector {
	if len(themes) == 0 {
		themes = DefaultThemes()
	}
	return &Selector{dir: dir, themes: themes, logger: logger}
}

// Themes returns the theme set this selector draws from.
func (s *Selector) Themes() []Theme {
	return s.themes
}

// resolutionTiers returns the filename tiers acceptable for the given
// width, widest first. A 4K display accepts the 2K asset before
// dropping to the base file.
func resolutionTiers(width int) []string {
	switch {
	case width >= width4K:
		return []string{"_4K", "_2K"}
	case width >= width2K:
		return []string{"_2K"}
	default:
		return nil
	}
}

// Candidates builds the ordered candidate filename list for a theme
// and display. Ordering is resolution-major: within a tier the HDR
// variant precedes the SDR one, and extensions are probed innermost.
func Candidates(theme Theme, info display.Info) []string {
	tiers := append(resolutionTiers(info.Width), "")

	hdrVariants := []string{""}
	if info.HDR {
		hdrVariants = []string{"_HDR", ""}
	}

	var names []string
	for _, tier := range tiers {
		for _, hdr := range hdrVariants {
			for _, ext := range candidateExtensions {
				names = append(names, string(theme)+baseName+hdr+tier+aspectSuffix+ext)
			}
		}
	}
	return names
}

// Select returns the best existing wallpaper for the theme and display.
// When no constructed candidate exists it falls back to the
// lexicographically first image file in the directory, and fails with
// ErrNoWallpapers when the directory holds no images at all.
func (s *Selector) Select(info display.Info, theme Theme) (Selection, error) {
	for _, name := range Candidates(theme, info) {
		path := filepath.Join(s.dir, name)
		fi, err := os.Stat(path)
		if err != nil || !fi.Mode().IsRegular() {
			continue
		}
		s.logger.Debug("matched wallpaper candidate", "theme", theme, "path", path)
		return Selection{Path: path, Theme: theme}, nil
	}

	s.logger.Debug("no exact candidate, scanning directory", "dir", s.dir, "theme", theme)

	images, err := ScanImages(s.dir)
	if err != nil {
		return Selection{}, err
	}
	if len(images) == 0 {
		return Selection{}, fmt.Errorf("%w in %s", ErrNoWallpapers, s.dir)
	}

	return Selection{Path: images[0], Theme: theme, Fallback: true}, nil
}
