package wallpaper

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"math/big"
	"strings"
)

// Theme is one of the illustrated wallpaper subjects. The asset set
// ships one family of files per theme.
type Theme string

// Built-in themes.
const (
	ThemePlantZoo    Theme = "PlantZoo"
	ThemeDinosaurs   Theme = "Dinosaurs"
	ThemeHarryPotter Theme = "HarryPotter"
	ThemeOuterSpace  Theme = "OuterSpace"
)

// DefaultThemes returns the built-in theme set.
func DefaultThemes() []Theme {
	return []Theme{ThemePlantZoo, ThemeDinosaurs, ThemeHarryPotter, ThemeOuterSpace}
}

// ParseTheme resolves a user-supplied theme name against the known set,
// case-insensitively.
func ParseTheme(name string, themes []Theme) (Theme, error) {
	for _, t := range themes {
		if strings.EqualFold(string(t), name) {
			return t, nil
		}
	}

	known := make([]string, len(themes))
	for i, t := range themes {
		known[i] = string(t)
	}
	return "", fmt.Errorf("unknown theme %q (valid: %s)", name, strings.Join(known, ", "))
}

// RandomTheme picks one theme uniformly at random.
// Uses crypto/rand for cryptographically secure randomness.
func RandomTheme(themes []Theme) (Theme, error) {
	if len(themes) == 0 {
		return "", fmt.Errorf("theme list is empty")
	}

	maxIndex := big.NewInt(int64(len(themes)))
	randomIndex, err := rand.Int(rand.Reader, maxIndex)
	if err != nil {
		// Fallback to raw random bytes if crypto/rand.Int fails.
		var buf [8]byte
		if _, err := rand.Read(buf[:]); err != nil {
			return "", fmt.Errorf("failed to generate random number: %w", err)
		}
		index := int(binary.LittleEndian.Uint64(buf[:]) % uint64(len(themes)))
		return themes[index], nil
	}

	return themes[randomIndex.Int64()], nil
}
