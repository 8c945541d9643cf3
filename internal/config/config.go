// Package config loads and validates the ukiyo configuration file.
//
// Configuration lives in a TOML file under the user's configuration
// directory (typically ~/.config/ukiyo/config.toml). Every field is
// optional; flags and the WALLPAPER_DIR environment variable override
// whatever the file provides.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/kirsle/configdir"
)

// HDR detection modes accepted by the "hdr" config key.
const (
	HDRAuto = "auto"
	HDROn   = "on"
	HDROff  = "off"
)

// Config holds all user-tunable settings.
type Config struct {
	// WallpaperDir is the flat directory containing the themed assets.
	WallpaperDir string `toml:"wallpaper_dir"`

	// Setter forces a specific wallpaper setter instead of auto-detection.
	Setter string `toml:"setter"`

	// HDR controls HDR detection: "auto", "on" or "off".
	HDR string `toml:"hdr"`

	// Themes overrides the built-in theme set.
	Themes []string `toml:"themes"`

	// LogFile is the path of the append-only run log.
	LogFile string `toml:"log_file"`

	// LogMaxSizeMB caps the run log size before rotation.
	LogMaxSizeMB int `toml:"log_max_size_mb"`
}

// Dir returns the ukiyo configuration directory, creating it if needed.
func Dir() (string, error) {
	dir := configdir.LocalConfig("ukiyo")
	if err := configdir.MakePath(dir); err != nil {
		return "", fmt.Errorf("failed to create config directory %s: %w", dir, err)
	}
	return dir, nil
}

// Path returns the location of the configuration file.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Default returns a configuration populated with compiled-in defaults.
func Default() *Config {
	c := &Config{
		HDR:          HDRAuto,
		LogMaxSizeMB: 5,
	}

	if home, err := os.UserHomeDir(); err == nil {
		c.WallpaperDir = filepath.Join(home, "Pictures", "wallpapers")
	}
	if dir, err := Dir(); err == nil {
		c.LogFile = filepath.Join(dir, "ukiyo.log")
	}

	return c
}

// Load reads the configuration file, layering it over the defaults and
// then applying environment overrides. A missing file is not an error.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// LoadFile reads a specific configuration file. Used directly by tests.
func LoadFile(path string) (*Config, error) {
	c := Default()

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, c); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	// WALLPAPER_DIR beats the config file but loses to the flag, which
	// the CLI applies after Load returns.
	if env := os.Getenv("WALLPAPER_DIR"); env != "" {
		c.WallpaperDir = env
	}

	return c, nil
}

// Validate checks the settings that every command depends on.
func (c *Config) Validate() error {
	if c.WallpaperDir == "" {
		return fmt.Errorf("wallpaper directory is not set")
	}

	fi, err := os.Stat(c.WallpaperDir)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("wallpaper directory does not exist: %s", c.WallpaperDir)
		}
		return fmt.Errorf("failed to access wallpaper directory %s: %w", c.WallpaperDir, err)
	}
	if !fi.IsDir() {
		return fmt.Errorf("wallpaper directory is not a directory: %s", c.WallpaperDir)
	}

	switch c.HDR {
	case HDRAuto, HDROn, HDROff:
	default:
		return fmt.Errorf("invalid hdr mode %q (valid: auto, on, off)", c.HDR)
	}

	if c.LogMaxSizeMB < 0 {
		return fmt.Errorf("log_max_size_mb cannot be negative")
	}

	return nil
}
