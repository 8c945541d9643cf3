package cli

import (
	"fmt"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"ukiyo/internal/config"
	"ukiyo/internal/display"
	"ukiyo/internal/logging"
	"ukiyo/internal/setter"
	"ukiyo/internal/wallpaper"
)

// runRotate performs one full rotation: load config, detect the
// display, select a wallpaper and dispatch it to a setter.
func runRotate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	applyFlagOverrides(cmd, cfg)

	logger, closeLog := logging.New(flagVerbose, cfg.LogFile, cfg.LogMaxSizeMB)
	defer closeLog()

	cmd.Flags().Visit(func(f *pflag.Flag) {
		logger.Debug("flag override", "flag", f.Name, "value", f.Value.String())
	})

	if err := cfg.Validate(); err != nil {
		logger.Error("configuration invalid", "error", err)
		return err
	}

	provider := display.NewExecProvider(logger.Named("display"), cfg.HDR)
	info, err := provider.Detect(ctx)
	if err != nil {
		logger.Error("display detection failed", "error", err)
		return err
	}

	sel := wallpaper.NewSelector(logger.Named("selector"), cfg.WallpaperDir, configThemes(cfg))

	theme, err := pickTheme(sel)
	if err != nil {
		logger.Error("theme selection failed", "error", err)
		return err
	}

	selection, err := sel.Select(info, theme)
	if err != nil {
		logger.Error("wallpaper selection failed", "theme", theme, "error", err)
		return err
	}
	if selection.Fallback {
		logger.Warn("no exact variant for theme, using directory fallback",
			"theme", theme, "path", selection.Path)
	}

	if flagPrintOnly {
		fmt.Println(selection.Path)
		return nil
	}

	return dispatch(cmd, logger, cfg, selection)
}

// dispatch resolves the setter and applies (or, in dry-run mode,
// prints) the wallpaper command.
func dispatch(cmd *cobra.Command, logger hclog.Logger, cfg *config.Config, selection wallpaper.Selection) error {
	ctx := cmd.Context()

	var forced setter.Name
	if cfg.Setter != "" {
		name, err := setter.ParseName(cfg.Setter)
		if err != nil {
			logger.Error("invalid setter name", "setter", cfg.Setter, "error", err)
			return err
		}
		forced = name
	}

	dispatcher := setter.NewDispatcher(logger.Named("setter"))
	s, err := dispatcher.Resolve(forced)
	if err != nil {
		logger.Error("setter resolution failed", "error", err)
		return err
	}

	// Setters persist the path (nitrogen --save, gsettings URIs), so
	// hand them an absolute one.
	absPath, err := filepath.Abs(selection.Path)
	if err != nil {
		return fmt.Errorf("failed to resolve absolute path: %w", err)
	}

	if flagDryRun {
		fmt.Println(s.Describe(absPath))
		return nil
	}

	if err := s.Apply(ctx, absPath); err != nil {
		logger.Error("setter invocation failed", "setter", s.Name(), "error", err)
		return err
	}

	logger.Info("wallpaper set",
		"theme", selection.Theme,
		"path", absPath,
		"setter", s.Name(),
		"fallback", selection.Fallback)
	return nil
}

// applyFlagOverrides layers command-line flags over the loaded config.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	if flagWallpaperDir != "" {
		cfg.WallpaperDir = flagWallpaperDir
	}
	if cmd.Flags().Changed("setter") {
		cfg.Setter = flagSetter
	}
}

// configThemes converts the config theme names into the selector's
// theme type.
func configThemes(cfg *config.Config) []wallpaper.Theme {
	themes := make([]wallpaper.Theme, 0, len(cfg.Themes))
	for _, t := range cfg.Themes {
		themes = append(themes, wallpaper.Theme(t))
	}
	return themes
}

// pickTheme honors a forced --theme or picks one uniformly at random.
func pickTheme(sel *wallpaper.Selector) (wallpaper.Theme, error) {
	if flagTheme != "" {
		return wallpaper.ParseTheme(flagTheme, sel.Themes())
	}
	return wallpaper.RandomTheme(sel.Themes())
}
