package cli

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"ukiyo/internal/config"
	"ukiyo/internal/display"
	"ukiyo/internal/logging"
	"ukiyo/internal/setter"
	"ukiyo/internal/version"
	"ukiyo/internal/wallpaper"
)

// doctorCmd reports the state of everything a rotation depends on:
// display detection, the wallpaper directory contents, and setter
// availability.
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose the wallpaper environment",
	Long: `Diagnose the wallpaper environment.

Doctor reports the detected display, which themed assets the wallpaper
directory provides for it, and which setters are installed and usable
in the current session. It changes nothing.`,
	RunE: runDoctor,
}

func runDoctor(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, closeLog := logging.New(flagVerbose, "", 0)
	defer closeLog()

	fmt.Println(version.String())
	fmt.Println()

	configPath, _ := config.Path()
	fmt.Printf("config file:   %s\n", configPath)
	fmt.Printf("wallpaper dir: %s\n", cfg.WallpaperDir)
	fmt.Printf("run log:       %s\n", cfg.LogFile)
	fmt.Println()

	provider := display.NewExecProvider(logger.Named("display"), cfg.HDR)
	info, err := provider.Detect(ctx)
	if err != nil {
		fmt.Printf("display:       not detected (%v)\n", err)
	} else {
		fmt.Printf("display:       %dx%d, HDR %s\n", info.Width, info.Height, onOff(info.HDR))
	}
	fmt.Println()

	if dirErr := cfg.Validate(); dirErr != nil {
		fmt.Printf("themes:        unavailable (%v)\n", dirErr)
	} else if err == nil {
		printThemeTable(cfg, info)
	}

	printSetterTable()
	return nil
}

// printThemeTable lists the asset each theme would resolve to for the
// detected display.
func printThemeTable(cfg *config.Config, info display.Info) {
	sel := wallpaper.NewSelector(hclog.NewNullLogger(), cfg.WallpaperDir, configThemes(cfg))

	t := newTable("THEME", "RESOLVED", "NOTES")
	for _, theme := range sel.Themes() {
		selection, err := sel.Select(info, theme)
		switch {
		case err != nil:
			t.addRow(string(theme), "-", "no image files")
		case selection.Fallback:
			t.addRow(string(theme), selection.Path, "directory fallback")
		default:
			note := ""
			if w, h, err := wallpaper.ImageDimensions(selection.Path); err != nil {
				note = "unreadable image"
			} else if w < info.Width || h < info.Height {
				note = fmt.Sprintf("smaller than display (%dx%d)", w, h)
			}
			t.addRow(string(theme), selection.Path, note)
		}
	}
	fmt.Println(t.render())
}

// printSetterTable lists installation and session availability for
// every known setter.
func printSetterTable() {
	t := newTable("SETTER", "INSTALLED", "USABLE")
	for _, s := range setter.NewDispatcher(hclog.NewNullLogger()).Setters() {
		t.addRow(string(s.Name()), yesNo(s.Installed()), yesNo(s.Available()))
	}
	fmt.Println(t.render())
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
