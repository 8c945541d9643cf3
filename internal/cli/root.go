// Package cli provides the command-line interface for ukiyo.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"ukiyo/internal/version"
)

var (
	// Rotation flags
	flagPrintOnly    bool
	flagDryRun       bool
	flagVerbose      bool
	flagWallpaperDir string
	flagSetter       string
	flagTheme        string

	// rootCmd performs one wallpaper rotation when called without a
	// subcommand.
	rootCmd = &cobra.Command{
		Use:   "ukiyo",
		Short: "Resolution and HDR-aware wallpaper rotator",
		Long: `Ukiyo rotates desktop wallpapers from a fixed set of themed assets.

Each run detects the primary display's resolution and HDR capability,
picks a theme at random, probes the wallpaper directory for the best
matching variant and applies it through the first usable setter
(feh, nitrogen, gsettings, xfconf-query or Plasma).`,
		Version:      version.Short(),
		SilenceUsage: true,
		RunE:         runRotate,
	}
)

// Execute runs the root command. Called by main.main(). External
// process calls inherit a context cancelled on SIGINT/SIGTERM.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&flagPrintOnly, "print-only", false, "print the selected wallpaper path without setting it")
	rootCmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "show the setter command without executing it")
	rootCmd.Flags().StringVar(&flagWallpaperDir, "wallpaper-dir", "", "wallpaper directory (overrides WALLPAPER_DIR and the config file)")
	rootCmd.Flags().StringVar(&flagSetter, "setter", "", "force a setter (feh, nitrogen, gnome, xfce, plasma)")
	rootCmd.Flags().StringVar(&flagTheme, "theme", "", "force a theme instead of picking one at random")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable verbose output")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(doctorCmd)
}

// versionCmd prints detailed build information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print detailed version information including build date, commit hash, and Go version.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())
	},
}
