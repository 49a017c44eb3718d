// cardrpg is a top-down tile game prototype.
//
// Usage:
//
//	cardrpg                     - Open the overworld
//	cardrpg --scale 2           - Open at twice the camera size (saved)
//	cardrpg --config game.yaml  - Use a game config file
//	cardrpg version             - Print the version
//
// WASD accelerates the player; Escape quits.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/decker502/cardrpg/pkg/app"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

var (
	flagVerbose    bool
	flagConfig     string
	flagAssets     string
	flagScale      int
	flagFullscreen bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "cardrpg",
	Short:        "Top-down tile game prototype",
	SilenceUsage: true,
	Args:         cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := app.Config{
			Verbose:     flagVerbose,
			ConfigPath:  flagConfig,
			AssetRoot:   flagAssets,
			WindowScale: flagScale,
			Assets:      assetsFS,
		}
		// Only override the saved fullscreen setting when the flag was given.
		if cmd.Flags().Changed("fullscreen") {
			cfg.Fullscreen = &flagFullscreen
		}
		return app.Run(cfg)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version)
	},
}

func init() {
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a YAML game config")
	rootCmd.Flags().StringVar(&flagAssets, "assets", "", "Directory the asset paths are relative to (overrides config)")
	rootCmd.Flags().IntVar(&flagScale, "scale", 0, "Window scale 1-4 (0 = saved setting)")
	rootCmd.Flags().BoolVar(&flagFullscreen, "fullscreen", false, "Start in fullscreen (saved)")

	rootCmd.AddCommand(versionCmd)
}
