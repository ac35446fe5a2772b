// skyjump is an endless vertical platform jumper.
//
// Usage:
//
//	skyjump play             - Open the game window
//	skyjump replay <file>    - Re-simulate a recorded session and print its score
//
// Global flags:
//
//	--config <path>  - YAML file applied on top of the built-in config
//	--seed <value>   - RNG seed for reproducible runs
//	--debug          - Verbose logging
package main

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/younwookim/skyjump/internal/infrastructure/config"
)

var (
	// Global flags
	flagConfig string
	flagSeed   int64
	flagDebug  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "skyjump",
	Short: "Sky Jump - stack the bricks, reach the stars",
	Long: `Sky Jump is an endless vertical platform jumper. Runs of bricks slide
in from the sides of the screen; jump onto each one as it passes under you to
climb higher. Get hit and the game is over.

Examples:
  skyjump play
  skyjump play --autoplay
  skyjump play --record run.json --seed 42
  skyjump replay run.json`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a config YAML override")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(replayCmd)
}

func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "skyjump",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// loadConfig reads the embedded defaults and applies --config on top.
func loadConfig() (*config.GameConfig, error) {
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	cfg, err := config.NewFSLoader(fsys, "configs").Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if flagConfig == "" {
		return cfg, nil
	}
	return config.LoadOverride(cfg, flagConfig)
}
