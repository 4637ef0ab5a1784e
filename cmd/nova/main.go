// nova is a side-scrolling platformer: walk, jump and fight through the
// levels, collect memories and beat the bosses guarding each chapter.
//
// Usage:
//
//	nova [play]              - Play the game (default)
//	nova check               - Validate the tuning file and every level
//	nova replay <file>       - Play a recording back headless and print a summary
//
// Global flags:
//
//	--assets <dir>  - Load tuning.yaml and levels/ from dir instead of the embedded set
//	--seed <value>  - Set RNG seed for reproducible gameplay (0 = random)
//	--level <n>     - Start on level n
//	--debug         - Verbose logging
package main

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/younwookim/nova/internal/infrastructure/config"
)

var (
	// Global flags
	flagAssets string
	flagSeed   int64
	flagLevel  int
	flagDebug  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "nova",
	Short: "Nova - a side-scrolling platformer",
	Long: `Nova is a side-scrolling platformer. Walk and jump through each level,
collect memory fragments to unlock the door and defeat the bosses.

Available commands:
  play     - Play the game (default)
  check    - Validate tuning and level files
  replay   - Play back a recording without a window

Examples:
  nova
  nova play --level 3 --seed 42
  nova play --assets ./cmd/nova/configs --watch
  nova check --assets ./my-levels
  nova replay replay_20260101_120000.json`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagAssets, "assets", "", "Asset directory (default: embedded assets)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().IntVar(&flagLevel, "level", 0, "Starting level number")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(replayCmd)
}

// newLogger creates the process logger
func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "nova",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// openAssets returns a loader over --assets, or over the embedded set.
func openAssets() (*config.Loader, error) {
	if flagAssets != "" {
		info, err := os.Stat(flagAssets)
		if err != nil {
			return nil, fmt.Errorf("assets: %w", err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("assets: %s is not a directory", flagAssets)
		}
		return config.NewLoader(flagAssets), nil
	}

	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs"), nil
}

// loadConfig opens the assets and decodes the tuning file
func loadConfig() (*config.Loader, *config.GameConfig, error) {
	loader, err := openAssets()
	if err != nil {
		return nil, nil, err
	}
	cfg, err := loader.LoadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	return loader, cfg, nil
}
