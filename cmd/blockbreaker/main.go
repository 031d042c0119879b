// blockbreaker is a single-player block-breaker game for the terminal and the desktop.
//
// Usage:
//
//	blockbreaker play     - Play in the terminal (mouse or keyboard)
//	blockbreaker window   - Play in a desktop window
//	blockbreaker config   - Print the effective configuration as YAML
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible block colors and serves
//	--config <path>       - Use a custom config YAML
//	--difficulty <name>   - Difficulty preset: easy, normal, hard
//	--log-level <level>   - debug, info, warn, error (default: info)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockbreaker/internal/config"
	"github.com/vovakirdan/blockbreaker/internal/core"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blockbreaker",
	Short: "Block Breaker - bounce the ball, clear the wall",
	Long: `Block Breaker is a single-player brick-breaking game. Steer the paddle
with the mouse, click to serve, and clear every block before you run out of lives.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  config   - Print the effective configuration

Examples:
  blockbreaker play
  blockbreaker play --difficulty hard --seed 42
  blockbreaker window --scale 1.5
  blockbreaker config --config ./my-blockbreaker.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = use config rng_seed, then time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the structured logger shared by all subcommands.
func newLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "blockbreaker",
	})
	logger.SetLevel(lvl)
	return logger, nil
}

// loadConfig resolves the game config from file, difficulty preset and seed flag.
// A non-zero seed overrides the file's rng_seed.
func loadConfig(path, difficulty string, seed int64) (config.BlockBreakerConfig, string, error) {
	cfg, source, err := config.Load(path)
	if err != nil {
		return config.BlockBreakerConfig{}, source, err
	}

	preset, err := config.ParseDifficulty(difficulty)
	if err != nil {
		return config.BlockBreakerConfig{}, source, err
	}
	config.ApplyPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return config.BlockBreakerConfig{}, source, fmt.Errorf("difficulty %s: %w", preset, err)
	}

	if seed != 0 {
		cfg.RNGSeed = seed
	}
	return cfg, source, nil
}

// runtimeConfig builds presenter settings for a screen of the given size.
func runtimeConfig(cfg config.BlockBreakerConfig, width, height, fps int) (core.RuntimeConfig, error) {
	if fps <= 0 {
		return core.RuntimeConfig{}, fmt.Errorf("fps must be positive, got %d", fps)
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: fps,
		Seed:     cfg.RNGSeed,
	}, nil
}
