package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockbreaker/internal/platform/gui"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a desktop window sized to the configured field.

Controls:
  Mouse  - Move the paddle
  Click  - Serve the ball (or play again)
  Q/Esc  - Quit

Examples:
  blockbreaker window
  blockbreaker window --scale 2 --seed 7`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window scale factor")
}

func runWindow(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(os.Stderr, flagLogLevel)
	if err != nil {
		return err
	}

	cfg, source, err := loadConfig(flagConfig, flagDifficulty, flagSeed)
	if err != nil {
		return err
	}
	logger.Info("config loaded", "source", source, "difficulty", flagDifficulty)

	rt, err := runtimeConfig(cfg, int(cfg.Field.Width), int(cfg.Field.Height), flagFPS)
	if err != nil {
		return err
	}

	return gui.Run(cfg, rt, flagScale, logger)
}
