package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blockbreaker/internal/platform/tui"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal. The field is scaled to fit the window.

Controls:
  Mouse            - Move the paddle
  Click/Space      - Serve the ball (or play again)
  Left/Right, A/D  - Nudge the paddle
  ?                - Toggle help
  Q/Esc/Ctrl+C     - Quit

Logs go to --log-file when set; otherwise they are discarded so the
game screen stays clean.

Examples:
  blockbreaker play
  blockbreaker play --difficulty easy
  blockbreaker play --log-file ./blockbreaker.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
}

func runPlay(cmd *cobra.Command, args []string) (err error) {
	var out io.Writer = io.Discard
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr != nil {
			return fmt.Errorf("open log file: %w", openErr)
		}
		defer func() {
			if closeErr := f.Close(); closeErr != nil && err == nil {
				err = fmt.Errorf("close log file: %w", closeErr)
			}
		}()
		out = f
	}

	logger, err := newLogger(out, flagLogLevel)
	if err != nil {
		return err
	}

	cfg, source, err := loadConfig(flagConfig, flagDifficulty, flagSeed)
	if err != nil {
		return err
	}
	logger.Info("config loaded", "source", source, "difficulty", flagDifficulty)

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt, err := runtimeConfig(cfg, width, height, flagFPS)
	if err != nil {
		logger.Error("bad runtime settings", "err", err)
		return err
	}

	return tui.Run(cfg, rt, logger)
}
