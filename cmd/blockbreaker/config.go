package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockbreaker/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a game would start with, after the config
search path, --difficulty and --seed have been applied. The output is valid
YAML and can be saved as ~/.blockbreaker/configs/blockbreaker.yaml.

Examples:
  blockbreaker config
  blockbreaker config --difficulty hard > ~/.blockbreaker/configs/blockbreaker.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, source, err := loadConfig(flagConfig, flagDifficulty, flagSeed)
	if err != nil {
		return err
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "# source: %s\n", source)
	_, err = out.Write(data)
	return err
}
