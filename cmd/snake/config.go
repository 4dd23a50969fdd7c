package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/snake-arena/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration after applying the search order:
--config, ~/.snake/configs/snake.yaml, ./configs/snake.yaml, built-in defaults.

The output is valid YAML and can be edited and passed back with --config.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load(flagConfig)
		if err != nil {
			return err
		}
		data, err := config.Marshal(cfg)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}
