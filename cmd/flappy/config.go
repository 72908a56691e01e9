package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

var flagShowDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or validate game configuration",
	Long: `Inspect the configuration the game runs with.

Config search order:
  1. --config <path>
  2. ~/.flappy/flappy.yaml
  3. ./configs/flappy.yaml
  4. Built-in defaults

Examples:
  flappy config show
  flappy config show --config ./my-flappy.yaml
  flappy config show --defaults > ~/.flappy/flappy.yaml
  flappy config validate ./my-flappy.yaml`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as YAML",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if flagShowDefaults {
			_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
			return err
		}
		cfg, err := config.LoadFlappy(flagConfig)
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

var configValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a configuration file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := config.LoadFlappy(args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", args[0])
		return nil
	},
}

func init() {
	configShowCmd.Flags().BoolVar(&flagShowDefaults, "defaults", false, "Print the built-in defaults, commented")
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configValidateCmd)
}
