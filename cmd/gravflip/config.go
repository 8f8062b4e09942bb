package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gravflip/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the level and physics configuration as YAML.

The configuration is looked up in this order:
  --config <path>
  ~/.gravflip/configs/gravflip.yaml
  ./configs/gravflip.yaml
  built-in defaults

Examples:
  gravflip config
  gravflip config --defaults > ~/.gravflip/configs/gravflip.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults instead")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	if flagDefaults {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), string(data))
	return nil
}
