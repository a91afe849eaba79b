package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lava-tower/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config [variant]",
	Short: "Print the effective configuration",
	Long: `Print the configuration a variant would run with, as YAML.

The output resolves --config, ~/.lava-tower/configs/<variant>.yaml,
./configs/<variant>.yaml and the built-in defaults, then applies
--difficulty. Save it to a file to start a custom tuning.

Examples:
  tower config
  tower config tower_plus --difficulty hard > my-tower.yaml
  tower play --config my-tower.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	variant := config.VariantClassic
	if len(args) == 1 {
		variant = args[0]
	}

	cfg, err := config.LoadTower(variant, flagConfig)
	if err != nil {
		return err
	}
	if preset, ok := config.ParsePreset(flagDifficulty); ok {
		config.ApplyTowerPreset(&cfg, preset)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
