package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/colorsort/internal/config"
	"github.com/vovakirdan/colorsort/internal/games/colorsort/core"
)

var flagDumpDefault bool

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Show the level table in use",
	Long: `Print the palette and level table that play would use, after the
config search (--config, ~/.colorsort/configs/colorsort.yaml,
./configs/colorsort.yaml, built-in default).

Levels past the end of the table repeat the last row.

Examples:
  colorsort levels
  colorsort levels --config ./my-levels.yaml
  colorsort levels --default > ~/.colorsort/configs/colorsort.yaml`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

func init() {
	levelsCmd.Flags().BoolVar(&flagDumpDefault, "default", false, "Print the built-in config YAML and exit")
}

func runLevels(_ *cobra.Command, _ []string) error {
	if flagDumpDefault {
		fmt.Print(string(config.GetDefaultYAML()))
		return nil
	}

	cfg, err := config.LoadColorSort(flagConfig)
	if err != nil {
		return err
	}

	fmt.Println("Palette:")
	for i, c := range cfg.Palette {
		fmt.Printf("  %d  %s\n", i+1, c)
	}
	fmt.Println()

	fmt.Printf("  %-5s  %-10s  %-7s  %s\n", "Level", "Containers", "Bottles", "Colors")
	fmt.Printf("  %-5s  %-10s  %-7s  %s\n", "-----", "----------", "-------", "------")
	for i, lvl := range cfg.Levels {
		bottles := lvl.Containers + core.Spares(lvl.Containers)
		fmt.Printf("  %-5d  %-10d  %-7d  %d\n", i+1, lvl.Containers, bottles, lvl.Colors)
	}
	return nil
}
