package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/colorsort/internal/config"
	"github.com/vovakirdan/colorsort/internal/games/colorsort"
	"github.com/vovakirdan/colorsort/internal/platform/tui"
	"github.com/vovakirdan/colorsort/internal/registry"
	"github.com/vovakirdan/colorsort/internal/storage"
)

var (
	flagLevel int
	flagPick  bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Color Sort",
	Long: `Start playing from level 1, or from the level given with --level.

Controls:
  1-8 / Tab        - Pick a color (Tab cycles)
  Left/Right, h/l  - Move between bottles
  Enter/Space      - Pour the picked color into the bottle under the cursor
  Mouse click      - Pour into the clicked bottle, or pick a color swatch
  R                - Reshuffle the current level (score is kept)
  N                - Next level, once the current one is sorted
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Examples:
  colorsort play
  colorsort play --level 4
  colorsort play --pick
  colorsort play --seed 42 --config ./my-levels.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Start at this level (1-indexed)")
	playCmd.Flags().BoolVar(&flagPick, "pick", false, "Choose the starting level from a list")
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, err := newLogger(io.Discard)
	if err != nil {
		return err
	}

	puzzleCfg, err := config.LoadColorSort(flagConfig)
	if err != nil {
		return err
	}

	cfg := runtimeConfig()

	level := flagLevel
	if flagPick {
		level, err = tui.RunLevelPicker(puzzleCfg.Levels, cfg)
		if err != nil {
			return err
		}
		if level == 0 {
			return nil // Backed out
		}
	}
	if level < 0 {
		return fmt.Errorf("invalid --level %d", level)
	}
	colorsort.SetStartLevel(level)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	} else {
		defer store.Close()
	}

	game, err := registry.Create(colorsort.GameID)
	if err != nil {
		return err
	}

	_, err = tui.Run(game, store, cfg, logger)
	return err
}
