package main

import (
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/colorsort/internal/config"
	"github.com/vovakirdan/colorsort/internal/games/colorsort"
	"github.com/vovakirdan/colorsort/internal/platform/tui"
	"github.com/vovakirdan/colorsort/internal/registry"
	"github.com/vovakirdan/colorsort/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start Color Sort with a menu",
	Long: `Start in interactive menu mode.

Play starts at level 1, Select Level lists the level table, and High
Scores shows the best runs. Leaving a game with Esc returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - High scores
  Q            - Quit

Examples:
  colorsort menu
  colorsort menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, err := newLogger(io.Discard)
	if err != nil {
		return err
	}

	puzzleCfg, err := config.LoadColorSort(flagConfig)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	} else {
		defer store.Close()
	}

	cfg := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(cfg)
		if err != nil {
			return err
		}
		cfg = menuResult.Config

		level := 0
		switch menuResult.Choice {
		case tui.MenuChoiceQuit:
			return nil

		case tui.MenuChoiceScores:
			goBack, err := tui.RunScoreboard(store, colorsort.GameID, "Color Sort", cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}
			continue

		case tui.MenuChoicePickLevel:
			level, err = tui.RunLevelPicker(puzzleCfg.Levels, cfg)
			if err != nil {
				return err
			}
			if level == 0 {
				continue
			}
		}

		game, err := registry.Create(colorsort.GameID)
		if err != nil {
			return err
		}
		colorsort.SetStartLevel(level)

		// New seed for each run unless one was pinned
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		back, err := tui.Run(game, store, cfg, logger)
		if err != nil {
			return err
		}
		if !back {
			return nil
		}
	}
}
