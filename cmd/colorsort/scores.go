package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/colorsort/internal/games/colorsort"
	"github.com/vovakirdan/colorsort/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top high scores with the level each run reached.

Examples:
  colorsort scores
  colorsort scores --limit 25
  colorsort scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded scores")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("cannot open scores database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(colorsort.GameID); err != nil {
			return err
		}
		fmt.Println("Scores cleared.")
		return nil
	}

	scores, err := store.TopScores(colorsort.GameID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("cannot retrieve scores: %w", err)
	}

	fmt.Println("High Scores - Color Sort")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Run 'colorsort play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-5s  %s\n", "Rank", "Score", "Level", "Date")
	fmt.Printf("  %-4s  %-8s  %-5s  %s\n", "----", "-----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-5d  %s\n", i+1, entry.Score, entry.Level, dateStr)
	}

	if stats, err := store.Stats(colorsort.GameID); err == nil {
		fmt.Println()
		fmt.Printf("Runs: %d  Best: %d  Best level: %d  Average: %.1f\n",
			stats.RunsCount, stats.HighScore, stats.BestLevel, stats.AvgScore)
	}
	return nil
}
