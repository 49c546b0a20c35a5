// colorsort is a terminal color sort puzzle: pour colored units between
// bottles until every bottle holds a single color.
//
// Usage:
//
//	colorsort play           - Play from level 1 (or --level N, --pick)
//	colorsort menu           - Start menu with level picker and scores
//	colorsort serve          - Start SSH server for remote play
//	colorsort scores         - Show high scores
//	colorsort levels         - Show the level table in use
//
// Global flags:
//
//	--seed <value>      - Set RNG seed for reproducible levels
//	--db <path>         - Set database path (default: ~/.colorsort/scores.db)
//	--config <path>     - Use a custom puzzle config YAML
//	--log-file <path>   - Write logs to a file
//	--log-level <name>  - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/colorsort/internal/config"
	"github.com/vovakirdan/colorsort/internal/core"
	"github.com/vovakirdan/colorsort/internal/games/colorsort"
)

var (
	// Global flags
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

// logFile is closed when the command finishes.
var logFile *os.File

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "colorsort",
	Short: "Color Sort - sort colored units into bottles in your terminal",
	Long: `Color Sort is a terminal puzzle. Each level deals colored units into
bottles of four plus one or two empty spares. Pick a color, pick a bottle,
and keep going until every bottle holds a single color.

Available commands:
  play     - Play directly
  menu     - Interactive menu with level picker and scores
  serve    - Start SSH server for remote play
  scores   - View high scores
  levels   - Show the level table in use

Examples:
  colorsort play
  colorsort play --level 3
  colorsort menu
  colorsort serve --ssh :2222
  colorsort scores`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		colorsort.SetConfigPath(flagConfig)
	},
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/"+config.AppDir+"/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom puzzle config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(levelsCmd)
}

// newLogger builds the process logger. Interactive commands own the
// terminal, so without --log-file they log nowhere; fallback is used
// otherwise.
func newLogger(fallback io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	out := fallback
	if flagLogFile != "" {
		if err := os.MkdirAll(filepath.Dir(flagLogFile), 0o755); err != nil {
			return nil, fmt.Errorf("cannot create log directory: %w", err)
		}
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, fmt.Errorf("cannot open log file: %w", err)
		}
		logFile = f
		out = f
	}

	return log.NewWithOptions(out, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "colorsort",
	}), nil
}

// runtimeConfig sizes the screen from the terminal, with 80x24 as a fallback.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.Seed = flagSeed
	return cfg
}
