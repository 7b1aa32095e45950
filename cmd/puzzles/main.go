// puzzles is a TUI platform for terminal puzzle programs.
//
// Usage:
//
//	puzzles list              - List available programs
//	puzzles play <program>    - Run a program directly
//	puzzles menu              - Start the interactive launcher menu
//	puzzles scores [size]     - Show recorded solve times
//	puzzles serve             - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>       - Custom config YAML
//	--leaderboard <path>  - Leaderboard JSON file (default: ~/.puzzles/leaderboard.json)
//	--db <path>           - Run log database (default: ~/.puzzles/runs.db)
//	--seed <value>        - Shuffle seed for reproducible boards
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vmorodov/tui-puzzles/internal/config"

	// Import programs to register them
	_ "github.com/vmorodov/tui-puzzles/internal/games/recaman"
	_ "github.com/vmorodov/tui-puzzles/internal/games/slidepuzzle"
)

var (
	// Global flags
	flagConfig      string
	flagLeaderboard string
	flagDBPath      string
	flagSeed        int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "puzzles",
	Short: "TUI Puzzles - Terminal puzzle programs",
	Long: `TUI Puzzles is a terminal platform for puzzle programs, built around
a sliding-tile puzzle with timed solves and a persistent leaderboard.

Available commands:
  list     - Show all available programs
  play     - Run a specific program directly
  menu     - Interactive launcher menu
  scores   - View recorded solve times
  serve    - Start SSH server for remote play

Examples:
  puzzles list
  puzzles play slider --rows 4 --cols 4
  puzzles menu
  puzzles scores 4x4
  puzzles serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLeaderboard, "leaderboard", "", "Path to leaderboard JSON file")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to run log database")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Shuffle seed (0 = random based on time)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig resolves the configuration and applies flag overrides.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not load config: %v\n", err)
		cfg = config.Default()
	}
	if flagLeaderboard != "" {
		cfg.Storage.LeaderboardPath = flagLeaderboard
	}
	if flagDBPath != "" {
		cfg.Storage.RunLogPath = flagDBPath
	}
	return cfg
}

// terminalSize returns the current terminal dimensions with fallbacks.
func terminalSize() (width, height int) {
	width, height = 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}
