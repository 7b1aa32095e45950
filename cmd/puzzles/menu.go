package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vmorodov/tui-puzzles/internal/platform/tui"
	"github.com/vmorodov/tui-puzzles/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the interactive launcher menu",
	Long: `Start the platform in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a program.
Leaving a program returns you to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select program
  Tab          - View high scores
  Q            - Quit

Examples:
  puzzles menu
  puzzles menu --leaderboard ./scores.json`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	width, height := terminalSize()

	logger := log.New(os.Stderr)

	scores, err := storage.NewLeaderboard(cfg.Storage.LeaderboardPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open leaderboard: %v\n", err)
		scores = nil
	}

	runLog, err := storage.OpenRunLog(cfg.Storage.RunLogPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run log database: %v\n", err)
	}
	defer func() {
		if runLog != nil {
			runLog.Close()
		}
	}()

	runErr := tui.RunSession(tui.Options{
		Config:      cfg,
		Leaderboard: scores,
		RunLog:      runLog,
		Logger:      logger,
		Seed:        flagSeed,
		Width:       width,
		Height:      height,
	})
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}
