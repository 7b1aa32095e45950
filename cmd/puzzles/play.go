package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vmorodov/tui-puzzles/internal/platform/tui"
	"github.com/vmorodov/tui-puzzles/internal/registry"
	"github.com/vmorodov/tui-puzzles/internal/storage"
)

var (
	flagRows int
	flagCols int
)

var playCmd = &cobra.Command{
	Use:   "play <program>",
	Short: "Run a program",
	Long: `Start the specified program directly, skipping the launcher menu.

Sliding puzzle controls:
  Arrows/WASD  - Slide a tile into the empty slot
  Mouse click  - Slide the clicked tile (must neighbor the empty slot)
  Q/Esc        - Leave
  Ctrl+C       - Quit

Examples:
  puzzles play slider
  puzzles play slider --rows 5 --cols 3
  puzzles play slider --seed 42
  puzzles play recaman`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagRows, "rows", 0, "Puzzle rows (3-8, skips the size prompt)")
	playCmd.Flags().IntVar(&flagCols, "cols", 0, "Puzzle columns (3-8, skips the size prompt)")
}

func runPlay(cmd *cobra.Command, args []string) {
	programID := args[0]

	if !registry.Exists(programID) {
		fmt.Fprintf(os.Stderr, "Error: unknown program %q\n", programID)
		fmt.Fprintln(os.Stderr, "Run 'puzzles list' to see available programs.")
		os.Exit(1)
	}

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
		// Continue without the run log
	}
	defer func() {
		if runLog != nil {
			runLog.Close()
		}
	}()

	runErr := tui.RunSession(tui.Options{
		Config:       cfg,
		Leaderboard:  scores,
		RunLog:       runLog,
		Logger:       logger,
		StartProgram: programID,
		Rows:         flagRows,
		Cols:         flagCols,
		Seed:         flagSeed,
		Width:        width,
		Height:       height,
	})
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", runErr)
		os.Exit(1)
	}
}
