package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vmorodov/tui-puzzles/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [size]",
	Short: "Show recorded solve times",
	Long: `Display the top 10 solve times per grid size.

With a size argument (e.g. 4x4), shows that size only.
Without one, shows every size that has recorded times.

Examples:
  puzzles scores
  puzzles scores 4x4
  puzzles scores 5x3`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	scores, err := storage.NewLeaderboard(cfg.Storage.LeaderboardPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening leaderboard: %v\n", err)
		os.Exit(1)
	}

	board := scores.Load()
	sizes := scores.Sizes()

	if len(args) == 1 {
		size := strings.ToLower(strings.TrimSpace(args[0]))
		entries, ok := board[size]
		if !ok || len(entries) == 0 {
			fmt.Printf("No times recorded for %s yet.\n", size)
			fmt.Println("Play 'puzzles play slider' to set the first one!")
			return
		}
		printSize(size, entries)
		return
	}

	if len(sizes) == 0 {
		fmt.Println("No times recorded yet.")
		fmt.Println("Play 'puzzles play slider' to set the first one!")
		return
	}

	for i, size := range sizes {
		if i > 0 {
			fmt.Println()
		}
		printSize(size, board[size])
	}
}

func printSize(size string, entries []storage.Entry) {
	fmt.Printf("High Scores - %s\n", size)
	fmt.Println()
	fmt.Printf("  %-4s  %-8s  %s\n", "Rank", "Initials", "Time (s)")
	fmt.Printf("  %-4s  %-8s  %s\n", "----", "--------", "--------")
	for i, e := range entries {
		fmt.Printf("  %-4d  %-8s  %.2f\n", i+1, e.Initials, e.Time)
	}
}
