package config

import (
	_ "embed"
)

//go:embed defaults/puzzles.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration, used as the last
// fallback when even the embedded YAML fails to parse.
func Default() Config {
	return Config{
		Puzzle: PuzzleConfig{
			DefaultRows: 4,
			DefaultCols: 4,
		},
		Recaman: RecamanConfig{
			Terms: 1000,
		},
		Storage: StorageConfig{
			LeaderboardPath: "~/.puzzles/leaderboard.json",
			RunLogPath:      "~/.puzzles/runs.db",
		},
	}
}

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	return defaultYAML
}
