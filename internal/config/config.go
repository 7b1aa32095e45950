// Package config provides YAML-based configuration loading for the puzzle
// platform. Configuration is an explicit value passed into the engine and
// platform at construction; there is no package-level mutable state.
package config

// Config is the top-level application configuration.
type Config struct {
	Puzzle  PuzzleConfig  `yaml:"puzzle"`
	Recaman RecamanConfig `yaml:"recaman"`
	Storage StorageConfig `yaml:"storage"`
}

// PuzzleConfig holds sliding puzzle defaults. Grid dimensions must stay
// within [3, 8]; the engine re-validates at construction.
type PuzzleConfig struct {
	DefaultRows int `yaml:"default_rows"`
	DefaultCols int `yaml:"default_cols"`
}

// RecamanConfig holds the Recamán demo parameters.
type RecamanConfig struct {
	Terms int `yaml:"terms"`
}

// StorageConfig holds the persistence paths.
type StorageConfig struct {
	LeaderboardPath string `yaml:"leaderboard_path"`
	RunLogPath      string `yaml:"run_log_path"`
}
