package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the application configuration.
// Search order: customPath -> ~/.puzzles/config.yaml -> ./configs/puzzles.yaml -> embedded default
func Load(customPath string) (Config, error) {
	var cfg Config

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return withDefaults(cfg), nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return withDefaults(cfg), nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/puzzles.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return withDefaults(cfg), nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return withDefaults(cfg), nil
}

// withDefaults fills any zero-valued field from the hardcoded defaults, so a
// partial config file stays usable.
func withDefaults(cfg Config) Config {
	def := Default()

	if cfg.Puzzle.DefaultRows == 0 {
		cfg.Puzzle.DefaultRows = def.Puzzle.DefaultRows
	}
	if cfg.Puzzle.DefaultCols == 0 {
		cfg.Puzzle.DefaultCols = def.Puzzle.DefaultCols
	}
	if cfg.Recaman.Terms == 0 {
		cfg.Recaman.Terms = def.Recaman.Terms
	}
	if cfg.Storage.LeaderboardPath == "" {
		cfg.Storage.LeaderboardPath = def.Storage.LeaderboardPath
	}
	if cfg.Storage.RunLogPath == "" {
		cfg.Storage.RunLogPath = def.Storage.RunLogPath
	}
	return cfg
}

// userConfigPath returns the path to a user config file, or empty if home is
// unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".puzzles", filename)
}
