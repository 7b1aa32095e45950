// Package storage provides the persistence backends of the puzzle platform:
// the JSON leaderboard file holding completion times per grid size, and a
// SQLite log of Recamán generation runs.
package storage

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
)

// maxEntriesPerSize caps how many times are kept per grid size.
const maxEntriesPerSize = 10

// Entry is a single leaderboard record. Time is in seconds, rounded to two
// decimals by the store.
type Entry struct {
	Initials string  `json:"initials"`
	Time     float64 `json:"time"`
}

// Leaderboard persists completion times keyed by grid size ("RxC") in a
// single JSON document. Every mutation is a full read-modify-write cycle;
// there is no cross-process locking, matching the single-session model.
type Leaderboard struct {
	path string
}

// SizeKey formats the leaderboard partition key for a grid size.
func SizeKey(rows, cols int) string {
	return fmt.Sprintf("%dx%d", rows, cols)
}

// NewLeaderboard creates a leaderboard store backed by the given file path.
// A leading ~ is expanded to the user's home directory. The file itself is
// created lazily on the first Record.
func NewLeaderboard(path string) (*Leaderboard, error) {
	expanded, err := expandHome(path)
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}
	return &Leaderboard{path: expanded}, nil
}

// Path returns the resolved backing file path.
func (l *Leaderboard) Path() string {
	return l.path
}

// Load reads the persisted mapping. A missing, empty, or unparsable backing
// file degrades to an empty mapping; parse failures are never propagated.
func (l *Leaderboard) Load() map[string][]Entry {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return map[string][]Entry{}
	}

	var board map[string][]Entry
	if err := json.Unmarshal(data, &board); err != nil || board == nil {
		return map[string][]Entry{}
	}
	return board
}

// Record appends a completion time for the given grid size, re-sorts that
// size's entries ascending by time, keeps the ten smallest, and rewrites the
// whole document atomically. The time is rounded to two decimals; initials
// are stored as given — truncation is caller policy.
func (l *Leaderboard) Record(rows, cols int, elapsedSeconds float64, initials string) error {
	board := l.Load()

	key := SizeKey(rows, cols)
	entries := append(board[key], Entry{
		Initials: initials,
		Time:     math.Round(elapsedSeconds*100) / 100,
	})
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Time < entries[j].Time
	})
	if len(entries) > maxEntriesPerSize {
		entries = entries[:maxEntriesPerSize]
	}
	board[key] = entries

	return l.write(board)
}

// TopTimes returns the recorded entries for a grid size, ascending by time.
func (l *Leaderboard) TopTimes(rows, cols int) []Entry {
	return l.Load()[SizeKey(rows, cols)]
}

// Sizes returns every size key present in the store, sorted.
func (l *Leaderboard) Sizes() []string {
	board := l.Load()
	keys := make([]string, 0, len(board))
	for k := range board {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// write rewrites the whole document: marshal, write to a temp file next to
// the target, then rename over it so readers never observe a torn file.
func (l *Leaderboard) write(board map[string][]Entry) error {
	dir := filepath.Dir(l.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	data, err := json.MarshalIndent(board, "", "  ")
	if err != nil {
		return fmt.Errorf("storage: cannot encode leaderboard: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".leaderboard-*.json")
	if err != nil {
		return fmt.Errorf("storage: cannot create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("storage: cannot write leaderboard: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("storage: cannot write leaderboard: %w", err)
	}

	if err := os.Rename(tmpPath, l.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("storage: cannot replace leaderboard file: %w", err)
	}
	return nil
}

// expandHome resolves a leading ~ in a file path.
func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
