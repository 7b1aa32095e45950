package slidepuzzle

import "github.com/vmorodov/tui-puzzles/internal/registry"

// ProgramID is the registry identifier of the sliding puzzle.
const ProgramID = "slider"

// Program is the registry entry for the sliding puzzle. Sessions are
// constructed per play-through via NewBoard and NewSession; the program
// value itself holds no mutable state.
type Program struct{}

func init() {
	registry.Register(ProgramID, func() registry.Program {
		return &Program{}
	})
}

// ID returns the program identifier.
func (p *Program) ID() string { return ProgramID }

// Title returns the display name.
func (p *Program) Title() string { return "Sliding Puzzle" }

// Description returns a one-line summary.
func (p *Program) Description() string {
	return "Slide tiles back into order; best times go on the leaderboard"
}
