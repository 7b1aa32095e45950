package recaman

import "github.com/vmorodov/tui-puzzles/internal/registry"

// ProgramID is the registry identifier of the Recamán demo.
const ProgramID = "recaman"

// Program is the registry entry for the Recamán sequence demo.
type Program struct{}

func init() {
	registry.Register(ProgramID, func() registry.Program {
		return &Program{}
	})
}

// ID returns the program identifier.
func (p *Program) ID() string { return ProgramID }

// Title returns the display name.
func (p *Program) Title() string { return "Recamán's Sequence" }

// Description returns a one-line summary.
func (p *Program) Description() string {
	return "Generate and browse the first terms of Recamán's sequence"
}
