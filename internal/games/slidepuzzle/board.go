package slidepuzzle

import (
	"time"
)

// Slot is one position in the row-major tile layout. Exactly one slot on the
// board carries the empty marker at any time; every other slot holds the
// origin coordinate of the tile occupying it.
type Slot struct {
	Origin Coord
	Empty  bool
}

// State is the lifecycle of a puzzle session.
type State int

const (
	StateNotStarted State = iota
	StateRunning
	StateSolved
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not started"
	case StateRunning:
		return "running"
	case StateSolved:
		return "solved"
	default:
		return "unknown"
	}
}

// MoveResult reports the outcome of ApplyMove. Rejected moves leave every
// field zero.
type MoveResult struct {
	Moved   bool
	Solved  bool
	Elapsed float64 // seconds, set only when Solved
}

// Board owns the tile layout, the cached empty position, and the session
// timer. All mutation goes through ApplyMove and Shuffle; both keep the
// cached empty position in sync with the layout.
type Board struct {
	dims      Dims
	slots     []Slot
	empty     Coord
	state     State
	startedAt time.Time
	solvedIn  time.Duration

	// clock is swapped out by tests for deterministic timing.
	clock func() time.Time
}

// New builds a board in the identity layout: slot i holds the tile with
// origin ToCoord(i), except the terminal slot, which is empty. The session
// starts in StateNotStarted.
func New(rows, cols int) (*Board, error) {
	dims, err := NewDims(rows, cols)
	if err != nil {
		return nil, err
	}

	b := &Board{
		dims:  dims,
		slots: make([]Slot, dims.Count()),
		clock: time.Now,
	}
	b.reset()
	return b, nil
}

// reset restores the identity layout and clears the session timer.
func (b *Board) reset() {
	terminal := b.dims.Count() - 1
	for i := range b.slots {
		if i == terminal {
			b.slots[i] = Slot{Empty: true}
			continue
		}
		b.slots[i] = Slot{Origin: b.dims.ToCoord(i)}
	}
	b.empty = b.dims.Terminal()
	b.state = StateNotStarted
	b.startedAt = time.Time{}
	b.solvedIn = 0
}

// Dims returns the grid dimensions.
func (b *Board) Dims() Dims {
	return b.dims
}

// State returns the current session state.
func (b *Board) State() State {
	return b.state
}

// Empty returns the cached position of the empty slot.
func (b *Board) Empty() Coord {
	return b.empty
}

// Slots returns a copy of the tile layout in row-major order.
func (b *Board) Slots() []Slot {
	out := make([]Slot, len(b.slots))
	copy(out, b.slots)
	return out
}

// Elapsed returns the session's running time: zero before the first
// accepted move, frozen once solved.
func (b *Board) Elapsed() time.Duration {
	switch b.state {
	case StateNotStarted:
		return 0
	case StateSolved:
		return b.solvedIn
	default:
		return b.clock().Sub(b.startedAt)
	}
}

// ApplyMove attempts to slide the tile at (row, col) into the empty slot.
// Moves are rejected silently — no state change, zero MoveResult — when the
// session is already solved, the target is out of bounds, or the target is
// not orthogonally adjacent to the empty slot. An accepted first move starts
// the session timer; an accepted move that produces the identity layout
// transitions the session to solved and reports the elapsed time.
func (b *Board) ApplyMove(row, col int) MoveResult {
	if b.state == StateSolved {
		return MoveResult{}
	}
	if !b.dims.Contains(row, col) {
		return MoveResult{}
	}
	target := Coord{Row: row, Col: col}
	if manhattan(target, b.empty) != 1 {
		return MoveResult{}
	}

	if b.state == StateNotStarted {
		b.state = StateRunning
		b.startedAt = b.clock()
	}

	b.swapInto(target)

	if !b.IsSolved() {
		return MoveResult{Moved: true}
	}

	b.state = StateSolved
	b.solvedIn = b.clock().Sub(b.startedAt)
	return MoveResult{Moved: true, Solved: true, Elapsed: b.solvedIn.Seconds()}
}

// swapInto exchanges the empty marker with the tile at target and updates
// the cached empty position. target must be adjacent and in bounds.
func (b *Board) swapInto(target Coord) {
	ei := b.dims.ToIndex(b.empty.Row, b.empty.Col)
	ti := b.dims.ToIndex(target.Row, target.Col)
	b.slots[ei], b.slots[ti] = b.slots[ti], b.slots[ei]
	b.empty = target
}

// IsSolved reports whether the layout is the identity layout: every slot's
// origin coordinate equals its own coordinate and the empty marker sits at
// the terminal slot. Pure; callable at any time.
func (b *Board) IsSolved() bool {
	terminal := b.dims.Count() - 1
	for i, s := range b.slots {
		if s.Empty {
			if i != terminal {
				return false
			}
			continue
		}
		if s.Origin != b.dims.ToCoord(i) {
			return false
		}
	}
	return true
}

func manhattan(a, b Coord) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
