// Package slidepuzzle implements the sliding-tile puzzle engine: grid
// geometry, the board state machine, the solvability-preserving shuffle,
// and the session driver that connects input events to the board.
// It contains no rendering dependencies (especially no Bubble Tea); the
// platform layer consumes it through the Presenter interface.
package slidepuzzle

import "fmt"

// Grid dimension bounds. Sizes outside this range are rejected at
// construction time.
const (
	MinSize = 3
	MaxSize = 8
)

// Coord addresses a cell on the grid. It also serves as a tile's origin
// coordinate: the cell the tile occupies in the solved layout.
type Coord struct {
	Row int
	Col int
}

// Dims holds validated grid dimensions. Immutable for the lifetime of a
// puzzle session.
type Dims struct {
	Rows int
	Cols int
}

// NewDims validates rows and cols against [MinSize, MaxSize].
func NewDims(rows, cols int) (Dims, error) {
	if rows < MinSize || rows > MaxSize {
		return Dims{}, fmt.Errorf("slidepuzzle: rows must be within [%d, %d], got %d", MinSize, MaxSize, rows)
	}
	if cols < MinSize || cols > MaxSize {
		return Dims{}, fmt.Errorf("slidepuzzle: cols must be within [%d, %d], got %d", MinSize, MaxSize, cols)
	}
	return Dims{Rows: rows, Cols: cols}, nil
}

// Count returns the number of slots on the grid.
func (d Dims) Count() int {
	return d.Rows * d.Cols
}

// ToCoord converts a row-major slot index to its (row, col) pair.
// Out-of-range indices are a caller contract violation and are not checked.
func (d Dims) ToCoord(index int) Coord {
	return Coord{Row: index / d.Cols, Col: index % d.Cols}
}

// ToIndex converts a (row, col) pair to its row-major slot index.
func (d Dims) ToIndex(row, col int) int {
	return row*d.Cols + col
}

// Contains reports whether (row, col) lies inside the grid.
func (d Dims) Contains(row, col int) bool {
	return row >= 0 && row < d.Rows && col >= 0 && col < d.Cols
}

// Terminal returns the designated empty coordinate of the solved layout,
// the bottom-right cell.
func (d Dims) Terminal() Coord {
	return Coord{Row: d.Rows - 1, Col: d.Cols - 1}
}

// Key returns the leaderboard partition key for these dimensions, "RxC".
func (d Dims) Key() string {
	return fmt.Sprintf("%dx%d", d.Rows, d.Cols)
}
