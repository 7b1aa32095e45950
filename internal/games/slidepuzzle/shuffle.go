package slidepuzzle

import (
	"math/rand"
	"time"
)

// shuffleFactor scales the random-walk length. The walk visits
// rows*cols*(rows+cols)*shuffleFactor cells, long enough that the shuffled
// layout is not visually close to solved on any supported grid size.
const shuffleFactor = 2

// Shuffle randomizes the layout by walking the empty slot through a long
// sequence of legal single-tile moves. Because every step is a reversible
// legal move, the resulting layout is always solvable — a uniform random
// permutation of tiles would be parity-locked about half the time.
//
// The walk uses the same swap mechanics as ApplyMove but bypasses the timer
// and solved detection. If the walk happens to end back on the identity
// layout, it runs again; callers never receive an already-solved board.
// Afterwards the session state is reset to not started.
//
// The returned sequence lists every cell the empty slot moved into, in
// order. Replaying it in reverse returns the board to the layout it had
// before the call.
func (b *Board) Shuffle(rng *rand.Rand) []Coord {
	steps := b.dims.Rows * b.dims.Cols * (b.dims.Rows + b.dims.Cols) * shuffleFactor

	var walk []Coord
	for {
		for i := 0; i < steps; i++ {
			target := b.randomNeighbor(rng)
			b.swapInto(target)
			walk = append(walk, target)
		}
		if !b.IsSolved() {
			break
		}
	}

	b.state = StateNotStarted
	b.startedAt = time.Time{}
	b.solvedIn = 0
	return walk
}

// randomNeighbor picks one in-bounds orthogonal neighbor of the empty slot
// uniformly at random. Every cell of a valid grid has at least two.
func (b *Board) randomNeighbor(rng *rand.Rand) Coord {
	candidates := make([]Coord, 0, 4)
	for _, d := range [...]Coord{{Row: -1}, {Row: 1}, {Col: -1}, {Col: 1}} {
		r, c := b.empty.Row+d.Row, b.empty.Col+d.Col
		if b.dims.Contains(r, c) {
			candidates = append(candidates, Coord{Row: r, Col: c})
		}
	}
	return candidates[rng.Intn(len(candidates))]
}
