package slidepuzzle

import (
	"math/rand"
	"testing"
)

func TestShuffleNeverLandsOnIdentity(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		b, err := New(3, 3)
		if err != nil {
			t.Fatalf("New failed: %v", err)
		}
		b.Shuffle(rand.New(rand.NewSource(seed)))
		if b.IsSolved() {
			t.Errorf("seed %d: board is solved right after shuffle", seed)
		}
	}
}

// Replaying the walked cells in reverse must return the board to the
// identity layout: every shuffle step is a legal, reversible move, which is
// what guarantees solvability.
func TestShuffleIsReversible(t *testing.T) {
	sizes := []struct{ rows, cols int }{
		{3, 3}, {4, 4}, {5, 3}, {3, 8}, {8, 8},
	}

	for _, sz := range sizes {
		for seed := int64(1); seed <= 5; seed++ {
			b, err := New(sz.rows, sz.cols)
			if err != nil {
				t.Fatalf("New(%d, %d) failed: %v", sz.rows, sz.cols, err)
			}

			walk := b.Shuffle(rand.New(rand.NewSource(seed)))
			if len(walk) == 0 {
				t.Fatalf("%dx%d seed %d: empty walk", sz.rows, sz.cols, seed)
			}

			// Undo step i by sliding the tile that step i displaced: it now
			// sits where the empty slot was before the step, which is the
			// target of step i-1 (or the terminal slot for the first step).
			prev := b.Dims().Terminal()
			undo := make([]Coord, len(walk))
			undo[0] = prev
			for i := 1; i < len(walk); i++ {
				undo[i] = walk[i-1]
			}
			for i := len(walk) - 1; i >= 0; i-- {
				b.swapInto(undo[i])
			}

			if !b.IsSolved() {
				t.Errorf("%dx%d seed %d: reverse replay did not restore the identity layout", sz.rows, sz.cols, seed)
			}
		}
	}
}

func TestShuffleWalkStepsAreLegal(t *testing.T) {
	b, _ := New(4, 4)
	walk := b.Shuffle(rand.New(rand.NewSource(7)))

	prev := b.Dims().Terminal()
	for i, step := range walk {
		if !b.Dims().Contains(step.Row, step.Col) {
			t.Fatalf("step %d: %+v out of bounds", i, step)
		}
		if manhattan(step, prev) != 1 {
			t.Fatalf("step %d: %+v is not adjacent to %+v", i, step, prev)
		}
		prev = step
	}
}

func TestShuffleResetsSession(t *testing.T) {
	b, _ := New(3, 3)

	// Start a session, then shuffle over it.
	b.ApplyMove(2, 1)
	if b.State() != StateRunning {
		t.Fatalf("state = %v, want running", b.State())
	}

	b.Shuffle(rand.New(rand.NewSource(3)))
	if b.State() != StateNotStarted {
		t.Errorf("state = %v after shuffle, want not started", b.State())
	}
	if b.Elapsed() != 0 {
		t.Errorf("Elapsed() = %v after shuffle, want 0", b.Elapsed())
	}
}

func TestShufflePreservesTileSet(t *testing.T) {
	b, _ := New(5, 4)
	b.Shuffle(rand.New(rand.NewSource(11)))

	seen := make(map[Coord]bool)
	empties := 0
	for _, s := range b.Slots() {
		if s.Empty {
			empties++
			continue
		}
		if seen[s.Origin] {
			t.Fatalf("tile %+v appears twice", s.Origin)
		}
		seen[s.Origin] = true
	}
	if empties != 1 {
		t.Fatalf("layout has %d empty markers, want 1", empties)
	}
	if len(seen) != b.Dims().Count()-1 {
		t.Errorf("layout has %d tiles, want %d", len(seen), b.Dims().Count()-1)
	}
}
