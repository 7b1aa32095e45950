package slidepuzzle

import (
	"testing"
	"time"
)

// fakeClock returns a clock function that advances by step on every call.
func fakeClock(start time.Time, step time.Duration) func() time.Time {
	now := start
	return func() time.Time {
		t := now
		now = now.Add(step)
		return t
	}
}

func TestNewBoardIsIdentity(t *testing.T) {
	for rows := MinSize; rows <= MaxSize; rows++ {
		for cols := MinSize; cols <= MaxSize; cols++ {
			b, err := New(rows, cols)
			if err != nil {
				t.Fatalf("New(%d, %d) failed: %v", rows, cols, err)
			}
			if !b.IsSolved() {
				t.Errorf("%dx%d: fresh board is not the identity layout", rows, cols)
			}
			if b.State() != StateNotStarted {
				t.Errorf("%dx%d: fresh board state = %v, want not started", rows, cols, b.State())
			}
			if b.Empty() != b.Dims().Terminal() {
				t.Errorf("%dx%d: empty at %+v, want terminal %+v", rows, cols, b.Empty(), b.Dims().Terminal())
			}
		}
	}
}

func TestNewBoardRejectsBadSize(t *testing.T) {
	if _, err := New(2, 4); err == nil {
		t.Error("New(2, 4) succeeded, want error")
	}
	if _, err := New(4, 9); err == nil {
		t.Error("New(4, 9) succeeded, want error")
	}
}

// The 3x3 walkthrough: the empty slot starts bottom-right at (2,2). Sliding
// (2,1) moves that tile right into the gap; then only the four neighbors of
// (2,1) are legal.
func TestApplyMoveWalkthrough(t *testing.T) {
	b, err := New(3, 3)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	res := b.ApplyMove(2, 1)
	if !res.Moved {
		t.Fatal("ApplyMove(2, 1) rejected, want accepted")
	}
	if res.Solved {
		t.Error("ApplyMove(2, 1) reported solved")
	}
	if b.Empty() != (Coord{Row: 2, Col: 1}) {
		t.Errorf("empty at %+v, want {2 1}", b.Empty())
	}

	// The displaced tile now sits at (2,2) and still has origin (2,1).
	slots := b.Slots()
	moved := slots[b.Dims().ToIndex(2, 2)]
	if moved.Empty || moved.Origin != (Coord{Row: 2, Col: 1}) {
		t.Errorf("slot (2,2) = %+v, want tile with origin {2 1}", moved)
	}

	// Diagonal and distant targets are silent no-ops.
	for _, bad := range []Coord{{1, 0}, {0, 0}, {1, 2}, {0, 1}} {
		before := b.Slots()
		if res := b.ApplyMove(bad.Row, bad.Col); res.Moved {
			t.Errorf("ApplyMove(%d, %d) accepted, want rejected", bad.Row, bad.Col)
		}
		after := b.Slots()
		for i := range before {
			if before[i] != after[i] {
				t.Fatalf("rejected move mutated slot %d", i)
			}
		}
	}

	// Legal neighbors of the new gap.
	for _, good := range []Coord{{2, 0}, {1, 1}, {2, 2}} {
		probe, _ := New(3, 3)
		probe.ApplyMove(2, 1)
		if res := probe.ApplyMove(good.Row, good.Col); !res.Moved {
			t.Errorf("ApplyMove(%d, %d) rejected, want accepted", good.Row, good.Col)
		}
	}
}

func TestApplyMoveOutOfBounds(t *testing.T) {
	b, _ := New(3, 3)
	cases := []Coord{{-1, 2}, {2, -1}, {3, 2}, {2, 3}}
	for _, c := range cases {
		if res := b.ApplyMove(c.Row, c.Col); res.Moved {
			t.Errorf("ApplyMove(%d, %d) accepted, want rejected", c.Row, c.Col)
		}
	}
	if b.State() != StateNotStarted {
		t.Errorf("rejected moves changed state to %v", b.State())
	}
}

func TestTimerStartsOnFirstAcceptedMove(t *testing.T) {
	b, _ := New(3, 3)
	b.clock = fakeClock(time.Unix(1000, 0), time.Second)

	// A rejected move must not start the timer.
	b.ApplyMove(0, 0)
	if b.State() != StateNotStarted {
		t.Fatalf("rejected move started the session: %v", b.State())
	}
	if b.Elapsed() != 0 {
		t.Errorf("Elapsed() = %v before the first accepted move, want 0", b.Elapsed())
	}

	if res := b.ApplyMove(2, 1); !res.Moved {
		t.Fatal("ApplyMove(2, 1) rejected")
	}
	if b.State() != StateRunning {
		t.Fatalf("state = %v after accepted move, want running", b.State())
	}

	// clock was read once at start; the next read is one step later.
	if got := b.Elapsed(); got != time.Second {
		t.Errorf("Elapsed() = %v, want 1s", got)
	}
}

func TestSolveFreezesElapsed(t *testing.T) {
	b, _ := New(3, 3)
	b.clock = fakeClock(time.Unix(1000, 0), time.Second)

	// Slide one tile out and back: two accepted moves, back to identity.
	if res := b.ApplyMove(2, 1); !res.Moved {
		t.Fatal("first move rejected")
	}
	res := b.ApplyMove(2, 2)
	if !res.Moved || !res.Solved {
		t.Fatalf("second move = %+v, want moved and solved", res)
	}
	if b.State() != StateSolved {
		t.Fatalf("state = %v, want solved", b.State())
	}

	// startedAt read at step 0, solved at step 1: one second elapsed.
	if res.Elapsed != 1.0 {
		t.Errorf("solve elapsed = %v, want 1.0", res.Elapsed)
	}
	if got := b.Elapsed(); got != time.Second {
		t.Errorf("Elapsed() = %v after solve, want 1s", got)
	}
	// Frozen: further reads do not advance.
	if got := b.Elapsed(); got != time.Second {
		t.Errorf("Elapsed() advanced after solve: %v", got)
	}
}

func TestNoMovesAfterSolved(t *testing.T) {
	b, _ := New(3, 3)
	b.ApplyMove(2, 1)
	b.ApplyMove(2, 2)
	if b.State() != StateSolved {
		t.Fatalf("state = %v, want solved", b.State())
	}

	before := b.Slots()
	if res := b.ApplyMove(2, 1); res.Moved {
		t.Error("move accepted on a solved board")
	}
	after := b.Slots()
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("solved board mutated at slot %d", i)
		}
	}
}

// Every layout must remain a permutation of the full tile set with exactly
// one empty marker, whatever sequence of moves is applied.
func TestMovesPreserveTileSet(t *testing.T) {
	b, _ := New(4, 4)
	moves := []Coord{{3, 2}, {2, 2}, {2, 3}, {1, 3}, {1, 2}, {2, 2}, {0, 0}, {2, 1}}
	for _, m := range moves {
		b.ApplyMove(m.Row, m.Col)
	}

	seen := make(map[Coord]int)
	empties := 0
	for _, s := range b.Slots() {
		if s.Empty {
			empties++
			continue
		}
		seen[s.Origin]++
	}
	if empties != 1 {
		t.Fatalf("layout has %d empty markers, want 1", empties)
	}
	d := b.Dims()
	for i := 0; i < d.Count()-1; i++ {
		origin := d.ToCoord(i)
		if seen[origin] != 1 {
			t.Errorf("tile %+v appears %d times, want 1", origin, seen[origin])
		}
	}
}

func TestSlotsReturnsCopy(t *testing.T) {
	b, _ := New(3, 3)
	slots := b.Slots()
	slots[0] = Slot{Empty: true}
	if b.Slots()[0].Empty {
		t.Error("mutating the returned slice changed the board")
	}
}
