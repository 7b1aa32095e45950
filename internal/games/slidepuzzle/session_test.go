package slidepuzzle

import (
	"errors"
	"testing"
)

// recordingPresenter captures the effects a session pushes out.
type recordingPresenter struct {
	presents    int
	lastEmpty   Coord
	solvedCalls int
	solvedIn    float64
}

func (p *recordingPresenter) Present(slots []Slot, empty Coord) {
	p.presents++
	p.lastEmpty = empty
}

func (p *recordingPresenter) NotifySolved(elapsedSeconds float64) {
	p.solvedCalls++
	p.solvedIn = elapsedSeconds
}

// fakeRecorder captures Record calls and can fail on demand.
type fakeRecorder struct {
	calls    int
	rows     int
	cols     int
	elapsed  float64
	initials string
	err      error
}

func (r *fakeRecorder) Record(rows, cols int, elapsedSeconds float64, initials string) error {
	r.calls++
	r.rows, r.cols = rows, cols
	r.elapsed = elapsedSeconds
	r.initials = initials
	return r.err
}

func TestHandleCellActivated(t *testing.T) {
	b, _ := New(3, 3)
	p := &recordingPresenter{}
	s := NewSession(b, p, nil, nil)

	// Illegal target: no effects at all.
	s.HandleCellActivated(0, 0)
	if p.presents != 0 {
		t.Errorf("Present fired %d times for a rejected move", p.presents)
	}

	// Legal target: one Present with the new empty position.
	s.HandleCellActivated(2, 1)
	if p.presents != 1 {
		t.Fatalf("Present fired %d times, want 1", p.presents)
	}
	if p.lastEmpty != (Coord{Row: 2, Col: 1}) {
		t.Errorf("Present empty = %+v, want {2 1}", p.lastEmpty)
	}
}

// An arrow targets the empty slot's neighbor opposite the arrow, so the
// tile slides in the pressed direction. With the empty at the terminal
// (2,2) of a 3x3 grid, up and left have no tile on that side and are
// silent no-ops; down slides (1,2) downward, right slides (2,1) rightward.
func TestHandleDirectionKey(t *testing.T) {
	cases := []struct {
		name      string
		dir       Direction
		wantMoved bool
		wantEmpty Coord
	}{
		{"up slides tile below", DirUp, false, Coord{2, 2}},   // nothing below the terminal
		{"down slides tile above", DirDown, true, Coord{1, 2}},
		{"left slides tile right", DirLeft, false, Coord{2, 2}}, // nothing right of the terminal
		{"right slides tile left", DirRight, true, Coord{2, 1}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b, _ := New(3, 3)
			p := &recordingPresenter{}
			s := NewSession(b, p, nil, nil)

			s.HandleDirectionKey(tc.dir)
			if tc.wantMoved && p.presents != 1 {
				t.Fatalf("Present fired %d times, want 1", p.presents)
			}
			if !tc.wantMoved && p.presents != 0 {
				t.Fatalf("Present fired %d times for an edge no-op", p.presents)
			}
			if b.Empty() != tc.wantEmpty {
				t.Errorf("empty at %+v, want %+v", b.Empty(), tc.wantEmpty)
			}
		})
	}
}

func TestNotifySolvedFiresOnce(t *testing.T) {
	b, _ := New(3, 3)
	p := &recordingPresenter{}
	s := NewSession(b, p, nil, nil)

	// Out and back: the second move solves.
	s.HandleCellActivated(2, 1)
	s.HandleCellActivated(2, 2)

	if p.solvedCalls != 1 {
		t.Fatalf("NotifySolved fired %d times, want 1", p.solvedCalls)
	}
	if p.solvedIn < 0 {
		t.Errorf("NotifySolved elapsed = %v, want >= 0", p.solvedIn)
	}

	// Input after the solve is inert: no more presents, no more notifies.
	s.HandleCellActivated(2, 1)
	s.HandleDirectionKey(DirDown)
	if p.presents != 2 {
		t.Errorf("Present fired %d times, want 2", p.presents)
	}
	if p.solvedCalls != 1 {
		t.Errorf("NotifySolved fired %d times after the solve, want 1", p.solvedCalls)
	}
}

func TestSubmitScore(t *testing.T) {
	b, _ := New(3, 3)
	p := &recordingPresenter{}
	r := &fakeRecorder{}
	s := NewSession(b, p, r, nil)

	// Not solved yet.
	if err := s.SubmitScore("AAA"); !errors.Is(err, ErrNotSolved) {
		t.Fatalf("SubmitScore before solve = %v, want ErrNotSolved", err)
	}

	s.HandleCellActivated(2, 1)
	s.HandleCellActivated(2, 2)

	if err := s.SubmitScore("ACE"); err != nil {
		t.Fatalf("SubmitScore failed: %v", err)
	}
	if r.calls != 1 {
		t.Fatalf("Record called %d times, want 1", r.calls)
	}
	if r.rows != 3 || r.cols != 3 {
		t.Errorf("Record size = %dx%d, want 3x3", r.rows, r.cols)
	}
	if r.initials != "ACE" {
		t.Errorf("Record initials = %q, want \"ACE\"", r.initials)
	}
	if r.elapsed != p.solvedIn {
		t.Errorf("Record elapsed = %v, NotifySolved reported %v", r.elapsed, p.solvedIn)
	}

	// At most one record per session.
	if err := s.SubmitScore("ACE"); !errors.Is(err, ErrNotSolved) {
		t.Errorf("second SubmitScore = %v, want ErrNotSolved", err)
	}
	if r.calls != 1 {
		t.Errorf("Record called %d times after resubmit, want 1", r.calls)
	}
}

func TestSubmitScoreWriteFailure(t *testing.T) {
	b, _ := New(3, 3)
	p := &recordingPresenter{}
	r := &fakeRecorder{err: errors.New("disk full")}
	s := NewSession(b, p, r, nil)

	s.HandleCellActivated(2, 1)
	s.HandleCellActivated(2, 2)

	if err := s.SubmitScore("BOB"); err == nil {
		t.Fatal("SubmitScore succeeded, want write error")
	}

	// The failure must not consume the attempt: a retry reaches the store.
	r.err = nil
	if err := s.SubmitScore("BOB"); err != nil {
		t.Fatalf("retry failed: %v", err)
	}
	if r.calls != 2 {
		t.Errorf("Record called %d times, want 2", r.calls)
	}
}

func TestSubmitScoreWithoutStore(t *testing.T) {
	b, _ := New(3, 3)
	p := &recordingPresenter{}
	s := NewSession(b, p, nil, nil)

	s.HandleCellActivated(2, 1)
	s.HandleCellActivated(2, 2)

	if err := s.SubmitScore("AAA"); err != nil {
		t.Fatalf("SubmitScore without a store = %v, want nil", err)
	}
	if err := s.SubmitScore("AAA"); !errors.Is(err, ErrNotSolved) {
		t.Errorf("second SubmitScore = %v, want ErrNotSolved", err)
	}
}
