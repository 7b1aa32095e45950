package slidepuzzle

import (
	"errors"

	"github.com/charmbracelet/log"
)

// Direction is a normalized arrow-key press, already translated from
// whatever raw input the platform received.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Presenter is the outbound surface of a session: the rendering collaborator
// the driver pushes effects to. Present fires after every accepted move;
// NotifySolved fires exactly once, on the solved transition. The presenter
// is expected to collect player initials and hand them back through
// Session.SubmitScore, or decline by never calling it.
type Presenter interface {
	Present(slots []Slot, empty Coord)
	NotifySolved(elapsedSeconds float64)
}

// ScoreRecorder persists completion times. Implemented by
// storage.Leaderboard.
type ScoreRecorder interface {
	Record(rows, cols int, elapsedSeconds float64, initials string) error
}

// ErrNotSolved is returned by SubmitScore before the puzzle is solved or
// after the score has already been recorded.
var ErrNotSolved = errors.New("slidepuzzle: no unrecorded solved session")

// Session glues normalized input events to the board and triggers
// presentation and leaderboard recording on state transitions. It is the
// only engine component that talks to the rendering collaborator. All event
// handling is synchronous; there is no internal parallelism.
type Session struct {
	board     *Board
	presenter Presenter
	scores    ScoreRecorder // may be nil: play without persistence
	logger    *log.Logger

	elapsed  float64
	recorded bool
}

// NewSession wires a board to its presenter and score store. scores may be
// nil when persistence is unavailable; logger may be nil for the default.
func NewSession(board *Board, presenter Presenter, scores ScoreRecorder, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.Default()
	}
	return &Session{
		board:     board,
		presenter: presenter,
		scores:    scores,
		logger:    logger,
	}
}

// Board exposes the underlying board for read-only inspection (timer
// display, dimensions).
func (s *Session) Board() *Board {
	return s.board
}

// HandleCellActivated processes a pointer activation of the given grid cell.
// Illegal targets are silent no-ops: no state change, no effects.
func (s *Session) HandleCellActivated(row, col int) {
	s.apply(row, col)
}

// HandleDirectionKey processes an arrow-key press. The key targets the
// neighbor of the empty slot on the side opposite the arrow, so the tile
// slides in the direction the player pressed: up slides the tile below the
// empty slot upward into it.
func (s *Session) HandleDirectionKey(dir Direction) {
	empty := s.board.Empty()
	target := empty
	switch dir {
	case DirUp:
		target.Row++
	case DirDown:
		target.Row--
	case DirLeft:
		target.Col++
	case DirRight:
		target.Col--
	default:
		return
	}
	s.apply(target.Row, target.Col)
}

func (s *Session) apply(row, col int) {
	res := s.board.ApplyMove(row, col)
	if !res.Moved {
		return
	}
	s.presenter.Present(s.board.Slots(), s.board.Empty())
	if res.Solved {
		s.elapsed = res.Elapsed
		s.presenter.NotifySolved(res.Elapsed)
	}
}

// SubmitScore records the solved session's time under the given initials.
// It records at most once per session; a write failure is logged as a
// warning and returned so the caller can surface it without losing the
// session. Length policy for initials belongs to the caller, not the store.
func (s *Session) SubmitScore(initials string) error {
	if s.board.State() != StateSolved || s.recorded {
		return ErrNotSolved
	}
	if s.scores == nil {
		s.recorded = true
		return nil
	}
	dims := s.board.Dims()
	if err := s.scores.Record(dims.Rows, dims.Cols, s.elapsed, initials); err != nil {
		s.logger.Warn("could not record completion time",
			"size", dims.Key(), "initials", initials, "error", err)
		return err
	}
	s.recorded = true
	return nil
}
