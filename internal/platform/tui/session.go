package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vmorodov/tui-puzzles/internal/config"
	"github.com/vmorodov/tui-puzzles/internal/games/recaman"
	"github.com/vmorodov/tui-puzzles/internal/games/slidepuzzle"
	"github.com/vmorodov/tui-puzzles/internal/storage"
)

// screen identifies which view the session is showing.
type screen int

const (
	screenMenu screen = iota
	screenSetup
	screenPuzzle
	screenRecaman
	screenScores
)

// Options configures a terminal session.
type Options struct {
	Config      config.Config
	Leaderboard *storage.Leaderboard
	RunLog      *storage.RunLog
	Logger      *log.Logger

	// StartProgram launches a single program directly instead of the menu.
	// Leaving the program then quits the session.
	StartProgram string

	// Rows and Cols override the configured puzzle size when both are set.
	Rows int
	Cols int

	// Seed fixes the shuffle sequence; zero means derive from the clock.
	Seed int64

	Width  int
	Height int
}

// SessionModel is the root Bubble Tea model for one terminal session. It
// owns the current screen and switches between screens as sub-models
// signal completion.
type SessionModel struct {
	opts   Options
	logger *log.Logger

	screen     screen
	standalone bool

	menu      MenuModel
	setup     SetupModel
	puzzle    PuzzleModel
	recaman   RecamanModel
	scores    ScoreboardModel
	keyMapper KeyMapper

	width  int
	height int
}

// NewSessionModel creates a session. With StartProgram set the session
// opens directly on that program and exits when the player leaves it.
func NewSessionModel(opts Options) (SessionModel, error) {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	m := SessionModel{
		opts:   opts,
		logger: opts.Logger,
		width:  opts.Width,
		height: opts.Height,
		menu:   NewMenuModel(opts.Width, opts.Height),
	}

	if opts.StartProgram == "" {
		m.screen = screenMenu
		return m, nil
	}

	m.standalone = true
	if err := m.openProgram(opts.StartProgram); err != nil {
		return SessionModel{}, err
	}
	return m, nil
}

// openProgram switches the session to the named program's screen.
func (m *SessionModel) openProgram(id string) error {
	switch id {
	case slidepuzzle.ProgramID:
		rows, cols := m.puzzleSize()
		// Standalone play with an explicit size skips the setup screen.
		if m.standalone && m.opts.Rows > 0 && m.opts.Cols > 0 {
			return m.startPuzzle(rows, cols)
		}
		m.setup = NewSetupModel(rows, cols, m.width, m.height)
		m.screen = screenSetup
		return nil
	case recaman.ProgramID:
		terms := m.opts.Config.Recaman.Terms
		if terms <= 0 {
			terms = recaman.DefaultTerms
		}
		m.recaman = NewRecamanModel(terms, m.opts.RunLog, m.logger, m.width, m.height)
		m.screen = screenRecaman
		return nil
	default:
		return fmt.Errorf("unknown program %q", id)
	}
}

// puzzleSize resolves the board size from flags, falling back to config.
func (m SessionModel) puzzleSize() (rows, cols int) {
	rows, cols = m.opts.Config.Puzzle.DefaultRows, m.opts.Config.Puzzle.DefaultCols
	if m.opts.Rows > 0 && m.opts.Cols > 0 {
		rows, cols = m.opts.Rows, m.opts.Cols
	}
	return rows, cols
}

// startPuzzle shuffles a fresh board and enters the play screen.
func (m *SessionModel) startPuzzle(rows, cols int) error {
	seed := m.opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	puzzle, err := NewPuzzleModel(rows, cols, m.opts.Leaderboard, m.logger, m.width, m.height, seed)
	if err != nil {
		return err
	}
	m.puzzle = puzzle
	m.screen = screenPuzzle
	return nil
}

// Init implements tea.Model.
func (m SessionModel) Init() tea.Cmd {
	if m.screen == screenPuzzle {
		return m.puzzle.Init()
	}
	return nil
}

// Update routes messages to the active screen.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = size.Width
		m.height = size.Height
		m.menu.SetSize(size.Width, size.Height)
	}

	switch m.screen {
	case screenMenu:
		return m.updateMenu(msg)
	case screenSetup:
		return m.updateSetup(msg)
	case screenPuzzle:
		return m.updatePuzzle(msg)
	case screenRecaman:
		return m.updateRecaman(msg)
	case screenScores:
		return m.updateScores(msg)
	}
	return m, nil
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch m.keyMapper.MapKeyToMenuAction(key) {
	case MenuActionQuit:
		return m, tea.Quit
	case MenuActionUp:
		m.menu.MoveUp()
	case MenuActionDown:
		m.menu.MoveDown()
	case MenuActionScoreboard:
		m.scores = NewScoreboardModel(m.opts.Leaderboard, m.width, m.height)
		m.screen = screenScores
	case MenuActionSelect:
		sel, ok := m.menu.Selected()
		if !ok {
			return m, nil
		}
		if err := m.openProgram(sel.ID); err != nil {
			m.logger.Error("failed to open program", "program", sel.ID, "error", err)
			return m, nil
		}
		if m.screen == screenPuzzle {
			return m, m.puzzle.Init()
		}
	}
	return m, nil
}

func (m SessionModel) updateSetup(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.setup.Update(msg)
	m.setup = next.(SetupModel)

	switch {
	case m.setup.IsQuitting():
		return m, tea.Quit
	case m.setup.Cancelled():
		return m.leaveProgram()
	case m.setup.Done():
		rows, cols := m.setup.Size()
		if err := m.startPuzzle(rows, cols); err != nil {
			m.logger.Error("failed to start puzzle", "error", err)
			return m.leaveProgram()
		}
		return m, m.puzzle.Init()
	}
	return m, cmd
}

func (m SessionModel) updatePuzzle(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.puzzle.Update(msg)
	m.puzzle = next.(PuzzleModel)

	if m.puzzle.IsQuitting() {
		return m, tea.Quit
	}
	if m.puzzle.BackToMenu() {
		return m.leaveProgram()
	}
	return m, cmd
}

func (m SessionModel) updateRecaman(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.recaman.Update(msg)
	m.recaman = next.(RecamanModel)

	if m.recaman.IsQuitting() {
		return m, tea.Quit
	}
	if m.recaman.BackToMenu() {
		return m.leaveProgram()
	}
	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scores.Update(msg)
	m.scores = next.(ScoreboardModel)

	if m.scores.IsQuitting() {
		return m, tea.Quit
	}
	if m.scores.GoingBack() {
		return m.leaveProgram()
	}
	return m, cmd
}

// leaveProgram returns to the menu, or quits when launched standalone.
func (m SessionModel) leaveProgram() (tea.Model, tea.Cmd) {
	if m.standalone {
		return m, tea.Quit
	}
	m.screen = screenMenu
	m.menu.SetSize(m.width, m.height)
	return m, nil
}

// View renders the active screen.
func (m SessionModel) View() string {
	switch m.screen {
	case screenMenu:
		return m.menu.View()
	case screenSetup:
		return m.setup.View()
	case screenPuzzle:
		return m.puzzle.View()
	case screenRecaman:
		return m.recaman.View()
	case screenScores:
		return m.scores.View()
	}
	return ""
}

// RunSession runs a full-screen session on the local terminal.
func RunSession(opts Options) error {
	model, err := NewSessionModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("session ended with error: %w", err)
	}
	return nil
}
