package tui

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vmorodov/tui-puzzles/internal/games/slidepuzzle"
	"github.com/vmorodov/tui-puzzles/internal/storage"
)

// Tile cell footprint in terminal characters. The mouse handler relies on
// these to translate click coordinates back into grid cells.
const (
	tileW = 6
	tileH = 3

	// boardTop is the screen line the grid starts on (after the header).
	boardTop = 3

	// initialsLimit is the UI policy for initials length; the store itself
	// imposes none.
	initialsLimit = 3
)

var (
	puzzleTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	tileStyle        = lipgloss.NewStyle().Background(lipgloss.Color("62")).Foreground(lipgloss.Color("230")).Bold(true)
	tileHomeStyle    = lipgloss.NewStyle().Background(lipgloss.Color("35")).Foreground(lipgloss.Color("230")).Bold(true)
	solvedStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	warnStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	helpStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// puzzleMode tracks which phase of a play-through the screen is in.
type puzzleMode int

const (
	modePlaying puzzleMode = iota
	modeInitials
	modeDone
)

// boardView is the engine's Presenter: it holds the latest presented layout
// and the solved notification. Shared by pointer between the session and the
// model so Present survives Bubble Tea's value-copied updates.
type boardView struct {
	slots   []slidepuzzle.Slot
	empty   slidepuzzle.Coord
	solved  bool
	elapsed float64
}

// Present stores the layout snapshot for the next render.
func (v *boardView) Present(slots []slidepuzzle.Slot, empty slidepuzzle.Coord) {
	v.slots = slots
	v.empty = empty
}

// NotifySolved records the solved transition; the model picks it up after
// the event that caused it and switches to the initials prompt.
func (v *boardView) NotifySolved(elapsedSeconds float64) {
	v.solved = true
	v.elapsed = elapsedSeconds
}

// PuzzleModel is the Bubble Tea model for one sliding puzzle play-through.
type PuzzleModel struct {
	session   *slidepuzzle.Session
	view      *boardView
	scores    *storage.Leaderboard
	keyMapper *KeyMapper

	mode      puzzleMode
	initials  textinput.Model
	saveErr   error
	submitted bool
	declined  bool

	width      int
	height     int
	backToMenu bool
	quitting   bool
}

// NewPuzzleModel builds a shuffled board of the given size and wires up its
// session. scores may be nil when persistence is unavailable.
func NewPuzzleModel(rows, cols int, scores *storage.Leaderboard, logger *log.Logger, width, height int, seed int64) (PuzzleModel, error) {
	board, err := slidepuzzle.New(rows, cols)
	if err != nil {
		return PuzzleModel{}, err
	}
	board.Shuffle(rand.New(rand.NewSource(seed)))

	view := &boardView{slots: board.Slots(), empty: board.Empty()}

	var recorder slidepuzzle.ScoreRecorder
	if scores != nil {
		recorder = scores
	}

	ti := textinput.New()
	ti.Placeholder = "AAA"
	ti.CharLimit = initialsLimit
	ti.Width = initialsLimit + 1

	return PuzzleModel{
		session:   slidepuzzle.NewSession(board, view, recorder, logger),
		view:      view,
		scores:    scores,
		keyMapper: NewKeyMapper(),
		initials:  ti,
		width:     width,
		height:    height,
	}, nil
}

// Init starts the timer refresh loop.
func (m PuzzleModel) Init() tea.Cmd {
	return timerTickCmd()
}

// Update handles messages for the puzzle screen.
func (m PuzzleModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case TimerTickMsg:
		if m.mode == modePlaying {
			return m, timerTickCmd()
		}
		return m, nil
	}

	if m.mode == modeInitials {
		var cmd tea.Cmd
		m.initials, cmd = m.initials.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m PuzzleModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, nil
	}

	switch m.mode {
	case modePlaying:
		switch msg.String() {
		case "q", "esc":
			m.backToMenu = true
			return m, nil
		}
		if dir, ok := m.keyMapper.MapKeyToDirection(msg); ok {
			m.session.HandleDirectionKey(dir)
			return m.afterInput()
		}
		return m, nil

	case modeInitials:
		switch msg.String() {
		case "enter":
			return m.submitInitials()
		case "esc":
			// Player declined; nothing is recorded.
			m.declined = true
			m.mode = modeDone
			return m, nil
		}
		var cmd tea.Cmd
		m.initials, cmd = m.initials.Update(msg)
		return m, cmd

	default: // modeDone
		switch msg.String() {
		case "enter", "esc", "q":
			m.backToMenu = true
		}
		return m, nil
	}
}

// handleMouse translates a left click into a cell activation.
func (m PuzzleModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.mode != modePlaying {
		return m, nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	row, col, ok := m.cellAt(msg.X, msg.Y)
	if !ok {
		return m, nil
	}
	// Out-of-grid and non-adjacent cells are the engine's no-ops, not ours.
	m.session.HandleCellActivated(row, col)
	return m.afterInput()
}

// afterInput switches to the initials prompt when the last event solved the
// puzzle.
func (m PuzzleModel) afterInput() (tea.Model, tea.Cmd) {
	if m.view.solved && m.mode == modePlaying {
		m.mode = modeInitials
		m.initials.Focus()
		return m, textinput.Blink
	}
	return m, nil
}

// submitInitials records the completion time under the entered initials.
// An empty entry counts as declining.
func (m PuzzleModel) submitInitials() (tea.Model, tea.Cmd) {
	initials := strings.ToUpper(strings.TrimSpace(m.initials.Value()))
	if initials == "" {
		m.declined = true
		m.mode = modeDone
		return m, nil
	}

	m.saveErr = m.session.SubmitScore(initials)
	m.submitted = m.saveErr == nil
	m.mode = modeDone
	return m, nil
}

// cellAt maps terminal coordinates to a grid cell.
func (m PuzzleModel) cellAt(x, y int) (row, col int, ok bool) {
	dims := m.session.Board().Dims()
	left := m.boardLeft()
	if x < left || y < boardTop {
		return 0, 0, false
	}
	col = (x - left) / tileW
	row = (y - boardTop) / tileH
	if !dims.Contains(row, col) {
		return 0, 0, false
	}
	return row, col, true
}

// boardLeft returns the column the grid starts at, centering it.
func (m PuzzleModel) boardLeft() int {
	dims := m.session.Board().Dims()
	left := (m.width - dims.Cols*tileW) / 2
	if left < 0 {
		left = 0
	}
	return left
}

// BackToMenu reports whether the player left the screen.
func (m PuzzleModel) BackToMenu() bool {
	return m.backToMenu
}

// IsQuitting reports whether the player quit the application.
func (m PuzzleModel) IsQuitting() bool {
	return m.quitting
}

// View renders the puzzle screen.
func (m PuzzleModel) View() string {
	if m.quitting {
		return ""
	}

	dims := m.session.Board().Dims()

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(puzzleTitleStyle.Render(fmt.Sprintf("Sliding Puzzle — %s", dims.Key())), m.width))
	b.WriteString("\n\n")
	b.WriteString(m.renderGrid())
	b.WriteString("\n")

	switch m.mode {
	case modePlaying:
		b.WriteString(centerText(m.timerLine(), m.width))
		b.WriteString("\n\n")
		b.WriteString(centerText(helpStyle.Render("Arrows/WASD: slide  |  Click a tile  |  Esc: back"), m.width))

	case modeInitials:
		b.WriteString(centerText(solvedStyle.Render(fmt.Sprintf("Solved in %.2f s!", m.view.elapsed)), m.width))
		b.WriteString("\n\n")
		b.WriteString(centerText("Enter your initials: "+m.initials.View(), m.width))
		b.WriteString("\n")
		b.WriteString(centerText(helpStyle.Render("Enter: save  |  Esc: skip"), m.width))

	case modeDone:
		b.WriteString(centerText(solvedStyle.Render(fmt.Sprintf("Solved in %.2f s!", m.view.elapsed)), m.width))
		b.WriteString("\n\n")
		b.WriteString(m.renderResult())
		b.WriteString("\n")
		b.WriteString(centerText(helpStyle.Render("Enter: back to menu"), m.width))
	}

	b.WriteString("\n")
	return b.String()
}

// timerLine formats the running session timer.
func (m PuzzleModel) timerLine() string {
	board := m.session.Board()
	if board.State() == slidepuzzle.StateNotStarted {
		return helpStyle.Render("Timer starts on your first move")
	}
	return fmt.Sprintf("Time: %.1f s", board.Elapsed().Seconds())
}

// renderGrid draws the tile grid from the last presented snapshot.
func (m PuzzleModel) renderGrid() string {
	dims := m.session.Board().Dims()
	leftPad := strings.Repeat(" ", m.boardLeft())

	var b strings.Builder
	for r := 0; r < dims.Rows; r++ {
		lines := make([]string, tileH)
		for c := 0; c < dims.Cols; c++ {
			slot := m.view.slots[dims.ToIndex(r, c)]
			cell := m.renderTile(slot, slidepuzzle.Coord{Row: r, Col: c}, dims)
			for i := range lines {
				lines[i] += cell[i]
			}
		}
		for _, line := range lines {
			b.WriteString(leftPad)
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	return b.String()
}

// renderTile renders one slot as tileH lines of tileW cells.
func (m PuzzleModel) renderTile(slot slidepuzzle.Slot, at slidepuzzle.Coord, dims slidepuzzle.Dims) []string {
	blank := strings.Repeat(" ", tileW)
	if slot.Empty {
		return []string{blank, blank, blank}
	}

	label := fmt.Sprintf("%d", dims.ToIndex(slot.Origin.Row, slot.Origin.Col)+1)
	style := tileStyle
	// Tiles already sitting on their origin cell render green.
	if slot.Origin == at {
		style = tileHomeStyle
	}

	return []string{
		style.Render(blank),
		style.Render(padCell(label, tileW)),
		style.Render(blank),
	}
}

// renderResult shows the leaderboard for this size after a solve.
func (m PuzzleModel) renderResult() string {
	var b strings.Builder

	if m.saveErr != nil {
		b.WriteString(centerText(warnStyle.Render("Could not save your time: "+m.saveErr.Error()), m.width))
		b.WriteString("\n")
	}
	if m.declined {
		b.WriteString(centerText(helpStyle.Render("Time not recorded"), m.width))
		b.WriteString("\n")
	}

	if m.scores == nil {
		return b.String()
	}

	dims := m.session.Board().Dims()
	entries := m.scores.TopTimes(dims.Rows, dims.Cols)
	if len(entries) == 0 {
		return b.String()
	}

	b.WriteString(centerText(fmt.Sprintf("Best times for %s", dims.Key()), m.width))
	b.WriteString("\n")
	for i, e := range entries {
		line := fmt.Sprintf("%2d. %-3s  %7.2f s", i+1, e.Initials, e.Time)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}
	return b.String()
}

// padCell centers text within a fixed-width cell.
func padCell(text string, width int) string {
	if len(text) >= width {
		return text[:width]
	}
	left := (width - len(text)) / 2
	right := width - len(text) - left
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", right)
}
