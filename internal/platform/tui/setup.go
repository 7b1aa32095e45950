package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vmorodov/tui-puzzles/internal/games/slidepuzzle"
)

var (
	setupFieldStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	setupActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
)

// SetupModel asks for the puzzle grid size before a play-through. Values are
// clamped to the engine's [3, 8] range, so a confirmed setup always yields a
// valid board.
type SetupModel struct {
	rows   int
	cols   int
	cursor int // 0 = rows, 1 = cols

	width     int
	height    int
	done      bool
	cancelled bool
	quitting  bool
}

// NewSetupModel creates a setup screen preloaded with the configured
// default size.
func NewSetupModel(defaultRows, defaultCols, width, height int) SetupModel {
	return SetupModel{
		rows:   clampSize(defaultRows),
		cols:   clampSize(defaultCols),
		width:  width,
		height: height,
	}
}

// Init implements tea.Model.
func (m SetupModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the setup screen.
func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
		case "q", "esc":
			m.cancelled = true
		case "left", "h", "shift+tab":
			m.cursor = 0
		case "right", "l", "tab":
			m.cursor = 1
		case "up", "k", "+":
			m.adjust(1)
		case "down", "j", "-":
			m.adjust(-1)
		case "enter", " ":
			m.done = true
		}
	}
	return m, nil
}

// adjust bumps the active field, staying inside [3, 8].
func (m *SetupModel) adjust(delta int) {
	if m.cursor == 0 {
		m.rows = clampSize(m.rows + delta)
		return
	}
	m.cols = clampSize(m.cols + delta)
}

// Size returns the chosen grid dimensions.
func (m SetupModel) Size() (rows, cols int) {
	return m.rows, m.cols
}

// Done reports whether the player confirmed a size.
func (m SetupModel) Done() bool {
	return m.done
}

// Cancelled reports whether the player backed out.
func (m SetupModel) Cancelled() bool {
	return m.cancelled
}

// IsQuitting reports whether the player quit the application.
func (m SetupModel) IsQuitting() bool {
	return m.quitting
}

// View renders the setup screen.
func (m SetupModel) View() string {
	if m.quitting {
		return ""
	}

	field := func(label string, value int, active bool) string {
		s := fmt.Sprintf("%s: < %d >", label, value)
		if active {
			return setupActiveStyle.Render(s)
		}
		return setupFieldStyle.Render(s)
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(puzzleTitleStyle.Render("Sliding Puzzle Setup"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(fmt.Sprintf("%s   %s",
		field("Rows", m.rows, m.cursor == 0),
		field("Columns", m.cols, m.cursor == 1)), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(helpStyle.Render(
		fmt.Sprintf("Left/Right: field  |  Up/Down: %d-%d  |  Enter: start  |  Esc: back",
			slidepuzzle.MinSize, slidepuzzle.MaxSize)), m.width))
	b.WriteString("\n")
	return b.String()
}

// clampSize restricts a dimension to the engine's supported range.
func clampSize(v int) int {
	if v < slidepuzzle.MinSize {
		return slidepuzzle.MinSize
	}
	if v > slidepuzzle.MaxSize {
		return slidepuzzle.MaxSize
	}
	return v
}
