package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vmorodov/tui-puzzles/internal/games/recaman"
	"github.com/vmorodov/tui-puzzles/internal/storage"
)

// recamanChrome is how many screen lines the header and footer take around
// the scrolling term list.
const recamanChrome = 6

// RecamanModel is the Bubble Tea model for browsing a freshly generated
// Recamán sequence. Generation happens once at construction and the run is
// appended to the run log.
type RecamanModel struct {
	terms []int64
	runs  []storage.Run
	vp    viewport.Model

	width      int
	height     int
	backToMenu bool
	quitting   bool
}

// NewRecamanModel generates the configured number of terms, logs the run,
// and prepares the scrolling view. runLog may be nil when persistence is
// unavailable.
func NewRecamanModel(terms int, runLog *storage.RunLog, logger *log.Logger, width, height int) RecamanModel {
	if logger == nil {
		logger = log.Default()
	}
	if terms <= 0 {
		terms = recaman.DefaultTerms
	}

	seq := recaman.Sequence(terms)

	var runs []storage.Run
	if runLog != nil {
		if _, err := runLog.Append(recaman.ProgramID, len(seq), recaman.Max(seq)); err != nil {
			logger.Warn("could not log generation run", "error", err)
		}
		if recent, err := runLog.Recent(recaman.ProgramID, 5); err == nil {
			runs = recent
		}
	}

	m := RecamanModel{
		terms:  seq,
		runs:   runs,
		width:  width,
		height: height,
	}
	m.vp = viewport.New(width, viewportHeight(height))
	m.vp.SetContent(m.content())
	return m
}

// viewportHeight leaves room for the header and footer.
func viewportHeight(screenH int) int {
	h := screenH - recamanChrome
	if h < 3 {
		h = 3
	}
	return h
}

// content formats the generated terms, one per line.
func (m RecamanModel) content() string {
	var b strings.Builder
	for i, t := range m.terms {
		fmt.Fprintf(&b, "a(%d) = %d\n", i, t)
	}
	return b.String()
}

// Init implements tea.Model.
func (m RecamanModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the sequence viewer.
func (m RecamanModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.vp.Width = msg.Width
		m.vp.Height = viewportHeight(msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, nil
		case "q", "esc":
			m.backToMenu = true
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

// BackToMenu reports whether the player left the screen.
func (m RecamanModel) BackToMenu() bool {
	return m.backToMenu
}

// IsQuitting reports whether the player quit the application.
func (m RecamanModel) IsQuitting() bool {
	return m.quitting
}

// View renders the sequence viewer.
func (m RecamanModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(centerText(puzzleTitleStyle.Render(
		fmt.Sprintf("Recamán's Sequence — first %d terms", len(m.terms))), m.width))
	b.WriteString("\n\n")
	b.WriteString(m.vp.View())
	b.WriteString("\n")

	if len(m.runs) > 0 {
		last := m.runs[0]
		b.WriteString(centerText(helpStyle.Render(fmt.Sprintf(
			"%d runs logged  |  last: %d terms, max %d", len(m.runs), last.Terms, last.MaxTerm)), m.width))
		b.WriteString("\n")
	}

	b.WriteString(centerText(helpStyle.Render("Up/Down/PgUp/PgDn: scroll  |  Esc: back"), m.width))
	b.WriteString("\n")
	return b.String()
}
