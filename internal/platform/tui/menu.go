package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vmorodov/tui-puzzles/internal/registry"
)

var (
	menuTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	menuItemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	menuSelectedStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("57"))

	menuDescStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")).
			Italic(true)
)

// MenuModel is the launcher screen: a cursor over the registered programs.
type MenuModel struct {
	items  []registry.ProgramInfo
	cursor int
	width  int
	height int
}

// NewMenuModel creates a menu listing every registered program.
func NewMenuModel(width, height int) MenuModel {
	return MenuModel{
		items:  registry.List(),
		width:  width,
		height: height,
	}
}

// MoveUp moves the cursor one item up, stopping at the top.
func (m *MenuModel) MoveUp() {
	if m.cursor > 0 {
		m.cursor--
	}
}

// MoveDown moves the cursor one item down, stopping at the bottom.
func (m *MenuModel) MoveDown() {
	if m.cursor < len(m.items)-1 {
		m.cursor++
	}
}

// Selected returns the program under the cursor, if any.
func (m MenuModel) Selected() (registry.ProgramInfo, bool) {
	if len(m.items) == 0 {
		return registry.ProgramInfo{}, false
	}
	return m.items[m.cursor], true
}

// SetSize updates the menu dimensions.
func (m *MenuModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// View renders the menu.
func (m MenuModel) View() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("TUI Puzzles"), m.width))
	b.WriteString("\n\n")

	if len(m.items) == 0 {
		b.WriteString(centerText("No programs registered.", m.width))
		return b.String()
	}

	for i, item := range m.items {
		line := fmt.Sprintf("  %s  ", item.Title)
		if i == m.cursor {
			line = menuSelectedStyle.Render(fmt.Sprintf("> %s <", item.Title))
		} else {
			line = menuItemStyle.Render(line)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if sel, ok := m.Selected(); ok {
		b.WriteString(centerText(menuDescStyle.Render(sel.Description), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	help := helpStyle.Render("up/down: move • enter: play • tab: scores • q: quit")
	b.WriteString(centerText(help, m.width))
	return b.String()
}

// centerText centers a (possibly styled) line within the given width.
func centerText(text string, width int) string {
	if width <= 0 {
		return text
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
}
