// Package tui provides the Bubble Tea integration for the puzzle platform.
// It is the rendering/input collaborator of the engine: it translates raw
// terminal input into normalized events and presents engine state.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// timerRefresh is how often the gameplay screen redraws the session timer.
// The engine itself is event-driven; this tick only refreshes the display.
const timerRefresh = 250 * time.Millisecond

// TimerTickMsg is sent to refresh the elapsed-time display.
type TimerTickMsg time.Time

// timerTickCmd returns a Bubble Tea command that sends timer refresh
// messages.
func timerTickCmd() tea.Cmd {
	return tea.Tick(timerRefresh, func(t time.Time) tea.Msg {
		return TimerTickMsg(t)
	})
}
