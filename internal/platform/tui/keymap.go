package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vmorodov/tui-puzzles/internal/games/slidepuzzle"
)

// KeyMapper translates Bubble Tea key messages to platform actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKeyToDirection translates a key to a puzzle direction.
// Returns false when the key is not a direction key.
func (km *KeyMapper) MapKeyToDirection(msg tea.KeyMsg) (slidepuzzle.Direction, bool) {
	switch msg.String() {
	case "up", "w", "k":
		return slidepuzzle.DirUp, true
	case "down", "s", "j":
		return slidepuzzle.DirDown, true
	case "left", "a", "h":
		return slidepuzzle.DirLeft, true
	case "right", "d", "l":
		return slidepuzzle.DirRight, true
	}
	return 0, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionScoreboard
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "tab":
		return MenuActionScoreboard
	case "b", "esc":
		return MenuActionBack
	}

	return MenuActionNone
}
