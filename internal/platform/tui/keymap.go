package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/engine"
)

// footerHeight is the number of rows the help footer takes.
const footerHeight = 1

// KeyMapper translates Bubble Tea key messages to game actions.
type KeyMapper struct {
	keys engine.KeyMap
}

// NewKeyMapper creates a key mapper for the given bindings.
func NewKeyMapper(keys engine.KeyMap) KeyMapper {
	return KeyMapper{keys: keys}
}

// MapKey returns the action for a key message and whether it is a quit request.
func (km KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	action = km.keys.Action(msg)
	return action, action == core.ActionQuit
}

// newHelp returns the short help footer model.
func newHelp(width int) help.Model {
	h := help.New()
	h.ShowAll = false
	h.Width = width
	return h
}
