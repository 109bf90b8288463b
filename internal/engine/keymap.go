package engine

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// KeyMap binds key names to game actions. Names follow Bubble Tea's
// key strings (" ", "up", "esc", "ctrl+c"); other backends translate
// their events into the same names.
type KeyMap struct {
	Flap  key.Binding
	Pause key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Flap, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Flap},
		{k.Pause, k.Quit},
	}
}

// NewKeyMap returns the default bindings with the given flap keys.
func NewKeyMap(flapKeys []string) KeyMap {
	return KeyMap{
		Flap: key.NewBinding(
			key.WithKeys(flapKeys...),
			key.WithHelp(helpKeys(flapKeys), "flap / restart"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p/esc", "pause"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Action returns the action bound to a key, or ActionNone.
// Quit is checked first so it can never be shadowed by a flap key.
func (k KeyMap) Action(msg fmt.Stringer) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Flap):
		return core.ActionFlap
	}
	return core.ActionNone
}

// KeyName is a key name outside of Bubble Tea, usable with KeyMap.Action.
type KeyName string

func (n KeyName) String() string {
	return string(n)
}

func helpKeys(keys []string) string {
	names := make([]string, len(keys))
	for i, k := range keys {
		if k == " " {
			k = "space"
		}
		names[i] = k
	}
	return strings.Join(names, "/")
}
