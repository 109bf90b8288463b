package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone  Action = iota
	ActionFlap         // Space, Up, W - upward impulse, also restarts after a crash
	ActionPause        // P, Escape - pause/unpause game
	ActionQuit         // Q, Ctrl+C - exit the program
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionFlap:
		return "Flap"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// KeyState is the edge-triggered state of one action for one frame.
// Pressed and Released fire once on the transition; Held stays true
// from the press frame until the release frame.
type KeyState struct {
	Pressed  bool
	Released bool
	Held     bool
}

// InputFrame represents the input state during one frame.
type InputFrame struct {
	Keys map[Action]KeyState
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Keys: make(map[Action]KeyState),
	}
}

// Set marks an action as pressed (and held) for this frame.
func (f *InputFrame) Set(a Action) {
	f.SetKey(a, KeyState{Pressed: true, Held: true})
}

// SetKey stores the full key state for an action.
func (f *InputFrame) SetKey(a Action, ks KeyState) {
	if f.Keys == nil {
		f.Keys = make(map[Action]KeyState)
	}
	f.Keys[a] = ks
}

// Has returns true if the given action was pressed this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Key(a).Pressed
}

// Key returns the key state of an action; the zero value when untouched.
func (f InputFrame) Key(a Action) KeyState {
	if f.Keys == nil {
		return KeyState{}
	}
	return f.Keys[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Keys {
		delete(f.Keys, k)
	}
}
