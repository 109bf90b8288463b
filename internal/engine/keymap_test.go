package engine

import (
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

func TestKeyMapAction(t *testing.T) {
	km := NewKeyMap([]string{" ", "up", "w"})

	tests := []struct {
		key      string
		expected core.Action
	}{
		{" ", core.ActionFlap},
		{"up", core.ActionFlap},
		{"w", core.ActionFlap},
		{"p", core.ActionPause},
		{"esc", core.ActionPause},
		{"q", core.ActionQuit},
		{"ctrl+c", core.ActionQuit},
		{"x", core.ActionNone},
		{"down", core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			if got := km.Action(KeyName(tc.key)); got != tc.expected {
				t.Errorf("Action(%q) = %v, expected %v", tc.key, got, tc.expected)
			}
		})
	}
}

func TestKeyMapQuitWins(t *testing.T) {
	km := NewKeyMap([]string{"q", "enter"})

	if got := km.Action(KeyName("q")); got != core.ActionQuit {
		t.Errorf("Action(q) = %v, expected Quit", got)
	}
	if got := km.Action(KeyName("enter")); got != core.ActionFlap {
		t.Errorf("Action(enter) = %v, expected Flap", got)
	}
}

func TestKeyMapHelp(t *testing.T) {
	km := NewKeyMap([]string{" ", "up"})

	if got := km.Flap.Help().Key; got != "space/up" {
		t.Errorf("flap help key = %q, expected %q", got, "space/up")
	}
	if n := len(km.ShortHelp()); n != 3 {
		t.Errorf("ShortHelp() has %d bindings, expected 3", n)
	}
	if n := len(km.FullHelp()); n != 2 {
		t.Errorf("FullHelp() has %d columns, expected 2", n)
	}
}
