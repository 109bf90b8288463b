package engine

import (
	"time"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// DefaultReleaseAfter is how long a key stays held after its last event.
const DefaultReleaseAfter = 120 * time.Millisecond

// KeyTracker turns a stream of key-down events into per-frame key states.
// Terminals report presses and autorepeat but never releases, so a key
// counts as released once no event has arrived for releaseAfter.
type KeyTracker struct {
	releaseAfter time.Duration
	keys         map[core.Action]*trackedKey
}

type trackedKey struct {
	last    time.Time // Most recent event
	held    bool
	pressed bool // Press not yet reported in a frame
}

// NewKeyTracker creates a tracker. A non-positive releaseAfter uses
// DefaultReleaseAfter.
func NewKeyTracker(releaseAfter time.Duration) *KeyTracker {
	if releaseAfter <= 0 {
		releaseAfter = DefaultReleaseAfter
	}
	return &KeyTracker{
		releaseAfter: releaseAfter,
		keys:         make(map[core.Action]*trackedKey),
	}
}

// Down records a key event for an action.
func (t *KeyTracker) Down(a core.Action, now time.Time) {
	k, ok := t.keys[a]
	if !ok {
		k = &trackedKey{}
		t.keys[a] = k
	}
	if !k.held {
		k.held = true
		k.pressed = true
	}
	k.last = now
}

// Frame returns the key states for the frame starting at now and consumes
// the reported edges. A press is always reported in its own frame before
// the matching release.
func (t *KeyTracker) Frame(now time.Time) core.InputFrame {
	in := core.NewInputFrame()
	for a, k := range t.keys {
		if !k.held {
			continue
		}

		var ks core.KeyState
		switch {
		case k.pressed:
			ks = core.KeyState{Pressed: true, Held: true}
			k.pressed = false
		case now.Sub(k.last) >= t.releaseAfter:
			ks = core.KeyState{Released: true}
			k.held = false
		default:
			ks = core.KeyState{Held: true}
		}
		in.SetKey(a, ks)
	}
	return in
}

// Reset forgets every key.
func (t *KeyTracker) Reset() {
	for a := range t.keys {
		delete(t.keys, a)
	}
}
