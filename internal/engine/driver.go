// Package engine runs a game frame by frame independently of the terminal
// backend. Backends feed it key events and clock ticks and draw its screen.
package engine

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/audio"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

// DefaultMaxElapsed caps the time a single frame may simulate.
const DefaultMaxElapsed = 250 * time.Millisecond

// ErrInitFailed is returned when a game refuses the screen it was given.
var ErrInitFailed = errors.New("game initialisation failed")

// Driver owns the screen and the clock for one game.
type Driver struct {
	game   registry.Game
	rt     core.RuntimeConfig
	screen *core.Screen
	keys   *KeyTracker

	logger     *log.Logger
	cues       audio.Cues
	maxElapsed time.Duration

	last    time.Time
	prev    core.GameState
	quit    bool
	started bool
}

// Option configures a Driver.
type Option func(*Driver)

// WithLogger sets the logger for session events.
func WithLogger(l *log.Logger) Option {
	return func(d *Driver) {
		d.logger = l
	}
}

// WithCues sets the sound cues.
func WithCues(c audio.Cues) Option {
	return func(d *Driver) {
		d.cues = c
	}
}

// WithReleaseAfter sets how long a key stays held after its last event.
func WithReleaseAfter(dur time.Duration) Option {
	return func(d *Driver) {
		d.keys = NewKeyTracker(dur)
	}
}

// WithMaxElapsed caps the simulated time of one frame. Zero disables the cap.
func WithMaxElapsed(dur time.Duration) Option {
	return func(d *Driver) {
		d.maxElapsed = dur
	}
}

// New creates a driver for game on a screen of rt.ScreenW x rt.ScreenH.
func New(game registry.Game, rt core.RuntimeConfig, opts ...Option) *Driver {
	d := &Driver{
		game:       game,
		rt:         rt,
		screen:     core.NewScreen(rt.ScreenW, rt.ScreenH),
		keys:       NewKeyTracker(DefaultReleaseAfter),
		logger:     log.New(io.Discard),
		cues:       audio.Nop{},
		maxElapsed: DefaultMaxElapsed,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Init seeds the session and initialises the game. A zero seed is replaced
// by one derived from now.
func (d *Driver) Init(now time.Time) error {
	if d.rt.Seed == 0 {
		d.rt.Seed = now.UnixNano()
	}
	if err := d.initGame(); err != nil {
		return err
	}

	d.last = now
	d.started = true
	d.logger.Info("game initialised",
		"game", d.game.ID(),
		"width", d.rt.ScreenW,
		"height", d.rt.ScreenH,
		"seed", d.rt.Seed,
	)
	return nil
}

func (d *Driver) initGame() error {
	if !d.game.OnInit(d.screen, d.rt) {
		return fmt.Errorf("engine: %s on %dx%d screen: %w",
			d.game.ID(), d.rt.ScreenW, d.rt.ScreenH, ErrInitFailed)
	}
	return nil
}

// KeyDown records a key event. Quit ends the session at the next frame.
func (d *Driver) KeyDown(a core.Action, now time.Time) {
	switch a {
	case core.ActionNone:
		return
	case core.ActionQuit:
		d.quit = true
		return
	}
	d.keys.Down(a, now)
}

// Frame advances the game to now and reports whether it should keep running.
func (d *Driver) Frame(now time.Time) bool {
	if !d.started || d.quit {
		return false
	}

	elapsed := now.Sub(d.last)
	d.last = now
	if elapsed < 0 {
		elapsed = 0
	}
	if d.maxElapsed > 0 && elapsed > d.maxElapsed {
		d.logger.Debug("frame clamped", "elapsed", elapsed, "max", d.maxElapsed)
		elapsed = d.maxElapsed
	}

	in := d.keys.Frame(now)
	if !d.game.OnFrame(d.screen, elapsed.Seconds(), in) {
		d.logger.Info("game stopped", "game", d.game.ID())
		return false
	}

	d.observe(d.game.State())
	return true
}

// observe reports what changed since the previous frame.
func (d *Driver) observe(cur core.GameState) {
	prev := d.prev
	d.prev = cur

	if cur.Attempt != prev.Attempt {
		d.logger.Info("attempt started", "attempt", cur.Attempt, "high_score", cur.HighScore)
		return
	}
	if cur.Flaps > prev.Flaps {
		d.logger.Debug("flap", "attempt", cur.Attempt, "score", cur.Score)
		d.cues.Flap()
	}
	if cur.GameOver && !prev.GameOver {
		d.logger.Info("collision",
			"attempt", cur.Attempt,
			"score", cur.Score,
			"high_score", cur.HighScore,
		)
		d.cues.Crash()
	}
	if cur.Paused != prev.Paused {
		d.logger.Debug("pause toggled", "paused", cur.Paused)
	}
}

// Resize fits the screen to w x h and re-initialises the game on it.
// Counters carry over; the current attempt restarts.
func (d *Driver) Resize(w, h int) error {
	if w == d.rt.ScreenW && h == d.rt.ScreenH {
		return nil
	}
	d.rt.ScreenW = w
	d.rt.ScreenH = h
	d.screen.Resize(w, h)
	d.keys.Reset()

	d.logger.Debug("screen resized", "width", w, "height", h)
	return d.initGame()
}

// Screen returns the buffer the last frame was drawn into.
func (d *Driver) Screen() *core.Screen {
	return d.screen
}

// State returns the game state after the last frame.
func (d *Driver) State() core.GameState {
	return d.prev
}

// TickInterval returns the frame period for the configured tick rate.
func (d *Driver) TickInterval() time.Duration {
	rate := d.rt.TickRate
	if rate <= 0 {
		rate = core.DefaultConfig().TickRate
	}
	return time.Second / time.Duration(rate)
}
