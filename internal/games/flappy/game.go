// Package flappy implements a Flappy Bird-style game on a character screen.
// The bird falls under jerk-style gravity and flaps upward on key presses
// while pipes scroll in from the right. Collisions are found by reading the
// cells the frame has just drawn.
package flappy

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

// Game is one play session: bird, track and the
// resetting -> playing -> collided cycle with its counters.
type Game struct {
	id    string
	title string
	cfg   config.FlappyConfig

	screenW int
	screenH int
	rng     *rand.Rand

	bird  Bird
	track *Track

	collided     bool // Crash seen; game over from the next frame on
	resetPending bool // Reset at the start of the next frame
	armed        bool // Flap pressed while collided; gates the restart when configured
	paused       bool

	attempt   int // Resets so far, including the first
	score     int // Scored flaps since the last reset
	highScore int // Best score of this session
	flaps     int // Applied flaps since the last reset
	frames    int // Playing frames since the last reset
}

// New creates a session for the given variant configuration.
func New(id, title string, cfg config.FlappyConfig) *Game {
	return &Game{
		id:    id,
		title: title,
		cfg:   cfg,
	}
}

// ID returns the unique identifier for this variant.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this variant.
func (g *Game) Title() string {
	return g.title
}

// OnInit sizes the session to the screen and schedules a reset for the
// first frame. It returns false when the configured geometry cannot fit.
// Counters survive re-initialisation, so a resize keeps the high score.
func (g *Game) OnInit(dst *core.Screen, rt core.RuntimeConfig) bool {
	g.screenW = dst.Width()
	g.screenH = dst.Height()
	if !g.fits() {
		return false
	}

	g.rng = rand.New(rand.NewSource(rt.Seed))
	g.track = NewTrack(g.cfg.Track, g.screenW, g.screenH, g.rng)

	g.collided = false
	g.armed = false
	g.paused = false
	g.resetPending = true
	return true
}

// fits reports whether the screen can host the configured geometry.
func (g *Game) fits() bool {
	if g.screenW <= 0 || g.screenH <= 0 || g.cfg.Track.Sections < 2 {
		return false
	}
	if g.cfg.Track.Enabled && g.screenH <= g.cfg.Track.HeightMargin {
		return false
	}
	return true
}

// OnFrame runs one frame of elapsed seconds and draws it into dst.
func (g *Game) OnFrame(dst *core.Screen, elapsed float64, in core.InputFrame) bool {
	if g.track == nil {
		return false
	}

	if g.resetPending {
		g.reset()
	}

	flap := in.Key(core.ActionFlap)

	if g.collided {
		g.drawGameOver(dst)
		if flap.Pressed {
			g.armed = true
		}
		if flap.Released && (g.armed || !g.cfg.Input.ArmedRestart) {
			g.resetPending = true
		}
		return true
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		g.drawPaused(dst)
		return true
	}

	g.frames++

	if g.bird.Update(elapsed, flap.Pressed, g.cfg.Physics) {
		g.flaps++
		if g.cfg.Scoring.Enabled {
			g.score++
			g.highScore = core.Max(g.highScore, g.score)
		}
	}

	if g.cfg.Track.Enabled {
		g.track.Advance(elapsed)
	}

	dst.Clear()
	if g.cfg.Track.Enabled {
		g.drawTrack(dst)
	}

	// The crash takes effect next frame; this one still shows the impact.
	g.collided = g.detectCollision(dst)

	g.drawBird(dst)
	g.drawHUD(dst)
	return true
}

// reset starts a new attempt.
func (g *Game) reset() {
	g.collided = false
	g.resetPending = false
	g.armed = false
	g.paused = false

	g.track.Reset()
	g.bird.Reset(float64(g.screenH) / 2.0)

	g.score = 0
	g.flaps = 0
	g.frames = 0
	g.attempt++
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.score,
		HighScore: g.highScore,
		Attempt:   g.attempt,
		Flaps:     g.flaps,
		GameOver:  g.collided,
		Paused:    g.paused,
	}
}

// Register both variants with the registry
func init() {
	registry.Register(config.VariantFull, func(cfg config.FlappyConfig) registry.Game {
		return New(config.VariantFull, "Flappy Bird", cfg)
	})
	registry.Register(config.VariantMinimal, func(cfg config.FlappyConfig) registry.Game {
		return New(config.VariantMinimal, "Flappy Bird (physics demo)", cfg)
	})
}
