// Package config provides YAML-based game configuration loading and
// validation for the Flappy Bird variants.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Variant IDs. Each variant has its own embedded defaults.
const (
	VariantFull    = "flappy"
	VariantMinimal = "flappy_minimal"
)

// Collision modes.
const (
	CollisionBuffer   = "buffer"   // sample the rendered screen
	CollisionGeometry = "geometry" // test against pipe rectangles
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// FlappyConfig contains all configuration for one Flappy Bird session.
// The full game and the minimal physics demo differ only in these values.
type FlappyConfig struct {
	Screen    FlappyScreen    `yaml:"screen"`
	Physics   FlappyPhysics   `yaml:"physics"`
	Track     FlappyTrack     `yaml:"track"`
	Bird      FlappyBird      `yaml:"bird"`
	Collision FlappyCollision `yaml:"collision"`
	Scoring   FlappyScoring   `yaml:"scoring"`
	Input     FlappyInput     `yaml:"input"`
}

// FlappyScreen is the logical console size in character cells.
type FlappyScreen struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// FlappyPhysics defines the bird's vertical motion.
// Gravity is applied as jerk: it is added to acceleration, not velocity.
type FlappyPhysics struct {
	Gravity      float64 `yaml:"gravity"`
	FlapGate     bool    `yaml:"flap_gate"`      // ignore flaps while rising faster than gravity/10
	MaxFrameTime float64 `yaml:"max_frame_time"` // seconds, upper bound on one frame's elapsed time
}

// FlappyTrack defines the scrolling obstacle course.
type FlappyTrack struct {
	Enabled      bool    `yaml:"enabled"`
	Sections     int     `yaml:"sections"`      // track length; section width is screen width / (sections-1)
	ScrollSpeed  float64 `yaml:"scroll_speed"`  // columns per second
	HeightMargin int     `yaml:"height_margin"` // heights are drawn from [0, screen height - margin)
	FreePassMax  int     `yaml:"free_pass_max"` // heights at or below this become empty sections
	PipeOffset   int     `yaml:"pipe_offset"`   // pipe's left edge within its section
	PipeWidth    int     `yaml:"pipe_width"`
	Opening      int     `yaml:"opening"` // rows between the upper and lower pipe
}

// FlappyBird defines the bird's collision box.
type FlappyBird struct {
	HitboxWidth int `yaml:"hitbox_width"` // distance between left and right sample columns
}

// FlappyCollision selects how collisions are detected.
type FlappyCollision struct {
	Mode       string  `yaml:"mode"`        // "buffer" or "geometry"
	EdgeMargin float64 `yaml:"edge_margin"` // rows at top and bottom that count as a crash
}

// FlappyScoring toggles the flap counter and high score.
type FlappyScoring struct {
	Enabled bool `yaml:"enabled"`
}

// FlappyInput defines the flap key and how releases are synthesized.
type FlappyInput struct {
	FlapKeys       []string `yaml:"flap_keys"`
	ReleaseAfterMS int      `yaml:"release_after_ms"`
	// ArmedRestart requires a fresh press after the crash before a release
	// restarts. Off, any release while crashed restarts.
	ArmedRestart bool `yaml:"armed_restart"`
}

// ReleaseAfter returns the key release timeout as a duration.
func (in FlappyInput) ReleaseAfter() time.Duration {
	return time.Duration(in.ReleaseAfterMS) * time.Millisecond
}

// MaxFrameDuration returns the frame-time clamp as a duration.
func (p FlappyPhysics) MaxFrameDuration() time.Duration {
	return time.Duration(p.MaxFrameTime * float64(time.Second))
}

// Validate checks value ranges. Screen size against track geometry is
// checked by the game when it is initialised, since --fit can change it.
func (c FlappyConfig) Validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("%w: screen must be positive, got %dx%d", ErrInvalid, c.Screen.Width, c.Screen.Height)
	}
	if c.Physics.Gravity <= 0 {
		return fmt.Errorf("%w: physics.gravity must be positive, got %g", ErrInvalid, c.Physics.Gravity)
	}
	if c.Physics.MaxFrameTime <= 0 {
		return fmt.Errorf("%w: physics.max_frame_time must be positive, got %g", ErrInvalid, c.Physics.MaxFrameTime)
	}
	if c.Track.Sections < 2 {
		return fmt.Errorf("%w: track.sections must be at least 2, got %d", ErrInvalid, c.Track.Sections)
	}
	if c.Track.ScrollSpeed < 0 {
		return fmt.Errorf("%w: track.scroll_speed must not be negative, got %g", ErrInvalid, c.Track.ScrollSpeed)
	}
	if c.Track.PipeWidth < 0 || c.Track.Opening < 0 || c.Track.HeightMargin < 0 {
		return fmt.Errorf("%w: track sizes must not be negative", ErrInvalid)
	}
	if c.Bird.HitboxWidth < 0 {
		return fmt.Errorf("%w: bird.hitbox_width must not be negative, got %d", ErrInvalid, c.Bird.HitboxWidth)
	}
	switch c.Collision.Mode {
	case CollisionBuffer, CollisionGeometry:
	default:
		return fmt.Errorf("%w: collision.mode must be %q or %q, got %q",
			ErrInvalid, CollisionBuffer, CollisionGeometry, c.Collision.Mode)
	}
	if len(c.Input.FlapKeys) == 0 {
		return fmt.Errorf("%w: input.flap_keys must name at least one key", ErrInvalid)
	}
	if c.Input.ReleaseAfterMS <= 0 {
		return fmt.Errorf("%w: input.release_after_ms must be positive, got %d", ErrInvalid, c.Input.ReleaseAfterMS)
	}
	return nil
}
