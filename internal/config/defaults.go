package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

//go:embed defaults/flappy_minimal.yaml
var defaultMinimalYAML []byte

// DefaultFlappyConfig returns the full game configuration: obstacles,
// scoring and the flap gate enabled on the classic 80x48 console.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Screen: FlappyScreen{
			Width:  80,
			Height: 48,
		},
		Physics: FlappyPhysics{
			Gravity:      100,
			FlapGate:     true,
			MaxFrameTime: 0.25,
		},
		Track: FlappyTrack{
			Enabled:      true,
			Sections:     3,
			ScrollSpeed:  14,
			HeightMargin: 20,
			FreePassMax:  10,
			PipeOffset:   15,
			PipeWidth:    5,
			Opening:      20,
		},
		Bird: FlappyBird{
			HitboxWidth: 6,
		},
		Collision: FlappyCollision{
			Mode:       CollisionBuffer,
			EdgeMargin: 2,
		},
		Scoring: FlappyScoring{
			Enabled: true,
		},
		Input: FlappyInput{
			FlapKeys:       []string{" ", "up", "w"},
			ReleaseAfterMS: 120,
			ArmedRestart:   false,
		},
	}
}

// DefaultMinimalConfig returns the physics demo configuration: the same
// bird with no obstacles, no scoring and an ungated flap.
func DefaultMinimalConfig() FlappyConfig {
	cfg := DefaultFlappyConfig()
	cfg.Physics.FlapGate = false
	cfg.Track.Enabled = false
	cfg.Track.Sections = 4
	cfg.Scoring.Enabled = false
	return cfg
}

// Default returns the hardcoded defaults for a variant.
// Unknown variants get the full game defaults.
func Default(variant string) FlappyConfig {
	if variant == VariantMinimal {
		return DefaultMinimalConfig()
	}
	return DefaultFlappyConfig()
}

// GetDefaultYAML returns the embedded default YAML for a variant.
func GetDefaultYAML(variant string) []byte {
	switch variant {
	case VariantFull:
		return defaultFlappyYAML
	case VariantMinimal:
		return defaultMinimalYAML
	default:
		return nil
	}
}
