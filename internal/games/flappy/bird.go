package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
)

// Sprite rows. Wings are raised while falling and lowered while flapping.
var (
	spriteFalling  = [2]string{`\\\`, `<\\\=Q`}
	spriteFlapping = [2]string{`<///=Q`, `///`}
)

// Bird is the vertical motion state of the player. Position is in rows,
// measured from the top of the screen, and may be fractional.
type Bird struct {
	Position     float64
	Velocity     float64
	Acceleration float64
}

// Reset places the bird at the given row at rest.
func (b *Bird) Reset(position float64) {
	b.Position = position
	b.Velocity = 0
	b.Acceleration = 0
}

// Update integrates one frame of dt seconds and reports whether a flap was
// applied. Gravity is added to acceleration (jerk), acceleration is capped at
// gravity, then velocity and position follow in that order.
func (b *Bird) Update(dt float64, flap bool, p config.FlappyPhysics) bool {
	flapped := flap && (!p.FlapGate || b.Velocity >= p.Gravity/10)
	if flapped {
		b.Acceleration = 0
		b.Velocity = -p.Gravity / 4
	} else {
		b.Acceleration += p.Gravity * dt
	}

	if b.Acceleration >= p.Gravity {
		b.Acceleration = p.Gravity
	}

	b.Velocity += b.Acceleration * dt
	b.Position += b.Velocity * dt
	return flapped
}

// Row returns the screen row of the sprite's top line.
func (b *Bird) Row() int {
	return int(b.Position)
}

// Sprite returns the two glyph rows for the current direction of travel.
func (b *Bird) Sprite() [2]string {
	if b.Velocity > 0 {
		return spriteFalling
	}
	return spriteFlapping
}
