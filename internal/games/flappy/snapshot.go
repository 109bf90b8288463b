package flappy

// Snapshot contains the complete observable state of a session.
// Uses primitive types only so two runs can be compared directly.
type Snapshot struct {
	Frame        int
	Attempt      int
	Score        int
	HighScore    int
	BirdY        float64
	Velocity     float64
	Acceleration float64
	Heights      []int
	Offset       float64
	Collided     bool
	Paused       bool
}

// Snapshot returns the current session state.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Frame:        g.frames,
		Attempt:      g.attempt,
		Score:        g.score,
		HighScore:    g.highScore,
		BirdY:        g.bird.Position,
		Velocity:     g.bird.Velocity,
		Acceleration: g.bird.Acceleration,
		Collided:     g.collided,
		Paused:       g.paused,
	}
	if g.track != nil {
		snap.Heights = g.track.Heights()
		snap.Offset = g.track.Offset()
	}
	return snap
}
