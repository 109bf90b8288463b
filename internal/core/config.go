package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second requested from the backend
	Seed     int64 // RNG seed for obstacle generation
}

// DefaultConfig returns a RuntimeConfig matching the classic 80x48 console.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  48,
		TickRate: 60,
		Seed:     0, // 0 means use current time in the driver
	}
}

// GameState is a read-only view of a session, returned by Game.State().
// The driver diffs consecutive states to log and play cues.
type GameState struct {
	Score     int  // Scored flaps since the last reset
	HighScore int  // Best score of the process lifetime
	Attempt   int  // Number of resets, including the first
	Flaps     int  // Applied flaps since the last reset, scored or not
	GameOver  bool // Whether the bird has collided
	Paused    bool // Whether the game is paused
}
