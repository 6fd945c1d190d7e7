package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// FrameDelta returns the simulated seconds covered by one tick.
func (c RuntimeConfig) FrameDelta() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.TickRate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score     int     // Enemies killed
	GameOver  bool    // Whether the game has ended
	Paused    bool    // Whether the game is paused
	Phase     string  // Current phase name (Menu, InGame, GameOver)
	Health    float64 // Player health, 0 when no player exists
	MaxHealth float64 // Player max health, 0 when no player exists
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
