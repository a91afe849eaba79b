package core

// RuntimeConfig contains configuration passed to games at initialization.
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

// GameState is the coarse status a game reports to the platform.
type GameState struct {
	Score    int
	GameOver bool // Won or lost; the run has ended
	Won      bool // Only meaningful when GameOver is set
	Paused   bool
	Menu     bool // Title screen shown, no run started yet
	Ticks    int  // Simulation ticks played in the current run
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
