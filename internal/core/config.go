package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed for deterministic generation
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Level    int  // Current level, 1-indexed
	Won      bool // Current level is solved
	GameOver bool // Whether the game has ended
}

// Event is a notable thing that happened while handling input.
// The platform only logs events; games never depend on them being read.
type Event struct {
	Name string
	Err  error // Set for rejected commands
}

// StepResult is returned by Game.Step() after each input frame.
type StepResult struct {
	State  GameState
	Events []Event
}
