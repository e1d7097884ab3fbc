package core

import "math"

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

// Ticks converts a duration in seconds to a whole number of simulation ticks.
// Any positive duration lasts at least one tick.
func (c RuntimeConfig) Ticks(seconds float64) int {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	if seconds <= 0 {
		return 0
	}
	n := int(math.Round(seconds * float64(rate)))
	if n < 1 {
		n = 1
	}
	return n
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score     int  // Current score
	Wave      int  // Current wave (1-based)
	Lives     int  // Remaining lives
	Kills     int  // Enemies destroyed this match
	NukesUsed int  // Nuke charges spent this match
	Ticks     int  // Ticks simulated this match
	Enemies   int  // Enemies currently on the field
	GameOver  bool // Whether the game has ended
	Paused    bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
