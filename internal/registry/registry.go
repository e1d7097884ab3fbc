// Package registry keeps the factories of playable games. Game packages
// register themselves from init(), so the platform can build a game by ID
// without importing it directly.
package registry

import (
	"fmt"
	"sync"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Game is a deterministic tick machine driven by the platform.
// Implementations hold no terminal or timing code of their own.
type Game interface {
	// ID returns a unique identifier, used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset discards all match state and starts a fresh match.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into a pre-cleared screen buffer.
	Render(dst *core.Screen)

	// State returns the current summary state.
	State() core.GameState
}

// Factory creates a new game instance.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	mu        sync.RWMutex
)

// Register adds a game factory. Panics on a duplicate ID.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	factories[id] = f
}

// Create instantiates a game by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}
