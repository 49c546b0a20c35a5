// Package registry keeps the set of playable games.
// Games register a factory from init(), so the CLI and the SSH session can
// list and build them without importing each game directly.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/colorsort/internal/core"
)

// Game is what the terminal platform drives.
// Games are event driven: Step runs once per input event and returns
// immediately, so nothing here needs a clock.
type Game interface {
	// ID returns a unique identifier, used for CLI arguments and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset starts a new run from the configured start level.
	Reset(cfg core.RuntimeConfig)

	// Resize tells the game the terminal size changed. State is kept.
	Resize(width, height int)

	// Step applies one input frame.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into a pre-cleared screen buffer.
	Render(dst *core.Screen)

	// State returns the current platform-level state.
	State() core.GameState
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

type entry struct {
	title   string
	factory Factory
}

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a game factory. Panics on a duplicate ID.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{title: f().Title(), factory: f}
}

// List returns all registered games sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		result = append(result, GameInfo{ID: id, Title: e.title})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a game by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
