package colorsort

import "github.com/vovakirdan/colorsort/internal/games/colorsort/core"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateSolved      GameStateType = "solved"
	StateError       GameStateType = "error"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Puzzle core.Snapshot
	Cursor int
	State  GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.err != nil:
		state = StateError
	case g.tooSmall():
		state = StatePausedSmall
	case core.IsWin(g.state):
		state = StateSolved
	}

	return Snapshot{
		Puzzle: g.state.Snapshot(),
		Cursor: g.cursor,
		State:  state,
	}
}
