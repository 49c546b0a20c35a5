package core

import "errors"

// PourPoints is the score awarded for each successful pour.
const PourPoints = 10

// Move rejection reasons. A rejected move leaves the state unchanged.
var (
	ErrNoColorSelected       = errors.New("colorsort: no color selected")
	ErrInvalidContainerIndex = errors.New("colorsort: invalid container index")
	ErrContainerFull         = errors.New("colorsort: container full")
)

// State is one level's puzzle. Operations never mutate their input; they
// return a new State for the owner to keep.
type State struct {
	Containers []Container
	Colors     []Color // Colors available for arming this level
	Level      int     // 1-indexed, only ever increases
	Score      int     // Carried across levels
	Selected   Color   // Armed color, NoColor when none
}

// HasSelection reports whether a color is armed.
func (s State) HasSelection() bool {
	return s.Selected != NoColor
}

// Clone returns a deep copy.
func (s State) Clone() State {
	out := s
	out.Containers = make([]Container, len(s.Containers))
	for i, c := range s.Containers {
		out.Containers[i] = c.Clone()
	}
	out.Colors = append([]Color(nil), s.Colors...)
	return out
}

// SelectColor arms c for the next pour, replacing any previous selection.
// The returned state shares nothing with s.
func SelectColor(s State, c Color) State {
	next := s.Clone()
	next.Selected = c
	return next
}

// MoveOutcome describes the result of ApplyMove.
type MoveOutcome struct {
	Applied bool  // The pour happened
	Won     bool  // The resulting state satisfies IsWin
	Err     error // Rejection reason when Applied is false
}

// ApplyMove pours the armed color onto the container at index.
// Any color may go onto any non-full container; there is no top-color
// matching rule. On success the score grows by PourPoints and the selection
// is consumed.
func ApplyMove(s State, index int) (State, MoveOutcome) {
	if !s.HasSelection() {
		return s, MoveOutcome{Err: ErrNoColorSelected}
	}
	if index < 0 || index >= len(s.Containers) {
		return s, MoveOutcome{Err: ErrInvalidContainerIndex}
	}
	if s.Containers[index].IsFull() {
		return s, MoveOutcome{Err: ErrContainerFull}
	}

	next := s.Clone()
	next.Containers[index] = append(next.Containers[index], s.Selected)
	next.Score += PourPoints
	next.Selected = NoColor

	return next, MoveOutcome{Applied: true, Won: IsWin(next)}
}

// IsWin reports whether every non-empty container is full and of a single
// color. Empty containers never block a win, so a state with no layers at
// all is a win.
func IsWin(s State) bool {
	for _, c := range s.Containers {
		if c.IsEmpty() {
			continue
		}
		if !c.IsSolved() {
			return false
		}
	}
	return true
}
