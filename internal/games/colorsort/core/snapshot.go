package core

import (
	"fmt"
	"strings"
)

// Snapshot captures a state in a printable, comparable form for
// determinism tests and debug logs.
type Snapshot struct {
	Level      int
	Score      int
	Selected   int      // Slot of the armed color in Colors, -1 when none
	Containers []string // One "|ABCD|" line per container
	Won        bool
}

// Snapshot returns the state's snapshot. Colors are lettered A, B, ... in
// the order of s.Colors.
func (s State) Snapshot() Snapshot {
	key := make(map[Color]rune, len(s.Colors))
	selected := -1
	for i, c := range s.Colors {
		key[c] = rune('A' + i)
		if c == s.Selected {
			selected = i
		}
	}

	lines := make([]string, len(s.Containers))
	for i, c := range s.Containers {
		lines[i] = c.Format(key)
	}

	return Snapshot{
		Level:      s.Level,
		Score:      s.Score,
		Selected:   selected,
		Containers: lines,
		Won:        IsWin(s),
	}
}

// String renders the snapshot on multiple lines.
func (s Snapshot) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "level=%d score=%d selected=%d won=%t\n", s.Level, s.Score, s.Selected, s.Won)
	for _, line := range s.Containers {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return sb.String()
}
