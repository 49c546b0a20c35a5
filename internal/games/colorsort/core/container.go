package core

import "strings"

// Capacity is the number of layers a container holds.
const Capacity = 4

// Container is a bottle: layers listed bottom to top.
type Container []Color

// Len returns the number of layers.
func (c Container) Len() int {
	return len(c)
}

// IsEmpty reports whether the container holds nothing.
func (c Container) IsEmpty() bool {
	return len(c) == 0
}

// IsFull reports whether the container is at capacity.
func (c Container) IsFull() bool {
	return len(c) >= Capacity
}

// Top returns the uppermost layer, or NoColor for an empty container.
func (c Container) Top() Color {
	if len(c) == 0 {
		return NoColor
	}
	return c[len(c)-1]
}

// IsUniform reports whether every layer has the same color.
// Empty containers are uniform.
func (c Container) IsUniform() bool {
	for _, layer := range c {
		if layer != c[0] {
			return false
		}
	}
	return true
}

// IsSolved reports whether the container is full and monochromatic.
func (c Container) IsSolved() bool {
	return len(c) == Capacity && c.IsUniform()
}

// Clone returns an independent copy with room to grow to Capacity.
// Over-full containers keep every layer.
func (c Container) Clone() Container {
	out := make(Container, len(c), max(len(c), Capacity))
	copy(out, c)
	return out
}

// Format renders the container as "|ABC |" using letters from key.
// Colors missing from key are shown as '?'.
func (c Container) Format(key map[Color]rune) string {
	var sb strings.Builder
	sb.WriteByte('|')
	for i := range Capacity {
		if i >= len(c) {
			sb.WriteByte(' ')
			continue
		}
		r, ok := key[c[i]]
		if !ok {
			r = '?'
		}
		sb.WriteRune(r)
	}
	sb.WriteByte('|')
	return sb.String()
}
