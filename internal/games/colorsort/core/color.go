// Package core implements the color-sort puzzle state machine: level
// configuration, randomized distribution, pour legality and win detection.
// It has no terminal, storage or logging dependencies.
package core

import "errors"

// Color identifies a liquid color. Values are lipgloss color specs so the
// platform can render them directly; the default palette uses hex codes.
type Color string

// NoColor marks the absence of an armed color.
const NoColor Color = ""

// PaletteSize is the number of colors in the default palette.
const PaletteSize = 8

// Palette is an ordered catalog of distinct colors.
type Palette []Color

// DefaultPalette is the built-in 8-color catalog.
var DefaultPalette = Palette{
	"#FF5733",
	"#33FF57",
	"#3357FF",
	"#FF33A1",
	"#A133FF",
	"#33FFA1",
	"#FFC300",
	"#C70039",
}

// Shuffler is the randomness source used for generation.
// *math/rand.Rand satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// ErrInvalidColorCount is returned when a draw asks for more colors than the
// palette holds, or for none at all.
var ErrInvalidColorCount = errors.New("colorsort: invalid color count")

// Draw returns count unique colors: the whole palette is shuffled and the
// first count entries are taken. The receiver is not modified.
func (p Palette) Draw(rng Shuffler, count int) ([]Color, error) {
	if count < 1 || count > len(p) {
		return nil, ErrInvalidColorCount
	}

	work := make([]Color, len(p))
	copy(work, p)
	rng.Shuffle(len(work), func(i, j int) {
		work[i], work[j] = work[j], work[i]
	})

	return work[:count:count], nil
}

// Index returns the position of c in the palette, or -1.
func (p Palette) Index(c Color) int {
	for i, pc := range p {
		if pc == c {
			return i
		}
	}
	return -1
}
