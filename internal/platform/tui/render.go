package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/colorsort/internal/core"
)

// styleCache maps core.Color to lipgloss styles. Puzzle colors are arbitrary
// hex values, so styles are built on first use. SSH sessions render
// concurrently.
var styleCache sync.Map // core.Color -> lipgloss.Style

func styleFor(c core.Color) lipgloss.Style {
	if s, ok := styleCache.Load(c); ok {
		return s.(lipgloss.Style)
	}
	style := lipgloss.NewStyle()
	if c != core.ColorDefault {
		style = style.Foreground(lipgloss.Color(c))
	}
	styleCache.Store(c, style)
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
