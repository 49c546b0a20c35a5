package colorsort

import (
	"strconv"

	platformcore "github.com/vovakirdan/colorsort/internal/core"
	"github.com/vovakirdan/colorsort/internal/games/colorsort/core"
)

// Layout constants in screen cells.
const (
	minScreenW = 40
	minScreenH = 16

	hudHeight = 4 // Title, separator, controls, separator

	bottleW   = core.Capacity + 2 // Layer width plus walls
	bottleH   = core.Capacity + 2 // Layers plus rim and base
	bottleGap = 3
	rowH      = bottleH + 2 // Bottle, cursor marker, spacing

	swatchW = 6 // "1:██  "
)

const (
	layerRune  = '█'
	cursorRune = '▲'
)

// layout holds the positions of everything clickable.
type layout struct {
	bottles  []platformcore.Rect
	swatches []platformcore.Rect
	paletteY int
}

// computeLayout places bottles in centered rows below the HUD and the
// color swatches on the line after the last row.
func computeLayout(width, containers, colors int) layout {
	var l layout

	perRow := (width + bottleGap) / (bottleW + bottleGap)
	if perRow < 1 {
		perRow = 1
	}

	y := hudHeight + 1
	for start := 0; start < containers; start += perRow {
		n := min(perRow, containers-start)
		rowW := n*bottleW + (n-1)*bottleGap
		x := (width - rowW) / 2
		for i := 0; i < n; i++ {
			l.bottles = append(l.bottles, platformcore.NewRect(x, y, bottleW, bottleH))
			x += bottleW + bottleGap
		}
		y += rowH
	}

	l.paletteY = y
	rowW := colors * swatchW
	x := (width - rowW) / 2
	for i := 0; i < colors; i++ {
		l.swatches = append(l.swatches, platformcore.NewRect(x, y, swatchW-2, 1))
		x += swatchW
	}
	return l
}

func (g *Game) layout() layout {
	return computeLayout(g.screenW, len(g.state.Containers), len(g.state.Colors))
}

// tooSmall reports whether the board and status line do not fit the screen.
func (g *Game) tooSmall() bool {
	if g.screenW < minScreenW || g.screenH < minScreenH {
		return true
	}
	return g.ctrl != nil && g.layout().paletteY+1 >= g.screenH-1
}

// ContainerAt returns the bottle drawn at screen position (x, y).
func (g *Game) ContainerAt(x, y int) (int, bool) {
	for i, r := range g.layout().bottles {
		if r.Contains(x, y) {
			return i, true
		}
	}
	return 0, false
}

// SwatchAt returns the palette slot drawn at screen position (x, y).
func (g *Game) SwatchAt(x, y int) (int, bool) {
	for i, r := range g.layout().swatches {
		if r.Contains(x, y) {
			return i, true
		}
	}
	return 0, false
}

// Render draws the current frame.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall() {
		g.renderOverlay(dst, "Window too small", "Need at least "+
			strconv.Itoa(minScreenW)+"x"+strconv.Itoa(minScreenH))
		return
	}
	if g.err != nil {
		g.renderOverlay(dst, "Cannot build level", "Check the colorsort config")
		return
	}
	if g.ctrl == nil {
		return
	}

	l := g.layout()
	g.renderBottles(dst, l)
	g.renderPalette(dst, l)
	statusColor := platformcore.ColorGray
	if g.statusBad {
		statusColor = platformcore.ColorRed
	}
	dst.DrawTextColored(1, dst.Height()-1, g.status, statusColor)

	if core.IsWin(g.state) {
		g.renderOverlay(dst, "Level "+strconv.Itoa(g.state.Level)+" sorted!",
			"Score "+strconv.Itoa(g.state.Score)+"   N: next level   R: replay")
	}
}

func (g *Game) renderHUD(dst *platformcore.Screen) {
	hud := " Color Sort | Level: " + strconv.Itoa(g.state.Level) +
		" | Score: " + strconv.Itoa(g.state.Score)
	dst.DrawTextColored(0, 0, hud, platformcore.ColorCyan)

	if g.state.HasSelection() {
		x := len([]rune(hud)) + 3
		dst.DrawTextColored(x, 0, "Armed:", platformcore.ColorWhite)
		dst.DrawTextColored(x+7, 0, "██", colorOf(g.state.Selected))
	}

	for x := 0; x < dst.Width(); x++ {
		dst.SetColored(x, 1, '─', platformcore.ColorGray)
	}
	dst.DrawTextColored(0, 2, " ←/→: Bottle | 1-8/Tab: Color | Enter: Pour | R: Restart | N: Next",
		platformcore.ColorGray)
	for x := 0; x < dst.Width(); x++ {
		dst.SetColored(x, 3, '─', platformcore.ColorGray)
	}
}

func (g *Game) renderBottles(dst *platformcore.Screen, l layout) {
	for i, r := range l.bottles {
		wall := platformcore.ColorWhite
		if i == g.cursor {
			wall = platformcore.ColorYellow
		}
		if g.state.Containers[i].IsSolved() {
			wall = platformcore.ColorGreen
		}

		// Open top: walls and base only
		for y := r.Y; y < r.Bottom()-1; y++ {
			dst.SetColored(r.X, y, '│', wall)
			dst.SetColored(r.Right()-1, y, '│', wall)
		}
		dst.SetColored(r.X, r.Bottom()-1, '└', wall)
		dst.SetColored(r.Right()-1, r.Bottom()-1, '┘', wall)
		for x := r.X + 1; x < r.Right()-1; x++ {
			dst.SetColored(x, r.Bottom()-1, '─', wall)
		}

		// Layer 0 sits on the base
		for layer, c := range g.state.Containers[i] {
			y := r.Bottom() - 2 - layer
			dst.DrawRect(platformcore.NewRect(r.X+1, y, core.Capacity, 1), layerRune, colorOf(c))
		}

		if i == g.cursor {
			cx, _ := r.Center()
			dst.SetColored(cx, r.Bottom(), cursorRune, platformcore.ColorYellow)
		}
	}
}

func (g *Game) renderPalette(dst *platformcore.Screen, l layout) {
	for i, r := range l.swatches {
		c := g.state.Colors[i]
		label := platformcore.ColorGray
		if c == g.state.Selected {
			label = platformcore.ColorYellow
			dst.SetColored(r.X-1, r.Y, '[', label)
			dst.SetColored(r.Right(), r.Y, ']', label)
		}
		dst.DrawTextColored(r.X, r.Y, strconv.Itoa(i+1)+":", label)
		dst.DrawTextColored(r.X+2, r.Y, "██", colorOf(c))
	}
}

func (g *Game) renderOverlay(dst *platformcore.Screen, line1, line2 string) {
	maxLen := max(len([]rune(line1)), len([]rune(line2)))
	boxW, boxH := maxLen+4, 5
	box := platformcore.NewRect(
		platformcore.Clamp((dst.Width()-boxW)/2, 0, dst.Width()),
		platformcore.Clamp((dst.Height()-boxH)/2, 0, dst.Height()),
		boxW, boxH)

	dst.DrawRect(box, ' ', platformcore.ColorDefault)
	dst.DrawBox(box, platformcore.ColorWhite)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}

func colorOf(c core.Color) platformcore.Color {
	return platformcore.Color(c)
}
