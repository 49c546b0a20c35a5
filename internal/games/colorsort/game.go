// Package colorsort provides the Color Sort bottle puzzle for the terminal
// platform. Each input frame maps to one call into the puzzle core.
package colorsort

import (
	"errors"
	"math/rand"

	"github.com/vovakirdan/colorsort/internal/config"
	platformcore "github.com/vovakirdan/colorsort/internal/core"
	"github.com/vovakirdan/colorsort/internal/games/colorsort/core"
	"github.com/vovakirdan/colorsort/internal/registry"
)

// GameID is the registry and score-table identifier.
const GameID = "colorsort"

// Package-level variables for configuration
var (
	configPath         string
	selectedStartLevel int
)

// SetConfigPath sets a custom config path for the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetStartLevel sets the starting level (1-indexed). 0 means level 1.
func SetStartLevel(level int) {
	selectedStartLevel = level
}

// GetStartLevel returns the currently selected start level.
func GetStartLevel() int {
	return selectedStartLevel
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// Game implements registry.Game for the puzzle.
type Game struct {
	ctrl  *core.Controller
	state core.State

	startLevel int // Per-instance start level, overrides SetStartLevel

	cursor    int    // Container under the cursor
	status    string // One-line feedback for the last command
	statusBad bool   // Status reports a rejected command
	err       error  // Set when the level could not be generated
	configErr error  // Load failure reported on the next Step

	screenW int
	screenH int
}

// New creates a new Color Sort game.
func New() *Game {
	return &Game{}
}

// StartAt makes the next Reset of this instance begin at the given level.
// Unlike SetStartLevel it is safe when many sessions share the process.
func (g *Game) StartAt(level int) {
	g.startLevel = level
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Color Sort"
}

// Rules converts a loaded config into puzzle rules.
func Rules(cfg config.ColorSortConfig) core.Rules {
	rules := core.Rules{
		Palette: make(core.Palette, len(cfg.Palette)),
		Levels:  make(core.Levels, len(cfg.Levels)),
	}
	for i, c := range cfg.Palette {
		rules.Palette[i] = core.Color(c)
	}
	for i, lvl := range cfg.Levels {
		rules.Levels[i] = core.LevelConfig{Containers: lvl.Containers, Colors: lvl.Colors}
	}
	return rules
}

// Reset starts a new run: score 0 at the selected start level.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.status, g.statusBad = "", false
	rules := core.DefaultRules()
	loaded, err := config.LoadColorSort(configPath)
	g.configErr = err
	if err == nil {
		rules = Rules(loaded)
	} else {
		g.status, g.statusBad = "Config error, using defaults: "+err.Error(), true
	}

	g.ctrl = core.NewController(rules, rand.New(rand.NewSource(cfg.Seed)))
	g.Resize(cfg.ScreenW, cfg.ScreenH)

	start := 1
	if g.startLevel > 0 {
		start = g.startLevel
	} else if selectedStartLevel > 0 {
		start = selectedStartLevel
		selectedStartLevel = 0 // Reset after use
	}

	state, err := g.ctrl.InitializeLevel(start)
	g.install(state, err)
	if err == nil && g.status == "" {
		g.status = "Pick a color, then a bottle"
	}
}

// Resize records the terminal size. The puzzle is kept.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
}

// install replaces the whole level state, as restart and advance do.
func (g *Game) install(state core.State, err error) {
	if err != nil {
		g.err = err
		g.status, g.statusBad = "Cannot build level: "+err.Error(), true
		return
	}
	g.err = nil
	g.state = state
	g.cursor = 0
}

// Step handles one input frame. After a failed level build only restart
// is accepted.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	var events []platformcore.Event
	if g.configErr != nil {
		events = append(events, platformcore.Event{Name: "config", Err: g.configErr})
		g.configErr = nil
	}
	if g.ctrl == nil || g.tooSmall() || (g.err != nil && !in.Has(platformcore.ActionRestart)) {
		return platformcore.StepResult{State: g.State(), Events: events}
	}

	won := core.IsWin(g.state)
	g.statusBad = false

	switch {
	case in.Has(platformcore.ActionRestart):
		state, err := g.ctrl.RestartLevel(g.state)
		g.install(state, err)
		if err == nil {
			g.status = "Level reshuffled"
		}
		events = append(events, platformcore.Event{Name: "restart", Err: err})

	case in.Has(platformcore.ActionNext):
		if !won {
			g.status, g.statusBad = "Solve the level first", true
			break
		}
		state, err := g.ctrl.AdvanceLevel(g.state)
		g.install(state, err)
		if err == nil {
			g.status = "Pick a color, then a bottle"
		}
		events = append(events, platformcore.Event{Name: "advance", Err: err})

	case won:
		// Only restart and next are accepted on a solved board

	case in.Has(platformcore.ActionLeft):
		g.moveCursor(-1)

	case in.Has(platformcore.ActionRight):
		g.moveCursor(1)

	case in.Has(platformcore.ActionSelectColor):
		g.arm(in.Arg)

	case in.Has(platformcore.ActionNextColor):
		g.arm(g.nextColorSlot())

	case in.Has(platformcore.ActionConfirm):
		events = append(events, g.pour(g.cursor))

	case in.Has(platformcore.ActionClick):
		if idx, ok := g.ContainerAt(in.X, in.Y); ok {
			g.cursor = idx
			events = append(events, g.pour(idx))
		} else if slot, ok := g.SwatchAt(in.X, in.Y); ok {
			g.arm(slot)
		}
	}

	return platformcore.StepResult{State: g.State(), Events: events}
}

func (g *Game) moveCursor(delta int) {
	n := len(g.state.Containers)
	if n == 0 {
		return
	}
	g.cursor = (g.cursor + delta + n) % n
}

// arm selects the color in the given palette slot of the current level.
func (g *Game) arm(slot int) {
	if slot < 0 || slot >= len(g.state.Colors) {
		return
	}
	g.state = core.SelectColor(g.state, g.state.Colors[slot])
	g.status = "Color armed, choose a bottle"
}

// nextColorSlot returns the slot after the armed color, wrapping.
// With nothing armed it is the first slot.
func (g *Game) nextColorSlot() int {
	n := len(g.state.Colors)
	if n == 0 {
		return 0
	}
	return (core.Palette(g.state.Colors).Index(g.state.Selected) + 1) % n
}

func (g *Game) pour(index int) platformcore.Event {
	next, outcome := core.ApplyMove(g.state, index)
	g.state = next

	g.statusBad = outcome.Err != nil
	switch {
	case outcome.Won:
		g.status = "Sorted! Press N for the next level"
	case outcome.Applied:
		g.status = "Poured"
	case errors.Is(outcome.Err, core.ErrNoColorSelected):
		g.status = "Pick a color first"
	case errors.Is(outcome.Err, core.ErrContainerFull):
		g.status = "That bottle is full"
	default:
		g.status = "No such bottle"
	}

	name := "pour"
	if outcome.Won {
		name = "win"
	}
	return platformcore.Event{Name: name, Err: outcome.Err}
}

// State returns the platform view of the puzzle.
func (g *Game) State() platformcore.GameState {
	return platformcore.GameState{
		Score:    g.state.Score,
		Level:    g.state.Level,
		Won:      g.err == nil && g.ctrl != nil && core.IsWin(g.state),
		GameOver: g.err != nil,
	}
}

// Puzzle returns a copy of the current puzzle state.
func (g *Game) Puzzle() core.State {
	return g.state.Clone()
}

// Cursor returns the container index under the cursor.
func (g *Game) Cursor() int {
	return g.cursor
}

// Status returns the feedback line for the last command.
func (g *Game) Status() string {
	return g.status
}
