package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/colorsort/internal/config"
	"github.com/vovakirdan/colorsort/internal/core"
	"github.com/vovakirdan/colorsort/internal/registry"
	"github.com/vovakirdan/colorsort/internal/storage"
)

// stubGame records what the platform asks of it.
type stubGame struct {
	resets  int
	steps   []core.InputFrame
	width   int
	height  int
	state   core.GameState
	started int
}

func (g *stubGame) ID() string { return "stub" }
func (g *stubGame) Title() string { return "Stub" }

func (g *stubGame) Reset(cfg core.RuntimeConfig) {
	g.resets++
	g.width, g.height = cfg.ScreenW, cfg.ScreenH
	g.state = core.GameState{Level: 1}
	if g.started > 0 {
		g.state.Level = g.started
	}
}

func (g *stubGame) Resize(width, height int) { g.width, g.height = width, height }

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.steps = append(g.steps, in)
	if in.Has(core.ActionConfirm) {
		g.state.Score += 10
	}
	return core.StepResult{State: g.state}
}

func (g *stubGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "stub") }

func (g *stubGame) State() core.GameState { return g.state }

func (g *stubGame) StartAt(level int) { g.started = level }

// lastStub is the most recent stub built by the registry factory.
var lastStub *stubGame

func init() {
	registry.Register("stub", func() registry.Game {
		lastStub = &stubGame{}
		return lastStub
	})
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func newTestModel(t *testing.T, store *storage.Store) (GameModel, *stubGame) {
	t.Helper()
	game := &stubGame{}
	m := NewGameModel(game, store, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1}, nil)
	m.Init()
	return m, game
}

func update(m GameModel, msg tea.Msg) (GameModel, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(GameModel), cmd
}

func TestGameModelStepsOncePerKey(t *testing.T) {
	m, game := newTestModel(t, nil)

	if game.resets != 1 || game.height != 23 {
		t.Fatalf("resets=%d height=%d, want 1 reset at height 23", game.resets, game.height)
	}

	m, _ = update(m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(m, runeKey('x'))
	m, _ = update(m, runeKey('2'))

	if len(game.steps) != 2 {
		t.Fatalf("steps = %d, want 2", len(game.steps))
	}
	if !game.steps[0].Has(core.ActionConfirm) {
		t.Error("first step should pour")
	}
	if !game.steps[1].Has(core.ActionSelectColor) || game.steps[1].Arg != 1 {
		t.Errorf("second step = %+v", game.steps[1])
	}
	if game.steps[1].Has(core.ActionConfirm) {
		t.Error("input frame should be cleared between steps")
	}
	if m.State().Score != 10 {
		t.Errorf("score = %d, want 10", m.State().Score)
	}
}

func TestGameModelMouse(t *testing.T) {
	m, game := newTestModel(t, nil)

	update(m, tea.MouseMsg{X: 5, Y: 7, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if len(game.steps) != 1 || !game.steps[0].Has(core.ActionClick) {
		t.Fatalf("steps = %+v", game.steps)
	}
	if game.steps[0].X != 5 || game.steps[0].Y != 7 {
		t.Errorf("click at %d,%d", game.steps[0].X, game.steps[0].Y)
	}
}

func TestGameModelResizeKeepsGame(t *testing.T) {
	m, game := newTestModel(t, nil)

	update(m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if game.resets != 1 {
		t.Errorf("resize reset the game")
	}
	if game.width != 100 || game.height != 39 {
		t.Errorf("game size = %dx%d, want 100x39", game.width, game.height)
	}
}

func TestGameModelSavesScoreOnQuit(t *testing.T) {
	store := openStore(t)
	m, game := newTestModel(t, store)
	game.state.Level = 3

	m, _ = update(m, tea.KeyMsg{Type: tea.KeyEnter})
	m, cmd := update(m, runeKey('q'))
	if cmd == nil || !m.IsQuitting() {
		t.Fatal("q should quit")
	}

	scores, err := store.TopScores("stub", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(scores) != 1 || scores[0].Score != 10 || scores[0].Level != 3 {
		t.Errorf("scores = %+v", scores)
	}
}

func TestGameModelSkipsZeroScore(t *testing.T) {
	store := openStore(t)
	m, _ := newTestModel(t, store)

	m, _ = update(m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Fatal("esc should go back")
	}

	if best, _ := store.HighScore("stub"); best != 0 {
		t.Errorf("zero-score run was saved: %d", best)
	}
}

func TestGameModelView(t *testing.T) {
	m, _ := newTestModel(t, nil)

	view := m.View()
	if !strings.Contains(view, "stub") {
		t.Error("view should contain the game frame")
	}
	if !strings.Contains(view, "pour") {
		t.Error("view should contain the help line")
	}
}

func session(t *testing.T) SessionModel {
	t.Helper()
	return NewSessionModel("stub", nil, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24}, nil)
}

func sessionUpdate(m SessionModel, msg tea.Msg) SessionModel {
	next, _ := m.Update(msg)
	return next.(SessionModel)
}

func TestSessionFlow(t *testing.T) {
	m := session(t)

	m = sessionUpdate(m, tea.KeyMsg{Type: tea.KeyEnter}) // Play
	if m.screen != screenGame {
		t.Fatalf("screen = %v, want game", m.screen)
	}
	if lastStub == nil || lastStub.resets != 1 {
		t.Fatal("game was not started")
	}

	m = sessionUpdate(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu {
		t.Fatalf("screen = %v, want menu", m.screen)
	}
	if m.menu.Choice() != MenuChoiceNone {
		t.Error("menu should be fresh after returning")
	}

	m = sessionUpdate(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.screen != screenScores {
		t.Fatalf("screen = %v, want scores", m.screen)
	}
	m = sessionUpdate(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu {
		t.Fatalf("screen = %v, want menu", m.screen)
	}
}

func TestSessionPickLevel(t *testing.T) {
	m := session(t)
	m.levels = []config.LevelEntry{{Containers: 2, Colors: 2}, {Containers: 3, Colors: 3}}

	m = sessionUpdate(m, tea.KeyMsg{Type: tea.KeyDown})
	m = sessionUpdate(m, tea.KeyMsg{Type: tea.KeyEnter}) // Select Level...
	if m.screen != screenPicker {
		t.Fatalf("screen = %v, want picker", m.screen)
	}

	m = sessionUpdate(m, tea.KeyMsg{Type: tea.KeyDown})
	m = sessionUpdate(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenGame {
		t.Fatalf("screen = %v, want game", m.screen)
	}
	if lastStub.State().Level != 2 {
		t.Errorf("started at level %d, want 2", lastStub.State().Level)
	}
}

func TestSessionQuit(t *testing.T) {
	m := session(t)

	next, cmd := m.Update(runeKey('q'))
	if cmd == nil || !next.(SessionModel).quitting {
		t.Error("q in the menu should end the session")
	}
}
