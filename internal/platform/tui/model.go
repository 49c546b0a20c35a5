package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/colorsort/internal/config"
	"github.com/vovakirdan/colorsort/internal/core"
	"github.com/vovakirdan/colorsort/internal/registry"
	"github.com/vovakirdan/colorsort/internal/storage"
)

// GameModel is the Bubble Tea model for running a game. The platform is
// event driven: every key or mouse press becomes one Step.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	backToMenu bool
	scoreSaved bool
}

// NewGameModel creates a new Bubble Tea model for the given game.
// A nil logger discards log output.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH-1),
		store:      store,
		logger:     logger,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		help:       h,
		inputFrame: core.NewInputFrame(),
	}
}

// Init resets the game for a new run.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.playConfig())
	m.logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed,
		"level", m.game.State().Level)
	return nil
}

// playConfig is the runtime config minus the help line.
func (m GameModel) playConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH--
	return cfg
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.keyMapper.MapMouseToFrame(msg, &m.inputFrame) {
			m.step()
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.saveScore()
		m.quitting = true
		return m, tea.Quit
	}

	if m.inputFrame.Has(core.ActionBack) {
		m.inputFrame.Clear()
		m.saveScore()
		m.backToMenu = true
		return m, nil
	}

	if !m.inputFrame.Empty() {
		m.step()
	}
	return m, nil
}

// step runs the game on the pending input frame. The game gets a copy,
// since the model's frame is reused for the next event.
func (m *GameModel) step() {
	result := m.game.Step(m.inputFrame.Clone())
	m.inputFrame.Clear()

	for _, ev := range result.Events {
		switch {
		case ev.Err != nil && ev.Name == "config":
			m.logger.Warn("config load failed, using defaults", "err", ev.Err)
			continue
		case ev.Err != nil:
			m.logger.Debug("move rejected", "event", ev.Name, "err", ev.Err)
			continue
		}
		m.logger.Debug(ev.Name, "level", result.State.Level, "score", result.State.Score)
	}
	if result.State.Won && !m.gameState.Won {
		m.logger.Info("level solved", "level", result.State.Level, "score", result.State.Score)
	}
	m.gameState = result.State
}

// handleResize keeps the puzzle and only changes the drawing area.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height-1)
	m.game.Resize(msg.Width, msg.Height-1)
	m.help.Width = msg.Width
	return m, nil
}

// saveScore records the run once, when it earned any points.
func (m *GameModel) saveScore() {
	state := m.game.State()
	if m.scoreSaved || state.Score <= 0 {
		return
	}
	m.scoreSaved = true
	if m.store == nil {
		return
	}
	if _, err := m.store.SaveScore(m.game.ID(), state.Score, state.Level); err != nil {
		m.logger.Warn("could not save score", "error", err)
		return
	}
	m.logger.Info("score saved", "game", m.game.ID(), "score", state.Score, "level", state.Level)
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), config.AppDir, "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	helpLine := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Render(m.help.View(m.keyMapper.Keys))
	return RenderScreen(m.screen) + "\n" + helpLine
}

// State returns the last game state seen by the model.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given game.
// It returns true when the player asked to go back rather than quit.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) (bool, error) {
	model := NewGameModel(game, store, cfg, logger)

	p := tea.NewProgram(
		runUntilBack{model},
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks pour into bottles
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	if r, ok := final.(runUntilBack); ok {
		return r.BackToMenu(), nil
	}
	return false, nil
}

// runUntilBack ends a standalone program when the player goes back,
// since there is no session menu to return to.
type runUntilBack struct {
	GameModel
}

func (r runUntilBack) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := r.GameModel.Update(msg)
	gm, _ := next.(GameModel)
	r.GameModel = gm
	if gm.BackToMenu() {
		return r, tea.Quit
	}
	return r, cmd
}
