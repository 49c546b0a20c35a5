package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/colorsort/internal/config"
	"github.com/vovakirdan/colorsort/internal/core"
	"github.com/vovakirdan/colorsort/internal/registry"
	"github.com/vovakirdan/colorsort/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.colorsort/host_key.
	HostKeyPath string

	// DBPath is the path to the scores database.
	DBPath string

	// GameID is the registered game every session plays.
	GameID string

	// ConfigPath is an optional puzzle config shared by all sessions.
	ConfigPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/" + config.AppDir + "/scores.db",
		GameID:      "colorsort",
		IdleTimeout: 30 * time.Minute,
	}
}

// SSHServer wraps a Wish SSH server. Every session gets its own puzzle;
// only the scores database is shared.
type SSHServer struct {
	config SSHServerConfig
	levels []config.LevelEntry
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "colorsort-ssh",
		})
	}
	if !registry.Exists(cfg.GameID) {
		return nil, fmt.Errorf("unknown game %q", cfg.GameID)
	}

	puzzleCfg, err := config.LoadColorSort(cfg.ConfigPath)
	if err != nil {
		return nil, err
	}

	// Open storage
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage
	}

	srv := &SSHServer{
		config: cfg,
		levels: puzzleCfg.Levels,
		store:  store,
		logger: logger,
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, config.AppDir, "host_key")
	}

	// Ensure host key directory exists
	if mkdirErr := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	cfg := core.RuntimeConfig{
		ScreenW: pty.Window.Width,
		ScreenH: pty.Window.Height,
		Seed:    time.Now().UnixNano(),
	}

	logger := s.logger.With("user", sshSession.User())
	model := NewSessionModel(s.config.GameID, s.levels, s.store, cfg, logger)

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	// Setup signal handling for graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if s.store != nil {
		s.store.Close()
	}

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// sessionScreen is the screen a session is currently showing.
type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenPicker
	screenScores
	screenGame
)

// levelStarter is implemented by games that can start at a chosen level
// without touching package state.
type levelStarter interface {
	StartAt(level int)
}

// SessionModel manages the full session flow: menu -> game -> menu.
// This is the top-level model used for SSH sessions. Sub-models end with
// tea.Quit when they are done; the session swallows those and switches
// screens instead.
type SessionModel struct {
	gameID    string
	levels    []config.LevelEntry
	store     *storage.Store
	config    core.RuntimeConfig
	logger    *log.Logger
	screen    sessionScreen
	menu      MenuModel
	picker    LevelPickerModel
	scores    ScoreboardModel
	gameModel GameModel
	quitting  bool
}

// NewSessionModel creates a new session model.
// A nil logger discards log output.
func NewSessionModel(gameID string, levels []config.LevelEntry, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) SessionModel {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return SessionModel{
		gameID: gameID,
		levels: levels,
		store:  store,
		config: cfg,
		logger: logger,
		menu:   NewMenuModel(cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenPicker:
		return m.updatePicker(msg)
	case screenScores:
		return m.updateScores(msg)
	case screenGame:
		return m.updateGame(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if menuModel, ok := next.(MenuModel); ok {
		m.menu = menuModel
	}

	switch m.menu.Choice() {
	case MenuChoiceQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuChoicePlay:
		return m.startGame(0)
	case MenuChoicePickLevel:
		m.screen = screenPicker
		m.picker = NewLevelPickerModel(m.levels, m.config.ScreenW, m.config.ScreenH)
		return m, m.picker.Init()
	case MenuChoiceScores:
		m.screen = screenScores
		m.scores = NewScoreboardModel(m.store, m.gameID, "Color Sort", m.config.ScreenW, m.config.ScreenH)
		return m, m.scores.Init()
	}
	return m, cmd
}

func (m SessionModel) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.picker.Update(msg)
	if picker, ok := next.(LevelPickerModel); ok {
		m.picker = picker
	}

	switch {
	case m.picker.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.picker.WantsBack():
		return m.backToMenu()
	case m.picker.Selected() > 0:
		return m.startGame(m.picker.Selected())
	}
	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scores.Update(msg)
	if scores, ok := next.(ScoreboardModel); ok {
		m.scores = scores
	}

	switch {
	case m.scores.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.scores.IsGoingBack():
		return m.backToMenu()
	}
	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.gameModel.Update(msg)
	if gameModel, ok := next.(GameModel); ok {
		m.gameModel = gameModel
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.gameModel.BackToMenu() {
		return m.backToMenu()
	}
	return m, cmd
}

// startGame creates a fresh game instance for this session.
func (m SessionModel) startGame(level int) (tea.Model, tea.Cmd) {
	game, err := registry.Create(m.gameID)
	if err != nil {
		m.logger.Error("cannot create game", "game", m.gameID, "error", err)
		return m.backToMenu()
	}
	if ls, ok := game.(levelStarter); ok && level > 0 {
		ls.StartAt(level)
	}

	cfg := m.config
	cfg.Seed = time.Now().UnixNano()
	m.gameModel = NewGameModel(game, m.store, cfg, m.logger)
	m.screen = screenGame
	return m, m.gameModel.Init()
}

func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	m.screen = screenMenu
	m.menu = NewMenuModel(m.config)
	return m, m.menu.Init()
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenPicker:
		return m.picker.View()
	case screenScores:
		return m.scores.View()
	case screenGame:
		return m.gameModel.View()
	default:
		return m.menu.View()
	}
}
