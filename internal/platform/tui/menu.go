package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/colorsort/internal/core"
)

// MenuChoice is what the player picked from the main menu.
type MenuChoice int

const (
	MenuChoiceNone MenuChoice = iota
	MenuChoicePlay
	MenuChoicePickLevel
	MenuChoiceScores
	MenuChoiceQuit
)

// MenuItem is one line of the main menu.
type MenuItem struct {
	Label  string
	Choice MenuChoice
}

var mainMenuItems = []MenuItem{
	{Label: "Play", Choice: MenuChoicePlay},
	{Label: "Select Level...", Choice: MenuChoicePickLevel},
	{Label: "High Scores", Choice: MenuChoiceScores},
	{Label: "Quit", Choice: MenuChoiceQuit},
}

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	width     int
	height    int
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	choice    MenuChoice
}

// NewMenuModel creates a new menu model.
func NewMenuModel(cfg core.RuntimeConfig) MenuModel {
	return MenuModel{
		items:     mainMenuItems,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.choice = MenuChoiceQuit
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		m.choice = m.items[m.cursor].Choice
		return m, tea.Quit
	}

	if msg.String() == "tab" {
		m.choice = MenuChoiceScores
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.choice == MenuChoiceQuit {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("C O L O R   S O R T", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Pour every color into its own bottle", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+item.Label, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit", m.width))
	b.WriteString("\n")

	return b.String()
}

// Choice returns the picked entry, MenuChoiceNone while the menu is open.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	n := len([]rune(text))
	if n >= width {
		return text
	}
	padding := (width - n) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Choice MenuChoice
	Config core.RuntimeConfig
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(cfg),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok || m.Choice() == MenuChoiceNone {
		return MenuResult{Choice: MenuChoiceQuit, Config: cfg}, nil
	}
	return MenuResult{Choice: m.Choice(), Config: m.Config()}, nil
}
