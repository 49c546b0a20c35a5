package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/colorsort/internal/config"
	"github.com/vovakirdan/colorsort/internal/core"
	puzzle "github.com/vovakirdan/colorsort/internal/games/colorsort/core"
)

// LevelPickerModel lets users choose the starting level from the level table.
type LevelPickerModel struct {
	levels    []config.LevelEntry
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	selected  int // 1-indexed, 0 while choosing
	quitting  bool
	back      bool
}

// NewLevelPickerModel creates a picker over the given level table.
func NewLevelPickerModel(levels []config.LevelEntry, width, height int) LevelPickerModel {
	return LevelPickerModel{
		levels:    levels,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the model.
func (m LevelPickerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m LevelPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m LevelPickerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.levels)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		if len(m.levels) > 0 {
			m.selected = m.cursor + 1
			return m, tea.Quit
		}
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the level list.
func (m LevelPickerModel) View() string {
	if m.quitting || m.back {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("C O L O R   S O R T", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select starting level:", m.width))
	b.WriteString("\n\n")

	for i, lvl := range m.levels {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%2d. %d bottles, %d colors", cursor, i+1, lvl.Containers+puzzle.Spares(lvl.Containers), lvl.Colors)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the chosen 1-indexed level, or 0 if none.
func (m LevelPickerModel) Selected() int {
	return m.selected
}

// IsQuitting returns true if user wants to quit.
func (m LevelPickerModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m LevelPickerModel) WantsBack() bool {
	return m.back
}

// RunLevelPicker runs the level selection and returns the chosen level,
// or 0 when the user backed out or quit.
func RunLevelPicker(levels []config.LevelEntry, cfg core.RuntimeConfig) (int, error) {
	model := NewLevelPickerModel(levels, cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return 0, err
	}

	m, ok := finalModel.(LevelPickerModel)
	if !ok {
		return 0, nil
	}
	return m.Selected(), nil
}
