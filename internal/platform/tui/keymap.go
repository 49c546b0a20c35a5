// Package tui provides the Bubble Tea integration for the puzzle platform.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/colorsort/internal/core"
)

// GameKeyMap defines the in-game key bindings.
type GameKeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Pour       key.Binding
	Color      key.Binding
	NextColor  key.Binding
	Restart    key.Binding
	Next       key.Binding
	Back       key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Color, k.Left, k.Right, k.Pour, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Color, k.NextColor, k.Left, k.Right, k.Pour},
		{k.Restart, k.Next, k.Back, k.Screenshot, k.Quit},
	}
}

// DefaultGameKeyMap returns default key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h", "a"),
			key.WithHelp("←/h", "prev bottle"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l", "d"),
			key.WithHelp("→/l", "next bottle"),
		),
		Pour: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "pour"),
		),
		Color: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8"),
			key.WithHelp("1-8", "pick color"),
		),
		NextColor: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next color"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart level"),
		),
		Next: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "next level"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "menu"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key and mouse messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	Keys GameKeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{Keys: DefaultGameKeyMap()}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone), its argument and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, arg int, isQuit bool) {
	k := km.Keys
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit, 0, true
	case key.Matches(msg, k.Left):
		return core.ActionLeft, 0, false
	case key.Matches(msg, k.Right):
		return core.ActionRight, 0, false
	case key.Matches(msg, k.Pour):
		return core.ActionConfirm, 0, false
	case key.Matches(msg, k.Color):
		return core.ActionSelectColor, int(msg.String()[0] - '1'), false
	case key.Matches(msg, k.NextColor):
		return core.ActionNextColor, 0, false
	case key.Matches(msg, k.Restart):
		return core.ActionRestart, 0, false
	case key.Matches(msg, k.Next):
		return core.ActionNext, 0, false
	case key.Matches(msg, k.Back):
		return core.ActionBack, 0, false
	}
	return core.ActionNone, 0, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, arg, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
		frame.Arg = arg
	}
	return isQuit
}

// MapMouseToFrame turns a left-button press into a click at the cell
// position. Other mouse events leave the frame untouched.
func (km *KeyMapper) MapMouseToFrame(msg tea.MouseMsg, frame *core.InputFrame) bool {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return false
	}
	frame.Set(core.ActionClick)
	frame.X = msg.X
	frame.Y = msg.Y
	return true
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	}

	return MenuActionNone
}
