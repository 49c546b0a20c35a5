package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/colorsort/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		arg    int
		quit   bool
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, 0, false},
		{"vim right", runeKey('l'), core.ActionRight, 0, false},
		{"enter pours", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, 0, false},
		{"space pours", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionConfirm, 0, false},
		{"first color", runeKey('1'), core.ActionSelectColor, 0, false},
		{"last color", runeKey('8'), core.ActionSelectColor, 7, false},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, core.ActionNextColor, 0, false},
		{"restart", runeKey('r'), core.ActionRestart, 0, false},
		{"next", runeKey('n'), core.ActionNext, 0, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, 0, false},
		{"quit", runeKey('q'), core.ActionQuit, 0, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, 0, true},
		{"unbound digit", runeKey('9'), core.ActionNone, 0, false},
		{"unbound letter", runeKey('x'), core.ActionNone, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, arg, quit := km.MapKey(tt.msg)
			if action != tt.action || arg != tt.arg || quit != tt.quit {
				t.Errorf("MapKey(%q) = (%v, %d, %v), want (%v, %d, %v)",
					tt.msg.String(), action, arg, quit, tt.action, tt.arg, tt.quit)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(runeKey('3'), &frame) {
		t.Fatal("digit should not quit")
	}
	if !frame.Has(core.ActionSelectColor) || frame.Arg != 2 {
		t.Errorf("frame = %+v, want SelectColor arg 2", frame)
	}

	frame.Clear()
	km.MapKeyToFrame(runeKey('x'), &frame)
	if !frame.Empty() {
		t.Error("unbound key should leave the frame empty")
	}
}

func TestMapMouseToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	release := tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
	if km.MapMouseToFrame(release, &frame) || !frame.Empty() {
		t.Error("release should be ignored")
	}

	right := tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonRight}
	if km.MapMouseToFrame(right, &frame) {
		t.Error("right button should be ignored")
	}

	press := tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	if !km.MapMouseToFrame(press, &frame) {
		t.Fatal("left press should map")
	}
	if !frame.Has(core.ActionClick) || frame.X != 3 || frame.Y != 4 {
		t.Errorf("frame = %+v, want click at 3,4", frame)
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runeKey('q'), MenuActionQuit},
		{runeKey('z'), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}
