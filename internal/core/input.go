package core

// Action represents a semantic game action, abstracted from physical keys
// and mouse buttons.
type Action int

const (
	ActionNone        Action = iota
	ActionLeft               // Left arrow, h - move the cursor left
	ActionRight              // Right arrow, l - move the cursor right
	ActionConfirm            // Enter, Space - pour at the cursor
	ActionSelectColor        // 1-8 - arm the color in slot Arg
	ActionNextColor          // Tab - arm the next color
	ActionClick              // Mouse press at (X, Y)
	ActionRestart            // R - regenerate the current level
	ActionNext               // N - advance after a win
	ActionBack               // B, Escape - go back to menu
	ActionQuit               // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionSelectColor:
		return "SelectColor"
	case ActionNextColor:
		return "NextColor"
	case ActionClick:
		return "Click"
	case ActionRestart:
		return "Restart"
	case ActionNext:
		return "Next"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame holds the input produced by one terminal event.
type InputFrame struct {
	// Actions maps action types to whether they were triggered.
	Actions map[Action]bool

	// Arg is the slot for ActionSelectColor.
	Arg int

	// X, Y locate ActionClick in screen cells.
	X, Y int
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Empty reports whether no action is set.
func (f InputFrame) Empty() bool {
	for _, on := range f.Actions {
		if on {
			return false
		}
	}
	return true
}

// Clone creates a copy of this input frame that shares no state with it.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Arg, clone.X, clone.Y = f.Arg, f.X, f.Y
	return clone
}

// Clear resets all actions and arguments for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Arg, f.X, f.Y = 0, 0, 0
}
