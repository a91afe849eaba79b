package core

// Action is a semantic game action, abstracted from physical keys.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow
	ActionRight          // D, Right arrow
	ActionJump           // Space, W, Up arrow
	ActionConfirm        // Enter - start from the menu
	ActionBack           // B, Escape - leave the game
	ActionRestart        // R - restart after a win or a loss
	ActionQuit           // Q, Ctrl+C
	ActionPause          // P - pause/resume
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
	case ActionJump:
		return "Jump"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// Click is a primary-button press at a screen cell.
type Click struct {
	X, Y int
}

// InputFrame is the input state consumed by one simulation tick.
// Held actions (movement, jump) are present on every tick the key is held;
// one-shot actions (pause, restart) only on the tick they were pressed.
type InputFrame struct {
	Actions map[Action]bool

	// Click is set when the primary mouse button was pressed since the
	// previous tick.
	Click *Click
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as active for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is active this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// SetClick records a click at the given cell.
func (f *InputFrame) SetClick(x, y int) {
	f.Click = &Click{X: x, Y: y}
}

// Clear resets all actions and the click for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Actions)
	f.Click = nil
}
