package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow
	ActionDown           // S, Down arrow
	ActionLeft           // A, Left arrow
	ActionRight          // D, Right arrow
	ActionFire           // Space - hold to keep shooting
	ActionNuke           // N - fire the nuke when charged
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R - restart after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionFire:
		return "Fire"
	case ActionNuke:
		return "Nuke"
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

// Pointer is the touch surface: a mouse cursor in the terminal.
// Held stays true between press and release; Pressed is true only on the
// tick the press arrived.
type Pointer struct {
	X, Y    int
	Active  bool // a position has been reported at least once
	Held    bool
	Pressed bool
}

// InputFrame is the input state consumed by one simulation tick.
type InputFrame struct {
	Actions map[Action]bool
	Pointer Pointer
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{Actions: make(map[Action]bool)}
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
	return f.Actions[a]
}

// Press records a pointer press at (x, y).
func (f *InputFrame) Press(x, y int) {
	f.Pointer = Pointer{X: x, Y: y, Active: true, Held: true, Pressed: true}
}

// Move updates the pointer position without changing the held state.
func (f *InputFrame) Move(x, y int) {
	f.Pointer.X, f.Pointer.Y = x, y
	f.Pointer.Active = true
}

// Release ends a pointer hold.
func (f *InputFrame) Release(x, y int) {
	f.Move(x, y)
	f.Pointer.Held = false
}

// Clear resets one-shot input for the next frame. The pointer position and
// hold survive until the next mouse event changes them.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Pointer.Pressed = false
}
