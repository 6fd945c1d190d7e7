package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow
	ActionRight          // D, Right arrow
	ActionUp             // W, Up arrow
	ActionDown           // S, Down arrow
	ActionConfirm        // Enter, Space - press the focused button
	ActionPause          // P, Escape
	ActionRestart        // R - restart after game over
	ActionQuit           // Q, Ctrl+C
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
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionConfirm:
		return "Confirm"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Pointer is the mouse position in screen cells for one frame.
type Pointer struct {
	X, Y int
	Down bool // primary button pressed this frame
}

// InputFrame represents the input state for a single simulation tick.
// Directional actions are "held" for as long as the platform reports them;
// the others are one-shot triggers.
type InputFrame struct {
	Actions map[Action]bool
	Pointer *Pointer // nil when no pointer is known
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

// Clear resets all actions for the next frame. The pointer position is
// kept but its press is consumed.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	if f.Pointer != nil {
		f.Pointer.Down = false
	}
}

// Clone creates a deep copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	if f.Pointer != nil {
		p := *f.Pointer
		clone.Pointer = &p
	}
	return clone
}
