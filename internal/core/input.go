package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone        Action = iota
	ActionUp                 // Up arrow - shift selection up
	ActionRight              // Right arrow - shift selection right
	ActionDown               // Down arrow - shift selection down
	ActionLeft               // Left arrow - shift selection left
	ActionCursorUp           // W, K - move keyboard cursor
	ActionCursorRight        // D, L
	ActionCursorDown         // S, J
	ActionCursorLeft         // A, H
	ActionConfirm            // Enter, Space - touch the cell under the cursor
	ActionPause              // P - pause/unpause
	ActionQuit               // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionRight:
		return "Right"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionCursorUp:
		return "CursorUp"
	case ActionCursorRight:
		return "CursorRight"
	case ActionCursorDown:
		return "CursorDown"
	case ActionCursorLeft:
		return "CursorLeft"
	case ActionConfirm:
		return "Confirm"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Event is a single input event. Pointer events carry a screen position
// and no action.
type Event struct {
	Action  Action
	X, Y    int
	Pointer bool
}

// InputFrame represents the input collected during one tick, in arrival order.
type InputFrame struct {
	Events []Event
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set appends an action event to the frame.
func (f *InputFrame) Set(a Action) {
	f.Events = append(f.Events, Event{Action: a})
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	for _, ev := range f.Events {
		if !ev.Pointer && ev.Action == a {
			return true
		}
	}
	return false
}

// Press appends a pointer press at screen position (x, y).
func (f *InputFrame) Press(x, y int) {
	f.Events = append(f.Events, Event{X: x, Y: y, Pointer: true})
}

// Pointer returns the last pointer press of this frame, if any.
func (f InputFrame) Pointer() (x, y int, ok bool) {
	for i := len(f.Events) - 1; i >= 0; i-- {
		if ev := f.Events[i]; ev.Pointer {
			return ev.X, ev.Y, true
		}
	}
	return 0, 0, false
}

// Clear resets all input for the next frame.
func (f *InputFrame) Clear() {
	f.Events = nil
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	return InputFrame{Events: append([]Event(nil), f.Events...)}
}
