package core

// Action is a player intent, decoupled from the key that produced it.
type Action uint8

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, A, H
	ActionRight          // Right arrow, D, L
	ActionUp             // Up arrow, W, K
	ActionDown           // Down arrow, S, J
	ActionStop           // Space: release the held direction
	ActionConfirm        // Enter in menus
	ActionBack           // B: back to the menu
	ActionRestart        // R after game over
	ActionQuit           // Q, Ctrl+C
	ActionPause          // P, Escape
	actionCount
)

var actionNames = [actionCount]string{
	"None", "Left", "Right", "Up", "Down", "Stop",
	"Confirm", "Back", "Restart", "Quit", "Pause",
}

func (a Action) String() string {
	if a >= actionCount {
		return "Unknown"
	}
	return actionNames[a]
}

// IsDirection reports whether the action is one of the four movement directions.
func (a Action) IsDirection() bool {
	return a >= ActionLeft && a <= ActionDown
}

// InputFrame is the set of actions collected for one simulation tick.
// The zero value is an empty frame.
type InputFrame struct {
	bits uint16
}

// NewInputFrame returns an empty frame.
func NewInputFrame() InputFrame { return InputFrame{} }

// Set marks a as triggered. ActionNone and unknown actions are ignored.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone || a >= actionCount {
		return
	}
	f.bits |= 1 << a
}

// Has reports whether a was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return a < actionCount && f.bits&(1<<a) != 0
}

// Empty reports whether no action is set.
func (f InputFrame) Empty() bool { return f.bits == 0 }

// Direction returns the first direction present in the frame, honoring the
// priority order left, right, up, down. Returns ActionNone if none is set.
func (f InputFrame) Direction() Action {
	for a := ActionLeft; a <= ActionDown; a++ {
		if f.Has(a) {
			return a
		}
	}
	return ActionNone
}

// Clear drops every action.
func (f *InputFrame) Clear() { f.bits = 0 }
