package core

// Action is a host-independent input intent. Key bindings live in the
// terminal host; the simulation only sees actions.
type Action uint8

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionConfirm
	ActionBack
	ActionRestart
	ActionQuit
	ActionPause
	actionCount
)

var actionNames = [actionCount]string{
	"None", "Up", "Down", "Left", "Right",
	"Confirm", "Back", "Restart", "Quit", "Pause",
}

func (a Action) String() string {
	if a >= actionCount {
		return "Unknown"
	}
	return actionNames[a]
}

// InputFrame is the set of actions triggered during one tick.
// The zero value is an empty frame.
type InputFrame struct {
	bits uint16
}

// NewInputFrame returns an empty frame.
func NewInputFrame() InputFrame { return InputFrame{} }

// Set marks a as triggered. ActionNone and unknown actions are ignored.
func (f *InputFrame) Set(a Action) {
	if a != ActionNone && a < actionCount {
		f.bits |= 1 << a
	}
}

// Has reports whether a was triggered.
func (f InputFrame) Has(a Action) bool {
	return a < actionCount && f.bits&(1<<a) != 0
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool { return f.bits == 0 }

// Clear empties the frame for the next tick.
func (f *InputFrame) Clear() { f.bits = 0 }

// Direction resolves the steering intent of the frame.
// When several arrows arrive in one frame the first in Up, Down, Left, Right
// order wins; DirNone means keep going.
func (f InputFrame) Direction() Direction {
	switch {
	case f.Has(ActionUp):
		return DirUp
	case f.Has(ActionDown):
		return DirDown
	case f.Has(ActionLeft):
		return DirLeft
	case f.Has(ActionRight):
		return DirRight
	default:
		return DirNone
	}
}
