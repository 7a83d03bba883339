package input

import "time"

// Action is one of the tracked buttons.
type Action int

const (
	Jump Action = iota
	Primary
	Secondary
	Special
	ActionCount
)

var actionNames = [ActionCount]string{"jump", "primary", "secondary", "special"}

func (a Action) String() string {
	if a < 0 || a >= ActionCount {
		return "invalid"
	}
	return actionNames[a]
}

func (a Action) Blocker() Blocker {
	if a < 0 || a >= ActionCount {
		return BlockNone
	}
	return BlockJump << uint(a)
}

func (a Action) JustPressed() ActionInput  { return ActionInput{Action: a, Kind: JustPressed} }
func (a Action) Pressed() ActionInput      { return ActionInput{Action: a, Kind: Pressed} }
func (a Action) JustReleased() ActionInput { return ActionInput{Action: a, Kind: JustReleased} }
func (a Action) Released() ActionInput     { return ActionInput{Action: a, Kind: Released} }

// StateKind is the discriminant of a button state.
type StateKind int

const (
	Released StateKind = iota
	JustPressed
	Pressed
	JustReleased
	StateKindCount
)

var stateKindNames = [StateKindCount]string{"released", "just_pressed", "pressed", "just_released"}

func (k StateKind) String() string {
	if k < 0 || k >= StateKindCount {
		return "invalid"
	}
	return stateKindNames[k]
}

// State is a button's state for one frame. Duration is the hold time for
// Pressed and the final hold time for JustReleased.
type State struct {
	Kind     StateKind
	Duration time.Duration
}

// StateOf derives the frame state from this tick's and last tick's pressed
// flags and their hold durations.
func StateOf(pressed, wasPressed bool, held, previousHeld time.Duration) State {
	switch {
	case pressed && !wasPressed:
		return State{Kind: JustPressed}
	case pressed:
		return State{Kind: Pressed, Duration: held}
	case wasPressed:
		return State{Kind: JustReleased, Duration: previousHeld}
	default:
		return State{Kind: Released}
	}
}

// Frame is an immutable snapshot of the logical input at Instant.
type Frame struct {
	Instant   time.Duration
	States    [ActionCount]State
	Direction Direction
	Raw       Vec
}

// NewFrame returns a neutral frame with every button released.
func NewFrame() Frame {
	return Frame{Direction: DirNeutral}
}

func (f Frame) State(a Action) State { return f.States[a] }

func (f Frame) JustPressed(a Action) bool  { return f.States[a].Kind == JustPressed }
func (f Frame) Pressed(a Action) bool      { return f.States[a].Kind == Pressed }
func (f Frame) JustReleased(a Action) bool { return f.States[a].Kind == JustReleased }
func (f Frame) Released(a Action) bool     { return f.States[a].Kind == Released }

// Held reports JustPressed or Pressed.
func (f Frame) Held(a Action) bool {
	k := f.States[a].Kind
	return k == JustPressed || k == Pressed
}

func (f Frame) X() float64 { return f.Raw.X }
func (f Frame) Y() float64 { return f.Raw.Y }

// Matcher tests a frame.
type Matcher interface {
	Matches(f Frame) bool
}

// Input is a blockable frame predicate. Buttons, directions and direction
// groups all satisfy it.
type Input interface {
	Matcher
	Blockable
}

// ActionInput matches a button by state kind, ignoring hold duration.
type ActionInput struct {
	Action Action
	Kind   StateKind
}

func (in ActionInput) Matches(f Frame) bool {
	return f.States[in.Action].Kind == in.Kind
}

func (in ActionInput) Blocker() Blocker {
	return in.Action.Blocker()
}
