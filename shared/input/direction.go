package input

import "math"

// Deadzone is the raw axis length below which the stick reads as neutral.
const Deadzone = 0.2

// Direction is the 8-way quantized stick direction.
type Direction int

const (
	DirUp Direction = iota
	DirUpRight
	DirRight
	DirDownRight
	DirDown
	DirDownLeft
	DirLeft
	DirUpLeft
	DirNeutral
	DirectionCount
)

var directionNames = [DirectionCount]string{
	"up", "up_right", "right", "down_right", "down", "down_left", "left", "up_left", "neutral",
}

func (d Direction) String() string {
	if d < 0 || d >= DirectionCount {
		return "invalid"
	}
	return directionNames[d]
}

// Blocker maps the direction to its bit. Neutral cannot be blocked.
func (d Direction) Blocker() Blocker {
	if !d.compass() {
		return BlockNone
	}
	return BlockUp << uint(d)
}

// Matches reports whether the frame's quantized direction is d.
func (d Direction) Matches(f Frame) bool {
	return f.Direction == d
}

// Vec is a raw 2D axis value, y pointing up.
type Vec struct {
	X, Y float64
}

func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Clamped scales v down to unit length if it is longer.
func (v Vec) Clamped() Vec {
	l := v.Len()
	if l <= 1 {
		return v
	}
	return Vec{X: v.X / l, Y: v.Y / l}
}

// DirectionFromRaw quantizes a raw axis into one of eight 45 degree sectors.
// Sector bounds are half-open: the lower bound belongs to the sector.
func DirectionFromRaw(v Vec) Direction {
	if v.Len() < Deadzone {
		return DirNeutral
	}
	// Rounded to a micro-degree so a vector built at exactly a sector bound
	// lands on the bound instead of a float error below it.
	deg := math.Round(math.Atan2(v.Y, v.X)*180/math.Pi*1e6) / 1e6
	switch {
	case deg >= 67.5 && deg < 112.5:
		return DirUp
	case deg >= 22.5 && deg < 67.5:
		return DirUpRight
	case deg >= -22.5 && deg < 22.5:
		return DirRight
	case deg >= -67.5 && deg < -22.5:
		return DirDownRight
	case deg >= -112.5 && deg < -67.5:
		return DirDown
	case deg >= -157.5 && deg < -112.5:
		return DirDownLeft
	case deg >= 112.5 && deg < 157.5:
		return DirUpLeft
	default:
		return DirLeft
	}
}

// compass reports whether d is one of the eight real directions.
func (d Direction) compass() bool {
	return d >= DirUp && d < DirNeutral
}

// Clockwise returns the next direction clockwise. Neutral stays neutral.
func (d Direction) Clockwise() Direction {
	if d == DirNeutral {
		return d
	}
	return (d + 1) % DirNeutral
}

// CounterClockwise returns the next direction counter-clockwise.
func (d Direction) CounterClockwise() Direction {
	if d == DirNeutral {
		return d
	}
	return (d + DirNeutral - 1) % DirNeutral
}

// RollClockwise returns the directions visited when the stick travels
// clockwise from `from` to `to`, both ends included. A roll onto the starting
// direction is a full circle.
func RollClockwise(from, to Direction) []Input {
	return roll(from, to, Direction.Clockwise)
}

// RollCounterClockwise is the mirror of RollClockwise.
func RollCounterClockwise(from, to Direction) []Input {
	return roll(from, to, Direction.CounterClockwise)
}

func roll(from, to Direction, step func(Direction) Direction) []Input {
	if !from.compass() || !to.compass() {
		return nil
	}
	seq := []Input{from}
	d := step(from)
	for {
		seq = append(seq, d)
		if d == to {
			return seq
		}
		d = step(d)
	}
}

// DirectionGroup matches any of its directions.
type DirectionGroup []Direction

var (
	AnyUp    = DirectionGroup{DirUpLeft, DirUp, DirUpRight}
	AnyDown  = DirectionGroup{DirDownLeft, DirDown, DirDownRight}
	AnyRight = DirectionGroup{DirUpRight, DirRight, DirDownRight}
	AnyLeft  = DirectionGroup{DirUpLeft, DirLeft, DirDownLeft}
)

func (g DirectionGroup) Matches(f Frame) bool {
	for _, d := range g {
		if f.Direction == d {
			return true
		}
	}
	return false
}

func (g DirectionGroup) Blocker() Blocker {
	var b Blocker
	for _, d := range g {
		b |= d.Blocker()
	}
	return b
}
