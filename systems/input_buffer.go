package systems

import (
	"github.com/automoto/metroidvania/components"
	"github.com/automoto/metroidvania/shared/input"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInputBuffer turns the tick's raw input into a frame and feeds it to
// every input buffer. Without an axis reading the whole tick is skipped and
// behaviors see a stale buffer.
func UpdateInputBuffer(ecs *ecs.ECS) {
	clock, ok := clockOf(ecs.World)
	if !ok {
		skip("input_buffer", reasonNoClock)
		return
	}
	raw, ok := rawInputOf(ecs.World)
	if !ok {
		skip("input_buffer", reasonNoInput)
		return
	}
	if !raw.HasAxis {
		skip("input_buffer", reasonNoAxis)
		return
	}

	var states [input.ActionCount]input.State
	for i := range raw.Buttons {
		pressed, was := raw.Buttons[i], raw.Previous[i]
		previousHeld := raw.HeldFor[i]
		switch {
		case pressed && was:
			raw.HeldFor[i] += clock.Delta
		default:
			raw.HeldFor[i] = 0
		}
		states[i] = input.StateOf(pressed, was, raw.HeldFor[i], previousHeld)
	}
	raw.Previous = raw.Buttons

	axis := raw.Axis.Clamped()
	components.InputBuffer.Each(ecs.World, func(e *donburi.Entry) {
		components.InputBuffer.Get(e).Ingest(clock.Now, states, axis, true)
	})
}

// inputFresh reports whether buf ingested a frame this tick.
func inputFresh(buf *input.Buffer, clock *components.ClockData) bool {
	return buf.Now() == clock.Now
}
