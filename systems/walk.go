package systems

import (
	"math"

	"github.com/automoto/metroidvania/components"
	"github.com/automoto/metroidvania/shared/gamemath"
	"github.com/automoto/metroidvania/shared/input"
	"github.com/automoto/metroidvania/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// slowingFloor is the speed under which a decaying walk reads as stopped.
const slowingFloor = 1.0

// UpdateWalk accelerates toward the held horizontal direction and decays
// velocity when the stick is released, reversed or blocked.
func UpdateWalk(ecs *ecs.ECS) {
	clock, ok := clockOf(ecs.World)
	if !ok {
		skip("walk", reasonNoClock)
		return
	}
	dt := clock.Dt()

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		walk := components.Walk.Get(e)
		vel := components.Velocity.Get(e)
		buf := components.InputBuffer.Get(e).Buffer
		walk.Timer.Tick(clock.Delta)
		if !inputFresh(buf, clock) {
			return
		}

		cur := buf.Current()
		x := cur.X()
		blocked := buf.Blocked(cur.Direction)
		stage := components.WalkDormant

		if math.Abs(x) <= input.Deadzone || gamemath.Opposes(vel.X, x) || blocked {
			vel.X = gamemath.Decay(vel.X, walk.SlowingFactor, dt)
			if math.Abs(vel.X) > slowingFloor {
				stage = components.WalkSlowing
			}
		}

		if !blocked && !components.Crouch.Get(e).Crouching() && math.Abs(x) > input.Deadzone {
			vel.X = gamemath.Accelerate(vel.X, x, walk.MaxSpeed, walk.AccelerationFactor, dt)
			stage = components.WalkActive
		}

		if walk.SetStage(stage) {
			recordStage("walk", stage)
		}
	})
}
