package systems

import (
	"github.com/automoto/metroidvania/components"
	"github.com/automoto/metroidvania/shared/input"
	"github.com/automoto/metroidvania/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateJump runs the variable-height jump and its single air-jump.
// Releasing the button early, or starting to fall, halves vertical speed.
func UpdateJump(ecs *ecs.ECS) {
	clock, ok := clockOf(ecs.World)
	if !ok {
		skip("jump", reasonNoClock)
		return
	}

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		jump := components.Jump.Get(e)
		vel := components.Velocity.Get(e)
		buf := components.InputBuffer.Get(e).Buffer
		grounded := components.Grounded.Get(e).OnGround
		jump.Timer.Tick(clock.Delta)

		if components.Commands.Get(e).Take(components.CommandRetriggerJump) {
			jump.Retrigger()
			vel.Y = jump.Force
			recordStage("jump", jump.Stage())
			return
		}
		if grounded {
			jump.ResetBudget()
		}

		switch jump.Stage() {
		case components.JumpDormant:
			if components.Crouch.Get(e).Crouching() || !inputFresh(buf, clock) {
				return
			}
			if buf.Blocked(input.Jump) || (jump.HasAirJumped() && !grounded) {
				return
			}
			if !buf.Query().Contains(input.Jump.JustPressed()).Within(jump.BufferWindow).Consume() {
				return
			}
			jump.Trigger(grounded)
			vel.Y = jump.Force
			recordStage("jump", jump.Stage())

		case components.JumpActive:
			if buf.Current().Held(input.Jump) && vel.Y >= 0 {
				return
			}
			jump.SetStage(components.JumpDormant)
			vel.Y /= 2
			recordStage("jump", jump.Stage())
		}
	})
}
