package systems

import (
	"github.com/automoto/metroidvania/components"
	"github.com/automoto/metroidvania/shared/collision"
	"github.com/automoto/metroidvania/shared/input"
	"github.com/automoto/metroidvania/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSlide runs the crouch dash: a jump press while crouching launches a
// fixed-speed slide that owns every input until it settles.
func UpdateSlide(ecs *ecs.ECS) {
	clock, ok := clockOf(ecs.World)
	if !ok {
		skip("slide", reasonNoClock)
		return
	}

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		slide := components.Slide.Get(e)
		vel := components.Velocity.Get(e)
		buf := components.InputBuffer.Get(e).Buffer
		slide.Timer.Tick(clock.Delta)

		switch slide.Stage() {
		case components.SlideDormant:
			if !components.Crouch.Get(e).Crouching() || !inputFresh(buf, clock) {
				return
			}
			window := components.Jump.Get(e).BufferWindow
			if !buf.Query().Contains(input.Jump.JustPressed()).Within(window).Consume() {
				return
			}
			buf.BlockAll(components.OwnerSlide)
			slide.SetStage(components.SlideAccelerate, vel.X)
			recordStage("slide", slide.Stage())
			accelerateSlide(ecs.World, e, clock)

		case components.SlideAccelerate:
			accelerateSlide(ecs.World, e, clock)
			if slide.Timer.Finished() {
				slide.SetStage(components.SlideSettle, vel.X)
				recordStage("slide", slide.Stage())
			}

		case components.SlideSettle:
			vel.X = slide.SettleVelocity(clock.Delta)
			if slide.Timer.Finished() {
				vel.X = 0
				slide.SetStage(components.SlideDormant, 0)
				buf.Release(components.OwnerSlide)
				recordStage("slide", slide.Stage())
			}
		}
	})
}

// accelerateSlide holds the slide speed and sweeps the low forward probe
// for the first enemy in reach.
func accelerateSlide(w donburi.World, e *donburi.Entry, clock *components.ClockData) {
	slide := components.Slide.Get(e)
	facing := components.Facing.Get(e).Get()
	components.Velocity.Get(e).X = slide.Speed * facing

	if slide.HasHit() {
		return
	}
	t := components.Transform.Get(e)
	h := components.Body.Get(e).Height
	r := collision.Centered(t.X+h/4*facing, t.Y+h/3, h/2, h/4)
	hits := probe(w, "slide", r, enemyHurtboxes())
	if len(hits) > 0 && slide.RecordHit() {
		registerHit(w, "slide", hits[0], clock.Now)
	}
}
