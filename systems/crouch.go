package systems

import (
	"github.com/automoto/metroidvania/components"
	"github.com/automoto/metroidvania/shared/collision"
	"github.com/automoto/metroidvania/shared/input"
	"github.com/automoto/metroidvania/systems/factory"
	"github.com/automoto/metroidvania/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCrouch swaps the player between the standing and the half-height
// collider. Both directions of the swap complete within one call.
func UpdateCrouch(ecs *ecs.ECS) {
	clock, ok := clockOf(ecs.World)
	if !ok {
		skip("crouch", reasonNoClock)
		return
	}
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		crouch := components.Crouch.Get(e)
		buf := components.InputBuffer.Get(e).Buffer
		slide := components.Slide.Get(e)
		crouch.Timer.Tick(clock.Delta)

		if !crouch.Crouching() {
			down := inputFresh(buf, clock) && buf.Is(input.DirDown) && components.Grounded.Get(e).OnGround
			if down || slide.Stage() != components.SlideDormant {
				crouchDown(ecs, e)
			}
			return
		}

		// Holding down keeps the crouch even while an attack blocks the
		// direction.
		if buf.Current().Direction == input.DirDown || slide.Stage() != components.SlideDormant {
			return
		}
		if !headroom(ecs.World, e) {
			return
		}
		standUp(ecs, e)
	})
}

func crouchDown(ecs *ecs.ECS, e *donburi.Entry) {
	body := components.Body.Get(e)
	standing := body.Collider
	if standing == donburi.Null || !ecs.World.Valid(standing) {
		skip("crouch", reasonNoCollider)
		return
	}
	components.Collider.Get(ecs.World.Entry(standing)).SetLayers(collision.Inactive())

	crouched := factory.CreateCrouchCollider(ecs, e)
	body.Collider = crouched.Entity()

	crouch := components.Crouch.Get(e)
	crouch.Crouch(standing)
	recordStage("crouch", crouch.Stage())
}

// headroom probes the upper half of the standing body for level geometry.
func headroom(w donburi.World, e *donburi.Entry) bool {
	t := components.Transform.Get(e)
	body := components.Body.Get(e)
	r := collision.Centered(t.X, t.Y-body.Height/4, body.Width/2, body.Height/2)
	return len(probe(w, "crouch_clearance", r, collision.FilterOf(collision.Environment))) == 0
}

func standUp(ecs *ecs.ECS, e *donburi.Entry) {
	crouch := components.Crouch.Get(e)
	body := components.Body.Get(e)
	t := components.Transform.Get(e)

	stored, _ := crouch.Stand()
	factory.Despawn(ecs, body.Collider)
	recordStage("crouch", crouch.Stage())

	if stored == donburi.Null || !ecs.World.Valid(stored) {
		skip("crouch", reasonStale)
		standing := factory.CreateCollider(ecs, e, factory.Shape{W: body.Width, H: body.Height}, collision.ColliderLayers(), tags.ResolvPlayer)
		body.Collider = standing.Entity()
		return
	}
	c := components.Collider.Get(ecs.World.Entry(stored))
	c.PlaceAt(t.X, t.Y)
	c.SetLayers(collision.ColliderLayers())
	body.Collider = stored
}
