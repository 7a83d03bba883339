package systems

import (
	"math"

	"github.com/automoto/metroidvania/components"
	"github.com/automoto/metroidvania/shared/collision"
	"github.com/automoto/metroidvania/shared/gamemath"
	"github.com/automoto/metroidvania/shared/input"
	"github.com/automoto/metroidvania/systems/factory"
	"github.com/automoto/metroidvania/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// kickReverseThreshold is how far velocity and stick must disagree before
// the kick overrides the current horizontal speed.
const kickReverseThreshold = -0.2

// UpdateKick runs the air-dive kick. It is available only after the
// air-jump has been spent and ends on landing or on the first enemy hit. A
// hit refunds the jump.
func UpdateKick(ecs *ecs.ECS) {
	clock, ok := clockOf(ecs.World)
	if !ok {
		skip("kick", reasonNoClock)
		return
	}

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		kick := components.Kick.Get(e)
		buf := components.InputBuffer.Get(e).Buffer
		grounded := components.Grounded.Get(e).OnGround
		kick.Timer.Tick(clock.Delta)

		switch kick.Stage() {
		case components.KickDormant:
			if grounded || !inputFresh(buf, clock) {
				return
			}
			jump := components.Jump.Get(e)
			cur := buf.Current()
			if !jump.HasAirJumped() || buf.Blocked(input.Jump) || cur.Y() >= 0 {
				return
			}
			if !buf.Query().Contains(input.Jump.JustPressed()).Within(jump.BufferWindow).Consume() {
				return
			}
			startKick(ecs, e, cur.X())

		case components.KickActive:
			if grounded {
				endKick(ecs, e)
				return
			}
			if inputFresh(buf, clock) {
				aimKick(ecs.World, e, buf.Current().X())
			}
			hits := sensorHits(ecs.World, "kick", kick.Sensor(), enemyHurtboxes())
			if len(hits) == 0 || !kick.RecordHit() {
				return
			}
			registerHit(ecs.World, "kick", hits[0], clock.Now)
			endKick(ecs, e)
			components.Commands.Get(e).Push(components.CommandRetriggerJump)
		}
	})
}

func startKick(ecs *ecs.ECS, e *donburi.Entry, x float64) {
	kick := components.Kick.Get(e)
	vel := components.Velocity.Get(e)
	body := components.Body.Get(e)

	components.InputBuffer.Get(e).BlockAll(components.OwnerKick)
	if gamemath.Sign(vel.X)*gamemath.Sign(x) < kickReverseThreshold || math.Abs(vel.X) < kick.Speed {
		vel.X = kick.Speed * gamemath.Snap(x) * kick.HorizontalBoost
	}
	vel.Y = -kick.Speed

	s := factory.Shape{
		OffsetX: body.Width / 4 * x,
		OffsetY: body.Height / 4,
		W:       body.Width,
		H:       body.Height / 2,
	}
	sensor := factory.CreateSensor(ecs, e, components.OwnerKick, s, collision.HitboxLayers())
	kick.Activate(sensor.Entity())
	recordStage("kick", kick.Stage())
}

// aimKick keeps the kick sensor leaning toward the held direction for the
// whole dive.
func aimKick(w donburi.World, e *donburi.Entry, x float64) {
	sensor := components.Kick.Get(e).Sensor()
	if !w.Valid(sensor) {
		return
	}
	c := components.Collider.Get(w.Entry(sensor))
	c.OffsetX = components.Body.Get(e).Width / 4 * x
	t := components.Transform.Get(e)
	c.PlaceAt(t.X, t.Y)
}

func endKick(ecs *ecs.ECS, e *donburi.Entry) {
	kick := components.Kick.Get(e)
	factory.Despawn(ecs, kick.Deactivate())
	components.InputBuffer.Get(e).Release(components.OwnerKick)
	recordStage("kick", kick.Stage())
}
