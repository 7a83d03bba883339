package systems

import (
	"github.com/automoto/metroidvania/components"
	"github.com/automoto/metroidvania/shared/collision"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// respawnMargin is how far below the level a body may fall before it is put
// back at its spawn point.
const respawnMargin = 200.0

// UpdatePhysics integrates gravity and velocity, resolves bodies against the
// environment through their active collider and records the contacts ground
// detection reads next tick. Every other attached collider and sensor is
// then moved to follow its owner.
func UpdatePhysics(ecs *ecs.ECS) {
	clock, ok := clockOf(ecs.World)
	if !ok {
		skip("physics", reasonNoClock)
		return
	}
	dt := clock.Dt()

	components.Contacts.Each(ecs.World, func(e *donburi.Entry) {
		components.Contacts.Get(e).Reset()
	})

	components.Body.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		vel := components.Velocity.Get(e)
		t := components.Transform.Get(e)

		if e.HasComponent(components.Gravity) {
			applyGravity(vel, components.Gravity.Get(e), dt)
		}

		if body.Collider == donburi.Null || !ecs.World.Valid(body.Collider) {
			skip("physics", reasonNoCollider)
			return
		}
		ce := ecs.World.Entry(body.Collider)
		c := components.Collider.Get(ce)
		contacts := &components.ContactsData{}
		if ce.HasComponent(components.Contacts) {
			contacts = components.Contacts.Get(ce)
		}

		if resolveHorizontal(c, contacts, vel.X*dt) {
			vel.X = 0
		}
		if resolveVertical(c, contacts, -vel.Y*dt) {
			vel.Y = 0
		}
		c.Update()

		t.X = c.X + c.W/2 - c.OffsetX
		t.Y = c.Y + c.H/2 - c.OffsetY

		if e.HasComponent(components.Player) {
			respawnIfLost(ecs.World, e)
		}
	})

	components.Collider.Each(ecs.World, func(e *donburi.Entry) {
		follow(ecs.World, e)
	})
}

// applyGravity pulls toward -y. Terminal speed only limits what gravity
// adds, so a dive launched faster than it keeps its speed.
func applyGravity(vel *components.VelocityData, g *components.GravityData, dt float64) {
	if vel.Y <= -g.MaxFall {
		return
	}
	vel.Y -= g.Acceleration * dt
	if vel.Y < -g.MaxFall {
		vel.Y = -g.MaxFall
	}
}

// follow places an attached collider or sensor on its owner. Bodies' active
// colliders drive their owner instead, and free-flying objects own
// themselves.
func follow(w donburi.World, e *donburi.Entry) {
	c := components.Collider.Get(e)
	if c.Owner == donburi.Null || c.Owner == e.Entity() {
		return
	}
	if !w.Valid(c.Owner) {
		skip("physics", reasonStale)
		return
	}
	owner := w.Entry(c.Owner)
	if owner.HasComponent(components.Body) && components.Body.Get(owner).Collider == e.Entity() {
		return
	}
	if !owner.HasComponent(components.Transform) {
		return
	}
	t := components.Transform.Get(owner)
	c.PlaceAt(t.X, t.Y)
}

// respawnIfLost puts a player that fell out of the level back on its spawn
// point.
func respawnIfLost(w donburi.World, e *donburi.Entry) {
	bounds, ok := levelBounds(w)
	if !ok {
		return
	}
	t := components.Transform.Get(e)
	if t.Y < bounds.Bottom()+respawnMargin {
		return
	}

	p := components.Player.Get(e)
	body := components.Body.Get(e)
	t.X, t.Y = p.SpawnX, p.SpawnY-body.Height/2
	*components.Velocity.Get(e) = components.VelocityData{}
	p.Respawns++

	if w.Valid(body.Collider) {
		components.Collider.Get(w.Entry(body.Collider)).PlaceAt(t.X, t.Y)
	}
}

// levelBounds is the loaded level's extent in screen space.
func levelBounds(w donburi.World) (collision.Rect, bool) {
	entry, ok := components.Level.First(w)
	if !ok {
		return collision.Rect{}, false
	}
	level := components.Level.Get(entry).CurrentLevel
	if level == nil {
		return collision.Rect{}, false
	}
	return collision.Rect{W: float64(level.MapWidth), H: float64(level.MapHeight)}, true
}
