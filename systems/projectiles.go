package systems

import (
	"github.com/automoto/metroidvania/components"
	"github.com/automoto/metroidvania/shared/collision"
	"github.com/automoto/metroidvania/systems/factory"
	"github.com/automoto/metroidvania/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateProjectiles moves shots in flight and retires them on their first
// contact. An enemy hit is credited to the Shot that fired it, once, and only
// while that Shot is still on the same activation.
func UpdateProjectiles(ecs *ecs.ECS) {
	clock, ok := clockOf(ecs.World)
	if !ok {
		skip("projectiles", reasonNoClock)
		return
	}
	dt := clock.Dt()
	bounds, hasBounds := levelBounds(ecs.World)

	var spent []donburi.Entity
	tags.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Projectile.Get(e)
		if p.Spent {
			spent = append(spent, e.Entity())
			return
		}
		t := components.Transform.Get(e)
		vel := components.Velocity.Get(e)
		c := components.Collider.Get(e)
		t.X += vel.X * dt
		t.Y -= vel.Y * dt
		c.PlaceAt(t.X, t.Y)

		r := c.Rect()
		exclude := []*resolv.Object{c.Object}
		if hits := probe(ecs.World, "projectile", r, collision.Filter{Mask: collision.Hurtbox, Require: collision.Enemy, Exclude: exclude}); len(hits) > 0 {
			p.Spent = true
			creditShot(ecs.World, p, hits[0], clock)
		} else if hits := probe(ecs.World, "projectile", r, collision.Filter{Mask: collision.Environment, Exclude: exclude}); len(hits) > 0 {
			p.Spent = true
		} else if hasBounds && !r.Overlaps(bounds) {
			p.Spent = true
		}
		if p.Spent {
			spent = append(spent, e.Entity())
		}
	})

	for _, e := range spent {
		factory.Despawn(ecs, e)
	}
}

func creditShot(w donburi.World, p *components.ProjectileData, target *resolv.Object, clock *components.ClockData) {
	if p.Owner == donburi.Null || !w.Valid(p.Owner) {
		return
	}
	owner := w.Entry(p.Owner)
	if !owner.HasComponent(components.Shot) {
		return
	}
	shot := components.Shot.Get(owner)
	if shot.Activation() != p.Activation || !shot.RecordHit() {
		return
	}
	registerHit(w, "shot", target, clock.Now)
}
