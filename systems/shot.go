package systems

import (
	"github.com/automoto/metroidvania/components"
	"github.com/automoto/metroidvania/shared/input"
	"github.com/automoto/metroidvania/systems/factory"
	"github.com/automoto/metroidvania/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateShot runs the ranged shot on the secondary button. Entering Active
// fires one projectile along facing; UpdateProjectiles reports its hit back.
func UpdateShot(ecs *ecs.ECS) {
	clock, ok := clockOf(ecs.World)
	if !ok {
		skip("shot", reasonNoClock)
		return
	}

	hooks := attackHooks{
		name:   "shot",
		owner:  components.OwnerShot,
		button: input.Secondary,
		activate: func(e *donburi.Entry) {
			shot := components.Shot.Get(e)
			t := components.Transform.Get(e)
			factory.CreateProjectile(ecs, e, shot.Activation(), t.X, t.Y,
				components.Facing.Get(e).Get(), shot.ProjectileSpeed, shot.ProjectileSize)
		},
	}

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		stepAttack(e, &components.Shot.Get(e).AttackState, clock, hooks)
	})
}
