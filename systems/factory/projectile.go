package factory

import (
	"github.com/automoto/metroidvania/archetypes"
	"github.com/automoto/metroidvania/components"
	"github.com/automoto/metroidvania/shared/collision"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateProjectile fires a square shot from (x, y) along dir. It travels on
// its own and is not attached to the shooter.
func CreateProjectile(ecs *ecs.ECS, shooter *donburi.Entry, activation uint64, x, y, dir, speed, size float64) *donburi.Entry {
	p := archetypes.Projectile.Spawn(ecs)
	components.Transform.SetValue(p, components.TransformData{X: x, Y: y})
	components.Velocity.SetValue(p, components.VelocityData{X: dir * speed})
	components.Projectile.SetValue(p, components.ProjectileData{
		Owner:      shooter.Entity(),
		Activation: activation,
	})
	// A shot stops on level geometry as well as on hurtboxes.
	l := collision.HitboxLayers()
	l.Filters |= collision.Environment
	newObject(ecs, p, p, Shape{W: size, H: size}, l)
	return p
}
