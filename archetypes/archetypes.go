package archetypes

import (
	"github.com/automoto/metroidvania/components"
	"github.com/automoto/metroidvania/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Transform,
		components.Velocity,
		components.Gravity,
		components.Body,
		components.Grounded,
		components.Facing,
		components.InputBuffer,
		components.Commands,
		components.Walk,
		components.Jump,
		components.Crouch,
		components.Slide,
		components.Kick,
		components.Slash,
		components.Shot,
		components.Animation,
	)
	// Collider is a solid body part owned by another entity.
	Collider = newArchetype(
		components.Collider,
		components.Contacts,
	)
	Solid = newArchetype(
		tags.Solid,
		components.Collider,
	)
	Hitbox = newArchetype(
		tags.Hitbox,
		components.Collider,
		components.Sensor,
	)
	Hurtbox = newArchetype(
		tags.Hurtbox,
		components.Collider,
		components.Sensor,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Projectile,
		components.Transform,
		components.Velocity,
		components.Collider,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Dummy,
		components.Transform,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Clock = newArchetype(
		components.Clock,
		components.RawInput,
		components.DebugProbes,
		components.Pause,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.World.Create(
		append(a.components, cs...)...,
	))
	return e
}
