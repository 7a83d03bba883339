package factory

import (
	"github.com/automoto/metroidvania/archetypes"
	"github.com/automoto/metroidvania/components"
	"github.com/automoto/metroidvania/shared/collision"
	"github.com/automoto/metroidvania/shared/input"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Shape is a box relative to an owner's centre, in screen space.
type Shape struct {
	OffsetX, OffsetY float64
	W, H             float64
}

func newObject(ecs *ecs.ECS, entry *donburi.Entry, owner *donburi.Entry, s Shape, l collision.Layers, extraTags ...string) {
	var cx, cy float64
	if owner != nil && owner.HasComponent(components.Transform) {
		t := components.Transform.Get(owner)
		cx, cy = t.X, t.Y
	}

	obj := resolv.NewObject(cx+s.OffsetX-s.W/2, cy+s.OffsetY-s.H/2, s.W, s.H, extraTags...)
	obj.Data = entry
	collision.Apply(obj, l)

	var ownerEntity donburi.Entity
	if owner != nil {
		ownerEntity = owner.Entity()
	}
	components.Collider.SetValue(entry, components.ColliderData{
		Object:  obj,
		Owner:   ownerEntity,
		OffsetX: s.OffsetX,
		OffsetY: s.OffsetY,
		Layers:  l,
	})

	if space, ok := SpaceOf(ecs.World); ok {
		space.Add(obj)
	}
}

// CreateCollider spawns a solid body part for owner.
func CreateCollider(ecs *ecs.ECS, owner *donburi.Entry, s Shape, l collision.Layers, extraTags ...string) *donburi.Entry {
	entry := archetypes.Collider.Spawn(ecs)
	newObject(ecs, entry, owner, s, l, extraTags...)
	return entry
}

// CreateSensor spawns a non-solid volume attached to owner. Hitbox layers
// produce a hitbox entity, anything else a hurtbox.
func CreateSensor(ecs *ecs.ECS, owner *donburi.Entry, behavior input.Owner, s Shape, l collision.Layers) *donburi.Entry {
	arch := archetypes.Hurtbox
	if l.Memberships&collision.Hitbox != 0 {
		arch = archetypes.Hitbox
	}
	entry := arch.Spawn(ecs)
	newObject(ecs, entry, owner, s, l)
	components.Sensor.SetValue(entry, components.SensorData{
		Owner:    owner.Entity(),
		Behavior: behavior,
	})
	return entry
}

// CreateSolid spawns a piece of level geometry. x, y is the top-left corner.
func CreateSolid(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	entry := archetypes.Solid.Spawn(ecs)
	newObject(ecs, entry, nil, Shape{OffsetX: x + w/2, OffsetY: y + h/2, W: w, H: h}, collision.EnvironmentLayers())
	return entry
}

// Despawn removes e and its collision object. Stale entities are ignored so
// owners can release handles unconditionally.
func Despawn(ecs *ecs.ECS, e donburi.Entity) {
	if e == donburi.Null || !ecs.World.Valid(e) {
		return
	}
	entry := ecs.World.Entry(e)
	if entry.HasComponent(components.Collider) {
		obj := components.Collider.Get(entry).Object
		if obj != nil && obj.Space != nil {
			obj.Space.Remove(obj)
		}
	}
	ecs.World.Remove(e)
}
