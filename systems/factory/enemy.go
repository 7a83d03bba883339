package factory

import (
	"github.com/automoto/metroidvania/archetypes"
	"github.com/automoto/metroidvania/components"
	"github.com/automoto/metroidvania/shared/collision"
	"github.com/automoto/metroidvania/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateDummy spawns a training target standing with its feet at (x, y).
// Its collider rests on the level like any character's, so the player passes
// through it and only its Enemy hurtbox reacts to attacks.
func CreateDummy(ecs *ecs.ECS, name string, x, y, w, h float64) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs)
	components.Transform.SetValue(enemy, components.TransformData{X: x, Y: y - h/2})

	body := CreateCollider(ecs, enemy, Shape{W: w, H: h}, collision.ColliderLayers(), tags.ResolvEnemy)
	hurtbox := CreateSensor(ecs, enemy, components.OwnerBody, Shape{W: w, H: h}, collision.HurtboxLayers(collision.Enemy))

	components.Dummy.SetValue(enemy, components.DummyData{
		Name:     name,
		Collider: body.Entity(),
		Hurtbox:  hurtbox.Entity(),
	})
	return enemy
}
