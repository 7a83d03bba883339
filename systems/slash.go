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

// Slash sensor layout, relative to the body centre along facing.
const (
	slashReach     = 62.5
	slashSize      = 25.0
	slashDiagReach = 50.0
	slashDiagSize  = slashSize / 2.25
)

// UpdateSlash runs the melee slash on the primary button. While Active it
// holds a fan of three hitboxes in front of the player.
func UpdateSlash(ecs *ecs.ECS) {
	clock, ok := clockOf(ecs.World)
	if !ok {
		skip("slash", reasonNoClock)
		return
	}

	hooks := attackHooks{
		name:   "slash",
		owner:  components.OwnerSlash,
		button: input.Primary,
		activate: func(e *donburi.Entry) {
			spawnSlashSensors(ecs, e)
		},
		active: func(e *donburi.Entry) {
			slash := components.Slash.Get(e)
			if slash.HasHit() {
				return
			}
			for _, s := range slash.Sensors() {
				hits := sensorHits(ecs.World, "slash", s, enemyHurtboxes())
				if len(hits) > 0 && slash.RecordHit() {
					registerHit(ecs.World, "slash", hits[0], clock.Now)
					return
				}
			}
		},
		deactivate: func(e *donburi.Entry) {
			for _, s := range components.Slash.Get(e).TakeSensors() {
				factory.Despawn(ecs, s)
			}
		},
	}

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		stepAttack(e, &components.Slash.Get(e).AttackState, clock, hooks)
	})
}

func spawnSlashSensors(ecs *ecs.ECS, e *donburi.Entry) {
	facing := components.Facing.Get(e).Get()
	diagY := slashSize + slashDiagSize
	shapes := []factory.Shape{
		{OffsetX: slashDiagReach * facing, OffsetY: -diagY, W: slashDiagSize, H: slashDiagSize},
		{OffsetX: slashReach * facing, W: slashSize, H: slashSize},
		{OffsetX: slashDiagReach * facing, OffsetY: diagY, W: slashDiagSize, H: slashDiagSize},
	}

	sensors := make([]donburi.Entity, 0, len(shapes))
	for _, s := range shapes {
		sensor := factory.CreateSensor(ecs, e, components.OwnerSlash, s, collision.HitboxLayers())
		sensors = append(sensors, sensor.Entity())
	}
	components.Slash.Get(e).SetSensors(sensors)
}
