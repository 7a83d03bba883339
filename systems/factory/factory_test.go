package factory

import (
	"testing"

	"github.com/automoto/metroidvania/components"
	cfg "github.com/automoto/metroidvania/config"
	"github.com/automoto/metroidvania/shared/collision"
	"github.com/automoto/metroidvania/shared/leveldata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newTestECS() *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())
	CreateSpace(e, 640, 480, 16, 16)
	return e
}

func colliderOf(e *ecs.ECS, entity donburi.Entity) *components.ColliderData {
	return components.Collider.Get(e.World.Entry(entity))
}

func TestCreatePlayerStandsOnFeet(t *testing.T) {
	e := newTestECS()
	player := CreatePlayer(e, 100, 400)

	tr := components.Transform.Get(player)
	assert.Equal(t, 100.0, tr.X)
	assert.Equal(t, 400-cfg.Player.Height/2, tr.Y)

	body := components.Body.Get(player)
	c := colliderOf(e, body.Collider)
	assert.Equal(t, collision.ColliderLayers(), c.Layers)
	assert.Equal(t, 400.0, c.Rect().Bottom())
	assert.Equal(t, player.Entity(), c.Owner)

	hurtbox := colliderOf(e, components.Player.Get(player).Hurtbox)
	assert.Equal(t, collision.HurtboxLayers(collision.Player), hurtbox.Layers)
	assert.Equal(t, cfg.Player.Width-2*cfg.Player.HurtboxInset, hurtbox.W)

	b, _ := cfg.Behaviors()
	assert.Equal(t, b.Walk.MaxSpeed, components.Walk.Get(player).MaxSpeed)
	assert.Equal(t, b.Kick.Speed, components.Kick.Get(player).Speed)
}

func TestCreateCrouchColliderSharesFeet(t *testing.T) {
	e := newTestECS()
	player := CreatePlayer(e, 100, 400)
	crouched := CreateCrouchCollider(e, player)

	c := components.Collider.Get(crouched)
	assert.Equal(t, cfg.Player.Height/2, c.H)
	assert.InDelta(t, 400, c.Rect().Bottom(), 1e-9)
}

func TestCreateDummyIsPassableTarget(t *testing.T) {
	e := newTestECS()
	dummy := CreateDummy(e, "d", 300, 400, 40, 80)
	d := components.Dummy.Get(dummy)

	body := colliderOf(e, d.Collider)
	assert.Equal(t, collision.ColliderLayers(), body.Layers)
	assert.False(t, body.Layers.Interacts(collision.ColliderLayers()), "characters pass through each other")

	hurtbox := colliderOf(e, d.Hurtbox)
	assert.Equal(t, collision.Hurtbox|collision.Enemy, hurtbox.Layers.Memberships)
	assert.Equal(t, collision.Rect{X: 280, Y: 320, W: 40, H: 80}, hurtbox.Rect())
}

func TestCreateSensorPicksArchetype(t *testing.T) {
	e := newTestECS()
	player := CreatePlayer(e, 100, 400)

	hit := CreateSensor(e, player, components.OwnerSlash, Shape{OffsetX: 30, W: 10, H: 10}, collision.HitboxLayers())
	assert.Equal(t, components.OwnerSlash, components.Sensor.Get(hit).Behavior)
	cx, _ := components.Collider.Get(hit).Rect().Center()
	assert.Equal(t, 130.0, cx)
}

func TestDespawnRemovesObject(t *testing.T) {
	e := newTestECS()
	solid := CreateSolid(e, 0, 400, 640, 80)
	space, ok := SpaceOf(e.World)
	require.True(t, ok)
	require.Len(t, space.Objects(), 1)

	Despawn(e, solid.Entity())
	assert.Empty(t, space.Objects())
	assert.False(t, e.World.Valid(solid.Entity()))

	assert.NotPanics(t, func() {
		Despawn(e, solid.Entity())
		Despawn(e, donburi.Null)
	})
}

func TestCreateLevelSpawnsGeometryAndTargets(t *testing.T) {
	e := newTestECS()
	level := &leveldata.Level{
		Name:      "t",
		MapWidth:  640,
		MapHeight: 480,
		Solids:    []leveldata.Rect{{X: 0, Y: 400, W: 640, H: 80}, {X: 0, Y: 0, W: 16, H: 400}},
		Enemies:   []leveldata.EnemySpawn{{Name: "a", X: 300, Y: 400, W: 40, H: 80}},
	}
	entry := CreateLevel(e, level)
	assert.Equal(t, "t", components.Level.Get(entry).Name)

	var solids, dummies int
	components.Collider.Each(e.World, func(c *donburi.Entry) {
		if components.Collider.Get(c).Layers == collision.EnvironmentLayers() {
			solids++
		}
	})
	components.Dummy.Each(e.World, func(*donburi.Entry) { dummies++ })
	assert.Equal(t, 2, solids)
	assert.Equal(t, 1, dummies)
}

func TestCreateProjectileStopsOnEnvironment(t *testing.T) {
	e := newTestECS()
	player := CreatePlayer(e, 100, 400)
	p := CreateProjectile(e, player, 3, 100, 350, -1, 500, 15)

	assert.Equal(t, -500.0, components.Velocity.Get(p).X)
	data := components.Projectile.Get(p)
	assert.Equal(t, uint64(3), data.Activation)
	assert.Equal(t, player.Entity(), data.Owner)

	c := components.Collider.Get(p)
	assert.NotZero(t, c.Layers.Filters&collision.Environment)
	assert.NotZero(t, c.Layers.Filters&collision.Hurtbox)
}

func TestCreateClockUsesTickRate(t *testing.T) {
	e := newTestECS()
	clock := CreateClock(e, 120)
	c := components.Clock.Get(clock)
	assert.Equal(t, 1.0, c.Scale)
	assert.Equal(t, int64(120), int64(1e9)/int64(c.Step))
	_, version := cfg.Behaviors()
	assert.Equal(t, version, c.Tuning)
}
