package factory

import (
	"github.com/automoto/metroidvania/archetypes"
	"github.com/automoto/metroidvania/components"
	cfg "github.com/automoto/metroidvania/config"
	"github.com/automoto/metroidvania/shared/collision"
	"github.com/automoto/metroidvania/shared/input"
	"github.com/automoto/metroidvania/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player standing with its feet at (x, y).
func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)
	w, h := cfg.Player.Width, cfg.Player.Height

	components.Transform.SetValue(player, components.TransformData{X: x, Y: y - h/2})
	components.Gravity.SetValue(player, components.GravityData{
		Acceleration: cfg.Physics.Gravity,
		MaxFall:      cfg.Physics.MaxFallSpeed,
	})
	components.Facing.SetValue(player, components.NewFacing(cfg.DirectionRight))
	components.InputBuffer.SetValue(player, components.InputBufferData{
		Buffer: input.NewBuffer(cfg.Player.BufferCapacity),
	})

	b, _ := cfg.Behaviors()
	components.Walk.SetValue(player, components.NewWalk(b.Walk))
	components.Jump.SetValue(player, components.NewJump(b.Jump))
	components.Slide.SetValue(player, components.NewSlide(b.Slide))
	components.Kick.SetValue(player, components.NewKick(b.Kick))
	components.Slash.SetValue(player, components.NewSlash(b.Slash))
	components.Shot.SetValue(player, components.NewShot(b.Shot))
	components.Animation.SetValue(player, components.NewAnimationData(cfg.PlayerAnimations))

	standing := CreateCollider(ecs, player, Shape{W: w, H: h}, collision.ColliderLayers(), tags.ResolvPlayer)
	components.Body.SetValue(player, components.BodyData{
		Width:    w,
		Height:   h,
		Collider: standing.Entity(),
	})

	inset := cfg.Player.HurtboxInset
	hurtbox := CreateSensor(ecs, player, components.OwnerBody, Shape{W: w - 2*inset, H: h - 2*inset}, collision.HurtboxLayers(collision.Player))
	components.Player.SetValue(player, components.PlayerData{
		SpawnX:  x,
		SpawnY:  y,
		Hurtbox: hurtbox.Entity(),
	})

	return player
}

// CreateCrouchCollider spawns the half-height collider used while crouching,
// sitting on the same feet as the standing one.
func CreateCrouchCollider(ecs *ecs.ECS, player *donburi.Entry) *donburi.Entry {
	body := components.Body.Get(player)
	s := Shape{OffsetY: body.Height / 4, W: body.Width, H: body.Height / 2}
	return CreateCollider(ecs, player, s, collision.ColliderLayers(), tags.ResolvPlayer)
}
