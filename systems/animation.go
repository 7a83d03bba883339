package systems

import (
	"github.com/automoto/metroidvania/components"
	cfg "github.com/automoto/metroidvania/config"
	"github.com/automoto/metroidvania/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAnimation picks the player's sprite range from its walk stage and
// advances it. Airborne bodies fall back to idle.
func UpdateAnimation(ecs *ecs.ECS) {
	clock, ok := clockOf(ecs.World)
	if !ok {
		return
	}
	dt := float32(clock.Dt())

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		anim := components.Animation.Get(e)
		anim.SetAnimation(playerAnimation(e))
		if anim.CurrentAnimation != nil {
			anim.CurrentAnimation.Update(dt)
		}
	})
}

func playerAnimation(e *donburi.Entry) cfg.AnimationID {
	if !components.Grounded.Get(e).OnGround {
		return cfg.AnimIdle
	}
	walk := components.Walk.Get(e)
	switch walk.Stage() {
	case components.WalkActive:
		return cfg.AnimWalk
	case components.WalkSlowing:
		if walk.SlowingHard(components.Velocity.Get(e).X) {
			return cfg.AnimSlowingHard
		}
		return cfg.AnimSlowingGentle
	}
	return cfg.AnimIdle
}
