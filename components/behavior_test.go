package components

import (
	"fmt"
	"testing"
	"time"

	"github.com/automoto/metroidvania/config"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi"
)

func TestStagesAreNamed(t *testing.T) {
	var stages []fmt.Stringer
	for s := WalkStage(0); s < WalkStageCount; s++ {
		stages = append(stages, s)
	}
	for s := JumpStage(0); s < JumpStageCount; s++ {
		stages = append(stages, s)
	}
	for s := CrouchStage(0); s < CrouchStageCount; s++ {
		stages = append(stages, s)
	}
	for s := SlideStage(0); s < SlideStageCount; s++ {
		stages = append(stages, s)
	}
	for s := KickStage(0); s < KickStageCount; s++ {
		stages = append(stages, s)
	}
	for s := AttackStage(0); s < AttackStageCount; s++ {
		stages = append(stages, s)
	}
	for _, s := range stages {
		assert.NotEqual(t, "invalid", s.String(), "%T(%d)", s, s)
	}
	assert.Equal(t, "invalid", WalkStageCount.String())
}

func TestStageTimer(t *testing.T) {
	var timer StageTimer
	timer.Reset(100 * time.Millisecond)
	assert.False(t, timer.Finished())

	timer.Tick(60 * time.Millisecond)
	assert.Equal(t, 40*time.Millisecond, timer.Remaining())
	assert.InDelta(t, 0.6, timer.Fraction(), 1e-9)

	timer.Tick(60 * time.Millisecond)
	assert.True(t, timer.Finished())
	assert.Zero(t, timer.Remaining())
	assert.Equal(t, 1.0, timer.Fraction())

	timer.Reset(0)
	timer.Tick(time.Hour)
	assert.False(t, timer.Finished(), "an open-ended stage never finishes")
}

func TestHitLatchPerActivation(t *testing.T) {
	s := NewSlash(config.DefaultBehaviors().Slash)
	s.SetStage(AttackWindup)
	s.SetStage(AttackActive)
	assert.Equal(t, uint64(1), s.Activation())

	assert.True(t, s.RecordHit())
	assert.False(t, s.RecordHit())
	assert.Equal(t, 1, s.Hits())

	s.SetStage(AttackSettle)
	assert.True(t, s.HasHit(), "the latch holds until the next activation")

	s.SetStage(AttackActive)
	assert.False(t, s.HasHit())
	assert.Equal(t, uint64(2), s.Activation())
}

func TestAttackStageLengths(t *testing.T) {
	cfg := config.DefaultBehaviors().Shot
	s := NewShot(cfg)

	s.SetStage(AttackWindup)
	assert.Equal(t, cfg.Windup, s.Timer.Duration())
	s.SetStage(AttackActive)
	assert.Equal(t, cfg.Active, s.Timer.Duration())
	s.SetStage(AttackSettle)
	assert.Equal(t, cfg.Settle, s.Timer.Duration())
	assert.Equal(t, cfg.ProjectileSpeed, s.ProjectileSpeed)
}

func TestJumpBudget(t *testing.T) {
	j := NewJump(config.DefaultBehaviors().Jump)

	j.Trigger(true)
	assert.False(t, j.HasAirJumped())
	j.Trigger(false)
	assert.True(t, j.HasAirJumped())

	j.Retrigger()
	assert.Equal(t, JumpActive, j.Stage())
	assert.False(t, j.HasAirJumped())

	j.Trigger(false)
	j.ResetBudget()
	assert.False(t, j.HasAirJumped())
}

func TestCrouchHoldsStandingCollider(t *testing.T) {
	var c CrouchData
	_, ok := c.Stand()
	assert.False(t, ok, "standing twice is a no-op")

	standing := donburi.Entity(42)
	c.Crouch(standing)
	stored, ok := c.StoredCollider()
	assert.True(t, ok)
	assert.Equal(t, standing, stored)

	back, ok := c.Stand()
	assert.True(t, ok)
	assert.Equal(t, standing, back)
	_, ok = c.StoredCollider()
	assert.False(t, ok)
}

func TestSlideSettleEasesToZero(t *testing.T) {
	s := NewSlide(config.DefaultBehaviors().Slide)
	s.SetStage(SlideAccelerate, 0)
	assert.True(t, s.RecordHit())

	s.SetStage(SlideSettle, 500)
	first := s.SettleVelocity(20 * time.Millisecond)
	assert.Less(t, first, 500.0)
	assert.Greater(t, first, 0.0)

	last := s.SettleVelocity(s.Settle)
	assert.Zero(t, last)

	s.SetStage(SlideAccelerate, 0)
	assert.False(t, s.HasHit())
}

func TestWalkStageChangeReported(t *testing.T) {
	w := NewWalk(config.DefaultBehaviors().Walk)
	assert.True(t, w.SetStage(WalkActive))
	assert.False(t, w.SetStage(WalkActive))
	assert.True(t, w.SlowingHard(w.MaxSpeed))
	assert.False(t, w.SlowingHard(0))
}

func TestKickOwnsSensor(t *testing.T) {
	k := NewKick(config.DefaultBehaviors().Kick)
	sensor := donburi.Entity(7)
	k.Activate(sensor)
	assert.Equal(t, KickActive, k.Stage())
	assert.Equal(t, sensor, k.Sensor())

	assert.Equal(t, sensor, k.Deactivate())
	assert.Equal(t, KickDormant, k.Stage())
	assert.Equal(t, donburi.Null, k.Sensor())
}

func TestCommandsTake(t *testing.T) {
	var c CommandsData
	assert.False(t, c.Take(CommandRetriggerJump))

	c.Push(CommandRetriggerJump)
	c.Push(CommandRetriggerJump)
	assert.True(t, c.Take(CommandRetriggerJump))
	assert.Zero(t, c.Len())
}

func TestFacingKeepsLastDirection(t *testing.T) {
	f := NewFacing(-1)
	f.Set(0)
	assert.Equal(t, -1.0, f.Get())
	f.Set(0.3)
	assert.Equal(t, 1.0, f.Get())

	var zero FacingData
	assert.Equal(t, 1.0, zero.Get())
}
