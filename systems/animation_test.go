package systems

import (
	"math"
	"testing"

	"github.com/automoto/metroidvania/components"
	cfg "github.com/automoto/metroidvania/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (h *harness) animation() cfg.AnimationID {
	return components.Animation.Get(h.player).Current
}

func TestPlayerAnimationFollowsWalk(t *testing.T) {
	h := newGroundedHarness(t, 200)
	walk := components.Walk.Get(h.player)
	hard := walk.MaxSpeed * walk.HardSlowingRatio

	h.neutral()
	h.step()
	assert.Equal(t, cfg.AnimIdle, h.animation(), "standing still")

	h.hold(1, 0)
	h.run(40)
	require.Equal(t, components.WalkActive, walk.Stage())
	assert.Equal(t, cfg.AnimWalk, h.animation())

	h.neutral()
	h.step()
	require.Equal(t, components.WalkSlowing, walk.Stage())
	require.Greater(t, math.Abs(h.vel().X), hard)
	assert.Equal(t, cfg.AnimSlowingHard, h.animation())

	ok := h.runUntil(120, func() bool { return math.Abs(h.vel().X) <= hard })
	require.True(t, ok)
	require.Equal(t, components.WalkSlowing, walk.Stage())
	assert.Equal(t, cfg.AnimSlowingGentle, h.animation())

	ok = h.runUntil(300, func() bool { return walk.Stage() == components.WalkDormant })
	require.True(t, ok)
	assert.Equal(t, cfg.AnimIdle, h.animation())
}

func TestPlayerAnimationIdlesInTheAir(t *testing.T) {
	h := newHarness(t, 500, 300)
	h.hold(1, 0)
	h.run(5)

	require.False(t, h.grounded())
	require.Equal(t, components.WalkActive, components.Walk.Get(h.player).Stage())
	assert.Equal(t, cfg.AnimIdle, h.animation())
}

func TestSlowingHardThreshold(t *testing.T) {
	walk := components.NewWalk(cfg.WalkConfig{MaxSpeed: 300, HardSlowingRatio: 0.15})

	tests := []struct {
		vx   float64
		want bool
	}{
		{300, true},
		{-46, true},
		{44, false},
		{-44, false},
		{0, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, walk.SlowingHard(tt.vx), "vx=%v", tt.vx)
	}
}
