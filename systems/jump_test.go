package systems

import (
	"testing"

	"github.com/automoto/metroidvania/components"
	"github.com/automoto/metroidvania/shared/input"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJumpFromGround(t *testing.T) {
	h := newGroundedHarness(t, 200)
	jump := components.Jump.Get(h.player)
	g := components.Gravity.Get(h.player).Acceleration * components.Clock.Get(h.clock).Dt()
	startY := h.transform().Y

	h.press(input.Jump)
	h.step()

	assert.Equal(t, components.JumpActive, jump.Stage())
	assert.False(t, jump.HasAirJumped(), "a grounded jump keeps the air-jump")
	assert.InDelta(t, jump.Force-g, h.vel().Y, 1e-9)
	assert.Less(t, h.transform().Y, startY, "moved up the screen")
}

func TestJumpReleaseHalvesVerticalSpeed(t *testing.T) {
	h := newGroundedHarness(t, 200)
	g := components.Gravity.Get(h.player).Acceleration * components.Clock.Get(h.clock).Dt()

	h.tap(input.Jump)
	vy := h.vel().Y
	h.step()

	assert.Equal(t, components.JumpDormant, components.Jump.Get(h.player).Stage())
	assert.InDelta(t, vy/2-g, h.vel().Y, 1e-9)
}

func TestJumpHeldUntilApex(t *testing.T) {
	h := newGroundedHarness(t, 200)
	jump := components.Jump.Get(h.player)

	h.press(input.Jump)
	ok := h.runUntil(120, func() bool { return jump.Stage() == components.JumpDormant })
	require.True(t, ok)
	assert.LessOrEqual(t, h.vel().Y, 0.0, "ends when the body starts falling")
}

func TestAirJumpBudget(t *testing.T) {
	h := newGroundedHarness(t, 200)
	jump := components.Jump.Get(h.player)

	h.tap(input.Jump)
	h.step()
	require.False(t, h.grounded())

	h.tap(input.Jump)
	assert.Equal(t, components.JumpActive, jump.Stage())
	assert.True(t, jump.HasAirJumped())
	h.step()

	h.tap(input.Jump)
	assert.Equal(t, components.JumpDormant, jump.Stage(), "no third jump in the air")

	h.neutral()
	ok := h.runUntil(300, h.grounded)
	require.True(t, ok)
	h.step()
	assert.False(t, jump.HasAirJumped(), "landing refunds the air-jump")
}

func TestBufferedJumpFiresOnLanding(t *testing.T) {
	h := newHarness(t, 200, 400)
	h.spendAirJump()
	jump := components.Jump.Get(h.player)

	ok := h.runUntil(120, func() bool { return h.feet() > floorY-40 })
	require.True(t, ok)
	require.False(t, h.grounded())

	h.tap(input.Jump)
	require.Equal(t, components.JumpDormant, jump.Stage(), "airborne with no budget")

	ok = h.runUntil(12, func() bool { return jump.Stage() == components.JumpActive })
	assert.True(t, ok, "the press is replayed once the body lands")
}

func TestBlockedJumpNeverFires(t *testing.T) {
	h := newGroundedHarness(t, 200)
	jump := components.Jump.Get(h.player)
	h.buffer().Block(components.OwnerShot, input.Jump)

	for i := 0; i < 20; i++ {
		h.tap(input.Jump)
		require.Equal(t, components.JumpDormant, jump.Stage(), "tick %d", i)
		h.step()
	}
	assert.True(t, h.grounded())
}

func TestJumpRecordsStageTransitions(t *testing.T) {
	h := newGroundedHarness(t, 200)
	active := stageTransitions.WithLabelValues("jump", "active")
	before := testutil.ToFloat64(active)

	h.tap(input.Jump)

	assert.Equal(t, before+1, testutil.ToFloat64(active))
}
