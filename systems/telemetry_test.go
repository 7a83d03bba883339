package systems

import (
	"testing"

	"github.com/automoto/metroidvania/components"
	"github.com/automoto/metroidvania/shared/input"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestMissingClockSkipsTick(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	RegisterSimulation(e)
	skips := systemSkips.WithLabelValues(reasonNoClock)
	before := testutil.ToFloat64(skips)

	assert.NotPanics(t, func() { e.Update() })
	assert.Greater(t, testutil.ToFloat64(skips), before)
}

func TestMissingAxisLeavesInputStale(t *testing.T) {
	h := newGroundedHarness(t, 200)
	skips := systemSkips.WithLabelValues(reasonNoAxis)
	before := testutil.ToFloat64(skips)

	components.RawInput.Get(h.clock).HasAxis = false
	components.RawInput.Get(h.clock).Buttons[input.Jump] = true
	h.ecs.Update()

	assert.Greater(t, testutil.ToFloat64(skips), before)
	assert.Less(t, h.buffer().Now(), components.Clock.Get(h.clock).Now)
	assert.Equal(t, components.JumpDormant, components.Jump.Get(h.player).Stage(), "stale input triggers nothing")
}

func TestHitsAreCounted(t *testing.T) {
	h := newGroundedHarness(t, 200, dummyAt("counted", 262.5))
	hits := behaviorHits.WithLabelValues("slash")
	before := testutil.ToFloat64(hits)

	h.tap(input.Primary)
	h.run(attackTicks(h, &components.Slash.Get(h.player).AttackState))

	assert.Equal(t, before+1, testutil.ToFloat64(hits))
}

func TestProbesAreRecordedPerTick(t *testing.T) {
	h := newGroundedHarness(t, 200)
	probes := components.DebugProbes.Get(h.clock)

	h.hold(0, -1)
	h.step()
	h.neutral()
	h.step()

	var labels []string
	for _, p := range probes.Probes {
		labels = append(labels, p.Label)
	}
	assert.Contains(t, labels, "crouch_clearance")

	h.step()
	assert.Empty(t, probes.Probes, "cleared at the start of every tick")
}

func TestStageReadout(t *testing.T) {
	h := newGroundedHarness(t, 200)
	lines := StageReadout(h.player)
	assert.Len(t, lines, 10)
	for _, l := range lines {
		assert.NotContains(t, l, "invalid")
	}
}
