package systems

import (
	"testing"

	"github.com/automoto/metroidvania/components"
	"github.com/stretchr/testify/assert"
)

func TestPauseTogglesOnPressEdge(t *testing.T) {
	var p components.PauseData
	assert.True(t, p.Toggle(true))
	assert.True(t, p.IsPaused)
	assert.False(t, p.Toggle(true), "holding does not toggle again")
	assert.False(t, p.Toggle(false))
	assert.True(t, p.Toggle(true))
	assert.False(t, p.IsPaused)
}

func TestPausedWorldDoesNotStep(t *testing.T) {
	h := newGroundedHarness(t, 200)
	raw := components.RawInput.Get(h.clock)
	raw.Pause = true
	UpdatePause(h.ecs)
	assert.True(t, Paused(h.ecs.World))

	now := components.Clock.Get(h.clock).Now
	x := h.transform().X
	h.hold(1, 0)
	h.run(10)
	assert.Equal(t, now, components.Clock.Get(h.clock).Now)
	assert.Equal(t, x, h.transform().X)

	raw.Pause = false
	UpdatePause(h.ecs)
	raw.Pause = true
	UpdatePause(h.ecs)
	assert.False(t, Paused(h.ecs.World))
	h.step()
	assert.Greater(t, components.Clock.Get(h.clock).Now, now)
}
