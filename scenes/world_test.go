package scenes

import (
	"testing"
	"time"

	"github.com/automoto/metroidvania/components"
	"github.com/automoto/metroidvania/shared/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestSandboxWorldSettles(t *testing.T) {
	w, err := LoadWorld("sandbox", 60)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		w.SetInput([input.ActionCount]bool{}, input.Vec{})
		w.Step()
	}
	assert.True(t, components.Grounded.Get(w.Player).OnGround)
	assert.Equal(t, w.Level.Spawn.X, components.Transform.Get(w.Player).X)

	var dummies int
	components.Dummy.Each(w.ECS.World, func(*donburi.Entry) { dummies++ })
	assert.Equal(t, len(w.Level.Enemies), dummies)
}

func TestLoadWorldUnknownLevel(t *testing.T) {
	_, err := LoadWorld("nowhere", 60)
	assert.Error(t, err)
}

func TestTimeScaleSlowsClock(t *testing.T) {
	w, err := LoadWorld("sandbox", 60)
	require.NoError(t, err)

	w.SetTimeScale(0.5)
	w.SetInput([input.ActionCount]bool{}, input.Vec{})
	w.Step()
	assert.Equal(t, time.Second/60/2, w.Now())
}

func TestTickRateChangesStep(t *testing.T) {
	w, err := LoadWorld("sandbox", 60)
	require.NoError(t, err)

	w.SetTickRate(120)
	w.SetInput([input.ActionCount]bool{}, input.Vec{})
	w.Step()
	assert.Equal(t, time.Second/120, w.Now())

	w.SetTickRate(0)
	assert.Equal(t, time.Second/120, components.Clock.Get(w.Clock).Step, "ignored")
}
