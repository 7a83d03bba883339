package gamemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccelerateConvergesWithoutOvershoot(t *testing.T) {
	const dt = 1.0 / 60
	v := 0.0
	for i := 0; i < 60; i++ {
		v = Accelerate(v, 1, 500, 3, dt)
		assert.LessOrEqual(t, v, 500.0)
	}
	assert.InDelta(t, 500, v, 1e-9)
}

func TestDecayShrinksTowardZero(t *testing.T) {
	v := 300.0
	for i := 0; i < 120; i++ {
		next := Decay(v, 4.3, 1.0/60)
		assert.Less(t, next, v)
		assert.Greater(t, next, 0.0)
		v = next
	}
	assert.Less(t, v, 300*0.01)
}

func TestSignHelpers(t *testing.T) {
	assert.Equal(t, 1.0, Snap(0.3))
	assert.Equal(t, -1.0, Snap(-0.01))
	assert.Equal(t, 0.0, Snap(0))
	assert.True(t, Opposes(-2, 1))
	assert.False(t, Opposes(0, 1))
	assert.Equal(t, -1.0, Facing(0, -1))
	assert.Equal(t, 1.0, Facing(0.5, -1))
}
