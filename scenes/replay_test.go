package scenes

import (
	"testing"
	"time"

	"github.com/automoto/metroidvania/shared/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const walkAndSlash = `
level: sandbox
tps: 60
duration: 1s
steps:
  - at: 500ms
    buttons: [primary]
  - at: 0s
    axis: [1, 0]
  - at: 600ms
    axis: [0, 0]
`

func TestParseScriptOrdersSteps(t *testing.T) {
	s, err := ParseScript([]byte(walkAndSlash))
	require.NoError(t, err)
	assert.Equal(t, time.Second, s.Duration)
	require.Len(t, s.Steps, 3)
	assert.Equal(t, time.Duration(0), s.Steps[0].At)
	assert.Equal(t, 600*time.Millisecond, s.Steps[2].At)
}

func TestParseScriptDefaults(t *testing.T) {
	s, err := ParseScript([]byte("duration: 2s\n"))
	require.NoError(t, err)
	assert.Equal(t, "sandbox", s.Level)
	assert.Equal(t, 60, s.TPS)
}

func TestParseScriptRejects(t *testing.T) {
	_, err := ParseScript([]byte("steps: []\n"))
	assert.Error(t, err, "missing duration")

	_, err = ParseScript([]byte("duration: 1s\nsteps:\n  - at: 0s\n    buttons: [dash]\n"))
	assert.ErrorContains(t, err, "dash")

	_, err = ParseScript([]byte("duration: [\n"))
	assert.Error(t, err)
}

func TestScriptInputAt(t *testing.T) {
	s, err := ParseScript([]byte(walkAndSlash))
	require.NoError(t, err)

	buttons, axis := s.InputAt(100 * time.Millisecond)
	assert.Equal(t, input.Vec{X: 1}, axis)
	assert.False(t, buttons[input.Primary])

	buttons, axis = s.InputAt(550 * time.Millisecond)
	assert.True(t, buttons[input.Primary])
	assert.Equal(t, input.Vec{}, axis, "each step replaces the whole input")

	buttons, _ = s.InputAt(700 * time.Millisecond)
	assert.False(t, buttons[input.Primary])
}

func TestReplayTracesEveryTick(t *testing.T) {
	s, err := ParseScript([]byte(walkAndSlash))
	require.NoError(t, err)
	w, err := LoadWorld(s.Level, s.TPS)
	require.NoError(t, err)

	tr := Replay(w, s)
	assert.InDelta(t, 60, len(tr.Points), 1)
	first, last := tr.Points[0], tr.Points[len(tr.Points)-1]
	assert.Greater(t, last.X, first.X, "walked right")
	assert.Contains(t, tr.Hits, "dummy")
}
