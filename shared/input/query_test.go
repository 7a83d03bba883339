package input

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// feed ingests one frame per step, 10ms apart, starting at t=10ms.
type step struct {
	jump StateKind
	axis Vec
}

func feed(b *Buffer, steps ...step) {
	for i, s := range steps {
		b.Ingest(time.Duration(i+1)*10*time.Millisecond, states(map[Action]StateKind{Jump: s.jump}), s.axis, true)
	}
}

func TestContainsWithinConsume(t *testing.T) {
	b := NewBuffer(16)
	feed(b,
		step{jump: JustPressed},
		step{jump: Pressed},
		step{jump: JustReleased},
	)

	assert.True(t, b.Query().Contains(Jump.JustPressed()).Check())
	assert.False(t, b.Query().Contains(Jump.JustPressed()).Within(10*time.Millisecond).Check())
	assert.True(t, b.Query().Contains(Jump.JustPressed()).Within(20*time.Millisecond).Check())

	assert.True(t, b.Query().Contains(Jump.JustPressed()).Consume())
	assert.Equal(t, 0, b.Len(), "consume clears the whole history")
	assert.False(t, b.Query().Contains(Jump.JustPressed()).Consume(), "a gesture triggers once")
}

func TestContainsBlockedMatchesNothing(t *testing.T) {
	b := NewBuffer(16)
	feed(b, step{jump: JustPressed})
	b.Block(ownerA, Jump)

	assert.False(t, b.Query().Contains(Jump.JustPressed()).Consume())
	assert.Equal(t, 1, b.Len(), "a failed consume leaves history intact")
}

func TestContainsAnyDropsBlocked(t *testing.T) {
	b := NewBuffer(16)
	feed(b,
		step{jump: JustPressed},
		step{jump: Pressed, axis: Vec{Y: -1}},
	)
	b.Block(ownerA, Jump)

	q := b.Query().ContainsAny(Jump.JustPressed(), DirDown)
	require.Len(t, q.Frames(), 1)
	assert.Equal(t, DirDown, q.Frames()[0].Direction)
}

func TestSequence(t *testing.T) {
	b := NewBuffer(16)
	feed(b,
		step{axis: Vec{Y: -1}},
		step{axis: Vec{X: 1, Y: -1}},
		step{axis: Vec{X: 1}},
		step{axis: Vec{}},
	)

	q := b.Query().Sequence(RollCounterClockwise(DirDown, DirRight)...)
	require.Len(t, q.Frames(), 3)
	assert.Equal(t, DirDown, q.Frames()[0].Direction)
	assert.Equal(t, DirRight, q.Frames()[2].Direction)

	assert.False(t, b.Query().Sequence(DirDown, DirRight).Check(), "must be consecutive")
	assert.False(t, b.Query().Sequence().Check())

	b.Block(ownerA, DirDownRight)
	assert.False(t, b.Query().Sequence(RollCounterClockwise(DirDown, DirRight)...).Check())
}

func TestFirstAndConsumeFirst(t *testing.T) {
	b := NewBuffer(16)
	feed(b,
		step{axis: Vec{Y: -1}},
		step{axis: Vec{}},
		step{axis: Vec{Y: -1}},
	)
	f, ok := b.Query().Contains(DirDown).First()
	require.True(t, ok)
	assert.Equal(t, 10*time.Millisecond, f.Instant)

	f, ok = b.Query().Contains(DirDown).ConsumeFirst()
	require.True(t, ok)
	assert.Equal(t, 10*time.Millisecond, f.Instant)
	assert.Equal(t, 0, b.Len())

	_, ok = b.Query().Contains(DirDown).First()
	assert.False(t, ok)
}

func TestBeforeAndAfter(t *testing.T) {
	b := NewBuffer(16)
	feed(b,
		step{axis: Vec{Y: -1}},
		step{jump: JustPressed, axis: Vec{Y: -1}},
		step{jump: Pressed, axis: Vec{X: 1}},
	)

	downBeforeJump := b.Query().Contains(Jump.JustPressed()).Before().Contains(DirDown).Check()
	assert.True(t, downBeforeJump)

	rightBeforeJump := b.Query().Contains(Jump.JustPressed()).Before().Contains(DirRight).Check()
	assert.False(t, rightBeforeJump)

	rightAfterJump := b.Query().Contains(Jump.JustPressed()).After().Contains(DirRight).Check()
	assert.True(t, rightAfterJump)

	noMatch := b.Query().Contains(Jump.JustReleased()).After()
	assert.False(t, noMatch.Check())
}

func TestAndRestartsFromHistory(t *testing.T) {
	b := NewBuffer(16)
	feed(b,
		step{jump: JustPressed},
		step{jump: Pressed, axis: Vec{Y: -1}},
	)
	assert.True(t, b.Query().Contains(Jump.JustPressed()).And().Contains(DirDown).Check())
	assert.False(t, b.Query().Contains(Jump.JustReleased()).And().Contains(DirDown).Check())
}
