package components

import (
	"time"

	"github.com/automoto/metroidvania/shared/input"
)

// Block owners. Each behavior that blocks input holds its own token on the
// player's buffer.
const (
	OwnerSlide input.Owner = iota
	OwnerKick
	OwnerSlash
	OwnerShot
	// OwnerBody tags the body's own sensors. It never blocks input.
	OwnerBody
)

// StageTimer counts time spent in a stage against the stage's duration. A
// zero duration never finishes.
type StageTimer struct {
	duration time.Duration
	elapsed  time.Duration
}

// Reset restarts the timer for a stage of length d.
func (t *StageTimer) Reset(d time.Duration) {
	t.duration = d
	t.elapsed = 0
}

func (t *StageTimer) Tick(dt time.Duration) {
	t.elapsed += dt
}

func (t *StageTimer) Finished() bool {
	return t.duration > 0 && t.elapsed >= t.duration
}

func (t *StageTimer) Elapsed() time.Duration  { return t.elapsed }
func (t *StageTimer) Duration() time.Duration { return t.duration }

// Remaining never goes below zero.
func (t *StageTimer) Remaining() time.Duration {
	if t.elapsed >= t.duration {
		return 0
	}
	return t.duration - t.elapsed
}

// Fraction is elapsed/duration clamped to [0, 1].
func (t *StageTimer) Fraction() float64 {
	if t.duration <= 0 {
		return 0
	}
	f := float64(t.elapsed) / float64(t.duration)
	if f > 1 {
		return 1
	}
	return f
}

// hitLatch records at most one hit per activation.
type hitLatch struct {
	hasHit bool
	hits   int
}

func (h *hitLatch) reset() {
	h.hasHit = false
	h.hits = 0
}

// HasHit reports whether this activation already landed.
func (h *hitLatch) HasHit() bool { return h.hasHit }

// Hits is the number of hits recorded this activation: 0 or 1.
func (h *hitLatch) Hits() int { return h.hits }

// RecordHit latches the first hit and reports whether this call recorded it.
func (h *hitLatch) RecordHit() bool {
	if h.hasHit {
		return false
	}
	h.hasHit = true
	h.hits++
	return true
}
