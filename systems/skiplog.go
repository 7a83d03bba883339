package systems

import (
	"log"
	"time"

	"golang.org/x/time/rate"
)

// Skip reasons, used as metric labels.
const (
	reasonNoClock    = "no_clock"
	reasonNoSpace    = "no_space"
	reasonNoInput    = "no_input"
	reasonNoAxis     = "no_axis"
	reasonStale      = "stale_entity"
	reasonNoCollider = "no_collider"
)

// A stale handle repeats every tick until it resolves; three lines a second
// is enough to notice it.
var skipLimiter = rate.NewLimiter(rate.Every(time.Second), 3)

// skip records that system gave up on this tick.
func skip(system, reason string) {
	systemSkips.WithLabelValues(reason).Inc()
	if skipLimiter.Allow() {
		log.Printf("Warning: %s skipped a tick: %s", system, reason)
	}
}
