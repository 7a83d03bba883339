package components

import (
	"time"

	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// SpaceData is the world's collision space.
var Space = donburi.NewComponentType[resolv.Space]()

// ClockData is the simulation clock. Step is the unscaled tick length and
// Scale slows the simulation down without changing the tick rate.
type ClockData struct {
	Now   time.Duration
	Delta time.Duration
	Step  time.Duration
	Scale float64
	Tick  uint64
	// Tuning is the config version last applied to live behaviors.
	Tuning uint64
}

// Dt is this tick's scaled delta in seconds.
func (c *ClockData) Dt() float64 {
	return c.Delta.Seconds()
}

var Clock = donburi.NewComponentType[ClockData]()

// ProbeRecord is one shape query made this tick, kept for debug drawing.
type ProbeRecord struct {
	X, Y, W, H float64
	Hit        bool
	Label      string
}

// DebugProbesData collects the tick's probes. It is cleared at the start of
// every tick.
type DebugProbesData struct {
	Probes []ProbeRecord
}

func (d *DebugProbesData) Record(p ProbeRecord) {
	d.Probes = append(d.Probes, p)
}

var DebugProbes = donburi.NewComponentType[DebugProbesData]()
