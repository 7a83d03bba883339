package systems

import (
	"time"

	"github.com/automoto/metroidvania/components"
	cfg "github.com/automoto/metroidvania/config"
	"github.com/automoto/metroidvania/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock advances the simulation clock by one scaled step and clears the
// per-tick debug probes.
func UpdateClock(ecs *ecs.ECS) {
	entry, ok := components.Clock.First(ecs.World)
	if !ok {
		skip("clock", reasonNoClock)
		return
	}
	clock := components.Clock.Get(entry)

	step := clock.Step
	if step <= 0 {
		step = time.Second / time.Duration(cfg.Window.TPS)
	}
	scale := clock.Scale
	if scale <= 0 {
		scale = 1
	}
	clock.Delta = time.Duration(float64(step) * scale)
	clock.Now += clock.Delta
	clock.Tick++

	if entry.HasComponent(components.DebugProbes) {
		probes := components.DebugProbes.Get(entry)
		probes.Probes = probes.Probes[:0]
	}
}

// UpdateTuning copies reloaded behavior tuning onto live behaviors. Stages
// and latches are untouched.
func UpdateTuning(ecs *ecs.ECS) {
	clock, ok := clockOf(ecs.World)
	if !ok {
		return
	}
	b, version := cfg.Behaviors()
	if version == clock.Tuning {
		return
	}
	clock.Tuning = version

	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		components.Walk.Get(e).Tune(b.Walk)
		components.Jump.Get(e).Tune(b.Jump)
		components.Kick.Get(e).Tune(b.Kick)
		components.Slide.Get(e).Tune(b.Slide)
		components.Slash.Get(e).Tune(b.Slash)
		components.Shot.Get(e).TuneShot(b.Shot)
	})
}

func clockOf(w donburi.World) (*components.ClockData, bool) {
	entry, ok := components.Clock.First(w)
	if !ok {
		return nil, false
	}
	return components.Clock.Get(entry), true
}

func rawInputOf(w donburi.World) (*components.RawInputData, bool) {
	entry, ok := components.RawInput.First(w)
	if !ok {
		return nil, false
	}
	return components.RawInput.Get(entry), true
}
