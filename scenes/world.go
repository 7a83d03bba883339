package scenes

import (
	"fmt"
	"time"

	"github.com/automoto/metroidvania/assets"
	"github.com/automoto/metroidvania/components"
	cfg "github.com/automoto/metroidvania/config"
	"github.com/automoto/metroidvania/shared/input"
	"github.com/automoto/metroidvania/shared/leveldata"
	"github.com/automoto/metroidvania/systems"
	"github.com/automoto/metroidvania/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// World is a built sandbox: the ECS with the simulation registered and the
// entries callers need to drive it.
type World struct {
	ECS    *ecs.ECS
	Level  *leveldata.Level
	Player *donburi.Entry
	Clock  *donburi.Entry
}

// NewWorld builds a sandbox for level. Systems in before run ahead of the
// simulation every tick; the game passes its input polling here.
func NewWorld(level *leveldata.Level, tps int, before ...ecs.System) *World {
	e := ecs.NewECS(donburi.NewWorld())
	for _, s := range before {
		e.AddSystem(s)
	}
	systems.RegisterSimulation(e)

	factory.CreateSpace(e, level.MapWidth, level.MapHeight, cfg.Physics.CellSize, cfg.Physics.CellSize)
	clock := factory.CreateClock(e, tps)
	factory.CreateLevel(e, level)
	player := factory.CreatePlayer(e, level.Spawn.X, level.Spawn.Y)

	return &World{
		ECS:    e,
		Level:  level,
		Player: player,
		Clock:  clock,
	}
}

// LoadWorld builds a sandbox from one of the embedded levels.
func LoadWorld(name string, tps int, before ...ecs.System) (*World, error) {
	level, err := assets.LoadLevel(name)
	if err != nil {
		return nil, fmt.Errorf("loading world %q: %w", name, err)
	}
	return NewWorld(level, tps, before...), nil
}

// Step runs one tick of every registered system.
func (w *World) Step() {
	start := time.Now()
	w.ECS.Update()
	systems.ObserveTick(time.Since(start))
}

// SetInput replaces the raw input for the next tick.
func (w *World) SetInput(buttons [input.ActionCount]bool, axis input.Vec) {
	raw := components.RawInput.Get(w.Clock)
	raw.Buttons = buttons
	raw.Axis = axis
	raw.HasAxis = true
}

// SetTimeScale slows the simulation without changing the tick rate.
func (w *World) SetTimeScale(scale float64) {
	components.Clock.Get(w.Clock).Scale = scale
}

// SetTickRate changes the unscaled step to match tps ticks per second.
func (w *World) SetTickRate(tps int) {
	if tps <= 0 {
		return
	}
	components.Clock.Get(w.Clock).Step = time.Second / time.Duration(tps)
}

// Now is the scaled simulation time.
func (w *World) Now() time.Duration {
	return components.Clock.Get(w.Clock).Now
}
