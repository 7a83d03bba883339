package factory

import (
	"time"

	"github.com/automoto/metroidvania/archetypes"
	"github.com/automoto/metroidvania/components"
	cfg "github.com/automoto/metroidvania/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateClock spawns the simulation clock together with the raw input and
// debug probe singletons. The clock starts on the current tuning version so
// behaviors keep the values they were created with.
func CreateClock(ecs *ecs.ECS, tps int) *donburi.Entry {
	entry := archetypes.Clock.Spawn(ecs)
	if tps <= 0 {
		tps = cfg.Window.TPS
	}
	_, version := cfg.Behaviors()
	components.Clock.SetValue(entry, components.ClockData{
		Step:   time.Second / time.Duration(tps),
		Scale:  1,
		Tuning: version,
	})
	return entry
}
