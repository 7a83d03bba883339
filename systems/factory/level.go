package factory

import (
	"github.com/automoto/metroidvania/archetypes"
	"github.com/automoto/metroidvania/components"
	"github.com/automoto/metroidvania/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel spawns the level's geometry and targets. The player is left to
// the caller so tests can place it freely.
func CreateLevel(ecs *ecs.ECS, level *leveldata.Level) *donburi.Entry {
	entry := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(entry, components.LevelData{
		CurrentLevel: level,
		Name:         level.Name,
	})

	for _, r := range level.Solids {
		CreateSolid(ecs, r.X, r.Y, r.W, r.H)
	}
	for _, e := range level.Enemies {
		CreateDummy(ecs, e.Name, e.X, e.Y, e.W, e.H)
	}
	return entry
}
