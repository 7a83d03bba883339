package components

import (
	"github.com/yohamta/donburi"
)

// PlayerData holds what the player needs outside its behaviors.
type PlayerData struct {
	SpawnX  float64
	SpawnY  float64
	Hurtbox donburi.Entity
	// Respawns counts falls out of the level.
	Respawns int
}

var Player = donburi.NewComponentType[PlayerData]()
