package components

import (
	"github.com/automoto/metroidvania/shared/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	CurrentLevel *leveldata.Level
	Name         string
}

var Level = donburi.NewComponentType[LevelData]()
