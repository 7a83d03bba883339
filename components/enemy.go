package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// DummyData is a training target. It never moves or fights back; it only
// counts the hits it takes.
type DummyData struct {
	Name     string
	Hits     int
	LastHit  time.Duration
	Hurtbox  donburi.Entity
	Collider donburi.Entity
}

var Dummy = donburi.NewComponentType[DummyData]()
