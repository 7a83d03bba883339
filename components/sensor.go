package components

import (
	"github.com/automoto/metroidvania/shared/input"
	"github.com/yohamta/donburi"
)

// SensorData marks a non-solid volume attached to an owner. Behavior says
// which behavior spawned it.
type SensorData struct {
	Owner    donburi.Entity
	Behavior input.Owner
}

var Sensor = donburi.NewComponentType[SensorData]()

// ProjectileData is a shot in flight. It reports its first hit back to the
// Shot on Owner, but only for the activation that fired it.
type ProjectileData struct {
	Owner      donburi.Entity
	Activation uint64
	Spent      bool
}

var Projectile = donburi.NewComponentType[ProjectileData]()
