package components

import (
	"github.com/automoto/metroidvania/config"
	"github.com/yohamta/donburi"
)

type KickStage int

const (
	KickDormant KickStage = iota
	KickActive
	KickStageCount
)

func (s KickStage) String() string {
	switch s {
	case KickDormant:
		return "dormant"
	case KickActive:
		return "active"
	}
	return "invalid"
}

// KickData is the air-dive kick. While Active it owns one hitbox sensor.
type KickData struct {
	stage KickStage
	Timer StageTimer
	hitLatch
	sensor donburi.Entity

	Speed           float64
	HorizontalBoost float64
}

func NewKick(c config.KickConfig) KickData {
	k := KickData{}
	k.Tune(c)
	return k
}

func (k *KickData) Tune(c config.KickConfig) {
	k.Speed = c.Speed
	k.HorizontalBoost = c.HorizontalBoost
}

func (k *KickData) Stage() KickStage { return k.stage }

// Activate enters Active owning sensor.
func (k *KickData) Activate(sensor donburi.Entity) {
	k.stage = KickActive
	k.Timer.Reset(0)
	k.hitLatch.reset()
	k.sensor = sensor
}

// Deactivate returns to Dormant and hands back the sensor for despawning.
func (k *KickData) Deactivate() donburi.Entity {
	sensor := k.sensor
	k.stage = KickDormant
	k.Timer.Reset(0)
	k.sensor = donburi.Null
	return sensor
}

func (k *KickData) Sensor() donburi.Entity { return k.sensor }

var Kick = donburi.NewComponentType[KickData]()
