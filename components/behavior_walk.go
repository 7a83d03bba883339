package components

import (
	"math"

	"github.com/automoto/metroidvania/config"
	"github.com/yohamta/donburi"
)

type WalkStage int

const (
	WalkDormant WalkStage = iota
	WalkActive
	WalkSlowing
	WalkStageCount
)

func (s WalkStage) String() string {
	switch s {
	case WalkDormant:
		return "dormant"
	case WalkActive:
		return "active"
	case WalkSlowing:
		return "slowing"
	}
	return "invalid"
}

// WalkData is horizontal movement. Its stage is informational and only read
// by the animation interpreter.
type WalkData struct {
	stage WalkStage
	Timer StageTimer

	SlowingFactor      float64
	MaxSpeed           float64
	AccelerationFactor float64
	HardSlowingRatio   float64
}

func NewWalk(c config.WalkConfig) WalkData {
	w := WalkData{}
	w.Tune(c)
	return w
}

func (w *WalkData) Tune(c config.WalkConfig) {
	w.SlowingFactor = c.SlowingFactor
	w.MaxSpeed = c.MaxSpeed
	w.AccelerationFactor = c.AccelerationFactor
	w.HardSlowingRatio = c.HardSlowingRatio
}

func (w *WalkData) Stage() WalkStage { return w.stage }

// SetStage resets the stage timer and reports whether the stage changed.
// Re-entering the current stage is a no-op.
func (w *WalkData) SetStage(s WalkStage) bool {
	if s == w.stage {
		return false
	}
	w.stage = s
	w.Timer.Reset(0)
	return true
}

// SlowingHard reports whether vx is still fast enough for the hard-braking
// pose.
func (w *WalkData) SlowingHard(vx float64) bool {
	return math.Abs(vx) > w.MaxSpeed*w.HardSlowingRatio
}

var Walk = donburi.NewComponentType[WalkData]()
