package components

import (
	"time"

	"github.com/automoto/metroidvania/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

type SlideStage int

const (
	SlideDormant SlideStage = iota
	SlideAccelerate
	SlideSettle
	SlideStageCount
)

func (s SlideStage) String() string {
	switch s {
	case SlideDormant:
		return "dormant"
	case SlideAccelerate:
		return "accelerate"
	case SlideSettle:
		return "settle"
	}
	return "invalid"
}

// SlideData is the crouch dash. The forward-low probe lands at most one hit
// per slide.
type SlideData struct {
	stage SlideStage
	Timer StageTimer
	hitLatch
	settle *gween.Tween

	Speed      float64
	Accelerate time.Duration
	Settle     time.Duration
}

func NewSlide(c config.SlideConfig) SlideData {
	s := SlideData{}
	s.Tune(c)
	return s
}

func (s *SlideData) Tune(c config.SlideConfig) {
	s.Speed = c.Speed
	s.Accelerate = c.Accelerate
	s.Settle = c.Settle
}

func (s *SlideData) Stage() SlideStage { return s.stage }

// SetStage resets the timer to the new stage's length. Entering Accelerate
// clears the hit latch. Entering Settle eases from vx down to zero.
func (s *SlideData) SetStage(stage SlideStage, vx float64) {
	s.stage = stage
	switch stage {
	case SlideDormant:
		s.Timer.Reset(0)
		s.settle = nil
	case SlideAccelerate:
		s.Timer.Reset(s.Accelerate)
		s.hitLatch.reset()
		s.settle = nil
	case SlideSettle:
		s.Timer.Reset(s.Settle)
		s.settle = gween.New(float32(vx), 0, float32(s.Settle.Seconds()), ease.OutQuad)
	}
}

// SettleVelocity advances the settle easing by dt and returns the eased vx.
func (s *SlideData) SettleVelocity(dt time.Duration) float64 {
	if s.settle == nil {
		return 0
	}
	v, _ := s.settle.Update(float32(dt.Seconds()))
	return float64(v)
}

var Slide = donburi.NewComponentType[SlideData]()
