package components

import (
	"time"

	"github.com/automoto/metroidvania/config"
	"github.com/yohamta/donburi"
)

type JumpStage int

const (
	JumpDormant JumpStage = iota
	JumpActive
	JumpStageCount
)

func (s JumpStage) String() string {
	switch s {
	case JumpDormant:
		return "dormant"
	case JumpActive:
		return "active"
	}
	return "invalid"
}

// JumpData is the jump and its single air-jump budget.
type JumpData struct {
	stage        JumpStage
	Timer        StageTimer
	hasAirJumped bool

	Force        float64
	BufferWindow time.Duration
}

func NewJump(c config.JumpConfig) JumpData {
	j := JumpData{}
	j.Tune(c)
	return j
}

func (j *JumpData) Tune(c config.JumpConfig) {
	j.Force = c.Force
	j.BufferWindow = c.BufferWindow
}

func (j *JumpData) Stage() JumpStage { return j.stage }

// HasAirJumped reports whether the air-jump has been spent since the last
// grounded tick.
func (j *JumpData) HasAirJumped() bool { return j.hasAirJumped }

func (j *JumpData) SetStage(s JumpStage) {
	j.stage = s
	j.Timer.Reset(0)
}

// Trigger starts a jump. Jumping while airborne spends the air-jump.
func (j *JumpData) Trigger(grounded bool) {
	j.SetStage(JumpActive)
	j.hasAirJumped = !grounded
}

// Retrigger restarts the jump with a fresh budget.
func (j *JumpData) Retrigger() {
	j.SetStage(JumpActive)
	j.hasAirJumped = false
}

// ResetBudget makes the air-jump available again.
func (j *JumpData) ResetBudget() {
	j.hasAirJumped = false
}

var Jump = donburi.NewComponentType[JumpData]()
