package components

import (
	"time"

	"github.com/automoto/metroidvania/config"
	"github.com/yohamta/donburi"
)

type AttackStage int

const (
	AttackDormant AttackStage = iota
	AttackWindup
	AttackActive
	AttackSettle
	AttackStageCount
)

func (s AttackStage) String() string {
	switch s {
	case AttackDormant:
		return "dormant"
	case AttackWindup:
		return "windup"
	case AttackActive:
		return "active"
	case AttackSettle:
		return "settle"
	}
	return "invalid"
}

// AttackState is the Dormant, Windup, Active, Settle cycle shared by the
// slash and the shot.
type AttackState struct {
	stage AttackStage
	Timer StageTimer
	hitLatch
	activation uint64

	Windup       time.Duration
	Active       time.Duration
	Settle       time.Duration
	BufferWindow time.Duration
}

func (a *AttackState) Tune(c config.AttackConfig) {
	a.Windup = c.Windup
	a.Active = c.Active
	a.Settle = c.Settle
	a.BufferWindow = c.BufferWindow
}

func (a *AttackState) Stage() AttackStage { return a.stage }

// Activation counts entries into Active. Projectiles carry it so a late hit
// cannot land on a newer activation.
func (a *AttackState) Activation() uint64 { return a.activation }

// SetStage resets the timer to the stage's length. Entering Active starts a
// new activation with a fresh hit latch.
func (a *AttackState) SetStage(s AttackStage) {
	a.stage = s
	switch s {
	case AttackDormant:
		a.Timer.Reset(0)
	case AttackWindup:
		a.Timer.Reset(a.Windup)
	case AttackActive:
		a.Timer.Reset(a.Active)
		a.hitLatch.reset()
		a.activation++
	case AttackSettle:
		a.Timer.Reset(a.Settle)
	}
}

// SlashData is the melee slash. Its sensors exist only while Active.
type SlashData struct {
	AttackState
	sensors []donburi.Entity
}

func NewSlash(c config.AttackConfig) SlashData {
	s := SlashData{}
	s.Tune(c)
	return s
}

func (s *SlashData) Sensors() []donburi.Entity { return s.sensors }

func (s *SlashData) SetSensors(es []donburi.Entity) { s.sensors = es }

// TakeSensors hands back the sensors for despawning.
func (s *SlashData) TakeSensors() []donburi.Entity {
	es := s.sensors
	s.sensors = nil
	return es
}

var Slash = donburi.NewComponentType[SlashData]()

// ShotData is the ranged shot. Entering Active fires one projectile.
type ShotData struct {
	AttackState
	ProjectileSpeed float64
	ProjectileSize  float64
}

func NewShot(c config.ShotConfig) ShotData {
	s := ShotData{}
	s.TuneShot(c)
	return s
}

func (s *ShotData) TuneShot(c config.ShotConfig) {
	s.Tune(c.AttackConfig)
	s.ProjectileSpeed = c.ProjectileSpeed
	s.ProjectileSize = c.ProjectileSize
}

var Shot = donburi.NewComponentType[ShotData]()
