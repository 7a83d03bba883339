package config

import (
	"image/color"
	"time"
)

// PlayerConfig contains the player's physical footprint and input history size
type PlayerConfig struct {
	// Standing body, in pixels
	Width  float64
	Height float64

	// Spawn point used when the level has no spawn object
	SpawnX float64
	SpawnY float64

	// Number of meaningful input transitions kept in history
	BufferCapacity int

	// Hurtbox inset from the body on each side
	HurtboxInset float64
}

// PhysicsConfig contains world integration values
type PhysicsConfig struct {
	Gravity      float64 // px/s² applied downward
	MaxFallSpeed float64 // px/s
	CellSize     int     // resolv space cell size
}

// WalkConfig tunes horizontal movement
type WalkConfig struct {
	SlowingFactor      float64 `yaml:"slowing_factor"`
	MaxSpeed           float64 `yaml:"max_speed"`
	AccelerationFactor float64 `yaml:"acceleration_factor"`
	// Fraction of MaxSpeed above which slowing counts as "hard"
	HardSlowingRatio float64 `yaml:"hard_slowing_ratio"`
}

// JumpConfig tunes the jump and air-jump
type JumpConfig struct {
	Force        float64       `yaml:"force"`
	BufferWindow time.Duration `yaml:"buffer_window"`
}

// KickConfig tunes the air-dive kick
type KickConfig struct {
	Speed float64 `yaml:"speed"`
	// Horizontal boost multiplier applied on trigger
	HorizontalBoost float64 `yaml:"horizontal_boost"`
}

// SlideConfig tunes the crouch slide
type SlideConfig struct {
	Speed      float64       `yaml:"speed"`
	Accelerate time.Duration `yaml:"accelerate"`
	Settle     time.Duration `yaml:"settle"`
}

// AttackConfig holds the stage lengths of a windup/active/settle attack
type AttackConfig struct {
	Windup time.Duration `yaml:"windup"`
	Active time.Duration `yaml:"active"`
	Settle time.Duration `yaml:"settle"`
	// How long a press stays usable as a trigger
	BufferWindow time.Duration `yaml:"buffer_window"`
}

// ShotConfig tunes the ranged shot
type ShotConfig struct {
	AttackConfig    `yaml:",inline"`
	ProjectileSpeed float64 `yaml:"projectile_speed"`
	ProjectileSize  float64 `yaml:"projectile_size"`
}

// BehaviorConfig is the hot-reloadable behavior tuning
type BehaviorConfig struct {
	Walk  WalkConfig   `yaml:"walk"`
	Jump  JumpConfig   `yaml:"jump"`
	Kick  KickConfig   `yaml:"kick"`
	Slide SlideConfig  `yaml:"slide"`
	Slash AttackConfig `yaml:"slash"`
	Shot  ShotConfig   `yaml:"shot"`
}

// WindowConfig contains the demo window settings
type WindowConfig struct {
	Width  int
	Height int
	Title  string
	TPS    int
	// Selectable tick rates in the debug panel
	TPSOptions []int
	// Selectable time scales in the debug panel
	TimeScales []float64
}

// DebugConfig toggles debug drawing
type DebugConfig struct {
	DrawColliders bool
	DrawProbes    bool
	ShowPanel     bool
}

// Global configuration instances
var Player PlayerConfig
var Physics PhysicsConfig
var Window WindowConfig
var Debug DebugConfig

// Debug draw colours
var (
	ColorCollider     = color.RGBA{R: 60, G: 200, B: 90, A: 255}
	ColorEnvironment  = color.RGBA{R: 90, G: 90, B: 110, A: 255}
	ColorHitbox       = color.RGBA{R: 230, G: 60, B: 60, A: 160}
	ColorHurtbox      = color.RGBA{R: 240, G: 200, B: 40, A: 160}
	ColorProbe        = color.RGBA{R: 80, G: 160, B: 255, A: 120}
	ColorProbeHit     = color.RGBA{R: 255, G: 80, B: 220, A: 160}
	ColorBackground   = color.RGBA{R: 20, G: 20, B: 28, A: 255}
	ColorPauseOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 150}
	ColorText         = color.White
)

// Direction constants for facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

// DefaultBehaviors returns the built-in tuning. The embedded tuning file is
// decoded on top of it, so fields missing from YAML keep these values.
func DefaultBehaviors() BehaviorConfig {
	return BehaviorConfig{
		Walk: WalkConfig{
			SlowingFactor:      4.3,
			MaxSpeed:           300,
			AccelerationFactor: 3,
			HardSlowingRatio:   0.15,
		},
		Jump: JumpConfig{
			Force:        500,
			BufferWindow: 200 * time.Millisecond,
		},
		Kick: KickConfig{
			Speed:           2200,
			HorizontalBoost: 1.1,
		},
		Slide: SlideConfig{
			Speed:      500,
			Accelerate: 150 * time.Millisecond,
			Settle:     350 * time.Millisecond,
		},
		Slash: AttackConfig{
			Windup:       100 * time.Millisecond,
			Active:       300 * time.Millisecond,
			Settle:       100 * time.Millisecond,
			BufferWindow: 200 * time.Millisecond,
		},
		Shot: ShotConfig{
			AttackConfig: AttackConfig{
				Windup:       100 * time.Millisecond,
				Active:       250 * time.Millisecond,
				Settle:       150 * time.Millisecond,
				BufferWindow: 200 * time.Millisecond,
			},
			ProjectileSpeed: 500,
			ProjectileSize:  15,
		},
	}
}

func init() {
	Player = PlayerConfig{
		Width:          50,
		Height:         100,
		SpawnX:         160,
		SpawnY:         200,
		BufferCapacity: 32,
		HurtboxInset:   4,
	}

	Physics = PhysicsConfig{
		Gravity:      1000,
		MaxFallSpeed: 1500,
		CellSize:     16,
	}

	Window = WindowConfig{
		Width:      1280,
		Height:     720,
		Title:      "metroidvania",
		TPS:        60,
		TPSOptions: []int{15, 30, 60, 120, 240},
		TimeScales: []float64{0.25, 0.5, 1},
	}

	Debug = DebugConfig{
		DrawColliders: true,
		DrawProbes:    true,
		ShowPanel:     true,
	}

	SetBehaviors(DefaultBehaviors())
}
