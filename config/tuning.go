package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed tuning.yaml
var embeddedTuning []byte

// TuningFile is the default on-disk override looked up by LoadTuning.
const TuningFile = "config/tuning.yaml"

var (
	tuningMu      sync.RWMutex
	behaviors     BehaviorConfig
	tuningVersion uint64
)

// Behaviors returns the live behavior tuning and its version. The version
// changes every time SetBehaviors is called.
func Behaviors() (BehaviorConfig, uint64) {
	tuningMu.RLock()
	defer tuningMu.RUnlock()
	return behaviors, tuningVersion
}

// SetBehaviors replaces the live tuning. Safe to call from the file watcher.
func SetBehaviors(b BehaviorConfig) {
	tuningMu.Lock()
	behaviors = b
	tuningVersion++
	tuningMu.Unlock()
}

// ParseTuning decodes a tuning document over DefaultBehaviors.
func ParseTuning(data []byte) (BehaviorConfig, error) {
	b := DefaultBehaviors()
	if err := yaml.Unmarshal(data, &b); err != nil {
		return BehaviorConfig{}, fmt.Errorf("config: unmarshal tuning: %w", err)
	}
	if err := b.Validate(); err != nil {
		return BehaviorConfig{}, err
	}
	return b, nil
}

// LoadTuning reads path from disk, falling back to the embedded tuning when
// path is empty or does not exist.
func LoadTuning(path string) (BehaviorConfig, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			b, err := ParseTuning(data)
			if err != nil {
				return BehaviorConfig{}, fmt.Errorf("config: %s: %w", path, err)
			}
			return b, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return BehaviorConfig{}, fmt.Errorf("config: read %s: %w", path, err)
		}
	}
	return ParseTuning(embeddedTuning)
}

// Validate rejects tunings the behaviors cannot run with.
func (b BehaviorConfig) Validate() error {
	switch {
	case b.Walk.MaxSpeed <= 0:
		return errors.New("config: walk.max_speed must be positive")
	case b.Walk.SlowingFactor < 0 || b.Walk.AccelerationFactor < 0:
		return errors.New("config: walk factors must not be negative")
	case b.Jump.Force <= 0:
		return errors.New("config: jump.force must be positive")
	case b.Jump.BufferWindow <= 0:
		return errors.New("config: jump.buffer_window must be positive")
	case b.Kick.Speed <= 0:
		return errors.New("config: kick.speed must be positive")
	case b.Slide.Accelerate <= 0 || b.Slide.Settle <= 0:
		return errors.New("config: slide stage lengths must be positive")
	case b.Shot.ProjectileSize <= 0:
		return errors.New("config: shot.projectile_size must be positive")
	}
	if err := b.Slash.validate("slash"); err != nil {
		return err
	}
	return b.Shot.AttackConfig.validate("shot")
}

// validate rejects zero-length stages, which would never finish and keep
// the attack's input block held.
func (a AttackConfig) validate(name string) error {
	switch {
	case a.Windup <= 0:
		return fmt.Errorf("config: %s.windup must be positive", name)
	case a.Active <= 0:
		return fmt.Errorf("config: %s.active must be positive", name)
	case a.Settle <= 0:
		return fmt.Errorf("config: %s.settle must be positive", name)
	case a.BufferWindow <= 0:
		return fmt.Errorf("config: %s.buffer_window must be positive", name)
	}
	return nil
}
