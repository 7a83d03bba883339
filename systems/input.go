package systems

import (
	"math"

	cfg "github.com/automoto/metroidvania/config"
	"github.com/automoto/metroidvania/shared/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// buttonActions maps bound actions onto the buffer's buttons.
var buttonActions = [input.ActionCount]cfg.ActionID{
	input.Jump:      cfg.ActionJump,
	input.Primary:   cfg.ActionPrimary,
	input.Secondary: cfg.ActionSecondary,
	input.Special:   cfg.ActionSpecial,
}

// UpdateInput polls keyboard and gamepads into the RawInput singleton.
// Must run BEFORE the simulation pipeline.
func UpdateInput(ecs *ecs.ECS) {
	raw, ok := rawInputOf(ecs.World)
	if !ok {
		skip("input", reasonNoInput)
		return
	}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	var pressed [cfg.ActionCount]bool
	for actionID, binding := range cfg.Input.Bindings {
		pressed[actionID] = bindingPressed(binding, gamepadIDs)
	}

	for b, action := range buttonActions {
		raw.Buttons[b] = pressed[action]
	}
	raw.Pause = pressed[cfg.ActionPause]

	// Keyboard and d-pad give a digital axis; a stick outside its deadzone
	// replaces it.
	axis := input.Vec{
		X: digitalAxis(pressed[cfg.ActionMoveLeft], pressed[cfg.ActionMoveRight]),
		Y: digitalAxis(pressed[cfg.ActionMoveDown], pressed[cfg.ActionMoveUp]),
	}
	if stick, ok := analogStick(gamepadIDs); ok {
		axis = stick
	}
	raw.Axis = axis.Clamped()
	raw.HasAxis = true
}

func bindingPressed(binding cfg.InputBinding, gamepads []ebiten.GamepadID) bool {
	for _, key := range binding.Keys {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		for _, btn := range binding.StandardGamepadButtons {
			if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
				return true
			}
		}
	}
	return false
}

func digitalAxis(negative, positive bool) float64 {
	var v float64
	if negative {
		v--
	}
	if positive {
		v++
	}
	return v
}

// analogStick reads the first left stick pushed past the deadzone. Stick y
// points down and is flipped.
func analogStick(gamepads []ebiten.GamepadID) (input.Vec, bool) {
	deadzone := cfg.Input.AnalogDeadzone
	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		if math.Hypot(horizontal, vertical) > deadzone {
			return input.Vec{X: horizontal, Y: -vertical}, true
		}
	}
	return input.Vec{}, false
}
