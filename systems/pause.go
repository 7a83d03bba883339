package systems

import (
	"log"

	"github.com/automoto/metroidvania/components"
	cfg "github.com/automoto/metroidvania/config"
	"github.com/automoto/metroidvania/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause toggles the pause on the pause button.
// This system should run AFTER UpdateInput but BEFORE the simulation.
func UpdatePause(ecs *ecs.ECS) {
	entry, ok := components.Pause.First(ecs.World)
	if !ok {
		return
	}
	raw, ok := rawInputOf(ecs.World)
	if !ok {
		skip("pause", reasonNoInput)
		return
	}
	pause := components.Pause.Get(entry)
	if pause.Toggle(raw.Pause) {
		log.Printf("Simulation paused: %t", pause.IsPaused)
	}
}

// Paused reports whether the world's simulation is paused.
func Paused(w donburi.World) bool {
	entry, ok := components.Pause.First(w)
	return ok && components.Pause.Get(entry).IsPaused
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if Paused(e.World) {
			return
		}
		system(e)
	}
}

// DrawPause dims the frame while paused.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	if !Paused(ecs.World) {
		return
	}
	width := screen.Bounds().Dx()
	height := screen.Bounds().Dy()
	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.ColorPauseOverlay, false)

	label := "PAUSED"
	// Approximate width for the 14pt face
	x := (width - len(label)*9) / 2
	text.Draw(screen, label, fonts.Regular.Get(), x, height/2, cfg.ColorText)
}
