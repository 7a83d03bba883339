package systems

import (
	"fmt"

	"github.com/automoto/metroidvania/components"
	cfg "github.com/automoto/metroidvania/config"
	"github.com/automoto/metroidvania/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudMargin     = 10
	hudLineHeight = 16
)

// DrawHUD prints hit counters above each training dummy.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	face := fonts.Small.Get()
	components.Dummy.Each(ecs.World, func(e *donburi.Entry) {
		d := components.Dummy.Get(e)
		t := components.Transform.Get(e)
		label := fmt.Sprintf("%s: %d", d.Name, d.Hits)
		text.Draw(screen, label, face, int(t.X)-30, int(t.Y)-60, cfg.ColorText)
	})
}

// StageReadout lists the player's behavior stages, one per line.
func StageReadout(e *donburi.Entry) []string {
	vel := components.Velocity.Get(e)
	return []string{
		fmt.Sprintf("walk   %s", components.Walk.Get(e).Stage()),
		fmt.Sprintf("jump   %s", components.Jump.Get(e).Stage()),
		fmt.Sprintf("crouch %s", components.Crouch.Get(e).Stage()),
		fmt.Sprintf("slide  %s", components.Slide.Get(e).Stage()),
		fmt.Sprintf("kick   %s", components.Kick.Get(e).Stage()),
		fmt.Sprintf("slash  %s", components.Slash.Get(e).Stage()),
		fmt.Sprintf("shot   %s", components.Shot.Get(e).Stage()),
		fmt.Sprintf("ground %t", components.Grounded.Get(e).OnGround),
		fmt.Sprintf("vel    %.0f, %.0f", vel.X, vel.Y),
		fmt.Sprintf("mask   %s", components.InputBuffer.Get(e).Mask()),
	}
}

// DrawStages prints the stage readout in the top-left corner.
func DrawStages(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Player.First(ecs.World)
	if !ok {
		return
	}
	face := fonts.Regular.Get()
	for i, line := range StageReadout(entry) {
		text.Draw(screen, line, face, hudMargin, hudMargin+(i+1)*hudLineHeight, cfg.ColorText)
	}
}
