package systems

import (
	"image/color"

	"github.com/automoto/metroidvania/components"
	cfg "github.com/automoto/metroidvania/config"
	"github.com/automoto/metroidvania/shared/collision"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawColliders outlines every object in the collision space, coloured by
// its collision group. Inactive objects are skipped.
func DrawColliders(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.DrawColliders {
		return
	}
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	for _, obj := range components.Space.Get(spaceEntry).Objects() {
		g := collision.MembershipOf(obj)
		if g == collision.None {
			continue
		}
		c := cfg.ColorCollider
		switch {
		case g&collision.Environment != 0:
			vector.FillRect(screen, float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H), cfg.ColorEnvironment, false)
			continue
		case g&collision.Hitbox != 0:
			c = cfg.ColorHitbox
		case g&collision.Hurtbox != 0:
			c = cfg.ColorHurtbox
		}
		strokeRect(screen, collision.RectOf(obj), c)
	}
}

// DrawProbes shows the shape queries made this tick.
func DrawProbes(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.DrawProbes {
		return
	}
	entry, ok := components.DebugProbes.First(ecs.World)
	if !ok {
		return
	}
	for _, p := range components.DebugProbes.Get(entry).Probes {
		c := cfg.ColorProbe
		if p.Hit {
			c = cfg.ColorProbeHit
		}
		strokeRect(screen, collision.Rect{X: p.X, Y: p.Y, W: p.W, H: p.H}, c)
	}
}

func strokeRect(screen *ebiten.Image, r collision.Rect, c color.Color) {
	x, y, w, h := float32(r.X), float32(r.Y), float32(r.W), float32(r.H)
	vector.FillRect(screen, x, y, w, 1, c, false)     // Top
	vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
	vector.FillRect(screen, x, y, 1, h, c, false)     // Left
	vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
}
