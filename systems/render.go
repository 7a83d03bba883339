package systems

import (
	"github.com/automoto/metroidvania/assets"
	"github.com/automoto/metroidvania/components"
	cfg "github.com/automoto/metroidvania/config"
	"github.com/automoto/metroidvania/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// DrawBackground clears the frame.
func DrawBackground(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.ColorBackground)
}

// DrawPlayer renders the player's current sheet frame. The sprite is
// anchored at bottom-center so feet line up with the body, and squashed to
// half height while crouching.
func DrawPlayer(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		frame := components.Animation.Get(e).Frame()
		if frame < 0 {
			return
		}
		img := assets.GetFrame(frame)
		t := components.Transform.Get(e)
		body := components.Body.Get(e)
		sheet := cfg.PlayerSheet

		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Translate(-float64(sheet.FrameWidth)/2, -float64(sheet.FrameHeight))
		if components.Crouch.Get(e).Crouching() {
			drawOp.GeoM.Scale(1, 0.5)
		}
		// Flip the sprite if facing left.
		if components.Facing.Get(e).Get() < 0 {
			drawOp.GeoM.Scale(-1, 1)
		}
		drawOp.GeoM.Translate(t.X, t.Y+body.Height/2)
		screen.DrawImage(img, drawOp)
	})
}
