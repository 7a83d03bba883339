package scenes

import (
	"fmt"

	cfg "github.com/automoto/metroidvania/config"
	"github.com/automoto/metroidvania/systems"
	"github.com/automoto/metroidvania/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// SandboxScene is the interactive demo: one level, the player and the debug
// panel.
type SandboxScene struct {
	world *World
	panel *ui.DebugPanel
}

// NewSandboxScene builds the named embedded level with ebiten input polling
// and the pause toggle ahead of the simulation.
func NewSandboxScene(level string) (*SandboxScene, error) {
	world, err := LoadWorld(level, cfg.Window.TPS, systems.UpdateInput, systems.UpdatePause)
	if err != nil {
		return nil, err
	}

	world.ECS.AddRenderer(cfg.Default, systems.DrawBackground)
	world.ECS.AddRenderer(cfg.Default, systems.DrawColliders)
	world.ECS.AddRenderer(cfg.Default, systems.DrawPlayer)
	world.ECS.AddRenderer(cfg.Overlay, systems.DrawProbes)
	world.ECS.AddRenderer(cfg.Overlay, systems.DrawHUD)
	world.ECS.AddRenderer(cfg.Overlay, systems.DrawPause)

	s := &SandboxScene{world: world}
	if cfg.Debug.ShowPanel {
		panel, err := ui.NewDebugPanel(s.setTickRate, world.SetTimeScale)
		if err != nil {
			return nil, fmt.Errorf("building debug panel: %w", err)
		}
		s.panel = panel
	} else {
		world.ECS.AddRenderer(cfg.Overlay, systems.DrawStages)
	}
	return s, nil
}

func (s *SandboxScene) setTickRate(tps int) {
	ebiten.SetTPS(tps)
	s.world.SetTickRate(tps)
}

func (s *SandboxScene) Update() {
	s.world.Step()
	if s.panel != nil {
		s.panel.SetStages(systems.StageReadout(s.world.Player))
		s.panel.Update()
	}
}

func (s *SandboxScene) Draw(screen *ebiten.Image) {
	s.world.ECS.Draw(screen)
	if s.panel != nil {
		s.panel.UI.Draw(screen)
	}
}
