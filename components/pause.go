package components

import "github.com/yohamta/donburi"

// PauseData freezes the simulation pipeline. Input polling and drawing go on
// while paused.
type PauseData struct {
	IsPaused bool
	held     bool
}

// Toggle flips the pause on the press edge of pressed and reports whether it
// flipped.
func (p *PauseData) Toggle(pressed bool) bool {
	edge := pressed && !p.held
	p.held = pressed
	if edge {
		p.IsPaused = !p.IsPaused
	}
	return edge
}

var Pause = donburi.NewComponentType[PauseData]()
