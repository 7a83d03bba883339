package animations

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Animation plays an inclusive frame range at a fixed rate, looping.
type Animation struct {
	First  int
	Last   int
	FPS    float32
	tween  *gween.Tween
	frame  int
	Looped bool
}

func (a *Animation) Update(dt float32) {
	if a.tween == nil {
		return
	}
	v, done := a.tween.Update(dt)
	a.frame = a.First + int(v)
	if a.frame > a.Last {
		a.frame = a.Last
	}
	if done {
		a.Looped = true
		a.frame = a.First
		a.tween.Reset()
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

func (a *Animation) Restart() {
	a.frame = a.First
	a.Looped = false
	if a.tween != nil {
		a.tween.Reset()
	}
}

// NewAnimation tweens a frame offset linearly across the range; one full
// pass takes frames/fps seconds.
func NewAnimation(first, last int, fps float32) *Animation {
	a := &Animation{
		First: first,
		Last:  last,
		FPS:   fps,
		frame: first,
	}
	if fps > 0 {
		frames := float32(last - first + 1)
		a.tween = gween.New(0, frames, frames/fps, ease.Linear)
	}
	return a
}
