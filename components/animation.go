package components

import (
	"github.com/automoto/metroidvania/assets/animations"
	"github.com/automoto/metroidvania/config"
	"github.com/yohamta/donburi"
)

// AnimationData is the sprite range picked by the animation interpreter.
type AnimationData struct {
	CurrentAnimation *animations.Animation
	Current          config.AnimationID
	Animations       map[config.AnimationID]*animations.Animation
}

func NewAnimationData(defs map[config.AnimationID]config.AnimationDef) AnimationData {
	a := AnimationData{
		Current:    -1,
		Animations: make(map[config.AnimationID]*animations.Animation, len(defs)),
	}
	for id, def := range defs {
		a.Animations[id] = animations.NewAnimation(def.First, def.Last, def.FPS)
	}
	return a
}

// SetAnimation switches to id and restarts it. Selecting the current
// animation again keeps it playing.
func (a *AnimationData) SetAnimation(id config.AnimationID) {
	if a.Current == id && a.CurrentAnimation != nil {
		return
	}
	a.Current = id
	anim, ok := a.Animations[id]
	if !ok {
		a.CurrentAnimation = nil
		return
	}
	a.CurrentAnimation = anim
	anim.Restart()
}

// Frame is the sheet index to draw, or -1 with no animation.
func (a *AnimationData) Frame() int {
	if a.CurrentAnimation == nil {
		return -1
	}
	return a.CurrentAnimation.Frame()
}

var Animation = donburi.NewComponentType[AnimationData]()
