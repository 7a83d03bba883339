package systems

import (
	"github.com/automoto/metroidvania/components"
	"github.com/automoto/metroidvania/shared/input"
	"github.com/yohamta/donburi"
)

// attackHooks are the parts of an attack cycle that differ between the
// slash and the shot.
type attackHooks struct {
	name   string
	owner  input.Owner
	button input.Action
	// activate runs on entering Active.
	activate func(e *donburi.Entry)
	// active runs on every Active tick, the entering one included.
	active func(e *donburi.Entry)
	// deactivate runs on leaving Active.
	deactivate func(e *donburi.Entry)
}

// stepAttack advances one Dormant, Windup, Active, Settle cycle. Grounded
// attacks root the player and take every input; airborne ones only take the
// buttons so the player can still drift.
func stepAttack(e *donburi.Entry, a *components.AttackState, clock *components.ClockData, h attackHooks) {
	buf := components.InputBuffer.Get(e).Buffer
	a.Timer.Tick(clock.Delta)

	switch a.Stage() {
	case components.AttackDormant:
		if !inputFresh(buf, clock) {
			return
		}
		if !buf.Query().Contains(h.button.JustPressed()).Within(a.BufferWindow).Consume() {
			return
		}
		if components.Grounded.Get(e).OnGround {
			buf.BlockAll(h.owner)
			components.Velocity.Get(e).X = 0
		} else {
			buf.Block(h.owner, input.NonDirectional())
		}
		a.SetStage(components.AttackWindup)
		recordStage(h.name, a.Stage())

	case components.AttackWindup:
		if !a.Timer.Finished() {
			return
		}
		a.SetStage(components.AttackActive)
		recordStage(h.name, a.Stage())
		if h.activate != nil {
			h.activate(e)
		}
		if h.active != nil {
			h.active(e)
		}

	case components.AttackActive:
		if h.active != nil {
			h.active(e)
		}
		if !a.Timer.Finished() {
			return
		}
		if h.deactivate != nil {
			h.deactivate(e)
		}
		buf.Release(h.owner)
		a.SetStage(components.AttackSettle)
		recordStage(h.name, a.Stage())

	case components.AttackSettle:
		if !a.Timer.Finished() {
			return
		}
		a.SetStage(components.AttackDormant)
		recordStage(h.name, a.Stage())
	}
}
