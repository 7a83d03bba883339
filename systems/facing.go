package systems

import (
	"math"

	"github.com/automoto/metroidvania/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// facingThreshold is the horizontal axis reading needed to turn around.
const facingThreshold = 0.1

// UpdateFacing turns the body toward the held horizontal direction unless
// that direction is blocked.
func UpdateFacing(ecs *ecs.ECS) {
	clock, ok := clockOf(ecs.World)
	if !ok {
		return
	}
	components.Facing.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.InputBuffer) {
			return
		}
		buf := components.InputBuffer.Get(e).Buffer
		if !inputFresh(buf, clock) {
			return
		}
		cur := buf.Current()
		if math.Abs(cur.X()) <= facingThreshold || buf.Blocked(cur.Direction) {
			return
		}
		components.Facing.Get(e).Set(cur.X())
	})
}
