package systems

import "github.com/yohamta/donburi/ecs"

// simulation is the fixed tick order. Earlier behaviors win contested input:
// slide, then kick, then jump, then the attacks.
var simulation = []ecs.System{
	UpdateClock,
	UpdateTuning,
	UpdateInputBuffer,
	UpdateGrounded,
	UpdateFacing,
	UpdateCrouch,
	UpdateWalk,
	UpdateSlide,
	UpdateKick,
	UpdateJump,
	UpdateSlash,
	UpdateShot,
	UpdateProjectiles,
	UpdatePhysics,
	UpdateAnimation,
}

// RegisterSimulation adds the simulation pipeline to e in order. The whole
// pipeline stops while the world is paused.
func RegisterSimulation(e *ecs.ECS) {
	for _, s := range simulation {
		e.AddSystem(WithPauseCheck(s))
	}
}
