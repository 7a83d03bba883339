package components

import "github.com/yohamta/donburi"

type CrouchStage int

const (
	CrouchStanding CrouchStage = iota
	CrouchCrouching
	CrouchStageCount
)

func (s CrouchStage) String() string {
	switch s {
	case CrouchStanding:
		return "standing"
	case CrouchCrouching:
		return "crouching"
	}
	return "invalid"
}

// CrouchData is either Standing or Crouching with the stashed standing
// collider. The handle only exists while crouching.
type CrouchData struct {
	stage  CrouchStage
	Timer  StageTimer
	stored donburi.Entity
}

func (c *CrouchData) Stage() CrouchStage { return c.stage }

func (c *CrouchData) Crouching() bool { return c.stage == CrouchCrouching }

// StoredCollider returns the stashed standing collider while crouching.
func (c *CrouchData) StoredCollider() (donburi.Entity, bool) {
	if c.stage != CrouchCrouching {
		return donburi.Null, false
	}
	return c.stored, true
}

// Crouch enters Crouching and takes ownership of the standing collider.
func (c *CrouchData) Crouch(standing donburi.Entity) {
	c.stage = CrouchCrouching
	c.stored = standing
	c.Timer.Reset(0)
}

// Stand leaves Crouching and hands back the standing collider.
func (c *CrouchData) Stand() (donburi.Entity, bool) {
	if c.stage != CrouchCrouching {
		return donburi.Null, false
	}
	stored := c.stored
	c.stage = CrouchStanding
	c.stored = donburi.Null
	c.Timer.Reset(0)
	return stored, true
}

var Crouch = donburi.NewComponentType[CrouchData]()
