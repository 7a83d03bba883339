package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// TransformData is an entity's centre in screen space (y down).
type TransformData struct {
	X, Y float64
}

var Transform = donburi.NewComponentType[TransformData]()

// VelocityData is in px/s with y pointing up.
type VelocityData struct {
	X, Y float64
}

var Velocity = donburi.NewComponentType[VelocityData]()

// GravityData marks an entity as affected by gravity.
type GravityData struct {
	Acceleration float64 // px/s², pulls toward -y
	MaxFall      float64
}

var Gravity = donburi.NewComponentType[GravityData]()

// BodyData is the player's physical footprint and its active solid collider.
// Collider is swapped by the crouch system, never edited in place.
type BodyData struct {
	Width    float64
	Height   float64
	Collider donburi.Entity
}

var Body = donburi.NewComponentType[BodyData]()

// GroundedData is recomputed every tick by the ground system. Nothing else
// writes it.
type GroundedData struct {
	OnGround bool
	Surface  *resolv.Object
}

var Grounded = donburi.NewComponentType[GroundedData]()

// FacingData is ±1.
type FacingData struct {
	dir float64
}

func NewFacing(dir float64) FacingData {
	if dir < 0 {
		return FacingData{dir: -1}
	}
	return FacingData{dir: 1}
}

func (f *FacingData) Get() float64 {
	if f.dir == 0 {
		return 1
	}
	return f.dir
}

// Set keeps the previous facing when dir is zero.
func (f *FacingData) Set(dir float64) {
	switch {
	case dir > 0:
		f.dir = 1
	case dir < 0:
		f.dir = -1
	}
}

var Facing = donburi.NewComponentType[FacingData]()
