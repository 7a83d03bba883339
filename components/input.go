package components

import (
	"time"

	"github.com/automoto/metroidvania/shared/input"
	"github.com/yohamta/donburi"
)

// RawInputData is this tick's raw input snapshot. It is filled by the ebiten
// adapter or a replay script and turned into frames by the buffer system.
type RawInputData struct {
	Buttons [input.ActionCount]bool
	// Clamped stick/keyboard axis, y up.
	Axis input.Vec
	// HasAxis is false until a device has reported a direction.
	HasAxis bool
	Pause   bool

	// Bookkeeping owned by the buffer system.
	Previous [input.ActionCount]bool
	HeldFor  [input.ActionCount]time.Duration
}

var RawInput = donburi.NewComponentType[RawInputData]()

// InputBufferData is the player's frame history and block table.
type InputBufferData struct {
	*input.Buffer
}

var InputBuffer = donburi.NewComponentType[InputBufferData]()
