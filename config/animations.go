package config

// AnimationID names a sprite range the interpreter can select
type AnimationID int

const (
	AnimIdle AnimationID = iota
	AnimWalk
	AnimSlowingHard
	AnimSlowingGentle
	AnimationCount
)

func (id AnimationID) String() string {
	switch id {
	case AnimIdle:
		return "idle"
	case AnimWalk:
		return "walk"
	case AnimSlowingHard:
		return "slowing_hard"
	case AnimSlowingGentle:
		return "slowing_gentle"
	}
	return "unknown"
}

// AnimationDef is an inclusive frame range on a sheet and its playback rate
type AnimationDef struct {
	First int
	Last  int
	FPS   float32
}

// Frames is the number of frames in the range
func (d AnimationDef) Frames() int {
	return d.Last - d.First + 1
}

// SpriteSheetConfig describes a fixed-grid sprite sheet
type SpriteSheetConfig struct {
	Path        string
	FrameWidth  int
	FrameHeight int
	Columns     int
	Rows        int
}

// PlayerSheet is the demo player's sheet layout
var PlayerSheet = SpriteSheetConfig{
	Path:        "images/player/demo_player_sheet.png",
	FrameWidth:  96,
	FrameHeight: 84,
	Columns:     6,
	Rows:        5,
}

// PlayerAnimations maps each animation to its range on PlayerSheet.
// The slowing poses are single frames.
var PlayerAnimations = map[AnimationID]AnimationDef{
	AnimIdle:          {First: 6, Last: 12, FPS: 15},
	AnimWalk:          {First: 22, Last: 29, FPS: 15},
	AnimSlowingHard:   {First: 13, Last: 13, FPS: 15},
	AnimSlowingGentle: {First: 14, Last: 14, FPS: 15},
}
