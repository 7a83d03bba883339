// Package leveldata parses sandbox levels from TMX files. It has no
// dependencies on ebitengine, donburi or resolv; pure data only.
package leveldata

import "errors"

// ErrNoSpawn is returned when a level has no player spawn object.
var ErrNoSpawn = errors.New("leveldata: level has no player spawn")

// Level holds everything the world needs to build a sandbox level.
type Level struct {
	Name      string
	Solids    []Rect
	Spawn     Point
	Enemies   []EnemySpawn
	MapWidth  int
	MapHeight int
}

// Rect is a solid rectangle, top-left origin, in pixels.
type Rect struct {
	X, Y, W, H float64
}

type Point struct {
	X, Y float64
}

// EnemySpawn places a target. X/Y is the bottom centre so targets stand on
// the surface they were placed on.
type EnemySpawn struct {
	Name string
	X, Y float64
	W, H float64
}
