package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Object group names read from the TMX.
const (
	GroupSolids  = "solids"
	GroupSpawn   = "spawn"
	GroupEnemies = "enemies"
)

// Default sizes for point objects in the enemies group.
const (
	defaultEnemyWidth  = 50
	defaultEnemyHeight = 100
)

// Load parses a TMX file. It takes an fs.FS so callers can pass the embedded
// assets or os.DirFS.
func Load(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	level := &Level{
		Name:      strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		MapWidth:  levelMap.Width * levelMap.TileWidth,
		MapHeight: levelMap.Height * levelMap.TileHeight,
	}

	spawned := false
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case GroupSolids:
			for _, o := range og.Objects {
				if o.Width <= 0 || o.Height <= 0 {
					continue
				}
				level.Solids = append(level.Solids, Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			}
		case GroupSpawn:
			if len(og.Objects) == 0 {
				continue
			}
			o := og.Objects[0]
			level.Spawn = Point{X: o.X, Y: o.Y}
			spawned = true
		case GroupEnemies:
			for _, o := range og.Objects {
				w, h := o.Width, o.Height
				if w <= 0 || h <= 0 {
					// Point object: its position is where the feet go.
					w, h = defaultEnemyWidth, defaultEnemyHeight
					level.Enemies = append(level.Enemies, EnemySpawn{Name: o.Name, X: o.X, Y: o.Y, W: w, H: h})
					continue
				}
				level.Enemies = append(level.Enemies, EnemySpawn{
					Name: o.Name,
					X:    o.X + w/2,
					Y:    o.Y + h,
					W:    w,
					H:    h,
				})
			}
		}
	}

	if !spawned {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, ErrNoSpawn)
	}

	// Sort enemies left-to-right for a stable spawn order
	sort.Slice(level.Enemies, func(i, j int) bool {
		return level.Enemies[i].X < level.Enemies[j].X
	})

	return level, nil
}

// LoadAll discovers all .tmx files in dir within fsys and returns them keyed
// by stem name plus a sorted list of names.
func LoadAll(fsys fs.FS, dir string) (map[string]*Level, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	levels := make(map[string]*Level, len(matches))
	names := make([]string, 0, len(matches))
	for _, path := range matches {
		level, err := Load(fsys, path)
		if err != nil {
			return nil, nil, err
		}
		levels[level.Name] = level
		names = append(names, level.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}
