package assets

import (
	"embed"
	"fmt"
	"image"
	"image/color"

	"github.com/automoto/metroidvania/config"
	"github.com/automoto/metroidvania/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// LevelsDir is the directory inside the embedded assets holding TMX files.
const LevelsDir = "levels"

// LevelFS exposes the embedded levels for leveldata.
func LevelFS() embed.FS {
	return assetFS
}

// LoadLevel loads an embedded level by stem name.
func LoadLevel(name string) (*leveldata.Level, error) {
	level, err := leveldata.Load(assetFS, fmt.Sprintf("%s/%s.tmx", LevelsDir, name))
	if err != nil {
		return nil, fmt.Errorf("assets: %w", err)
	}
	return level, nil
}

type AnimationLoader struct {
	sheet      *ebiten.Image
	frameCache map[int]*ebiten.Image
}

func NewAnimationLoader() *AnimationLoader {
	return &AnimationLoader{
		frameCache: make(map[int]*ebiten.Image),
	}
}

var animationLoader = NewAnimationLoader()

// Sheet returns the player sheet, building it on first use. The sheet is a
// generated placeholder laid out on the configured grid.
func (l *AnimationLoader) Sheet() *ebiten.Image {
	if l.sheet == nil {
		l.sheet = buildPlaceholderSheet(config.PlayerSheet)
	}
	return l.sheet
}

// GetFrame returns a cached sub-image for a sheet index.
func (l *AnimationLoader) GetFrame(index int) *ebiten.Image {
	if img, ok := l.frameCache[index]; ok {
		return img
	}
	sheet := config.PlayerSheet
	col := index % sheet.Columns
	row := index / sheet.Columns
	rect := image.Rect(
		col*sheet.FrameWidth, row*sheet.FrameHeight,
		(col+1)*sheet.FrameWidth, (row+1)*sheet.FrameHeight,
	)
	frame := l.Sheet().SubImage(rect).(*ebiten.Image)
	l.frameCache[index] = frame
	return frame
}

func GetFrame(index int) *ebiten.Image {
	return animationLoader.GetFrame(index)
}

// buildPlaceholderSheet draws one silhouette per cell. The shade walks across
// the sheet so consecutive frames are distinguishable while animating.
func buildPlaceholderSheet(s config.SpriteSheetConfig) *ebiten.Image {
	img := ebiten.NewImage(s.Columns*s.FrameWidth, s.Rows*s.FrameHeight)
	total := s.Columns * s.Rows
	for i := 0; i < total; i++ {
		x := float32((i % s.Columns) * s.FrameWidth)
		y := float32((i / s.Columns) * s.FrameHeight)
		shade := uint8(120 + (i*135)/total)
		body := color.RGBA{R: shade / 2, G: shade, B: 255 - shade/2, A: 255}

		fw, fh := float32(s.FrameWidth), float32(s.FrameHeight)
		vector.FillRect(img, x+fw*0.3, y+fh*0.15, fw*0.4, fh*0.85, body, false)
		// Head and a stride marker so walking frames visibly cycle
		vector.FillRect(img, x+fw*0.35, y, fw*0.3, fh*0.2, body, false)
		stride := float32(i%4) * fw * 0.08
		vector.FillRect(img, x+fw*0.3+stride, y+fh*0.9, fw*0.12, fh*0.1, color.White, false)
	}
	return img
}
