package ui

import (
	"bytes"
	"fmt"
	"image/color"
	"strings"

	cfg "github.com/automoto/metroidvania/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// DebugPanel holds the ebitenui tick-rate and time-scale controls.
type DebugPanel struct {
	UI *ebitenui.UI

	// Callbacks
	OnTickRate  func(tps int)
	OnTimeScale func(scale float64)

	// Widget references for updates
	tpsLabel   *widget.Label
	scaleLabel *widget.Label
	stageLabel *widget.Label

	normalFace text.Face
	smallFace  text.Face
}

// NewDebugPanel builds the panel. The callbacks run on click, inside the
// game's Update.
func NewDebugPanel(onTickRate func(int), onTimeScale func(float64)) (*DebugPanel, error) {
	p := &DebugPanel{
		OnTickRate:  onTickRate,
		OnTimeScale: onTimeScale,
	}
	if err := p.loadFonts(); err != nil {
		return nil, err
	}
	p.buildUI()
	return p, nil
}

func (p *DebugPanel) loadFonts() error {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return fmt.Errorf("loading panel font: %w", err)
	}
	p.normalFace = &text.GoTextFace{Source: fontSource, Size: 12}
	p.smallFace = &text.GoTextFace{Source: fontSource, Size: 10}
	return nil
}

func (p *DebugPanel) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	padding := widget.Insets{Top: 6, Bottom: 6, Left: 8, Right: 8}
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{30, 30, 40, 220})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(4),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	p.tpsLabel = p.label(fmt.Sprintf("Tick rate: %d", cfg.Window.TPS), p.normalFace)
	panel.AddChild(p.tpsLabel)
	tpsRow := p.row()
	for _, tps := range cfg.Window.TPSOptions {
		tps := tps
		tpsRow.AddChild(p.button(fmt.Sprint(tps), func() {
			p.tpsLabel.Label = fmt.Sprintf("Tick rate: %d", tps)
			if p.OnTickRate != nil {
				p.OnTickRate(tps)
			}
		}))
	}
	panel.AddChild(tpsRow)

	p.scaleLabel = p.label("Time scale: 1x", p.normalFace)
	panel.AddChild(p.scaleLabel)
	scaleRow := p.row()
	for _, scale := range cfg.Window.TimeScales {
		scale := scale
		scaleRow.AddChild(p.button(fmt.Sprintf("%gx", scale), func() {
			p.scaleLabel.Label = fmt.Sprintf("Time scale: %gx", scale)
			if p.OnTimeScale != nil {
				p.OnTimeScale(scale)
			}
		}))
	}
	panel.AddChild(scaleRow)

	p.stageLabel = p.label("", p.smallFace)
	panel.AddChild(p.stageLabel)

	rootContainer.AddChild(panel)
	p.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

// SetStages replaces the stage readout.
func (p *DebugPanel) SetStages(lines []string) {
	p.stageLabel.Label = strings.Join(lines, "\n")
}

func (p *DebugPanel) Update() {
	p.UI.Update()
}

func (p *DebugPanel) row() *widget.Container {
	return widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(4),
		)),
	)
}

func (p *DebugPanel) label(s string, face text.Face) *widget.Label {
	return widget.NewLabel(
		widget.LabelOpts.Text(s, &face, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
}

func (p *DebugPanel) button(s string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(36, 18)),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text(s, &p.smallFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{200, 200, 200, 255},
			Hover:   color.RGBA{255, 255, 255, 255},
			Pressed: color.RGBA{150, 150, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}
