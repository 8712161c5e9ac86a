// Package ui builds the playground's ebitenui control panel.
package ui

import (
	"bytes"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	cfg "github.com/emberforge/cinder/config"
)

// Panel is a button row in the top-right corner: one button per effect
// preset plus a pause toggle.
type Panel struct {
	UI *ebitenui.UI

	// Callbacks into the scene.
	OnPreset func(cfg.Preset)
	OnPause  func()

	face text.Face
}

// NewPanel builds the panel. The callbacks may be invoked from ebitenui's
// event handlers during Update.
func NewPanel(onPreset func(cfg.Preset), onPause func()) *Panel {
	p := &Panel{
		OnPreset: onPreset,
		OnPause:  onPause,
	}
	p.loadFont()
	p.build()
	return p
}

func (p *Panel) loadFont() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}
	p.face = &text.GoTextFace{
		Source: fontSource,
		Size:   13,
	}
}

func (p *Panel) build() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(
			widget.AnchorLayoutOpts.Padding(widget.NewInsetsSimple(8)),
		)),
	)

	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(6),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	for preset := cfg.Preset(0); preset < cfg.PresetCount; preset++ {
		pr := preset // capture for closure
		row.AddChild(p.newButton(pr.String(), func() {
			if p.OnPreset != nil {
				p.OnPreset(pr)
			}
		}))
	}
	row.AddChild(p.newButton("Pause", func() {
		if p.OnPause != nil {
			p.OnPause()
		}
	}))

	rootContainer.AddChild(row)

	p.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (p *Panel) newButton(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(72, 24),
		),
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text(label, &p.face, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
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

	return &widget.ButtonImage{
		Idle:    idle,
		Hover:   hover,
		Pressed: pressed,
	}
}

func (p *Panel) Update() {
	p.UI.Update()
}

func (p *Panel) Draw(screen *ebiten.Image) {
	p.UI.Draw(screen)
}
