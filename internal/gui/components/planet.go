package components

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

// PlanetPanel shows a planet over a two-layer radial glow with a captioned
// time readout underneath.
type PlanetPanel struct {
	container fyne.CanvasObject
	image     *canvas.Image
	caption   *canvas.Text
	timeText  *canvas.Text
}

func NewPlanetPanel(caption, initial string, img image.Image, glow GlowColors, imageSize float32) *PlanetPanel {
	panel := &PlanetPanel{}
	panel.createComponents(caption, initial, img, imageSize)
	panel.setupLayout(glow)
	return panel
}

func (p *PlanetPanel) createComponents(caption, initial string, img image.Image, imageSize float32) {
	p.image = canvas.NewImageFromImage(img)
	p.image.FillMode = canvas.ImageFillContain
	p.image.ScaleMode = canvas.ImageScaleSmooth
	p.image.SetMinSize(fyne.NewSize(imageSize, imageSize))

	p.caption = newText(caption, CaptionTextSize, true, TextColor)
	p.timeText = newText(initial, TimeTextSize, true, TextColor)
}

func (p *PlanetPanel) setupLayout(glow GlowColors) {
	outer := canvas.NewRadialGradient(glow.Outer, transparent)
	inner := canvas.NewRadialGradient(glow.Inner, transparent)

	halo := container.NewStack(
		container.NewGridWrap(fyne.NewSize(GlowSize+40, GlowSize+40), outer),
		container.NewCenter(container.NewGridWrap(fyne.NewSize(GlowSize, GlowSize), inner)),
		container.NewCenter(p.image),
	)

	readout := container.NewHBox(p.caption, p.timeText)

	p.container = container.NewBorder(
		nil,
		container.NewCenter(readout),
		nil, nil,
		container.NewCenter(halo),
	)
}

func (p *PlanetPanel) GetContainer() fyne.CanvasObject {
	return p.container
}

func (p *PlanetPanel) SetTime(text string) {
	if p.timeText.Text == text {
		return
	}
	p.timeText.Text = text
	p.timeText.Refresh()
}

func (p *PlanetPanel) TimeText() string {
	return p.timeText.Text
}

func newText(text string, size float32, bold bool, c color.Color) *canvas.Text {
	t := canvas.NewText(text, c)
	t.TextSize = size
	t.TextStyle.Bold = bold
	return t
}
