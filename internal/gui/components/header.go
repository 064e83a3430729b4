package components

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

func NewHeader(title string) fyne.CanvasObject {
	return container.NewCenter(newText(title, TitleTextSize, true, TitleColor))
}

// NewBackground stretches img over the window, or paints a flat night sky
// when no image is available.
func NewBackground(img image.Image) fyne.CanvasObject {
	if img == nil {
		return canvas.NewRectangle(SpaceColor)
	}
	bg := canvas.NewImageFromImage(img)
	bg.FillMode = canvas.ImageFillStretch
	bg.ScaleMode = canvas.ImageScaleSmooth
	return bg
}
