package components

import (
	"fmt"

	"eridian-chronometer/internal/eridian"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

const DescriptionTitle = "Eridian Time System"

// DescriptionText explains the clock and lists the glyph alphabet.
func DescriptionText() string {
	return fmt.Sprintf("An alien world, Erid, where life evolved with %d fingers.\n"+
		"Hence, Eridians use base-%d math for time and numbers.\n\n"+
		"This clock converts Earth (base-10) time live into\n"+
		"Eridian base-%d time using symbols:\n\n"+
		"%s.\n\n"+
		"Left: Earth time | Right: Eridian time",
		eridian.Base, eridian.Base, eridian.Base, eridian.Legend())
}

type DescriptionPanel struct {
	container fyne.CanvasObject
	body      *widget.Label
}

func NewDescriptionPanel() *DescriptionPanel {
	title := newText(DescriptionTitle, HeadingTextSize, true, HeadingColor)

	body := widget.NewLabel(DescriptionText())
	body.Wrapping = fyne.TextWrapWord

	return &DescriptionPanel{
		container: container.NewVBox(
			title,
			layout.NewSpacer(),
			body,
			layout.NewSpacer(),
		),
		body: body,
	}
}

func (d *DescriptionPanel) GetContainer() fyne.CanvasObject {
	return d.container
}

func (d *DescriptionPanel) Text() string {
	return d.body.Text
}
