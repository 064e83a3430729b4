package layout

import (
	"fyne.io/fyne/v2"
)

// FixedColumnLayout maintains consistent column widths regardless of content changes.
// A column width of 0 takes whatever space the fixed columns leave.
type FixedColumnLayout struct {
	columnWidths []float32
	padding      float32
}

func NewFixedColumnLayout(columnWidths []float32, padding float32) *FixedColumnLayout {
	return &FixedColumnLayout{
		columnWidths: columnWidths,
		padding:      padding,
	}
}

func (fcl *FixedColumnLayout) Layout(objects []fyne.CanvasObject, containerSize fyne.Size) {
	if len(objects) == 0 {
		return
	}

	fixed := float32(0)
	flexible := 0
	for _, w := range fcl.columnWidths {
		if w == 0 {
			flexible++
		}
		fixed += w
	}

	flexWidth := float32(0)
	if flexible > 0 && containerSize.Width > fixed {
		flexWidth = (containerSize.Width - fixed) / float32(flexible)
	}

	x := float32(0)
	for i, obj := range objects {
		if i >= len(fcl.columnWidths) {
			obj.Hide()
			continue
		}

		width := fcl.columnWidths[i]
		if width == 0 {
			width = flexWidth
		}
		obj.Resize(fyne.NewSize(max(width-fcl.padding, 0), containerSize.Height))
		obj.Move(fyne.NewPos(x, 0))
		x += width
	}
}

func (fcl *FixedColumnLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	totalWidth := float32(0)
	maxHeight := float32(0)

	for i, width := range fcl.columnWidths {
		totalWidth += width

		if i < len(objects) {
			objMin := objects[i].MinSize()
			if objMin.Height > maxHeight {
				maxHeight = objMin.Height
			}
		}
	}

	return fyne.NewSize(totalWidth, maxHeight)
}
