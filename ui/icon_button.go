package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// IconButton is a borderless image button without hover feedback. Its size
// is the size of the image.
type IconButton struct {
	widget.BaseWidget
	image    *canvas.Image
	size     fyne.Size
	OnTapped func()
}

// NewIconButton creates a button showing the image file at path
func NewIconButton(path string, size fyne.Size, tapped func()) *IconButton {
	img := canvas.NewImageFromFile(path)
	img.FillMode = canvas.ImageFillContain
	img.SetMinSize(size)

	b := &IconButton{image: img, size: size, OnTapped: tapped}
	b.ExtendBaseWidget(b)
	return b
}

// Tapped implements fyne.Tappable
func (b *IconButton) Tapped(*fyne.PointEvent) {
	if b.OnTapped != nil {
		b.OnTapped()
	}
}

// MinSize is the image size
func (b *IconButton) MinSize() fyne.Size {
	return b.size
}

// CreateRenderer implements fyne.Widget
func (b *IconButton) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(b.image)
}
