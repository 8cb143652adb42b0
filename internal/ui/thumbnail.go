package ui

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Thumbnail sizing
const (
	SelectionStrokeWidth float32 = 3
)

// Thumbnail shows one decoded image at its layout size and reports taps
type Thumbnail struct {
	widget.BaseWidget

	index int
	size  fyne.Size

	image    *canvas.Image
	outline  *canvas.Rectangle
	selected bool

	onTapped       func(index int)
	onDoubleTapped func(index int)
}

// NewThumbnail creates a thumbnail for the registry item at index
func NewThumbnail(index int, img image.Image, width, height int) *Thumbnail {
	t := &Thumbnail{
		index: index,
		size:  fyne.NewSize(float32(width), float32(height)),
	}

	t.image = canvas.NewImageFromImage(img)
	t.image.FillMode = canvas.ImageFillStretch
	t.image.ScaleMode = canvas.ImageScaleFastest

	t.outline = canvas.NewRectangle(color.Transparent)
	t.outline.StrokeColor = theme.Color(theme.ColorNamePrimary)
	t.outline.StrokeWidth = SelectionStrokeWidth
	t.outline.Hide()

	t.ExtendBaseWidget(t)
	return t
}

// SetCallbacks sets tap handlers
func (t *Thumbnail) SetCallbacks(onTapped, onDoubleTapped func(index int)) {
	t.onTapped = onTapped
	t.onDoubleTapped = onDoubleTapped
}

// Index returns the registry index this thumbnail renders
func (t *Thumbnail) Index() int {
	return t.index
}

// Selected reports whether the selection outline is shown
func (t *Thumbnail) Selected() bool {
	return t.selected
}

// SetSelected shows or hides the selection outline
func (t *Thumbnail) SetSelected(selected bool) {
	if t.selected == selected {
		return
	}
	t.selected = selected
	if selected {
		t.outline.Show()
	} else {
		t.outline.Hide()
	}
	t.outline.Refresh()
}

// MinSize returns the layout size of the image
func (t *Thumbnail) MinSize() fyne.Size {
	return t.size
}

// Tapped toggles selection through the click handler
func (t *Thumbnail) Tapped(*fyne.PointEvent) {
	if t.onTapped != nil {
		t.onTapped(t.index)
	}
}

// DoubleTapped opens the enlarged view through the double click handler
func (t *Thumbnail) DoubleTapped(*fyne.PointEvent) {
	if t.onDoubleTapped != nil {
		t.onDoubleTapped(t.index)
	}
}

// CreateRenderer implements fyne.Widget
func (t *Thumbnail) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewStack(t.image, t.outline))
}
