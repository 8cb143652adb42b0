package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"github.com/ytget/photo-viewer/internal/gallery"
	"github.com/ytget/photo-viewer/internal/model"
)

// GalleryView is the Fyne rendering surface for the layout controller. Item
// handles are indices into the images set with SetImages.
type GalleryView struct {
	images []model.DecodedImage
	thumbs map[int]*Thumbnail

	content       *fyne.Container
	contentLayout *contentLayout
	scroll        *container.Scroll
	root          *fyne.Container

	onResize       func(width, height int)
	onTapped       func(index int)
	onDoubleTapped func(index int)
}

// NewGalleryView creates an empty scrollable gallery
func NewGalleryView() *GalleryView {
	gv := &GalleryView{
		thumbs:        make(map[int]*Thumbnail),
		contentLayout: &contentLayout{},
	}

	gv.content = container.New(gv.contentLayout)
	gv.scroll = container.NewVScroll(gv.content)
	gv.root = container.New(&viewportLayout{view: gv}, gv.scroll)
	return gv
}

// Container returns the object to put into the window
func (gv *GalleryView) Container() fyne.CanvasObject {
	return gv.root
}

// SetResizeCallback sets the handler for viewport size changes
func (gv *GalleryView) SetResizeCallback(onResize func(width, height int)) {
	gv.onResize = onResize
}

// SetCallbacks sets the handlers thumbnails report clicks to
func (gv *GalleryView) SetCallbacks(onTapped, onDoubleTapped func(index int)) {
	gv.onTapped = onTapped
	gv.onDoubleTapped = onDoubleTapped
}

// SetImages replaces the images handles refer to. Call Clear or reload the
// controller right after.
func (gv *GalleryView) SetImages(images []model.DecodedImage) {
	gv.images = images
}

// Thumbnail returns the widget for handle, if it was placed
func (gv *GalleryView) Thumbnail(handle int) (*Thumbnail, bool) {
	t, ok := gv.thumbs[handle]
	return t, ok
}

// ScrollToTop resets the scroll offset
func (gv *GalleryView) ScrollToTop() {
	gv.scroll.ScrollToTop()
}

// Place creates the thumbnail for handle and puts it at x, y
func (gv *GalleryView) Place(handle, x, y int) {
	if handle < 0 || handle >= len(gv.images) {
		log.Printf("Place called with unknown handle %d", handle)
		return
	}

	img := gv.images[handle]
	thumb := NewThumbnail(handle, img.Image, img.Width, img.Height)
	thumb.SetCallbacks(gv.tapped, gv.doubleTapped)
	thumb.Resize(thumb.MinSize())
	thumb.Move(fyne.NewPos(float32(x), float32(y)))

	gv.thumbs[handle] = thumb
	gv.content.Add(thumb)
}

// Move repositions an already placed thumbnail
func (gv *GalleryView) Move(handle, x, y int) {
	thumb, ok := gv.thumbs[handle]
	if !ok {
		log.Printf("Move called for unplaced handle %d", handle)
		return
	}
	thumb.Move(fyne.NewPos(float32(x), float32(y)))
}

// MeasureWidth returns the rendered width of handle
func (gv *GalleryView) MeasureWidth(handle int) int {
	if thumb, ok := gv.thumbs[handle]; ok {
		return int(thumb.MinSize().Width)
	}
	if handle >= 0 && handle < len(gv.images) {
		if w := gv.images[handle].Width; w > 0 {
			return w
		}
		if gv.images[handle].Image != nil {
			return gv.images[handle].Image.Bounds().Dx()
		}
	}
	return 0
}

// SetContainerSize sets the logical size of the scrollable content
func (gv *GalleryView) SetContainerSize(width, height int) {
	gv.contentLayout.size = fyne.NewSize(float32(width), float32(height))
	gv.content.Refresh()
	gv.scroll.Refresh()
}

// Clear removes every thumbnail
func (gv *GalleryView) Clear() {
	gv.content.RemoveAll()
	gv.thumbs = make(map[int]*Thumbnail)
}

// SetSelected updates the selection outline of handle
func (gv *GalleryView) SetSelected(handle int, selected bool) {
	if thumb, ok := gv.thumbs[handle]; ok {
		thumb.SetSelected(selected)
	}
}

func (gv *GalleryView) tapped(index int) {
	if gv.onTapped != nil {
		gv.onTapped(index)
	}
}

func (gv *GalleryView) doubleTapped(index int) {
	if gv.onDoubleTapped != nil {
		gv.onDoubleTapped(index)
	}
}

// viewportSize reports a new viewport size
func (gv *GalleryView) viewportSize(size fyne.Size) {
	if gv.onResize != nil {
		gv.onResize(int(size.Width), int(size.Height))
	}
}

var _ gallery.Surface = (*GalleryView)(nil)

// contentLayout leaves children where the controller put them and reports
// the controller-set content size so the scroll knows its range
type contentLayout struct {
	size fyne.Size
}

func (l *contentLayout) Layout([]fyne.CanvasObject, fyne.Size) {}

func (l *contentLayout) MinSize([]fyne.CanvasObject) fyne.Size {
	return l.size
}

// viewportLayout stretches the scroll over the available space and reports
// every size it is given
type viewportLayout struct {
	view *GalleryView
	last fyne.Size
}

func (l *viewportLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	for _, o := range objects {
		o.Resize(size)
		o.Move(fyne.NewPos(0, 0))
	}
	if size == l.last {
		return
	}
	l.last = size
	l.view.viewportSize(size)
}

func (l *viewportLayout) MinSize([]fyne.CanvasObject) fyne.Size {
	return fyne.NewSize(ViewportMinWidth, ViewportMinHeight)
}
