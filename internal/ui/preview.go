package ui

import (
	"fmt"
	"log"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/photo-viewer/internal/imageload"
	"github.com/ytget/photo-viewer/internal/model"
)

// Preview shows one gallery image enlarged in a modal popup
type Preview struct {
	window       fyne.Window
	localization *Localization

	paths []string
	index int
	seq   uint64

	popup   *widget.PopUp
	image   *canvas.Image
	title   *widget.Label
	counter *widget.Label
	prevBtn *widget.Button
	nextBtn *widget.Button

	previousKeyHandler func(*fyne.KeyEvent)

	decode   func(path string, maxWidth, maxHeight int) (*model.DecodedImage, error)
	onReveal func(path string)
	onOpen   func(path string)
	onCopy   func(path string)
}

// NewPreview creates a preview bound to window
func NewPreview(window fyne.Window, localization *Localization) *Preview {
	return &Preview{
		window:       window,
		localization: localization,
		decode:       imageload.DecodeFit,
	}
}

// SetCallbacks sets the file actions offered in the preview
func (p *Preview) SetCallbacks(onReveal, onOpen, onCopy func(path string)) {
	p.onReveal = onReveal
	p.onOpen = onOpen
	p.onCopy = onCopy
}

// Visible reports whether the preview popup is shown
func (p *Preview) Visible() bool {
	return p.popup != nil && p.popup.Visible()
}

// Index returns the position of the shown image in the gallery order
func (p *Preview) Index() int {
	return p.index
}

// Path returns the file shown, or "" when nothing was shown yet
func (p *Preview) Path() string {
	if p.index < 0 || p.index >= len(p.paths) {
		return ""
	}
	return p.paths[p.index]
}

// Show opens the preview on paths[index]
func (p *Preview) Show(paths []string, index int) {
	if index < 0 || index >= len(paths) {
		log.Printf("Preview requested for invalid index %d of %d", index, len(paths))
		return
	}

	p.paths = paths
	p.index = index

	if p.popup == nil {
		p.createUI()
	}

	canvasSize := p.window.Canvas().Size()
	size := fyne.NewSize(canvasSize.Width*PreviewScale, canvasSize.Height*PreviewScale)
	p.popup.Resize(size)
	p.popup.Move(fyne.NewPos((canvasSize.Width-size.Width)/2, (canvasSize.Height-size.Height)/2))

	if !p.popup.Visible() {
		p.previousKeyHandler = p.window.Canvas().OnTypedKey()
		p.window.Canvas().SetOnTypedKey(p.onKey)
		p.popup.Show()
	}

	p.load()
}

// Close hides the preview and restores the window key handler
func (p *Preview) Close() {
	if !p.Visible() {
		return
	}
	p.seq++
	p.popup.Hide()
	p.window.Canvas().SetOnTypedKey(p.previousKeyHandler)
	p.previousKeyHandler = nil
}

// Next shows the following image, if any
func (p *Preview) Next() {
	if p.index+1 < len(p.paths) {
		p.index++
		p.load()
	}
}

// Previous shows the preceding image, if any
func (p *Preview) Previous() {
	if p.index > 0 {
		p.index--
		p.load()
	}
}

// createUI builds the popup content
func (p *Preview) createUI() {
	p.image = canvas.NewImageFromImage(nil)
	p.image.FillMode = canvas.ImageFillContain

	p.title = widget.NewLabel("")
	p.title.TextStyle = fyne.TextStyle{Bold: true}
	p.title.Truncation = fyne.TextTruncateEllipsis
	p.counter = widget.NewLabel("")

	p.prevBtn = widget.NewButton(IconPrevious, p.Previous)
	p.nextBtn = widget.NewButton(IconNext, p.Next)
	closeBtn := widget.NewButton(IconClose, p.Close)
	closeBtn.Importance = widget.LowImportance

	revealBtn := widget.NewButton(IconFolder+" "+p.localization.GetText(KeyReveal), func() {
		p.withPath(p.onReveal)
	})
	openBtn := widget.NewButton(IconFile+" "+p.localization.GetText(KeyOpen), func() {
		p.withPath(p.onOpen)
	})
	copyBtn := widget.NewButton(IconCopy+" "+p.localization.GetText(KeyCopyPath), func() {
		p.withPath(p.onCopy)
	})

	header := container.NewBorder(nil, nil, p.counter, closeBtn, p.title)
	actions := container.NewHBox(p.prevBtn, p.nextBtn, widget.NewSeparator(), revealBtn, openBtn, copyBtn)

	surface := newSwipeSurface(p.image, p.onGesture)
	content := container.NewBorder(header, actions, nil, nil, surface)

	p.popup = widget.NewModalPopUp(content, p.window.Canvas())
}

// load decodes the current image off the UI goroutine
func (p *Preview) load() {
	path := p.paths[p.index]
	p.title.SetText(filepath.Base(path))
	p.counter.SetText(fmt.Sprintf(PreviewCounterFormat, p.index+1, len(p.paths)))
	p.updateButtons()

	p.seq++
	seq := p.seq
	size := p.popup.Size()
	maxW, maxH := int(size.Width), int(size.Height)

	go func() {
		img, err := p.decode(path, maxW, maxH)
		fyne.Do(func() {
			if seq != p.seq {
				return
			}
			if err != nil {
				log.Printf("Preview failed to decode %s: %v", path, err)
				p.title.SetText(fmt.Sprintf("%s (%s)", filepath.Base(path), p.localization.GetText(KeyDecodeFailed)))
				p.image.Image = nil
				p.image.Refresh()
				return
			}
			p.image.Image = img.Image
			p.image.Refresh()
		})
	}()
}

func (p *Preview) updateButtons() {
	if p.index > 0 {
		p.prevBtn.Enable()
	} else {
		p.prevBtn.Disable()
	}
	if p.index+1 < len(p.paths) {
		p.nextBtn.Enable()
	} else {
		p.nextBtn.Disable()
	}
}

func (p *Preview) withPath(action func(string)) {
	if action == nil || p.index >= len(p.paths) {
		return
	}
	action(p.paths[p.index])
}

// onKey handles keyboard navigation while the preview is open
func (p *Preview) onKey(ev *fyne.KeyEvent) {
	switch ev.Name {
	case fyne.KeyLeft:
		p.Previous()
	case fyne.KeyRight, fyne.KeySpace:
		p.Next()
	case fyne.KeyEscape:
		p.Close()
	}
}

// onGesture maps swipes to navigation
func (p *Preview) onGesture(g GestureType) {
	switch g {
	case GestureSwipeLeft:
		p.Next()
	case GestureSwipeRight:
		p.Previous()
	case GestureSwipeDown:
		p.Close()
	case GestureLongPress:
		p.withPath(p.onCopy)
	}
}

// swipeSurface feeds touches and mouse drags over its content to a GestureHandler
type swipeSurface struct {
	widget.BaseWidget
	content  fyne.CanvasObject
	gestures *GestureHandler

	dragging bool
	lastDrag fyne.Position
}

func newSwipeSurface(content fyne.CanvasObject, onGesture func(GestureType)) *swipeSurface {
	s := &swipeSurface{
		content:  content,
		gestures: NewGestureHandler(onGesture),
	}
	s.ExtendBaseWidget(s)
	return s
}

// CreateRenderer implements fyne.Widget
func (s *swipeSurface) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(s.content)
}

// Dragged implements fyne.Draggable
func (s *swipeSurface) Dragged(ev *fyne.DragEvent) {
	if !s.dragging {
		s.dragging = true
		s.gestures.Start(ev.Position.Subtract(ev.Dragged))
	}
	s.lastDrag = ev.Position
}

// DragEnd implements fyne.Draggable
func (s *swipeSurface) DragEnd() {
	if !s.dragging {
		return
	}
	s.dragging = false
	s.gestures.End(s.lastDrag)
}
