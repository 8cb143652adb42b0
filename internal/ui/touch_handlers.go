package ui

import (
	"fyne.io/fyne/v2/driver/mobile"
)

// TouchDown implements mobile.Touchable
func (s *swipeSurface) TouchDown(event *mobile.TouchEvent) {
	s.gestures.TouchDown(event)
}

// TouchUp implements mobile.Touchable
func (s *swipeSurface) TouchUp(event *mobile.TouchEvent) {
	s.gestures.TouchUp(event)
}

// TouchCancel implements mobile.Touchable
func (s *swipeSurface) TouchCancel(event *mobile.TouchEvent) {
	s.gestures.TouchCancel(event)
}

var _ mobile.Touchable = (*swipeSurface)(nil)
