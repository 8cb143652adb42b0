package gallery

// Surface is the rendering side of the layout engine. Handles are registry
// indices; the surface owns the widgets behind them.
type Surface interface {
	// Place puts a never-placed item at (x, y)
	Place(handle, x, y int)
	// Move repositions an already placed item
	Move(handle, x, y int)
	// MeasureWidth returns the rendered width of an item
	MeasureWidth(handle int) int
	// SetContainerSize sets the logical size of the scrollable content
	SetContainerSize(width, height int)
	// Clear drops every placed item
	Clear()
}
