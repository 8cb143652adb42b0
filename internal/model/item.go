package model

import (
	"path/filepath"
	"strings"
)

// DisplayItem represents one decoded image ready for layout
type DisplayItem struct {
	Path     string // stable identity, absolute file path
	Width    int    // pixel width after scaling to the row height
	Height   int    // shared target height
	Placed   bool   // has been given on-screen coordinates at least once
	Selected bool   // toggled by the user, never touched by layout
}

// NewDisplayItem creates an unplaced, unselected item
func NewDisplayItem(path string, width, height int) DisplayItem {
	return DisplayItem{
		Path:   path,
		Width:  width,
		Height: height,
	}
}

// GetDisplayName returns the file name without directory and extension
func (d DisplayItem) GetDisplayName() string {
	if d.Path == "" {
		return ""
	}
	name := filepath.Base(d.Path)
	if idx := strings.LastIndex(name, "."); idx > 0 {
		name = name[:idx]
	}
	return name
}

// Row is a contiguous run of registry indices in original order
type Row struct {
	Items     []int // registry indices
	UsedWidth int   // sum of item widths
}

// Len returns the number of items in the row
func (r Row) Len() int {
	return len(r.Items)
}

// LayoutConfig holds the values a layout pass is computed from
type LayoutConfig struct {
	MaxWidth   int // current viewport width
	RowHeight  int // fixed for the session
	RowSpacing int // flat top margin added to every row
}

// Dimensions is a viewport size in pixels
type Dimensions struct {
	Width  int
	Height int
}

// Placement is the computed position of one item in one pass
type Placement struct {
	Index int
	Row   int
	X     int
	Y     int
}
