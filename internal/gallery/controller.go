package gallery

import (
	"fmt"
	"log"

	"github.com/ytget/photo-viewer/internal/model"
)

// State of the controller
type State int

const (
	StateIdle State = iota
	StateLayingOut
)

// String returns the state name
func (s State) String() string {
	if s == StateLayingOut {
		return "LayingOut"
	}
	return "Idle"
}

// Controller owns the registry and runs pack, space and place passes on
// resize and reload events. It is not safe for concurrent use; call it from
// the UI goroutine only.
type Controller struct {
	registry *Registry
	surface  Surface
	events   *Events

	rowHeight  int
	rowSpacing int
	viewport   model.Dimensions
	generation uint64
	state      State

	rows       []model.Row
	placements []model.Placement
	passes     int
}

// NewController creates a controller with an empty registry. initial is the
// viewport size the window starts with.
func NewController(surface Surface, rowHeight, rowSpacing int, initial model.Dimensions) *Controller {
	return &Controller{
		registry:   NewRegistry(nil),
		surface:    surface,
		events:     NewEvents(),
		rowHeight:  rowHeight,
		rowSpacing: rowSpacing,
		viewport:   initial,
	}
}

// Events returns the item event table
func (c *Controller) Events() *Events {
	return c.events
}

// Config returns the layout configuration for the current viewport
func (c *Controller) Config() model.LayoutConfig {
	return model.LayoutConfig{
		MaxWidth:   c.viewport.Width,
		RowHeight:  c.rowHeight,
		RowSpacing: c.rowSpacing,
	}
}

// Viewport returns the last recorded viewport dimensions
func (c *Controller) Viewport() model.Dimensions {
	return c.viewport
}

// State returns the current controller state
func (c *Controller) State() State {
	return c.state
}

// Generation returns the generation of the items currently in the registry
func (c *Controller) Generation() uint64 {
	return c.generation
}

// Len returns the number of items in the registry
func (c *Controller) Len() int {
	return c.registry.Len()
}

// Item returns a copy of the item at index i
func (c *Controller) Item(i int) (model.DisplayItem, error) {
	return c.registry.Item(i)
}

// IndexOf returns the registry index of the item with path, or -1
func (c *Controller) IndexOf(path string) int {
	return c.registry.IndexOf(path)
}

// Items returns a copy of the registry contents
func (c *Controller) Items() []model.DisplayItem {
	return c.registry.Items()
}

// Rows returns the rows of the last pass
func (c *Controller) Rows() []model.Row {
	return c.rows
}

// Placements returns the coordinates issued by the last pass
func (c *Controller) Placements() []model.Placement {
	return c.placements
}

// Passes returns how many layout passes have completed
func (c *Controller) Passes() int {
	return c.passes
}

// ContentHeight returns the logical height of the laid out content
func (c *Controller) ContentHeight() int {
	return len(c.rows) * c.rowHeight
}

// Resize records a new viewport size and re-lays out the registry when the
// size actually changed. It returns whether a pass ran.
func (c *Controller) Resize(width, height int) bool {
	if c.state == StateLayingOut {
		reentrant(fmt.Sprintf("resize to %dx%d", width, height))
		return false
	}

	dims := model.Dimensions{Width: width, Height: height}
	if dims == c.viewport {
		return false
	}

	// Record before the pass so a nested notification with the same size is a no-op
	c.viewport = dims
	return c.pass()
}

// Reload replaces the registry with items and forces a pass. Results older
// than the current generation are ignored and reported as false.
func (c *Controller) Reload(generation uint64, items []model.DisplayItem) bool {
	if c.state == StateLayingOut {
		reentrant(fmt.Sprintf("reload of generation %d", generation))
		return false
	}
	if generation < c.generation {
		log.Printf("Ignoring stale results of generation %d (current %d)", generation, c.generation)
		return false
	}

	c.generation = generation
	c.surface.Clear()
	c.events.ResetItems()
	c.registry.Reset(items)
	c.rows = nil
	c.placements = nil

	return c.pass()
}

// Relayout forces a pass over the current registry
func (c *Controller) Relayout() bool {
	if c.state == StateLayingOut {
		reentrant("forced relayout")
		return false
	}
	return c.pass()
}

// ToggleSelected flips the selection of the item at i and returns the new value
func (c *Controller) ToggleSelected(i int) (bool, error) {
	return c.registry.ToggleSelected(i)
}

// SetSelected sets the selection of the item at i
func (c *Controller) SetSelected(i int, selected bool) error {
	return c.registry.SetSelected(i, selected)
}

// ClearSelection unselects every item and returns the indices that changed
func (c *Controller) ClearSelection() []int {
	changed := c.registry.Selected()
	for _, i := range changed {
		c.registry.SetSelected(i, false)
	}
	return changed
}

// Selected returns the indices of selected items
func (c *Controller) Selected() []int {
	return c.registry.Selected()
}

// pass runs pack, space and place over the whole registry
func (c *Controller) pass() bool {
	c.state = StateLayingOut
	defer func() { c.state = StateIdle }()

	cfg := c.Config()
	widths := c.widths()

	c.rows = Pack(widths, cfg.MaxWidth)
	c.placements = Place(c.surface, c.registry, c.rows, cfg)
	c.surface.SetContainerSize(cfg.MaxWidth, c.ContentHeight())
	c.passes++

	return true
}

// widths backfills unknown widths from the surface so every item can be packed
func (c *Controller) widths() []int {
	for i := 0; i < c.registry.Len(); i++ {
		if c.registry.items[i].Width > 0 {
			continue
		}
		if w := c.surface.MeasureWidth(i); w > 0 {
			c.registry.items[i].Width = w
		}
	}
	return c.registry.Widths()
}
