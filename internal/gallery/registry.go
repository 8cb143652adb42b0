package gallery

import (
	"errors"
	"fmt"

	"github.com/ytget/photo-viewer/internal/model"
)

// ErrItemNotFound is returned for indices outside the registry
var ErrItemNotFound = errors.New("item not found")

// Registry holds the ordered display items. Items are addressed by index.
type Registry struct {
	items []model.DisplayItem
}

// NewRegistry creates a registry holding a copy of items
func NewRegistry(items []model.DisplayItem) *Registry {
	r := &Registry{}
	r.Reset(items)
	return r
}

// Reset discards every item and replaces them with a copy of items
func (r *Registry) Reset(items []model.DisplayItem) {
	r.items = make([]model.DisplayItem, len(items))
	copy(r.items, items)
}

// Len returns the number of items
func (r *Registry) Len() int {
	return len(r.items)
}

// Item returns a copy of the item at index i
func (r *Registry) Item(i int) (model.DisplayItem, error) {
	if err := r.check(i); err != nil {
		return model.DisplayItem{}, err
	}
	return r.items[i], nil
}

// Items returns a copy of all items in order
func (r *Registry) Items() []model.DisplayItem {
	items := make([]model.DisplayItem, len(r.items))
	copy(items, r.items)
	return items
}

// Widths returns the item widths in order
func (r *Registry) Widths() []int {
	widths := make([]int, len(r.items))
	for i, item := range r.items {
		widths[i] = item.Width
	}
	return widths
}

// IsPlaced reports whether the item at i has been placed
func (r *Registry) IsPlaced(i int) bool {
	return r.check(i) == nil && r.items[i].Placed
}

// MarkPlaced records that the item at i has coordinates. Placed is never cleared.
func (r *Registry) MarkPlaced(i int) error {
	if err := r.check(i); err != nil {
		return err
	}
	r.items[i].Placed = true
	return nil
}

// SetSelected sets the selection flag of the item at i
func (r *Registry) SetSelected(i int, selected bool) error {
	if err := r.check(i); err != nil {
		return err
	}
	r.items[i].Selected = selected
	return nil
}

// ToggleSelected flips the selection flag and returns the new value
func (r *Registry) ToggleSelected(i int) (bool, error) {
	if err := r.check(i); err != nil {
		return false, err
	}
	r.items[i].Selected = !r.items[i].Selected
	return r.items[i].Selected, nil
}

// Selected returns the indices of selected items in order
func (r *Registry) Selected() []int {
	var selected []int
	for i, item := range r.items {
		if item.Selected {
			selected = append(selected, i)
		}
	}
	return selected
}

// IndexOf returns the index of the item with the given path, or -1
func (r *Registry) IndexOf(path string) int {
	for i, item := range r.items {
		if item.Path == path {
			return i
		}
	}
	return -1
}

func (r *Registry) check(i int) error {
	if i < 0 || i >= len(r.items) {
		return fmt.Errorf("%w: index %d of %d", ErrItemNotFound, i, len(r.items))
	}
	return nil
}
