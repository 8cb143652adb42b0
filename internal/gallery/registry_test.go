package gallery

import (
	"errors"
	"reflect"
	"testing"

	"github.com/ytget/photo-viewer/internal/model"
)

func TestRegistry_ResetCopies(t *testing.T) {
	items := itemsWithWidths(10, 20)
	registry := NewRegistry(items)

	items[0].Width = 999
	item, err := registry.Item(0)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if item.Width != 10 {
		t.Errorf("Registry should own a copy, got width %d", item.Width)
	}

	registry.Reset(nil)
	if registry.Len() != 0 {
		t.Errorf("Expected empty registry after reset, got %d", registry.Len())
	}
}

func TestRegistry_OutOfRange(t *testing.T) {
	registry := NewRegistry(itemsWithWidths(10))

	if _, err := registry.Item(1); !errors.Is(err, ErrItemNotFound) {
		t.Errorf("Expected ErrItemNotFound, got %v", err)
	}
	if err := registry.MarkPlaced(-1); !errors.Is(err, ErrItemNotFound) {
		t.Errorf("Expected ErrItemNotFound, got %v", err)
	}
	if _, err := registry.ToggleSelected(5); !errors.Is(err, ErrItemNotFound) {
		t.Errorf("Expected ErrItemNotFound, got %v", err)
	}
	if registry.IsPlaced(3) {
		t.Error("Out of range item should not report placed")
	}
}

func TestRegistry_Selection(t *testing.T) {
	registry := NewRegistry(itemsWithWidths(10, 20, 30))

	selected, err := registry.ToggleSelected(1)
	if err != nil || !selected {
		t.Fatalf("Expected item 1 selected, got %v (%v)", selected, err)
	}
	registry.SetSelected(2, true)

	if got := registry.Selected(); !reflect.DeepEqual(got, []int{1, 2}) {
		t.Errorf("Selected() = %v, expected [1 2]", got)
	}

	selected, _ = registry.ToggleSelected(1)
	if selected {
		t.Error("Second toggle should unselect")
	}
}

func TestRegistry_MarkPlacedIsSticky(t *testing.T) {
	registry := NewRegistry(itemsWithWidths(10))

	registry.MarkPlaced(0)
	registry.MarkPlaced(0)
	if !registry.IsPlaced(0) {
		t.Error("Item should stay placed")
	}
}

func TestRegistry_IndexOf(t *testing.T) {
	registry := NewRegistry([]model.DisplayItem{
		model.NewDisplayItem("/a.png", 1, 1),
		model.NewDisplayItem("/b.png", 1, 1),
	})

	if registry.IndexOf("/b.png") != 1 {
		t.Errorf("Expected index 1, got %d", registry.IndexOf("/b.png"))
	}
	if registry.IndexOf("/c.png") != -1 {
		t.Error("Unknown path should return -1")
	}
}
