package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconFolder   = "📁"
	IconFile     = "📄"
	IconCopy     = "📋"
	IconClose    = "×"
	IconReload   = "⟳"
	IconPrevious = "◀"
	IconNext     = "▶"
)

// Text fragments
const (
	MiddleDotSeparator   = " · "
	PreviewCounterFormat = "%d / %d"
	ProgressFormat       = "%d/%d"
)

// Layout sizing
const (
	ViewportMinWidth  float32 = 200
	ViewportMinHeight float32 = 150

	// Share of the window the preview popup covers
	PreviewScale float32 = 0.9

	// Thin scroll bars overlay the rightmost thumbnails
	ScrollBarWidth      float32 = 8
	ScrollBarSmallWidth float32 = 2
)

// Toast notification sizing and behavior
const (
	ToastWidth    float32 = 300
	ToastHeight   float32 = 120
	ToastMargin   float32 = 20
	ToastAutoHide         = 5 * time.Second
)

// Debounce durations
const (
	ProgressUpdateDebounce = 100 * time.Millisecond
)
