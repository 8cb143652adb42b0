package model

import (
	"image"
	"time"
)

// DecodedImage is a successfully decoded file scaled to the target height
type DecodedImage struct {
	Path   string
	Width  int
	Height int
	Image  image.Image
}

// ScanResult is delivered once per directory scan
type ScanResult struct {
	ID         string // scan identifier for log correlation
	Generation uint64 // monotonically increasing per load request
	Directory  string
	Status     ScanStatus
	Images     []DecodedImage // directory order, failures omitted
	Skipped    int            // files that failed to decode
	Err        error          // set when Status is ScanStatusError
	StartedAt  time.Time
	FinishedAt time.Time
}

// DisplayItems converts decoded images into fresh registry items
func (r *ScanResult) DisplayItems() []DisplayItem {
	items := make([]DisplayItem, 0, len(r.Images))
	for _, img := range r.Images {
		items = append(items, NewDisplayItem(img.Path, img.Width, img.Height))
	}
	return items
}

// Elapsed returns how long the scan took, or zero if unfinished
func (r *ScanResult) Elapsed() time.Duration {
	if r.FinishedAt.IsZero() {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}
