package imageload

import (
	"github.com/ytget/photo-viewer/internal/model"
)

// Loader defines the interface for the image loading service.
type Loader interface {
	SetCompleteCallback(func(*model.ScanResult))
	SetProgressCallback(func(done, total int))
	SetPostFunc(post func(func()))
	Load(dir string) (uint64, error)
	Cancel()
	Generation() uint64
	Status() model.ScanStatus

	// SetMaxWorkers sets how many files are decoded in parallel
	SetMaxWorkers(max int)

	// SetTargetHeight sets the height every decoded image is scaled to
	SetTargetHeight(height int)
}
