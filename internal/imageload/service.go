package imageload

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/ytget/photo-viewer/internal/model"
	"github.com/ytget/photo-viewer/internal/platform"
)

// Worker limits
const (
	MinWorkers     = 1
	MaxWorkers     = 16
	DefaultWorkers = 4
)

// ScanIDPrefix prefixes generated scan identifiers
const ScanIDPrefix = "scan-"

// ErrNoDirectory is returned when the requested path is not a readable directory
var ErrNoDirectory = errors.New("not a directory")

// Service handles directory scans
type Service struct {
	mu           sync.Mutex
	maxWorkers   int
	targetHeight int
	generation   atomic.Uint64
	cancel       context.CancelFunc
	status       model.ScanStatus
	running      sync.WaitGroup

	post       func(func())            // hands work back to the UI goroutine
	onComplete func(*model.ScanResult) // callback for UI updates
	onProgress func(done, total int)   // posted like results, current generation only
}

// NewService creates a new image loading service. Results are delivered on
// the calling goroutine of the scan until SetPostFunc is used.
func NewService(targetHeight, maxWorkers int) *Service {
	s := &Service{
		targetHeight: targetHeight,
		status:       model.ScanStatusPending,
		post:         func(fn func()) { fn() },
	}
	s.SetMaxWorkers(maxWorkers)
	return s
}

// SetCompleteCallback sets the callback for finished scans
func (s *Service) SetCompleteCallback(callback func(*model.ScanResult)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onComplete = callback
}

// SetProgressCallback sets the callback for decode progress
func (s *Service) SetProgressCallback(callback func(done, total int)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onProgress = callback
}

// SetPostFunc sets how results are handed to the UI goroutine, e.g. fyne.Do
func (s *Service) SetPostFunc(post func(func())) {
	if post == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.post = post
}

// SetMaxWorkers sets the maximum number of parallel decodes
func (s *Service) SetMaxWorkers(max int) {
	if max < MinWorkers {
		max = MinWorkers
	}
	if max > MaxWorkers {
		max = MaxWorkers
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.maxWorkers = max
}

// SetTargetHeight sets the height images are scaled to. It applies to the next load.
func (s *Service) SetTargetHeight(height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.targetHeight = height
}

// Generation returns the current generation. Load and Cancel both advance it.
func (s *Service) Generation() uint64 {
	return s.generation.Load()
}

// Status returns the status of the most recent scan
func (s *Service) Status() model.ScanStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Load starts scanning dir in the background and returns the generation of
// the request. Any scan still running is cancelled and its results dropped.
func (s *Service) Load(dir string) (uint64, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrNoDirectory, dir, err)
	}
	if !info.IsDir() {
		return 0, fmt.Errorf("%w: %s", ErrNoDirectory, dir)
	}

	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	generation := s.generation.Add(1)
	s.status = model.ScanStatusListing
	height := s.targetHeight
	workers := s.maxWorkers
	s.mu.Unlock()

	result := &model.ScanResult{
		ID:         generateScanID(),
		Generation: generation,
		Directory:  dir,
		Status:     model.ScanStatusListing,
		StartedAt:  time.Now(),
	}

	log.Printf("Scan %s (generation %d) started for %s", result.ID, generation, dir)

	s.running.Add(1)
	go func() {
		defer s.running.Done()
		defer cancel()
		s.scan(ctx, result, height, workers)
	}()

	return generation, nil
}

// Cancel stops the running scan, if any. Its results are never delivered.
func (s *Service) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	if s.status.IsActive() {
		s.status = model.ScanStatusCancelled
	}
	// Invalidate results already queued for hand-back
	s.generation.Add(1)
}

// Wait blocks until every started scan goroutine has returned
func (s *Service) Wait() {
	s.running.Wait()
}

// scan lists and decodes one directory
func (s *Service) scan(ctx context.Context, result *model.ScanResult, height, workers int) {
	files, err := platform.ListImageFiles(result.Directory)
	if err != nil {
		log.Printf("Scan %s failed to list %s: %v", result.ID, result.Directory, err)
		result.Status = model.ScanStatusError
		result.Err = err
		result.FinishedAt = time.Now()
		s.setStatus(result.Generation, result.Status)
		s.deliver(result)
		return
	}

	result.Status = model.ScanStatusDecoding
	s.setStatus(result.Generation, result.Status)

	decoded, skipped, err := s.decodeAll(ctx, result.Generation, files, height, workers)
	result.FinishedAt = time.Now()
	if err != nil {
		result.Status = model.ScanStatusCancelled
		s.setStatus(result.Generation, result.Status)
		log.Printf("Scan %s cancelled after %v: %v", result.ID, result.Elapsed(), err)
		return
	}

	for _, img := range decoded {
		if img != nil {
			result.Images = append(result.Images, *img)
		}
	}
	result.Skipped = skipped
	result.Status = model.ScanStatusCompleted
	s.setStatus(result.Generation, result.Status)

	log.Printf("Scan %s finished: %d images, %d skipped in %v",
		result.ID, len(result.Images), result.Skipped, result.Elapsed())

	s.deliver(result)
}

// decodeAll decodes files with at most workers in flight. The returned slice
// keeps file order; failed files are left nil and counted.
func (s *Service) decodeAll(ctx context.Context, generation uint64, files []string, height, workers int) ([]*model.DecodedImage, int, error) {
	decoded := make([]*model.DecodedImage, len(files))
	var skipped, done atomic.Int32

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			img, err := DecodeScaled(path, height)
			if err != nil {
				log.Printf("Skipping %s: %v", path, err)
				skipped.Add(1)
			} else {
				decoded[i] = img
			}

			s.notifyProgress(generation, int(done.Add(1)), len(files))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, 0, err
	}
	// A cancel that landed after the last decode still invalidates the scan
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	return decoded, int(skipped.Load()), nil
}

// deliver posts result to the UI goroutine, dropping it if a newer load was requested
func (s *Service) deliver(result *model.ScanResult) {
	s.mu.Lock()
	post := s.post
	s.mu.Unlock()

	post(func() {
		if result.Generation != s.Generation() {
			log.Printf("Dropping stale scan %s (generation %d, current %d)",
				result.ID, result.Generation, s.Generation())
			return
		}
		s.notifyComplete(result)
	})
}

// setStatus records status if generation is still the current one
func (s *Service) setStatus(generation uint64, status model.ScanStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if generation == s.generation.Load() {
		s.status = status
	}
}

// notifyComplete calls the complete callback if set
func (s *Service) notifyComplete(result *model.ScanResult) {
	s.mu.Lock()
	cb := s.onComplete
	s.mu.Unlock()
	if cb != nil {
		cb(result)
	}
}

// notifyProgress posts progress of the scan with the given generation. Reports
// from a superseded scan are dropped at hand-back, like its results.
func (s *Service) notifyProgress(generation uint64, done, total int) {
	s.mu.Lock()
	cb := s.onProgress
	post := s.post
	s.mu.Unlock()
	if cb == nil {
		return
	}

	post(func() {
		if generation != s.Generation() {
			return
		}
		cb(done, total)
	})
}

// generateScanID generates a unique, time ordered scan ID using UUID v7
func generateScanID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf(ScanIDPrefix+"%d", time.Now().UnixNano())
	}
	return ScanIDPrefix + id.String()
}
