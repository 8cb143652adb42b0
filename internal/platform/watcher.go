package platform

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DirectoryChangeDebounce is how long the watcher waits for a burst of file
// events to settle before reporting a change
const DirectoryChangeDebounce = 500 * time.Millisecond

// DirWatcher reports changes to the image files of one directory
type DirWatcher struct {
	watcher  *fsnotify.Watcher
	dir      string
	debounce time.Duration
	onChange func(dir string)

	mu     sync.Mutex
	timer  *time.Timer
	closed bool
	done   chan struct{}
}

// NewDirWatcher starts watching dir. onChange is called from a background
// goroutine after image files were created, removed, renamed or written.
func NewDirWatcher(dir string, debounce time.Duration, onChange func(dir string)) (*DirWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := w.Add(dir); err != nil {
		w.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	if debounce <= 0 {
		debounce = DirectoryChangeDebounce
	}

	dw := &DirWatcher{
		watcher:  w,
		dir:      dir,
		debounce: debounce,
		onChange: onChange,
		done:     make(chan struct{}),
	}
	go dw.run()

	log.Printf("Watching %s for changes", dir)
	return dw, nil
}

// Dir returns the watched directory
func (dw *DirWatcher) Dir() string {
	return dw.dir
}

// Close stops the watcher. Pending notifications are dropped.
func (dw *DirWatcher) Close() error {
	dw.mu.Lock()
	if dw.closed {
		dw.mu.Unlock()
		return nil
	}
	dw.closed = true
	if dw.timer != nil {
		dw.timer.Stop()
	}
	dw.mu.Unlock()

	err := dw.watcher.Close()
	<-dw.done
	return err
}

func (dw *DirWatcher) run() {
	defer close(dw.done)
	for {
		select {
		case event, ok := <-dw.watcher.Events:
			if !ok {
				return
			}
			if relevantEvent(event) {
				dw.schedule()
			}
		case err, ok := <-dw.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("Watcher error for %s: %v", dw.dir, err)
		}
	}
}

// relevantEvent reports whether event changes the set or content of images
func relevantEvent(event fsnotify.Event) bool {
	if !IsImageFile(event.Name) {
		return false
	}
	return event.Has(fsnotify.Create) ||
		event.Has(fsnotify.Remove) ||
		event.Has(fsnotify.Rename) ||
		event.Has(fsnotify.Write)
}

// schedule restarts the debounce timer
func (dw *DirWatcher) schedule() {
	dw.mu.Lock()
	defer dw.mu.Unlock()
	if dw.closed {
		return
	}
	if dw.timer != nil {
		dw.timer.Stop()
	}
	dw.timer = time.AfterFunc(dw.debounce, dw.fire)
}

func (dw *DirWatcher) fire() {
	dw.mu.Lock()
	closed := dw.closed
	dw.mu.Unlock()
	if closed || dw.onChange == nil {
		return
	}
	log.Printf("Directory %s changed", dw.dir)
	dw.onChange(dw.dir)
}
