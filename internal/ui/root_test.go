package ui

import (
	"errors"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"

	"github.com/ytget/photo-viewer/internal/gallery"
	"github.com/ytget/photo-viewer/internal/model"
)

// fakeLoader records requests instead of scanning
type fakeLoader struct {
	loads      []string
	generation uint64
	cancelled  int
	workers    int
	loadErr    error

	onComplete func(*model.ScanResult)
}

func (f *fakeLoader) SetCompleteCallback(cb func(*model.ScanResult)) { f.onComplete = cb }
func (f *fakeLoader) SetProgressCallback(func(done, total int)) {}
func (f *fakeLoader) SetPostFunc(func(func())) {}
func (f *fakeLoader) Cancel() { f.cancelled++ }
func (f *fakeLoader) Generation() uint64 { return f.generation }
func (f *fakeLoader) Status() model.ScanStatus { return model.ScanStatusPending }
func (f *fakeLoader) SetMaxWorkers(max int) { f.workers = max }
func (f *fakeLoader) SetTargetHeight(int) {}

func (f *fakeLoader) Load(dir string) (uint64, error) {
	if f.loadErr != nil {
		return 0, f.loadErr
	}
	f.loads = append(f.loads, dir)
	f.generation++
	return f.generation, nil
}

func newTestRootUI(t *testing.T) (*RootUI, *fakeLoader) {
	t.Helper()
	app := test.NewApp()
	window := test.NewWindow(nil)
	t.Cleanup(window.Close)

	loader := &fakeLoader{}
	ui := NewRootUI(window, app, loader, Options{
		RowHeight:  100,
		RowSpacing: 10,
		Width:      1000,
		Height:     700,
	})
	window.Resize(fyne.NewSize(1000, 700))
	return ui, loader
}

func TestRootUI_ScanCompleteLaysOutImages(t *testing.T) {
	ui, loader := newTestRootUI(t)

	dir := t.TempDir()
	ui.LoadDirectory(dir)
	if len(loader.loads) != 1 || loader.loads[0] != dir {
		t.Fatalf("Expected load of %s, got %v", dir, loader.loads)
	}

	ui.onScanComplete(&model.ScanResult{
		Generation: loader.generation,
		Status:     model.ScanStatusCompleted,
		Images:     testImages(100, 400, 400, 400),
		Skipped:    2,
	})

	c := ui.Controller()
	if c.Len() != 3 {
		t.Fatalf("Expected 3 items, got %d", c.Len())
	}
	widths := []int{400, 400, 400}
	if expected := gallery.Pack(widths, c.Viewport().Width); len(c.Rows()) != len(expected) {
		t.Errorf("Expected %d rows at width %d, got %d", len(expected), c.Viewport().Width, len(c.Rows()))
	}
	if got := ui.statusLabel.Text; got != "3 images · 0 selected · 2 skipped" {
		t.Errorf("Unexpected status line %q", got)
	}
	if ui.Directory() != dir {
		t.Errorf("Expected directory %s, got %s", dir, ui.Directory())
	}
}

func TestRootUI_ClickTogglesSelection(t *testing.T) {
	ui, loader := newTestRootUI(t)
	ui.LoadDirectory(t.TempDir())
	ui.onScanComplete(&model.ScanResult{
		Generation: loader.generation,
		Images:     testImages(100, 200, 200),
	})

	thumb, ok := ui.view.Thumbnail(1)
	if !ok {
		t.Fatal("Thumbnail 1 not placed")
	}
	test.Tap(thumb)

	if !thumb.Selected() {
		t.Error("Tapped thumbnail should be selected")
	}
	if got := ui.Controller().Selected(); len(got) != 1 || got[0] != 1 {
		t.Errorf("Expected selection [1], got %v", got)
	}

	ui.onClearSelection()
	if thumb.Selected() || len(ui.Controller().Selected()) != 0 {
		t.Error("Clear selection should unselect everything")
	}
}

func TestRootUI_DoubleClickOpensPreview(t *testing.T) {
	ui, loader := newTestRootUI(t)
	ui.preview.decode = func(path string, w, h int) (*model.DecodedImage, error) {
		return nil, errors.New("not decoded in tests")
	}
	ui.LoadDirectory(t.TempDir())
	ui.onScanComplete(&model.ScanResult{
		Generation: loader.generation,
		Images:     testImages(100, 200, 200, 200),
	})

	thumb, _ := ui.view.Thumbnail(1)
	test.DoubleTap(thumb)

	if !ui.preview.Visible() {
		t.Fatal("Double click should open the preview")
	}
	if ui.preview.Index() != 1 {
		t.Errorf("Preview should show item 1, got %d", ui.preview.Index())
	}

	ui.preview.Next()
	ui.preview.Next()
	if ui.preview.Index() != 2 {
		t.Errorf("Next should stop at the last image, got %d", ui.preview.Index())
	}

	ui.preview.onKey(&fyne.KeyEvent{Name: fyne.KeyEscape})
	if ui.preview.Visible() {
		t.Error("Escape should close the preview")
	}
}

func TestRootUI_ReloadKeepsPreviewOnSameFile(t *testing.T) {
	ui, loader := newTestRootUI(t)
	ui.preview.decode = func(path string, w, h int) (*model.DecodedImage, error) {
		return nil, errors.New("not decoded in tests")
	}
	ui.LoadDirectory(t.TempDir())
	ui.onScanComplete(&model.ScanResult{
		Generation: loader.generation,
		Images:     testImages(100, 200, 200, 200),
	})

	thumb, _ := ui.view.Thumbnail(1)
	test.DoubleTap(thumb)
	if ui.preview.Path() != "/photos/b.png" {
		t.Fatalf("Expected preview of b.png, got %q", ui.preview.Path())
	}

	// a.png was deleted: b.png moves to index 0
	ui.Reload()
	ui.onScanComplete(&model.ScanResult{
		Generation: loader.generation,
		Images:     testImages(100, 200, 200, 200)[1:],
	})
	if !ui.preview.Visible() || ui.preview.Path() != "/photos/b.png" || ui.preview.Index() != 0 {
		t.Errorf("Preview should follow b.png to index 0, got %q at %d", ui.preview.Path(), ui.preview.Index())
	}

	// Double click handlers follow the new indices
	thumb, _ = ui.view.Thumbnail(1)
	test.DoubleTap(thumb)
	if ui.preview.Path() != "/photos/c.png" {
		t.Errorf("Expected preview of c.png after reload, got %q", ui.preview.Path())
	}

	// c.png was deleted too: the preview closes
	ui.Reload()
	ui.onScanComplete(&model.ScanResult{
		Generation: loader.generation,
		Images:     testImages(100, 200),
	})
	if ui.preview.Visible() {
		t.Error("Preview of a removed file should close")
	}
}

func TestRootUI_StaleScanIgnored(t *testing.T) {
	ui, loader := newTestRootUI(t)
	ui.LoadDirectory(t.TempDir())
	ui.LoadDirectory(t.TempDir())
	ui.onScanComplete(&model.ScanResult{Generation: loader.generation, Images: testImages(100, 100)})

	ui.onScanComplete(&model.ScanResult{Generation: loader.generation - 1, Images: testImages(100, 100, 100, 100)})

	if ui.Controller().Len() != 1 {
		t.Errorf("Older generation should not replace the gallery, got %d items", ui.Controller().Len())
	}
}

func TestRootUI_ScanErrorEmptiesGallery(t *testing.T) {
	ui, loader := newTestRootUI(t)
	ui.LoadDirectory(t.TempDir())
	ui.onScanComplete(&model.ScanResult{Generation: loader.generation, Images: testImages(100, 100)})

	ui.Reload()
	ui.onScanComplete(&model.ScanResult{
		Generation: loader.generation,
		Status:     model.ScanStatusError,
		Err:        errors.New("permission denied"),
	})

	if ui.Controller().Len() != 0 {
		t.Errorf("Failed scan should leave an empty gallery, got %d", ui.Controller().Len())
	}
	if len(loader.loads) != 2 {
		t.Errorf("Reload should rescan the same directory, got %v", loader.loads)
	}
}

func TestRootUI_LoadErrorKeepsGallery(t *testing.T) {
	ui, loader := newTestRootUI(t)
	ui.LoadDirectory(t.TempDir())
	ui.onScanComplete(&model.ScanResult{Generation: loader.generation, Images: testImages(100, 100)})
	dir := ui.Directory()

	loader.loadErr = errors.New("boom")
	ui.LoadDirectory("/does/not/exist")

	if ui.Directory() != dir {
		t.Errorf("Failed load should keep directory %s, got %s", dir, ui.Directory())
	}
	if ui.Controller().Len() != 1 {
		t.Error("Failed load should keep the current gallery")
	}
}

func TestRootUI_LanguageChange(t *testing.T) {
	ui, _ := newTestRootUI(t)
	ui.onLanguageChange("ru")

	if ui.window.Title() != "Просмотр фото" {
		t.Errorf("Unexpected title %q", ui.window.Title())
	}
	if ui.settings.GetLanguage() != "ru" {
		t.Error("Language should be saved to settings")
	}
}

func TestRootUI_ShutdownCancelsLoader(t *testing.T) {
	ui, loader := newTestRootUI(t)
	ui.shutdown()
	if loader.cancelled != 1 {
		t.Errorf("Expected loader cancelled once, got %d", loader.cancelled)
	}
}
