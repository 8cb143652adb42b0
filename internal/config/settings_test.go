package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestGalleryDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	dir := settings.GetGalleryDirectory()
	if dir == "" {
		t.Error("Gallery directory should not be empty")
	}

	// Test setting custom value
	customDir := "/custom/pictures"
	settings.SetGalleryDirectory(customDir)

	retrievedDir := settings.GetGalleryDirectory()
	if retrievedDir != customDir {
		t.Errorf("Expected gallery directory %s, got %s", customDir, retrievedDir)
	}
}

func TestWindowSize(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if w := settings.GetWindowWidth(); w != DefaultWindowWidth {
		t.Errorf("Expected default width %d, got %d", DefaultWindowWidth, w)
	}
	if h := settings.GetWindowHeight(); h != DefaultWindowHeight {
		t.Errorf("Expected default height %d, got %d", DefaultWindowHeight, h)
	}

	settings.SetWindowWidth(900)
	settings.SetWindowHeight(50) // Should be clamped to MinWindowSize
	if settings.GetWindowWidth() != 900 {
		t.Errorf("Expected width 900, got %d", settings.GetWindowWidth())
	}
	if settings.GetWindowHeight() != MinWindowSize {
		t.Errorf("Expected height clamped to %d, got %d", MinWindowSize, settings.GetWindowHeight())
	}
}

func TestRowHeight(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// 1390 / 7
	if h := settings.RowHeight(); h != 198 {
		t.Errorf("Expected default row height 198, got %d", h)
	}

	settings.SetWindowHeight(1000)
	settings.SetRowRatio(4)
	if h := settings.RowHeight(); h != 250 {
		t.Errorf("Expected row height 250, got %d", h)
	}

	tests := []struct {
		height, ratio, expected int
	}{
		{1390, 7, 198},
		{700, 7, 100},
		{100, 0, 100},
	}
	for _, tt := range tests {
		if got := RowHeight(tt.height, tt.ratio); got != tt.expected {
			t.Errorf("RowHeight(%d, %d) = %d, expected %d", tt.height, tt.ratio, got, tt.expected)
		}
	}
}

func TestRowRatio(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if r := settings.GetRowRatio(); r != DefaultRowRatio {
		t.Errorf("Expected default ratio %d, got %d", DefaultRowRatio, r)
	}

	settings.SetRowRatio(100)
	if settings.GetRowRatio() != MaxRowRatio {
		t.Errorf("Ratio should be clamped to %d, got %d", MaxRowRatio, settings.GetRowRatio())
	}
}

func TestRowSpacing(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if s := settings.GetRowSpacing(); s != DefaultRowSpacing {
		t.Errorf("Expected default spacing %d, got %d", DefaultRowSpacing, s)
	}

	// Zero is a valid spacing
	settings.SetRowSpacing(0)
	if s := settings.GetRowSpacing(); s != 0 {
		t.Errorf("Expected spacing 0, got %d", s)
	}

	settings.SetRowSpacing(-5)
	if s := settings.GetRowSpacing(); s != 0 {
		t.Errorf("Negative spacing should be clamped to 0, got %d", s)
	}
}

func TestDecodeWorkers(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if w := settings.GetDecodeWorkers(); w != DefaultWorkers {
		t.Errorf("Expected default workers %d, got %d", DefaultWorkers, w)
	}

	settings.SetDecodeWorkers(8)
	if settings.GetDecodeWorkers() != 8 {
		t.Errorf("Expected workers 8, got %d", settings.GetDecodeWorkers())
	}

	// Test boundary values
	settings.SetDecodeWorkers(0)
	if settings.GetDecodeWorkers() != MinWorkers {
		t.Error("Workers should be clamped to minimum 1")
	}

	settings.SetDecodeWorkers(64)
	if settings.GetDecodeWorkers() != MaxWorkers {
		t.Errorf("Workers should be clamped to maximum %d", MaxWorkers)
	}
}

func TestWatchDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetWatchDirectory() != DefaultWatchDir {
		t.Errorf("Expected default watch %v", DefaultWatchDir)
	}

	settings.SetWatchDirectory(false)
	if settings.GetWatchDirectory() {
		t.Error("Expected watch disabled")
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("ru")

	retrievedLang := settings.GetLanguage()
	if retrievedLang != "ru" {
		t.Errorf("Expected language ru, got %s", retrievedLang)
	}
}

func TestLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()
	for _, key := range []string{"system", "en", "ru", "pt"} {
		if _, ok := options[key]; !ok {
			t.Errorf("Language options should contain %s", key)
		}
	}
}
