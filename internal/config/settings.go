package config

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/photo-viewer/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyGalleryDir   = "gallery_directory"
	KeyWindowWidth  = "window_width"
	KeyWindowHeight = "window_height"
	KeyRowRatio     = "row_height_ratio"
	KeyRowSpacing   = "row_spacing"
	KeyDecodeWorker = "decode_workers"
	KeyWatchDir     = "watch_directory"
	KeyLanguage     = "app_language"
)

// Default values
const (
	DefaultWindowWidth  = 1250
	DefaultWindowHeight = 1390
	DefaultRowRatio     = 7
	DefaultRowSpacing   = 10
	DefaultWorkers      = 4
	DefaultWatchDir     = true
	DefaultLanguage     = "system"
)

// Limits
const (
	MinWindowSize = 200
	MaxWindowSize = 8192
	MinRowRatio   = 1
	MaxRowRatio   = 20
	MaxRowSpacing = 200
	MinWorkers    = 1
	MaxWorkers    = 16
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetGalleryDirectory returns the directory shown at startup
func (s *Settings) GetGalleryDirectory() string {
	dir := s.app.Preferences().String(KeyGalleryDir)
	if dir == "" {
		// Use system default Pictures directory
		defaultDir, err := platform.GetHomePicturesDir()
		if err != nil {
			defaultDir = platform.FallbackPicturesDir()
		}
		s.SetGalleryDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetGalleryDirectory sets the gallery directory
func (s *Settings) SetGalleryDirectory(dir string) {
	s.app.Preferences().SetString(KeyGalleryDir, dir)
}

// GetWindowWidth returns the initial window width
func (s *Settings) GetWindowWidth() int {
	return s.intSetting(KeyWindowWidth, DefaultWindowWidth, s.SetWindowWidth)
}

// SetWindowWidth sets the initial window width
func (s *Settings) SetWindowWidth(width int) {
	s.app.Preferences().SetInt(KeyWindowWidth, clamp(width, MinWindowSize, MaxWindowSize))
}

// GetWindowHeight returns the initial window height
func (s *Settings) GetWindowHeight() int {
	return s.intSetting(KeyWindowHeight, DefaultWindowHeight, s.SetWindowHeight)
}

// SetWindowHeight sets the initial window height
func (s *Settings) SetWindowHeight(height int) {
	s.app.Preferences().SetInt(KeyWindowHeight, clamp(height, MinWindowSize, MaxWindowSize))
}

// GetRowRatio returns how many rows fit in the initial window height
func (s *Settings) GetRowRatio() int {
	return s.intSetting(KeyRowRatio, DefaultRowRatio, s.SetRowRatio)
}

// SetRowRatio sets the row height ratio
func (s *Settings) SetRowRatio(ratio int) {
	s.app.Preferences().SetInt(KeyRowRatio, clamp(ratio, MinRowRatio, MaxRowRatio))
}

// GetRowSpacing returns the vertical margin added above the rows
func (s *Settings) GetRowSpacing() int {
	value := s.app.Preferences().IntWithFallback(KeyRowSpacing, -1)
	if value < 0 {
		s.SetRowSpacing(DefaultRowSpacing)
		return DefaultRowSpacing
	}
	return value
}

// SetRowSpacing sets the row spacing
func (s *Settings) SetRowSpacing(spacing int) {
	s.app.Preferences().SetInt(KeyRowSpacing, clamp(spacing, 0, MaxRowSpacing))
}

// RowHeight returns the fixed row height derived from the window height and ratio
func (s *Settings) RowHeight() int {
	return RowHeight(s.GetWindowHeight(), s.GetRowRatio())
}

// GetDecodeWorkers returns the maximum number of parallel decodes
func (s *Settings) GetDecodeWorkers() int {
	return s.intSetting(KeyDecodeWorker, DefaultWorkers, s.SetDecodeWorkers)
}

// SetDecodeWorkers sets the maximum number of parallel decodes
func (s *Settings) SetDecodeWorkers(count int) {
	s.app.Preferences().SetInt(KeyDecodeWorker, clamp(count, MinWorkers, MaxWorkers))
}

// GetWatchDirectory returns whether the gallery reloads on directory changes
func (s *Settings) GetWatchDirectory() bool {
	return s.app.Preferences().BoolWithFallback(KeyWatchDir, DefaultWatchDir)
}

// SetWatchDirectory sets whether the gallery directory is watched
func (s *Settings) SetWatchDirectory(watch bool) {
	s.app.Preferences().SetBool(KeyWatchDir, watch)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// RowHeight divides the window height into ratio rows
func RowHeight(windowHeight, ratio int) int {
	if ratio < 1 {
		ratio = 1
	}
	return windowHeight / ratio
}

// intSetting reads a positive int preference, writing the default back on first use
func (s *Settings) intSetting(key string, def int, set func(int)) int {
	value := s.app.Preferences().Int(key)
	if value <= 0 {
		set(def)
		return def
	}
	return value
}

func clamp(value, lo, hi int) int {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}
