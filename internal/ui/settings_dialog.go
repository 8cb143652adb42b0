package ui

import (
	"sort"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/photo-viewer/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func(directoryChanged bool)

	// UI components
	galleryDirEntry   *widget.Entry
	workersEntry      *widget.Entry
	rowRatioEntry     *widget.Entry
	rowSpacingEntry   *widget.Entry
	windowWidthEntry  *widget.Entry
	windowHeightEntry *widget.Entry
	watchCheck        *widget.Check
	languageSelect    *widget.Select
}

// ShowSettingsDialog creates and shows the settings dialog. onSaved runs after
// a save and reports whether the gallery directory changed.
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func(directoryChanged bool)) *SettingsDialog {
	sd := NewSettingsDialog(settings, localization, window)
	sd.onSaved = onSaved
	sd.Show()
	return sd
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	l := sd.localization

	// Gallery directory selection
	sd.galleryDirEntry = widget.NewEntry()
	browseDirBtn := widget.NewButton(l.GetText(KeyBrowse), sd.onBrowseDirectory)
	galleryDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.galleryDirEntry)

	sd.workersEntry = widget.NewEntry()
	sd.workersEntry.SetPlaceHolder(strconv.Itoa(config.MinWorkers) + "-" + strconv.Itoa(config.MaxWorkers))

	sd.rowRatioEntry = widget.NewEntry()
	sd.rowSpacingEntry = widget.NewEntry()
	sd.windowWidthEntry = widget.NewEntry()
	sd.windowHeightEntry = widget.NewEntry()
	windowRow := container.NewGridWithColumns(2, sd.windowWidthEntry, sd.windowHeightEntry)

	sd.watchCheck = widget.NewCheck(l.GetText(KeyWatchDirectory), nil)

	// Language selection
	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	nextStart := widget.NewLabel(l.GetText(KeyNextStart))
	nextStart.TextStyle = fyne.TextStyle{Italic: true}

	form := container.NewVBox(
		widget.NewLabel(l.GetText(KeyGalleryDirectory)+":"),
		galleryDirRow,
		sd.watchCheck,

		widget.NewLabel(l.GetText(KeyDecodeWorkers)+":"),
		sd.workersEntry,

		widget.NewSeparator(),
		widget.NewLabel(l.GetText(KeyLayoutSettings)),
		widget.NewSeparator(),

		widget.NewLabel(l.GetText(KeyWindowSize)+":"),
		windowRow,
		widget.NewLabel(l.GetText(KeyRowRatio)+":"),
		sd.rowRatioEntry,
		widget.NewLabel(l.GetText(KeyRowSpacing)+":"),
		sd.rowSpacingEntry,
		nextStart,

		widget.NewSeparator(),
		widget.NewLabel(l.GetText(KeyInterface)),
		widget.NewSeparator(),

		widget.NewLabel(l.GetText(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		l.GetText(KeySettings),
		l.GetText(KeySave),
		l.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(500, 560))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.galleryDirEntry.SetText(sd.settings.GetGalleryDirectory())
	sd.workersEntry.SetText(strconv.Itoa(sd.settings.GetDecodeWorkers()))
	sd.rowRatioEntry.SetText(strconv.Itoa(sd.settings.GetRowRatio()))
	sd.rowSpacingEntry.SetText(strconv.Itoa(sd.settings.GetRowSpacing()))
	sd.windowWidthEntry.SetText(strconv.Itoa(sd.settings.GetWindowWidth()))
	sd.windowHeightEntry.SetText(strconv.Itoa(sd.settings.GetWindowHeight()))
	sd.watchCheck.SetChecked(sd.settings.GetWatchDirectory())
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.galleryDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	directoryChanged := false
	if dir := sd.galleryDirEntry.Text; dir != "" && dir != sd.settings.GetGalleryDirectory() {
		sd.settings.SetGalleryDirectory(dir)
		directoryChanged = true
	}

	saveInt(sd.workersEntry.Text, sd.settings.SetDecodeWorkers)
	saveInt(sd.rowRatioEntry.Text, sd.settings.SetRowRatio)
	saveInt(sd.rowSpacingEntry.Text, sd.settings.SetRowSpacing)
	saveInt(sd.windowWidthEntry.Text, sd.settings.SetWindowWidth)
	saveInt(sd.windowHeightEntry.Text, sd.settings.SetWindowHeight)
	sd.settings.SetWatchDirectory(sd.watchCheck.Checked)

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	if sd.onSaved != nil {
		sd.onSaved(directoryChanged)
	}
}

// saveInt parses text and passes it to set, ignoring invalid input
func saveInt(text string, set func(int)) {
	if text == "" {
		return
	}
	if value, err := strconv.Atoi(text); err == nil {
		set(value)
	}
}
