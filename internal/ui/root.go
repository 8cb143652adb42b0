package ui

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/photo-viewer/internal/config"
	"github.com/ytget/photo-viewer/internal/gallery"
	"github.com/ytget/photo-viewer/internal/imageload"
	"github.com/ytget/photo-viewer/internal/model"
	"github.com/ytget/photo-viewer/internal/platform"
)

// Options are the values fixed for the lifetime of the window
type Options struct {
	Directory  string
	RowHeight  int
	RowSpacing int
	Width      int
	Height     int
	Watch      bool
}

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	loader       imageload.Loader
	settings     *config.Settings
	localization *Localization
	options      Options

	view       *GalleryView
	controller *gallery.Controller
	preview    *Preview

	directory string
	images    []model.DecodedImage
	skipped   int
	watcher   *platform.DirWatcher

	// Progress debouncing
	lastProgress  time.Time
	progressMutex sync.Mutex

	settingsBtn *widget.Button
	openBtn     *widget.Button
	reloadBtn   *widget.Button
	dirLabel    *widget.Label
	statusLabel *widget.Label

	// Notification panel
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
	notificationSpinner   *widget.ProgressBarInfinite
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, loader imageload.Loader, opts Options) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		loader:       loader,
		settings:     settings,
		localization: localization,
		options:      opts,
		view:         NewGalleryView(),
	}

	ui.controller = gallery.NewController(ui.view, opts.RowHeight, opts.RowSpacing,
		model.Dimensions{Width: opts.Width, Height: opts.Height})
	ui.preview = NewPreview(window, localization)
	ui.preview.SetCallbacks(ui.onRevealFile, ui.onOpenFile, ui.onCopyPath)

	// Widgets only report; interaction logic lives in the event table
	ui.view.SetResizeCallback(ui.onViewportResize)
	ui.view.SetCallbacks(
		func(i int) { ui.controller.Events().Dispatch(i, gallery.EventClick) },
		func(i int) { ui.controller.Events().Dispatch(i, gallery.EventDoubleClick) },
	)
	ui.controller.Events().SubscribeAll(gallery.EventClick, ui.onItemClick)

	loader.SetPostFunc(fyne.Do)
	loader.SetCompleteCallback(ui.onScanComplete)
	loader.SetProgressCallback(ui.onScanProgress)

	window.SetTitle(localization.GetText(KeyAppTitle))
	window.SetOnClosed(ui.shutdown)

	ui.setupUI()

	log.Printf("RootUI initialized: row height %d, row spacing %d, viewport %dx%d",
		opts.RowHeight, opts.RowSpacing, opts.Width, opts.Height)
	return ui
}

// Controller returns the layout controller
func (ui *RootUI) Controller() *gallery.Controller {
	return ui.controller
}

// Directory returns the directory currently shown
func (ui *RootUI) Directory() string {
	return ui.directory
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.settingsBtn = widget.NewButton(IconSettings, ui.onShowSettings)
	ui.settingsBtn.Importance = widget.LowImportance
	ui.openBtn = widget.NewButton(IconFolder+" "+ui.localization.GetText(KeyOpen), ui.onOpenFolder)
	ui.reloadBtn = widget.NewButton(IconReload+" "+ui.localization.GetText(KeyReload), ui.Reload)

	ui.dirLabel = widget.NewLabel("")
	ui.dirLabel.Truncation = fyne.TextTruncateEllipsis

	left := container.NewHBox(ui.settingsBtn)
	if logo, err := LoadLogoResource(); err == nil {
		logoImage := canvas.NewImageFromResource(logo)
		logoImage.SetMinSize(fyne.NewSize(32, 32))
		logoImage.FillMode = canvas.ImageFillContain
		left = container.NewHBox(logoImage, ui.settingsBtn)
	}
	topPanel := container.NewBorder(nil, nil, left, container.NewHBox(ui.openBtn, ui.reloadBtn), ui.dirLabel)

	// Notification panel under the toolbar (hidden by default)
	ui.notificationLabel = widget.NewLabel("")
	ui.notificationLabel.Alignment = fyne.TextAlignLeading
	ui.notificationSpinner = widget.NewProgressBarInfinite()
	ui.notificationSpinner.Hide()
	ui.notificationContainer = container.NewHBox(ui.notificationSpinner, container.NewPadded(ui.notificationLabel))
	ui.notificationContainer.Hide()

	topCombined := container.NewVBox(topPanel, ui.notificationContainer)

	ui.statusLabel = widget.NewLabel("")

	content := container.NewBorder(
		topCombined,         // top
		ui.statusLabel,      // bottom
		nil,                 // left
		nil,                 // right
		ui.view.Container(), // center - the gallery
	)
	ui.window.SetContent(content)

	ui.window.Canvas().AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyR,
		Modifier: fyne.KeyModifierShortcutDefault,
	}, func(fyne.Shortcut) { ui.Reload() })
	ui.window.Canvas().AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyO,
		Modifier: fyne.KeyModifierShortcutDefault,
	}, func(fyne.Shortcut) { ui.onOpenFolder() })

	ui.updateStatus()
	log.Printf("UI setup completed successfully")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	openItem := fyne.NewMenuItem(ui.localization.GetText(KeyOpenFolder), ui.onOpenFolder)
	reloadItem := fyne.NewMenuItem(ui.localization.GetText(KeyReload), ui.Reload)
	clearItem := fyne.NewMenuItem(ui.localization.GetText(KeyClearSelection), ui.onClearSelection)
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for _, code := range sortedKeys(ui.localization.GetAvailableLanguages()) {
		langCode := code
		langItem := fyne.NewMenuItem(ui.localization.GetAvailableLanguages()[code], func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile),
			openItem, reloadItem, fyne.NewMenuItemSeparator(), clearItem, settingsItem),
		languageMenu,
	)
	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.openBtn.SetText(IconFolder + " " + ui.localization.GetText(KeyOpen))
	ui.reloadBtn.SetText(IconReload + " " + ui.localization.GetText(KeyReload))
	ui.updateStatus()
}

// LoadDirectory starts showing dir. The gallery keeps its current content
// until the scan completes.
func (ui *RootUI) LoadDirectory(dir string) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return
	}

	generation, err := ui.loader.Load(dir)
	if err != nil {
		log.Printf("Failed to load %s: %v", dir, err)
		ui.showNotification(ui.localization.GetText(KeyScanFailed)+": "+err.Error(), false)
		if errors.Is(err, imageload.ErrNoDirectory) {
			ui.showToast(ui.localization.GetText(KeyScanFailed), dir)
		}
		return
	}

	log.Printf("Loading %s as generation %d", dir, generation)
	if dir != ui.directory {
		ui.directory = dir
		ui.restartWatcher()
	}
	ui.dirLabel.SetText(dir)
	ui.showNotification(ui.localization.GetText(KeyScanning)+" "+dir, true)
}

// Reload rescans the current directory
func (ui *RootUI) Reload() {
	if ui.directory == "" {
		return
	}
	ui.LoadDirectory(ui.directory)
}

// onScanComplete installs a finished scan. It runs on the UI goroutine.
func (ui *RootUI) onScanComplete(result *model.ScanResult) {
	if result.Generation < ui.controller.Generation() {
		log.Printf("Ignoring scan %s of older generation %d", result.ID, result.Generation)
		return
	}

	if result.Err != nil {
		ui.showNotification(ui.localization.GetText(KeyScanFailed)+": "+result.Err.Error(), false)
		ui.installResult(&model.ScanResult{Generation: result.Generation})
		return
	}

	ui.installResult(result)

	if len(result.Images) == 0 {
		ui.showNotification(ui.localization.GetText(KeyNoImages), false)
	} else {
		ui.hideNotification()
	}
	log.Printf("Scan %s installed: %d images in %d rows", result.ID, len(result.Images), len(ui.controller.Rows()))
}

// installResult replaces the gallery content with the images of result.
// An open preview stays on its file if the file is still there.
func (ui *RootUI) installResult(result *model.ScanResult) {
	previewPath := ""
	if ui.preview.Visible() {
		previewPath = ui.preview.Path()
	}

	ui.images = result.Images
	ui.skipped = result.Skipped
	ui.view.SetImages(result.Images)
	ui.controller.Reload(result.Generation, result.DisplayItems())

	// Reload drops per-item handlers; each item opens its own file
	events := ui.controller.Events()
	for i, img := range result.Images {
		path := img.Path
		events.Subscribe(i, gallery.EventDoubleClick, func(int) { ui.openPreview(path) })
	}

	ui.view.ScrollToTop()
	ui.updateStatus()

	if previewPath != "" {
		if ui.controller.IndexOf(previewPath) < 0 {
			ui.preview.Close()
			return
		}
		ui.openPreview(previewPath)
	}
}

// onScanProgress reports decode progress of the current scan
func (ui *RootUI) onScanProgress(done, total int) {
	ui.progressMutex.Lock()
	now := time.Now()
	skip := done < total && now.Sub(ui.lastProgress) < ProgressUpdateDebounce
	if !skip {
		ui.lastProgress = now
	}
	ui.progressMutex.Unlock()
	if skip {
		return
	}

	ui.showNotification(fmt.Sprintf("%s "+ProgressFormat, ui.localization.GetText(KeyDecoding), done, total), true)
}

// onViewportResize forwards viewport size changes to the controller
func (ui *RootUI) onViewportResize(width, height int) {
	ui.controller.Resize(width, height)
}

// onItemClick toggles selection of the clicked thumbnail
func (ui *RootUI) onItemClick(index int) {
	selected, err := ui.controller.ToggleSelected(index)
	if err != nil {
		log.Printf("Click on unknown item %d: %v", index, err)
		return
	}
	ui.view.SetSelected(index, selected)
	ui.updateStatus()
}

// openPreview shows path enlarged, with the rest of the gallery to page through
func (ui *RootUI) openPreview(path string) {
	index := ui.controller.IndexOf(path)
	if index < 0 {
		log.Printf("Preview requested for %s, which is not in the gallery", path)
		return
	}
	paths := make([]string, len(ui.images))
	for i, img := range ui.images {
		paths[i] = img.Path
	}
	ui.preview.Show(paths, index)
}

// onClearSelection unselects everything
func (ui *RootUI) onClearSelection() {
	for _, i := range ui.controller.ClearSelection() {
		ui.view.SetSelected(i, false)
	}
	ui.updateStatus()
}

// updateStatus refreshes the status line
func (ui *RootUI) updateStatus() {
	if ui.statusLabel == nil {
		return
	}
	l := ui.localization
	parts := []string{
		fmt.Sprintf("%d %s", ui.controller.Len(), l.GetText(KeyImages)),
		fmt.Sprintf("%d %s", len(ui.controller.Selected()), l.GetText(KeySelected)),
	}
	if ui.skipped > 0 {
		parts = append(parts, fmt.Sprintf("%d %s", ui.skipped, l.GetText(KeySkipped)))
	}
	ui.statusLabel.SetText(strings.Join(parts, MiddleDotSeparator))
}

// onOpenFolder lets the user pick a new gallery directory
func (ui *RootUI) onOpenFolder() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil {
			log.Printf("Folder dialog failed: %v", err)
			return
		}
		if uri == nil {
			return
		}
		ui.settings.SetGalleryDirectory(uri.Path())
		ui.LoadDirectory(uri.Path())
	}, ui.window)
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func(directoryChanged bool) {
		ui.options.Watch = ui.settings.GetWatchDirectory()
		ui.loader.SetMaxWorkers(ui.settings.GetDecodeWorkers())
		ui.restartWatcher()

		if lang := ui.settings.GetLanguage(); lang != ui.localization.GetCurrentLanguage() {
			ui.onLanguageChange(lang)
		}
		if directoryChanged {
			ui.LoadDirectory(ui.settings.GetGalleryDirectory())
		}
		ui.showNotification(ui.localization.GetText(KeySettingsSaved), false)
	})
}

// restartWatcher watches the current directory if enabled
func (ui *RootUI) restartWatcher() {
	if ui.watcher != nil {
		if ui.watcher.Dir() == ui.directory && ui.options.Watch {
			return
		}
		ui.watcher.Close()
		ui.watcher = nil
	}
	if !ui.options.Watch || ui.directory == "" {
		return
	}

	w, err := platform.NewDirWatcher(ui.directory, platform.DirectoryChangeDebounce, ui.onDirectoryChanged)
	if err != nil {
		log.Printf("Directory watching disabled: %v", err)
		return
	}
	ui.watcher = w
}

// onDirectoryChanged is called from the watcher goroutine
func (ui *RootUI) onDirectoryChanged(dir string) {
	fyne.Do(func() {
		if dir != ui.directory {
			return
		}
		ui.showNotification(ui.localization.GetText(KeyDirectoryChanged), true)
		ui.LoadDirectory(dir)
	})
}

// onRevealFile reveals a file in the system file manager
func (ui *RootUI) onRevealFile(filePath string) {
	if err := platform.OpenFileInManager(filePath); err != nil {
		log.Printf("Error revealing file %s: %v", filePath, err)
		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyErrorOpeningFile)+": "+err.Error()), ui.window.Canvas())
		return
	}
	log.Printf("File revealed successfully: %s", filePath)
}

// onOpenFile opens an image with the default application
func (ui *RootUI) onOpenFile(filePath string) {
	if err := platform.OpenFileWithDefaultApp(filePath); err != nil {
		log.Printf("Error opening file %s: %v", filePath, err)
		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyErrorOpeningFile)+": "+err.Error()), ui.window.Canvas())
		return
	}
	log.Printf("File opened successfully: %s", filePath)
}

// onCopyPath copies an image path to the clipboard
func (ui *RootUI) onCopyPath(filePath string) {
	fyne.CurrentApp().Clipboard().SetContent(filePath)
	ui.showToast(ui.localization.GetText(KeyPathCopied), filePath)
}

// showNotification displays a message in the notification panel under the toolbar.
// When spinning is true, a spinner is shown to indicate background activity.
func (ui *RootUI) showNotification(message string, spinning bool) {
	if ui.notificationLabel == nil || ui.notificationContainer == nil || ui.notificationSpinner == nil {
		return
	}
	fyne.Do(func() {
		ui.notificationLabel.SetText(message)
		if spinning {
			ui.notificationSpinner.Show()
		} else {
			ui.notificationSpinner.Hide()
		}
		ui.notificationContainer.Show()
		ui.notificationContainer.Refresh()
	})
}

// hideNotification hides the notification panel.
func (ui *RootUI) hideNotification() {
	if ui.notificationContainer == nil || ui.notificationSpinner == nil {
		return
	}
	fyne.Do(func() {
		ui.notificationSpinner.Hide()
		ui.notificationContainer.Hide()
	})
}

// showToast shows a short-lived popup in the top-right corner
func (ui *RootUI) showToast(title, message string) {
	titleLabel := widget.NewLabel(title)
	titleLabel.TextStyle = fyne.TextStyle{Bold: true}

	messageLabel := widget.NewLabel(message)
	messageLabel.Truncation = fyne.TextTruncateEllipsis

	var toastPopup *widget.PopUp
	closeBtn := widget.NewButton(IconClose, func() {
		if toastPopup != nil {
			toastPopup.Hide()
		}
	})
	closeBtn.Importance = widget.LowImportance

	header := container.NewBorder(nil, nil, titleLabel, closeBtn)
	toastPopup = widget.NewPopUp(container.NewVBox(header, messageLabel), ui.window.Canvas())

	canvasSize := ui.window.Canvas().Size()
	toastSize := fyne.NewSize(ToastWidth, ToastHeight)
	toastPopup.Resize(toastSize)
	toastPopup.Move(fyne.NewPos(canvasSize.Width-toastSize.Width-ToastMargin, ToastMargin))
	toastPopup.Show()

	time.AfterFunc(ToastAutoHide, func() {
		fyne.Do(toastPopup.Hide)
	})
}

// shutdown stops background work when the window closes
func (ui *RootUI) shutdown() {
	ui.loader.Cancel()
	if ui.watcher != nil {
		ui.watcher.Close()
		ui.watcher = nil
	}
	log.Printf("Window closed")
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
