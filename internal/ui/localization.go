package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle         = "app_title"
	KeyOpen             = "open"
	KeyOpenFolder       = "open_folder"
	KeyReload           = "reload"
	KeyClearSelection   = "clear_selection"
	KeySettings         = "settings"
	KeyFile             = "file"
	KeyLanguage         = "language"
	KeyGalleryDirectory = "gallery_directory"
	KeyDecodeWorkers    = "decode_workers"
	KeyRowRatio         = "row_ratio"
	KeyRowSpacing       = "row_spacing"
	KeyWindowSize       = "window_size"
	KeyWatchDirectory   = "watch_directory"
	KeyLayoutSettings   = "layout_settings"
	KeyInterface        = "interface"
	KeyNextStart        = "next_start"
	KeySave             = "save"
	KeyCancel           = "cancel"
	KeyBrowse           = "browse"
	KeySettingsSaved    = "settings_saved"
	KeyScanning         = "scanning"
	KeyDecoding         = "decoding"
	KeyScanFailed       = "scan_failed"
	KeyNoImages         = "no_images"
	KeyImages           = "images"
	KeySelected         = "selected"
	KeySkipped          = "skipped"
	KeyDirectoryChanged = "directory_changed"
	KeyReveal           = "reveal"
	KeyCopyPath         = "copy_path"
	KeyPathCopied       = "path_copied"
	KeyErrorOpeningFile = "error_opening_file"
	KeyDecodeFailed     = "decode_failed"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:         "Photo Viewer",
		KeyOpen:             "Open",
		KeyOpenFolder:       "Open Folder...",
		KeyReload:           "Reload",
		KeyClearSelection:   "Clear Selection",
		KeySettings:         "Settings",
		KeyFile:             "File",
		KeyLanguage:         "Language",
		KeyGalleryDirectory: "Gallery Directory",
		KeyDecodeWorkers:    "Decode Workers",
		KeyRowRatio:         "Rows per Window Height",
		KeyRowSpacing:       "Row Spacing",
		KeyWindowSize:       "Window Size",
		KeyWatchDirectory:   "Reload when the folder changes",
		KeyLayoutSettings:   "Layout Settings",
		KeyInterface:        "Interface Settings",
		KeyNextStart:        "Layout changes apply on next start",
		KeySave:             "Save",
		KeyCancel:           "Cancel",
		KeyBrowse:           "Browse",
		KeySettingsSaved:    "Settings saved successfully!",
		KeyScanning:         "Scanning",
		KeyDecoding:         "Decoding images",
		KeyScanFailed:       "Failed to read folder",
		KeyNoImages:         "No images in this folder",
		KeyImages:           "images",
		KeySelected:         "selected",
		KeySkipped:          "skipped",
		KeyDirectoryChanged: "Folder changed, reloading",
		KeyReveal:           "Reveal",
		KeyCopyPath:         "Copy Path",
		KeyPathCopied:       "Path copied to clipboard",
		KeyErrorOpeningFile: "Error opening file",
		KeyDecodeFailed:     "cannot decode",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:         "Просмотр фото",
		KeyOpen:             "Открыть",
		KeyOpenFolder:       "Открыть папку...",
		KeyReload:           "Обновить",
		KeyClearSelection:   "Снять выделение",
		KeySettings:         "Настройки",
		KeyFile:             "Файл",
		KeyLanguage:         "Язык",
		KeyGalleryDirectory: "Папка галереи",
		KeyDecodeWorkers:    "Потоков декодирования",
		KeyRowRatio:         "Рядов на высоту окна",
		KeyRowSpacing:       "Отступ рядов",
		KeyWindowSize:       "Размер окна",
		KeyWatchDirectory:   "Обновлять при изменении папки",
		KeyLayoutSettings:   "Настройки раскладки",
		KeyInterface:        "Настройки интерфейса",
		KeyNextStart:        "Раскладка изменится при следующем запуске",
		KeySave:             "Сохранить",
		KeyCancel:           "Отмена",
		KeyBrowse:           "Обзор",
		KeySettingsSaved:    "Настройки успешно сохранены!",
		KeyScanning:         "Сканирование",
		KeyDecoding:         "Декодирование изображений",
		KeyScanFailed:       "Не удалось прочитать папку",
		KeyNoImages:         "В этой папке нет изображений",
		KeyImages:           "изображений",
		KeySelected:         "выбрано",
		KeySkipped:          "пропущено",
		KeyDirectoryChanged: "Папка изменилась, обновление",
		KeyReveal:           "Показать",
		KeyCopyPath:         "Копировать путь",
		KeyPathCopied:       "Путь скопирован",
		KeyErrorOpeningFile: "Ошибка открытия файла",
		KeyDecodeFailed:     "не удалось декодировать",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:         "Visualizador de Fotos",
		KeyOpen:             "Abrir",
		KeyOpenFolder:       "Abrir Pasta...",
		KeyReload:           "Recarregar",
		KeyClearSelection:   "Limpar Seleção",
		KeySettings:         "Configurações",
		KeyFile:             "Arquivo",
		KeyLanguage:         "Idioma",
		KeyGalleryDirectory: "Diretório da Galeria",
		KeyDecodeWorkers:    "Decodificadores Paralelos",
		KeyRowRatio:         "Linhas por Altura da Janela",
		KeyRowSpacing:       "Espaçamento das Linhas",
		KeyWindowSize:       "Tamanho da Janela",
		KeyWatchDirectory:   "Recarregar quando a pasta mudar",
		KeyLayoutSettings:   "Configurações de Layout",
		KeyInterface:        "Configurações de Interface",
		KeyNextStart:        "Mudanças de layout valem no próximo início",
		KeySave:             "Salvar",
		KeyCancel:           "Cancelar",
		KeyBrowse:           "Navegar",
		KeySettingsSaved:    "Configurações salvas com sucesso!",
		KeyScanning:         "Verificando",
		KeyDecoding:         "Decodificando imagens",
		KeyScanFailed:       "Falha ao ler a pasta",
		KeyNoImages:         "Nenhuma imagem nesta pasta",
		KeyImages:           "imagens",
		KeySelected:         "selecionadas",
		KeySkipped:          "ignoradas",
		KeyDirectoryChanged: "Pasta alterada, recarregando",
		KeyReveal:           "Mostrar",
		KeyCopyPath:         "Copiar Caminho",
		KeyPathCopied:       "Caminho copiado",
		KeyErrorOpeningFile: "Erro ao abrir arquivo",
		KeyDecodeFailed:     "não foi possível decodificar",
	}
}
