package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyURLLabel          = "url_label"
	KeyURLPlaceholder    = "url_placeholder"
	KeySavePathLabel     = "save_path_label"
	KeySelectPath        = "select_path"
	KeyDownload          = "download"
	KeyShowInFolder      = "show_in_folder"
	KeyLog               = "log"
	KeyFile              = "file"
	KeySettings          = "settings"
	KeyLanguage          = "language"
	KeyClose             = "close"
	KeyDownloaderBinary  = "downloader_binary"
	KeyConverterBinary   = "converter_binary"
	KeyToolFound         = "tool_found"
	KeyToolMissing       = "tool_missing"
	KeyErrorOpeningFile  = "error_opening_file"
	KeyStageIdle         = "stage_idle"
	KeyStageDownloading  = "stage_downloading"
	KeyStageConverting   = "stage_converting"
	KeyStageCompleted    = "stage_completed"
	KeyStageDownloadFail = "stage_download_failed"
	KeyStageConvertFail  = "stage_convert_failed"
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
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "YT Downloader",
		KeyURLLabel:          "YouTube URL:",
		KeyURLPlaceholder:    "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		KeySavePathLabel:     "Save at:",
		KeySelectPath:        "Select path...",
		KeyDownload:          "Download",
		KeyShowInFolder:      "Show in folder",
		KeyLog:               "Log",
		KeyFile:              "File",
		KeySettings:          "Settings",
		KeyLanguage:          "Language",
		KeyClose:             "Close",
		KeyDownloaderBinary:  "Downloader",
		KeyConverterBinary:   "Converter",
		KeyToolFound:         "found",
		KeyToolMissing:       "not found",
		KeyErrorOpeningFile:  "Error opening file",
		KeyStageIdle:         "Ready",
		KeyStageDownloading:  "Downloading...",
		KeyStageConverting:   "Converting to MOV...",
		KeyStageCompleted:    "Done",
		KeyStageDownloadFail: "Download failed",
		KeyStageConvertFail:  "Conversion failed",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "YT Загрузчик",
		KeyURLLabel:          "Ссылка YouTube:",
		KeySavePathLabel:     "Сохранить в:",
		KeySelectPath:        "Выбрать путь...",
		KeyDownload:          "Скачать",
		KeyShowInFolder:      "Показать в папке",
		KeyLog:               "Журнал",
		KeyFile:              "Файл",
		KeySettings:          "Настройки",
		KeyLanguage:          "Язык",
		KeyClose:             "Закрыть",
		KeyDownloaderBinary:  "Загрузчик",
		KeyConverterBinary:   "Конвертер",
		KeyToolFound:         "найден",
		KeyToolMissing:       "не найден",
		KeyErrorOpeningFile:  "Ошибка открытия файла",
		KeyStageIdle:         "Готово к работе",
		KeyStageDownloading:  "Загрузка...",
		KeyStageConverting:   "Конвертация в MOV...",
		KeyStageCompleted:    "Готово",
		KeyStageDownloadFail: "Ошибка загрузки",
		KeyStageConvertFail:  "Ошибка конвертации",
	}

	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "YT Downloader",
		KeyURLLabel:          "URL do YouTube:",
		KeySavePathLabel:     "Salvar em:",
		KeySelectPath:        "Selecionar caminho...",
		KeyDownload:          "Baixar",
		KeyShowInFolder:      "Mostrar na pasta",
		KeyLog:               "Registro",
		KeyFile:              "Arquivo",
		KeySettings:          "Configurações",
		KeyLanguage:          "Idioma",
		KeyClose:             "Fechar",
		KeyDownloaderBinary:  "Downloader",
		KeyConverterBinary:   "Conversor",
		KeyToolFound:         "encontrado",
		KeyToolMissing:       "não encontrado",
		KeyErrorOpeningFile:  "Erro ao abrir arquivo",
		KeyStageIdle:         "Pronto",
		KeyStageDownloading:  "Baixando...",
		KeyStageConverting:   "Convertendo para MOV...",
		KeyStageCompleted:    "Concluído",
		KeyStageDownloadFail: "Falha no download",
		KeyStageConvertFail:  "Falha na conversão",
	}
}
