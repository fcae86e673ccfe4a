package ui

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/ytget/ytpick/internal/config"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyEnterURL          = "enter_url"
	KeyCheckingURL       = "checking_url"
	KeyPlaylistDetected  = "playlist_detected"
	KeyDownloadEntire    = "download_entire"
	KeyAvailableVideos   = "available_videos"
	KeyEnterIndices      = "enter_indices"
	KeyNotPlaylist       = "not_playlist"
	KeySelectQuality     = "select_quality"
	KeyEnterQuality      = "enter_quality"
	KeyDownloading       = "downloading"
	KeyDownloadCompleted = "download_completed"
	KeySavedTo           = "saved_to"
	KeyTaskDone          = "task_done"
	KeyTaskFailed        = "task_failed"
	KeyETA               = "eta"
)

// Language environment variables, in lookup order
var languageEnvVars = []string{"LC_ALL", "LC_MESSAGES", "LANG"}

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// ErrUnknownLanguage is returned for a language code without translations
var ErrUnknownLanguage = errors.New("unknown language")

// SystemLanguage selects the language of the current locale
const SystemLanguage = "system"

// SetLanguage sets the current language. SystemLanguage picks the language
// from the locale environment and falls back to English when it has no
// translations; any other code must be one of GetAvailableLanguages.
func (l *Localization) SetLanguage(lang string) error {
	if lang == SystemLanguage {
		lang = systemLanguage()
		if _, exists := l.GetAvailableLanguages()[lang]; !exists {
			lang = "en"
		}
	}

	if _, exists := l.GetAvailableLanguages()[lang]; !exists {
		return errors.Wrapf(ErrUnknownLanguage, "%q (available: en, ru, pt, %s)", lang, SystemLanguage)
	}
	l.currentLanguage = lang
	return nil
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

// systemLanguage returns the two-letter language of the current locale
func systemLanguage() string {
	for _, name := range languageEnvVars {
		value := os.Getenv(name)
		if value == "" || value == "C" || value == "POSIX" {
			continue
		}
		if len(value) >= 2 {
			return strings.ToLower(value[:2])
		}
	}
	return "en"
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:               "YOUTUBE VIDEO/PLAYLIST DOWNLOADER",
		KeyEnterURL:               "Enter the URL of the YouTube video or playlist: ",
		KeyCheckingURL:            "Checking if the URL is a playlist... Please wait.",
		KeyPlaylistDetected:       "PLAYLIST DETECTED",
		KeyDownloadEntire:         "Do you want to download the entire playlist? (y/n): ",
		KeyAvailableVideos:        "Available videos in the playlist:",
		KeyEnterIndices:           "Enter the numbers of the videos you want to download (e.g., 1, 3, 5): ",
		KeyNotPlaylist:            "This is not a playlist URL. Proceeding to download the video directly.",
		KeySelectQuality:          "SELECT VIDEO QUALITY",
		config.LabelQualityBest:   "Best",
		config.LabelQualityHigh:   "High (1080p)",
		config.LabelQualityMedium: "Medium (720p)",
		config.LabelQualityLow:    "Low (480p)",
		KeyEnterQuality:           "Enter the number corresponding to the desired quality: ",
		KeyDownloading:            "DOWNLOADING VIDEO",
		KeyDownloadCompleted:      "DOWNLOAD COMPLETED",
		KeySavedTo:                "Files saved to",
		KeyTaskDone:               "done",
		KeyTaskFailed:             "failed",
		KeyETA:                    "ETA",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:               "ЗАГРУЗЧИК ВИДЕО/ПЛЕЙЛИСТОВ YOUTUBE",
		KeyEnterURL:               "Введите URL видео или плейлиста YouTube: ",
		KeyCheckingURL:            "Проверяем, является ли URL плейлистом... Подождите.",
		KeyPlaylistDetected:       "ОБНАРУЖЕН ПЛЕЙЛИСТ",
		KeyDownloadEntire:         "Скачать весь плейлист? (y/n): ",
		KeyAvailableVideos:        "Видео в плейлисте:",
		KeyEnterIndices:           "Введите номера видео для загрузки (например, 1, 3, 5): ",
		KeyNotPlaylist:            "Это не плейлист. Скачиваем видео напрямую.",
		KeySelectQuality:          "ВЫБОР КАЧЕСТВА ВИДЕО",
		config.LabelQualityBest:   "Лучшее",
		config.LabelQualityHigh:   "Высокое (1080p)",
		config.LabelQualityMedium: "Среднее (720p)",
		config.LabelQualityLow:    "Низкое (480p)",
		KeyEnterQuality:           "Введите номер нужного качества: ",
		KeyDownloading:            "ЗАГРУЗКА ВИДЕО",
		KeyDownloadCompleted:      "ЗАГРУЗКА ЗАВЕРШЕНА",
		KeySavedTo:                "Файлы сохранены в",
		KeyTaskDone:               "готово",
		KeyTaskFailed:             "ошибка",
		KeyETA:                    "осталось",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:               "DOWNLOADER DE VÍDEOS/PLAYLISTS DO YOUTUBE",
		KeyEnterURL:               "Digite a URL do vídeo ou playlist do YouTube: ",
		KeyCheckingURL:            "Verificando se a URL é uma playlist... Aguarde.",
		KeyPlaylistDetected:       "PLAYLIST DETECTADA",
		KeyDownloadEntire:         "Deseja baixar a playlist inteira? (y/n): ",
		KeyAvailableVideos:        "Vídeos disponíveis na playlist:",
		KeyEnterIndices:           "Digite os números dos vídeos que deseja baixar (ex.: 1, 3, 5): ",
		KeyNotPlaylist:            "Esta URL não é uma playlist. Baixando o vídeo diretamente.",
		KeySelectQuality:          "SELECIONE A QUALIDADE DO VÍDEO",
		config.LabelQualityBest:   "Melhor",
		config.LabelQualityHigh:   "Alta (1080p)",
		config.LabelQualityMedium: "Média (720p)",
		config.LabelQualityLow:    "Baixa (480p)",
		KeyEnterQuality:           "Digite o número da qualidade desejada: ",
		KeyDownloading:            "BAIXANDO VÍDEO",
		KeyDownloadCompleted:      "DOWNLOAD CONCLUÍDO",
		KeySavedTo:                "Arquivos salvos em",
		KeyTaskDone:               "concluído",
		KeyTaskFailed:             "falhou",
		KeyETA:                    "restante",
	}
}
