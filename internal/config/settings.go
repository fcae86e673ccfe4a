package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/ytget/ytpick/internal/platform"
)

// Backend selects the extractor implementation
type Backend string

const (
	BackendYTDLP  Backend = "yt-dlp"
	BackendNative Backend = "native"
)

// ErrUnknownBackend is returned for a backend name that is not supported
var ErrUnknownBackend = errors.New("unknown backend")

// Settings file location
const (
	AppDirName       = "ytpick"
	SettingsFileName = "config.yaml"
)

// Default values
const (
	DefaultBackend               = BackendYTDLP
	DefaultYTDLPPath             = "yt-dlp"
	DefaultFilenameTemplate      = "%(title)s.%(ext)s"
	DefaultLanguage              = "system"
	DefaultForceGenericExtractor = true
	DefaultRevealOnComplete      = false
)

// Settings holds the user configuration. The download directory is not part
// of it: files always go to the Downloads folder in the user's home.
type Settings struct {
	Backend               Backend `yaml:"backend"`
	YTDLPPath             string  `yaml:"ytdlp_path"`
	AutoInstall           bool    `yaml:"auto_install"`
	ForceGenericExtractor bool    `yaml:"force_generic_extractor"`
	Language              string  `yaml:"language"`
	RevealOnComplete      bool    `yaml:"reveal_on_complete"`
	Verbose               bool    `yaml:"verbose"`
	PlaylistLimit         int     `yaml:"playlist_limit"` // 0 lists every entry
}

// NewSettings returns settings populated with defaults
func NewSettings() *Settings {
	return &Settings{
		Backend:               DefaultBackend,
		YTDLPPath:             DefaultYTDLPPath,
		ForceGenericExtractor: DefaultForceGenericExtractor,
		Language:              DefaultLanguage,
		RevealOnComplete:      DefaultRevealOnComplete,
	}
}

// DefaultPath returns the settings file path inside the user config directory
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to get user config directory")
	}
	return filepath.Join(dir, AppDirName, SettingsFileName), nil
}

// Load reads settings from path. A missing file is not an error and yields
// defaults; keys absent from the file keep their default values.
func Load(path string) (*Settings, error) {
	s := NewSettings()
	if path == "" {
		return s, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, errors.Wrapf(err, "failed to read settings %s", path)
	}

	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, errors.Wrapf(err, "failed to parse settings %s", path)
	}

	if err := s.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid settings %s", path)
	}
	return s, nil
}

// Save writes settings to path, creating the parent directory
func (s *Settings) Save(path string) error {
	if err := platform.CreateDirectoryIfNotExists(filepath.Dir(path)); err != nil {
		return errors.Wrap(err, "failed to create settings directory")
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return errors.Wrap(err, "failed to encode settings")
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate checks that the settings can be used
func (s *Settings) Validate() error {
	switch s.Backend {
	case BackendYTDLP, BackendNative:
	default:
		return errors.Wrapf(ErrUnknownBackend, "%q", s.Backend)
	}
	if strings.TrimSpace(s.YTDLPPath) == "" {
		s.YTDLPPath = DefaultYTDLPPath
	}
	if s.Language == "" {
		s.Language = DefaultLanguage
	}
	if s.PlaylistLimit < 0 {
		s.PlaylistLimit = 0
	}
	return nil
}

// SetBackend sets the backend by name
func (s *Settings) SetBackend(name string) error {
	b := Backend(strings.ToLower(strings.TrimSpace(name)))
	switch b {
	case BackendYTDLP, BackendNative:
		s.Backend = b
		return nil
	}
	return errors.Wrapf(ErrUnknownBackend, "%q", name)
}

// SetLanguage sets the prompt language
func (s *Settings) SetLanguage(lang string) {
	if lang == "" {
		lang = DefaultLanguage
	}
	s.Language = lang
}

// GetDownloadDirectory returns the fixed download directory
func (s *Settings) GetDownloadDirectory() (string, error) {
	return platform.GetHomeDownloadsDir()
}

// OutputTemplate returns the output path template for a download directory
func OutputTemplate(downloadDir string) string {
	return filepath.Join(downloadDir, DefaultFilenameTemplate)
}
