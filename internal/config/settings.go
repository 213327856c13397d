package config

import (
	"os"
	"strings"

	"fyne.io/fyne/v2"
	"github.com/joho/godotenv"

	"github.com/mediasaver/media-saver/internal/model"
	"github.com/mediasaver/media-saver/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyBackendURL  = "backend_base_url"
	KeyDownloadDir = "download_directory"
	KeyDefaultKind = "default_kind"
)

// EnvBackendURL overrides every other backend address source when set.
const EnvBackendURL = "MEDIASAVER_BACKEND_URL"

// Backend addresses. The app talks to the local dev backend unless the env
// var or a saved preference points elsewhere.
const (
	LocalBackendURL      = "http://127.0.0.1:8000"
	ProductionBackendURL = "https://media-saver-backend.onrender.com"
)

// Default values
const (
	DefaultKind = model.KindMP4
)

// Settings manages application configuration. Resolution order for the
// backend address: environment variable, saved preference, local default.
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// LoadEnv loads a .env file if one is present. A missing file is fine; env
// vars set by the shell still apply.
func LoadEnv() {
	_ = godotenv.Load()
}

// GetBackendURL returns the backend base address, trailing slash trimmed
func (s *Settings) GetBackendURL() string {
	if env := strings.TrimSpace(os.Getenv(EnvBackendURL)); env != "" {
		return strings.TrimRight(env, "/")
	}

	url := s.app.Preferences().String(KeyBackendURL)
	if url == "" {
		return LocalBackendURL
	}
	return strings.TrimRight(url, "/")
}

// SetBackendURL saves the backend base address
func (s *Settings) SetBackendURL(url string) {
	s.app.Preferences().SetString(KeyBackendURL, strings.TrimRight(strings.TrimSpace(url), "/"))
}

// GetDownloadDirectory returns the configured download directory
func (s *Settings) GetDownloadDirectory() string {
	dir := s.app.Preferences().String(KeyDownloadDir)
	if dir == "" {
		defaultDir, err := platform.GetHomeDownloadsDir()
		if err != nil {
			defaultDir = "/tmp/downloads"
		}
		s.SetDownloadDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetDownloadDirectory sets the download directory
func (s *Settings) SetDownloadDirectory(dir string) {
	s.app.Preferences().SetString(KeyDownloadDir, dir)
}

// GetDefaultKind returns the output kind used when the user presses Enter
// instead of picking a button
func (s *Settings) GetDefaultKind() model.Kind {
	kind := model.Kind(s.app.Preferences().String(KeyDefaultKind))
	if !kind.IsValid() {
		s.SetDefaultKind(DefaultKind)
		return DefaultKind
	}
	return kind
}

// SetDefaultKind sets the default output kind
func (s *Settings) SetDefaultKind(kind model.Kind) {
	if !kind.IsValid() {
		kind = DefaultKind
	}
	s.app.Preferences().SetString(KeyDefaultKind, kind.String())
}
