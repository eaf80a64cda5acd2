// Package config loads and validates the recpub configuration file.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Publish holds the publishing defaults applied to every upload.
type Publish struct {
	TitleFormat string `toml:"title_format"`
	Description string `toml:"description"`
	Visibility  string `toml:"visibility"`
	MadeForKids bool   `toml:"made_for_kids"`
}

// YouTube holds per-destination extras for the upload wizard.
type YouTube struct {
	PlaylistName  string `toml:"playlist_name"`
	ThumbnailFile string `toml:"thumbnail_file"`
}

// Browser configures the shared persistent browsing session.
type Browser struct {
	ProfileDir  string `toml:"profile_dir"`
	DownloadDir string `toml:"download_dir"`
	Headless    bool   `toml:"headless"`
}

// Timeouts holds the bounded waits used by the browser drivers, in seconds.
type Timeouts struct {
	LoginWait      int `toml:"login_wait"`
	FieldWait      int `toml:"field_wait"`
	StepWait       int `toml:"step_wait"`
	ProcessingWait int `toml:"processing_wait"`
	DownloadWait   int `toml:"download_wait"`
}

// Config is the root configuration document.
type Config struct {
	LogLevel   string   `toml:"log_level"`
	LedgerPath string   `toml:"ledger_path"`
	Publish    Publish  `toml:"publish"`
	YouTube    YouTube  `toml:"youtube"`
	Browser    Browser  `toml:"browser"`
	Timeouts   Timeouts `toml:"timeouts"`
}

// DefaultConfigPath returns the expanded default configuration location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/recpub/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned
// config has all path fields expanded and normalized. A missing file is not
// an error; defaults apply.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		if _, err := os.Stat(expanded); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return "", false, fmt.Errorf("config file %s does not exist", expanded)
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}
	if _, err := os.Stat(defaultPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return defaultPath, false, nil
		}
		return "", false, fmt.Errorf("stat config: %w", err)
	}
	return defaultPath, true, nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

func (c *Config) normalize() error {
	var err error

	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}

	if strings.TrimSpace(c.LedgerPath) == "" {
		c.LedgerPath = defaultLedgerPath
	}
	if c.LedgerPath, err = expandPath(c.LedgerPath); err != nil {
		return fmt.Errorf("ledger_path: %w", err)
	}

	if strings.TrimSpace(c.Browser.ProfileDir) == "" {
		c.Browser.ProfileDir = defaultProfileDir
	}
	if c.Browser.ProfileDir, err = expandPath(c.Browser.ProfileDir); err != nil {
		return fmt.Errorf("browser.profile_dir: %w", err)
	}

	if strings.TrimSpace(c.Browser.DownloadDir) == "" {
		c.Browser.DownloadDir = os.TempDir()
	}
	if c.Browser.DownloadDir, err = expandPath(c.Browser.DownloadDir); err != nil {
		return fmt.Errorf("browser.download_dir: %w", err)
	}

	if c.YouTube.ThumbnailFile != "" {
		if c.YouTube.ThumbnailFile, err = expandPath(c.YouTube.ThumbnailFile); err != nil {
			return fmt.Errorf("youtube.thumbnail_file: %w", err)
		}
	}

	c.Publish.Visibility = strings.ToLower(strings.TrimSpace(c.Publish.Visibility))
	if c.Publish.Visibility == "" {
		c.Publish.Visibility = defaultVisibility
	}

	normalizeTimeouts(&c.Timeouts)
	return nil
}

func normalizeTimeouts(t *Timeouts) {
	if t.LoginWait <= 0 {
		t.LoginWait = defaultLoginWaitSeconds
	}
	if t.FieldWait <= 0 {
		t.FieldWait = defaultFieldWaitSeconds
	}
	if t.StepWait <= 0 {
		t.StepWait = defaultStepWaitSeconds
	}
	if t.ProcessingWait <= 0 {
		t.ProcessingWait = defaultProcessingWaitSeconds
	}
	if t.DownloadWait <= 0 {
		t.DownloadWait = defaultDownloadWaitSeconds
	}
}
