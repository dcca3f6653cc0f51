// Package config provides the YAML-based application configuration with
// first-run creation, defaulting, and atomic saves.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration.
type Config struct {
	// Timezone is the IANA timezone used to resolve "today" and "now"
	// (e.g. "Europe/Madrid"). "Local" or empty uses the system timezone.
	Timezone string `yaml:"timezone"`

	// WebhookURL is the recognition webhook endpoint. The captured JPEG is
	// POSTed here and the response carries the patient's week schedule.
	WebhookURL string `yaml:"webhook_url"`

	// RequestTimeoutSec bounds a single recognition request.
	RequestTimeoutSec int `yaml:"request_timeout_sec"`

	// CaptureCommand is the external camera capture command. The token
	// "{file}" is replaced with the JPEG output path; if absent, the path
	// is appended as the final argument.
	CaptureCommand []string `yaml:"capture_command"`

	// SpeakCommand is the external text-to-speech command. The token
	// "{text}" is replaced with the sentence to narrate; if absent, the
	// sentence is appended as the final argument.
	SpeakCommand []string `yaml:"speak_command"`

	// ScheduleFile optionally points at a local week-schedule file
	// (YAML or JSON) used by the offline commands.
	ScheduleFile string `yaml:"schedule_file,omitempty"`

	// AssetDir is the directory holding the activity and room images.
	AssetDir string `yaml:"asset_dir"`
}

// DefaultConfig returns an in-memory default configuration.
func DefaultConfig() *Config {
	return &Config{
		Timezone:          "Europe/Madrid",
		WebhookURL:        "",
		RequestTimeoutSec: 15,
		CaptureCommand:    []string{"libcamera-still", "-n", "-o", "{file}"},
		SpeakCommand:      []string{"espeak-ng", "-v", "es", "{text}"},
		AssetDir:          "assets",
	}
}

// Normalize fills in missing/zero values so partially-filled configs from
// older versions still behave.
func (c *Config) Normalize() {
	if c.Timezone == "" {
		c.Timezone = "Europe/Madrid"
	}
	if c.RequestTimeoutSec <= 0 {
		c.RequestTimeoutSec = 15
	}
	if len(c.CaptureCommand) == 0 {
		c.CaptureCommand = []string{"libcamera-still", "-n", "-o", "{file}"}
	}
	if len(c.SpeakCommand) == 0 {
		c.SpeakCommand = []string{"espeak-ng", "-v", "es", "{text}"}
	}
	if c.AssetDir == "" {
		c.AssetDir = "assets"
	}
}

// ExpandPath expands a leading "~/" to the user's home directory.
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

// Load loads configuration from the given YAML path. A missing file is a
// first run: a default config is written (0600) and returned.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is empty")
	}
	path = ExpandPath(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := DefaultConfig()
			if err := Save(path, cfg); err != nil {
				return cfg, err
			}
			return cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.Normalize()
	return &cfg, nil
}

// Save writes the configuration atomically (temp file + rename) with 0600
// permissions, creating the parent directory if needed.
func Save(path string, cfg *Config) error {
	if path == "" {
		return errors.New("config path is empty")
	}
	if cfg == nil {
		return errors.New("config is nil")
	}
	path = ExpandPath(path)
	cfg.Normalize()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".rehaplan-config-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
