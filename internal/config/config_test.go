package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCreatesDefaultOnFirstRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Timezone != "Europe/Madrid" {
		t.Errorf("Timezone = %q, want default", cfg.Timezone)
	}
	if cfg.RequestTimeoutSec != 15 {
		t.Errorf("RequestTimeoutSec = %d, want 15", cfg.RequestTimeoutSec)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("default config was not written: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("config permissions = %o, want 600", perm)
	}
}

func TestLoadExistingConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
timezone: UTC
webhook_url: https://example.test/recognize
request_timeout_sec: 5
schedule_file: /tmp/week.yaml
`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Timezone != "UTC" {
		t.Errorf("Timezone = %q", cfg.Timezone)
	}
	if cfg.WebhookURL != "https://example.test/recognize" {
		t.Errorf("WebhookURL = %q", cfg.WebhookURL)
	}
	// Unset fields are normalized to defaults.
	if len(cfg.CaptureCommand) == 0 {
		t.Error("CaptureCommand was not defaulted")
	}
	if cfg.AssetDir != "assets" {
		t.Errorf("AssetDir = %q, want default", cfg.AssetDir)
	}
}

func TestLoadMalformedConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("timezone: [nope"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected an error for malformed YAML")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	want := DefaultConfig()
	want.WebhookURL = "https://example.test/hook"
	want.ScheduleFile = "/data/week.yaml"

	if err := Save(path, want); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.WebhookURL != want.WebhookURL || got.ScheduleFile != want.ScheduleFile {
		t.Errorf("round trip mismatch: %+v", got)
	}
}
