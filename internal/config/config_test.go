package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Storage.Mode != ModeLocal {
		t.Errorf("expected local storage mode, got %s", cfg.Storage.Mode)
	}
	if cfg.API.BaseURL != "http://localhost:5000" {
		t.Errorf("expected base_url http://localhost:5000, got %s", cfg.API.BaseURL)
	}
	if cfg.UI.WindowDays != 180 {
		t.Errorf("expected window_days 180, got %d", cfg.UI.WindowDays)
	}
	if cfg.Storage.DBPath == "" {
		t.Error("expected a default db_path")
	}
}

func TestLoadFrom_FileNotExists(t *testing.T) {
	cfg, err := LoadFrom("/nonexistent/path/config.toml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Should return defaults
	if cfg.Storage.Mode != ModeLocal {
		t.Errorf("expected default storage mode, got %s", cfg.Storage.Mode)
	}
}

func TestLoadFrom_ValidFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")

	content := `
[api]
base_url = "http://gardens.example.com"

[storage]
mode = "remote"

[garden]
default = "backyard"

[ui]
window_days = 90
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Storage.Mode != ModeRemote {
		t.Errorf("expected remote storage mode, got %s", cfg.Storage.Mode)
	}
	if cfg.API.BaseURL != "http://gardens.example.com" {
		t.Errorf("expected base_url http://gardens.example.com, got %s", cfg.API.BaseURL)
	}
	if cfg.Garden.Default != "backyard" {
		t.Errorf("expected default garden backyard, got %s", cfg.Garden.Default)
	}
	if cfg.UI.WindowDays != 90 {
		t.Errorf("expected window_days 90, got %d", cfg.UI.WindowDays)
	}
}

func TestLoadFrom_EnvOverrides(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")

	content := `
[api]
base_url = "http://from-file.example.com"
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	t.Setenv("SMGM_API_BASE_URL", "http://from-env.example.com")
	t.Setenv("SMGM_STORAGE_MODE", "remote")
	t.Setenv("SMGM_WINDOW_DAYS", "60")

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.API.BaseURL != "http://from-env.example.com" {
		t.Errorf("env override not applied, got %s", cfg.API.BaseURL)
	}
	if cfg.Storage.Mode != ModeRemote {
		t.Errorf("expected remote storage mode, got %s", cfg.Storage.Mode)
	}
	if cfg.UI.WindowDays != 60 {
		t.Errorf("expected window_days 60, got %d", cfg.UI.WindowDays)
	}
}

func TestLoadFrom_InvalidMode(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")

	content := `
[storage]
mode = "carrier-pigeon"
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if _, err := LoadFrom(configPath); err == nil {
		t.Error("expected error for invalid storage mode")
	}
}

func TestValidate_RemoteNeedsBaseURL(t *testing.T) {
	cfg := Default()
	cfg.Storage.Mode = ModeRemote
	cfg.API.BaseURL = ""

	if err := cfg.Validate(); err == nil {
		t.Error("expected error for remote mode without base_url")
	}
}

func TestValidate_WindowDays(t *testing.T) {
	cfg := Default()
	cfg.UI.WindowDays = 1

	if err := cfg.Validate(); err == nil {
		t.Error("expected error for window_days below 2")
	}
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg := Default()
	cfg.Garden.Default = "backyard"

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("reloading saved config: %v", err)
	}
	if loaded.Garden.Default != "backyard" {
		t.Errorf("round trip lost default garden, got %q", loaded.Garden.Default)
	}
}
