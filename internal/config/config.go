// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Storage modes.
const (
	ModeRemote = "remote"
	ModeLocal  = "local"
)

// Config holds the application configuration.
type Config struct {
	API     APIConfig     `toml:"api"`
	Storage StorageConfig `toml:"storage"`
	Catalog CatalogConfig `toml:"catalog"`
	Garden  GardenConfig  `toml:"garden"`
	UI      UIConfig      `toml:"ui"`
}

// APIConfig holds remote garden API settings.
type APIConfig struct {
	BaseURL string `toml:"base_url"` // e.g., "http://localhost:5000"
}

// StorageConfig selects between the remote API and a local database.
type StorageConfig struct {
	Mode   string `toml:"mode"` // "remote" or "local"
	DBPath string `toml:"db_path"`
}

// CatalogConfig points at an alternative plant catalog file.
type CatalogConfig struct {
	Path string `toml:"path"` // empty means the built-in catalog
}

// GardenConfig holds garden defaults.
type GardenConfig struct {
	Default string `toml:"default"` // garden opened when none is named
}

// UIConfig holds display settings.
type UIConfig struct {
	WindowDays int `toml:"window_days"` // timeline span centered on the view date
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL: "http://localhost:5000",
		},
		Storage: StorageConfig{
			Mode:   ModeLocal,
			DBPath: defaultDBPath(),
		},
		Catalog: CatalogConfig{
			Path: "",
		},
		Garden: GardenConfig{
			Default: "",
		},
		UI: UIConfig{
			WindowDays: 180,
		},
	}
}

// defaultDBPath returns the default database path.
func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "smgm.db"
	}
	return filepath.Join(home, ".local", "share", "smgm", "smgm.db")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "smgm", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	cfg.Storage.DBPath = expandPath(cfg.Storage.DBPath)
	cfg.Catalog.Path = expandPath(cfg.Catalog.Path)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("SMGM_API_BASE_URL"); v != "" {
		cfg.API.BaseURL = v
	}
	if v := os.Getenv("SMGM_STORAGE_MODE"); v != "" {
		cfg.Storage.Mode = v
	}
	if v := os.Getenv("SMGM_DB_PATH"); v != "" {
		cfg.Storage.DBPath = v
	}
	if v := os.Getenv("SMGM_CATALOG_PATH"); v != "" {
		cfg.Catalog.Path = v
	}
	if v := os.Getenv("SMGM_DEFAULT_GARDEN"); v != "" {
		cfg.Garden.Default = v
	}
	if v := os.Getenv("SMGM_WINDOW_DAYS"); v != "" {
		if days, err := strconv.Atoi(v); err == nil {
			cfg.UI.WindowDays = days
		}
	}
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	switch c.Storage.Mode {
	case ModeRemote:
		if c.API.BaseURL == "" {
			return errors.New("api base_url must be set when storage mode is remote")
		}
	case ModeLocal:
		if c.Storage.DBPath == "" {
			return errors.New("db_path must be set when storage mode is local")
		}
	default:
		return fmt.Errorf("storage mode must be %q or %q, got %q", ModeRemote, ModeLocal, c.Storage.Mode)
	}

	if c.UI.WindowDays < 2 {
		return errors.New("window_days must be at least 2")
	}

	return nil
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
