package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jeshuam/square-metre-garden-manager/internal/api"
	"github.com/jeshuam/square-metre-garden-manager/internal/catalog"
	"github.com/jeshuam/square-metre-garden-manager/internal/config"
	"github.com/jeshuam/square-metre-garden-manager/internal/garden"
	"github.com/jeshuam/square-metre-garden-manager/internal/store"
	"github.com/jeshuam/square-metre-garden-manager/internal/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	cat, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		return fmt.Errorf("loading plant catalog: %w", err)
	}

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	return ui.NewApp(st, cfg, cat).Execute()
}

// openStore picks the garden store from the configured storage mode.
func openStore(cfg *config.Config) (garden.Store, error) {
	switch cfg.Storage.Mode {
	case config.ModeRemote:
		return api.NewClient(cfg.API.BaseURL), nil
	default:
		if err := os.MkdirAll(filepath.Dir(cfg.Storage.DBPath), 0o755); err != nil {
			return nil, fmt.Errorf("creating data directory: %w", err)
		}
		st, err := store.New(cfg.Storage.DBPath)
		if err != nil {
			return nil, fmt.Errorf("opening database: %w", err)
		}
		return st, nil
	}
}
