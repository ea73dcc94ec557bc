// Package ui implements the command line interface.
package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jeshuam/square-metre-garden-manager/internal/catalog"
	"github.com/jeshuam/square-metre-garden-manager/internal/config"
	"github.com/jeshuam/square-metre-garden-manager/internal/garden"
	"github.com/jeshuam/square-metre-garden-manager/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	store   garden.Store
	config  *config.Config
	catalog catalog.Catalog
	root    *cobra.Command
}

// NewApp creates a new CLI application with the given store, config and catalog.
func NewApp(store garden.Store, cfg *config.Config, cat catalog.Catalog) *App {
	a := &App{store: store, config: cfg, catalog: cat}

	a.root = &cobra.Command{
		Use:   "smgm [garden]",
		Short: "A planner for square metre gardens",
		Long: `Smgm plans plantings across the slots of a square metre garden.

Each slot holds a timeline of plantings; sowing a crop schedules its
harvest from the growth period in the plant catalog. Running smgm with
no subcommand opens the interactive planner.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			name := a.config.Garden.Default
			if len(args) > 0 {
				name = args[0]
			}
			if name == "" {
				return fmt.Errorf("no garden named; pass one or set a default in the config")
			}
			return tui.Run(a.store, a.config, a.catalog, name)
		},
	}

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.newCmd())
	a.root.AddCommand(a.listCmd())
	a.root.AddCommand(a.deleteCmd())
	a.root.AddCommand(a.showCmd())
	a.root.AddCommand(a.sowCmd())
	a.root.AddCommand(a.plantsCmd())
	a.root.AddCommand(a.exportCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("smgm %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}
