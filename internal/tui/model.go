package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeshuam/square-metre-garden-manager/internal/catalog"
	"github.com/jeshuam/square-metre-garden-manager/internal/config"
	"github.com/jeshuam/square-metre-garden-manager/internal/dateutil"
	"github.com/jeshuam/square-metre-garden-manager/internal/garden"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModeSow         // Typing a plant name into the sow prompt
)

// Position is the slot cursor.
type Position struct {
	X int
	Y int
}

// Model is the main TUI model.
type Model struct {
	// Dependencies
	store   garden.Store
	config  *config.Config
	catalog catalog.Catalog

	styles *Styles

	// Garden state. garden is the last committed document; candidate is
	// the optimistic document of the single in-flight save, promoted to
	// garden when the save succeeds and dropped when it fails.
	gardenName string
	garden     *garden.Garden
	candidate  *garden.Garden
	saving     bool
	loading    bool

	// View state
	viewDate time.Time
	cursor   Position
	mode     Mode

	// Components
	prompt textinput.Model

	// Terminal dimensions
	width  int
	height int

	// Messages
	statusMsg string
	err       error
}

// New creates a new TUI model.
func New(store garden.Store, cfg *config.Config, cat catalog.Catalog, gardenName string) *Model {
	ti := textinput.New()
	ti.Placeholder = "plant name"
	ti.CharLimit = 64
	ti.Width = 24

	return &Model{
		store:      store,
		config:     cfg,
		catalog:    cat,
		styles:     NewStyles(),
		gardenName: gardenName,
		viewDate:   dateutil.Today(),
		mode:       ModeNormal,
		prompt:     ti,
		loading:    true,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return loadGarden(m.store, m.gardenName)
}

// displayGarden returns the garden currently shown: the in-flight
// candidate while a save is pending, the committed garden otherwise.
func (m Model) displayGarden() *garden.Garden {
	if m.saving && m.candidate != nil {
		return m.candidate
	}
	return m.garden
}

// Run starts the TUI.
func Run(store garden.Store, cfg *config.Config, cat catalog.Catalog, gardenName string) error {
	p := tea.NewProgram(New(store, cfg, cat, gardenName), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
