package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeshuam/square-metre-garden-manager/internal/garden"
)

// GardenLoadedMsg is sent when the garden document is loaded.
type GardenLoadedMsg struct {
	Garden *garden.Garden
}

// GardenSavedMsg is sent when a save round trip succeeds.
type GardenSavedMsg struct{}

// SaveFailedMsg is sent when a save round trip fails; the candidate
// garden is discarded and the last committed garden stays on screen.
type SaveFailedMsg struct {
	Err error
}

// ErrMsg is sent when a non-save operation fails.
type ErrMsg struct {
	Err error
}

// ClearStatusMsg clears the transient status line.
type ClearStatusMsg struct{}

// loadGarden fetches the garden document.
func loadGarden(store garden.Store, name string) tea.Cmd {
	return func() tea.Msg {
		g, err := store.Get(context.Background(), name)
		if err != nil {
			return ErrMsg{Err: err}
		}
		return GardenLoadedMsg{Garden: g}
	}
}

// saveGarden persists the candidate garden document.
func saveGarden(store garden.Store, g *garden.Garden) tea.Cmd {
	return func() tea.Msg {
		if err := store.Put(context.Background(), g); err != nil {
			return SaveFailedMsg{Err: err}
		}
		return GardenSavedMsg{}
	}
}
