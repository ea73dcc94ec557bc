// Package tui provides the interactive garden planner.
package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds all lipgloss styles for the TUI.
type Styles struct {
	colorAccent  lipgloss.Color
	colorSow     lipgloss.Color
	colorHarvest lipgloss.Color
	colorGrowing lipgloss.Color
	colorMuted   lipgloss.Color
	colorWarning lipgloss.Color

	TitleStyle  lipgloss.Style
	HeaderStyle lipgloss.Style

	// Slot cell styles
	CellStyle        lipgloss.Style
	CellSowStyle     lipgloss.Style
	CellHarvestStyle lipgloss.Style
	CellGrowingStyle lipgloss.Style
	CellEmptyStyle   lipgloss.Style
	CursorStyle      lipgloss.Style

	// Timeline bar styles, alternating per band
	BandStyle    lipgloss.Style
	BandAltStyle lipgloss.Style
	GapStyle     lipgloss.Style

	// Footer
	StatusStyle lipgloss.Style
	ErrorStyle  lipgloss.Style
	HelpStyle   lipgloss.Style
	SavingStyle lipgloss.Style
}

// NewStyles creates the default style set.
func NewStyles() *Styles {
	s := &Styles{
		colorAccent:  lipgloss.Color("12"),
		colorSow:     lipgloss.Color("10"),
		colorHarvest: lipgloss.Color("11"),
		colorGrowing: lipgloss.Color("14"),
		colorMuted:   lipgloss.Color("8"),
		colorWarning: lipgloss.Color("9"),
	}

	s.TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(s.colorAccent)
	s.HeaderStyle = lipgloss.NewStyle().Bold(true)

	cell := lipgloss.NewStyle().Padding(0, 1)
	s.CellStyle = cell
	s.CellSowStyle = cell.Foreground(s.colorSow).Bold(true)
	s.CellHarvestStyle = cell.Foreground(s.colorHarvest).Bold(true)
	s.CellGrowingStyle = cell.Foreground(s.colorGrowing)
	s.CellEmptyStyle = cell.Foreground(s.colorMuted)
	s.CursorStyle = lipgloss.NewStyle().Reverse(true)

	s.BandStyle = lipgloss.NewStyle().Foreground(s.colorGrowing)
	s.BandAltStyle = lipgloss.NewStyle().Foreground(s.colorSow)
	s.GapStyle = lipgloss.NewStyle().Foreground(s.colorMuted)

	s.StatusStyle = lipgloss.NewStyle().Foreground(s.colorAccent)
	s.ErrorStyle = lipgloss.NewStyle().Foreground(s.colorWarning).Bold(true)
	s.HelpStyle = lipgloss.NewStyle().Foreground(s.colorMuted)
	s.SavingStyle = lipgloss.NewStyle().Foreground(s.colorHarvest)

	return s
}
