package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeshuam/square-metre-garden-manager/internal/dateutil"
	"github.com/jeshuam/square-metre-garden-manager/internal/garden"
)

const statusDuration = 3 * time.Second

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case GardenLoadedMsg:
		m.garden = msg.Garden
		m.loading = false
		m.err = nil
		m.clampCursor()
		return m, nil

	case GardenSavedMsg:
		// Promote the optimistic candidate.
		m.garden = m.candidate
		m.candidate = nil
		m.saving = false
		m.statusMsg = "Saved"
		return m, clearStatusAfter(statusDuration)

	case SaveFailedMsg:
		// Keep the last committed garden; the candidate is dropped.
		m.candidate = nil
		m.saving = false
		m.statusMsg = "Save failed: " + msg.Err.Error()
		return m, clearStatusAfter(statusDuration)

	case ErrMsg:
		m.err = msg.Err
		m.loading = false
		return m, nil

	case ClearStatusMsg:
		m.statusMsg = ""
		return m, nil

	case tea.KeyMsg:
		if m.mode == ModeSow {
			return m.updateSowPrompt(msg)
		}
		return m.updateNormal(msg)
	}

	return m, nil
}

func (m Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "left", "h":
		m.cursor.X--
		m.clampCursor()
	case "right", "l":
		m.cursor.X++
		m.clampCursor()
	case "up", "k":
		m.cursor.Y--
		m.clampCursor()
	case "down", "j":
		m.cursor.Y++
		m.clampCursor()

	// The view date slider. Changing it never cancels an in-flight save.
	case "+", "=", "n":
		m.viewDate = dateutil.AddDays(m.viewDate, 1)
	case "-", "p":
		m.viewDate = dateutil.AddDays(m.viewDate, -1)
	case "}", ">":
		m.viewDate = dateutil.AddDays(m.viewDate, 7)
	case "{", "<":
		m.viewDate = dateutil.AddDays(m.viewDate, -7)
	case "t":
		m.viewDate = dateutil.Today()

	case "r":
		if m.saving {
			m.statusMsg = "Save in progress"
			return m, clearStatusAfter(statusDuration)
		}
		m.loading = true
		return m, loadGarden(m.store, m.gardenName)

	case "s", "enter":
		if m.garden == nil {
			return m, nil
		}
		if m.saving {
			m.statusMsg = "Save in progress"
			return m, clearStatusAfter(statusDuration)
		}
		m.mode = ModeSow
		m.prompt.SetValue("")
		m.prompt.Focus()
		return m, nil
	}

	return m, nil
}

func (m Model) updateSowPrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = ModeNormal
		m.prompt.Blur()
		return m, nil

	case "tab":
		if completed, ok := m.complete(m.prompt.Value()); ok {
			m.prompt.SetValue(completed)
			m.prompt.CursorEnd()
		}
		return m, nil

	case "enter":
		name := strings.TrimSpace(m.prompt.Value())
		m.mode = ModeNormal
		m.prompt.Blur()
		if name == "" {
			return m, nil
		}
		return m.sow(name)
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

// sow builds the optimistic candidate and starts the save round trip.
func (m Model) sow(plantType string) (tea.Model, tea.Cmd) {
	idx, err := m.garden.SlotIndex(m.cursor.X, m.cursor.Y)
	if err != nil {
		m.statusMsg = err.Error()
		return m, clearStatusAfter(statusDuration)
	}

	next, pos, err := garden.Sow(m.garden, idx, m.viewDate, plantType, m.catalog)
	if err != nil {
		m.statusMsg = err.Error()
		return m, clearStatusAfter(statusDuration)
	}

	p := next.Slots[idx][pos]
	m.candidate = next
	m.saving = true
	m.statusMsg = fmt.Sprintf("Sowing %s, harvest %s", p.Name, dateutil.Key(p.HarvestDate))
	return m, saveGarden(m.store, next)
}

// complete finds the unique catalog name with the given prefix.
func (m Model) complete(prefix string) (string, bool) {
	if prefix == "" {
		return "", false
	}
	lower := strings.ToLower(prefix)

	var match string
	for _, name := range m.catalog.Names() {
		if strings.HasPrefix(strings.ToLower(name), lower) {
			if match != "" {
				return "", false // ambiguous
			}
			match = name
		}
	}
	return match, match != ""
}

func (m *Model) clampCursor() {
	g := m.displayGarden()
	if g == nil {
		m.cursor = Position{}
		return
	}
	if m.cursor.X < 0 {
		m.cursor.X = 0
	}
	if m.cursor.X >= g.Width {
		m.cursor.X = g.Width - 1
	}
	if m.cursor.Y < 0 {
		m.cursor.Y = 0
	}
	if m.cursor.Y >= g.Height {
		m.cursor.Y = g.Height - 1
	}
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}
