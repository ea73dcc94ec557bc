package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeshuam/square-metre-garden-manager/internal/dateutil"
	"github.com/jeshuam/square-metre-garden-manager/internal/garden"
	"github.com/jeshuam/square-metre-garden-manager/internal/timeline"
)

const cellWidth = 12

// View renders the planner.
func (m Model) View() string {
	if m.err != nil {
		return m.styles.ErrorStyle.Render("Error: "+m.err.Error()) + "\n\nPress q to quit.\n"
	}
	if m.loading || m.displayGarden() == nil {
		return "Loading garden...\n"
	}

	g := m.displayGarden()

	var b strings.Builder

	title := fmt.Sprintf("%s · %s", g.Name, m.viewDate.Format("Mon, 02 Jan 2006"))
	b.WriteString(m.styles.TitleStyle.Render(title))
	if m.saving {
		b.WriteString("  " + m.styles.SavingStyle.Render("saving..."))
	}
	b.WriteString("\n\n")

	b.WriteString(m.renderGrid(g))
	b.WriteString("\n")
	b.WriteString(m.renderTimelines(g))

	if m.mode == ModeSow {
		b.WriteString("\n" + m.styles.HeaderStyle.Render("Sow: ") + m.prompt.View() + "\n")
	}

	b.WriteString("\n" + m.renderFooter())
	return b.String()
}

// renderGrid draws the slot grid with per-day activity markers.
func (m Model) renderGrid(g *garden.Garden) string {
	var b strings.Builder

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			idx, err := g.SlotIndex(x, y)
			if err != nil {
				continue
			}

			cell := m.renderCell(g.Slots[idx])
			if m.cursor.X == x && m.cursor.Y == y {
				cell = m.styles.CursorStyle.Render(cell)
			}
			b.WriteString(cell)
		}
		b.WriteByte('\n')
	}

	return b.String()
}

func (m Model) renderCell(slot garden.Slot) string {
	activity := garden.SlotActivity(slot, m.viewDate)

	var style lipgloss.Style
	var text string
	switch {
	case activity.Sow != nil:
		style, text = m.styles.CellSowStyle, "* "+activity.Sow.Name
	case activity.Harvest != nil:
		style, text = m.styles.CellHarvestStyle, "! "+activity.Harvest.Name
	case activity.Growing != nil:
		style, text = m.styles.CellGrowingStyle, "~ "+activity.Growing.Name
	default:
		style, text = m.styles.CellEmptyStyle, "."
	}

	if len(text) > cellWidth {
		text = text[:cellWidth]
	}
	return style.Width(cellWidth).Render(text)
}

// renderTimelines draws one proportional bar per slot for the window
// centered on the view date.
func (m Model) renderTimelines(g *garden.Garden) string {
	half := m.config.UI.WindowDays / 2
	windowStart := dateutil.AddDays(m.viewDate, -half)
	windowEnd := dateutil.AddDays(m.viewDate, m.config.UI.WindowDays-half)

	barWidth := m.width - 10
	if barWidth < 20 {
		barWidth = 20
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s .. %s\n",
		m.styles.HeaderStyle.Render("Timeline"),
		dateutil.Key(windowStart),
		dateutil.Key(windowEnd))

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			idx, err := g.SlotIndex(x, y)
			if err != nil {
				continue
			}
			fmt.Fprintf(&b, "(%d,%d) %s\n", x, y, m.renderBar(g.Slots[idx], windowStart, windowEnd, barWidth))
		}
	}

	return b.String()
}

func (m Model) renderBar(slot garden.Slot, windowStart, windowEnd time.Time, barWidth int) string {
	segments, err := timeline.Layout(slot, windowStart, windowEnd)
	if err != nil {
		return m.styles.ErrorStyle.Render(err.Error())
	}

	widths := timeline.RenderWidths(segments, barWidth)

	var bar strings.Builder
	var labels []string
	for i, s := range segments {
		if widths[i] <= 0 {
			continue
		}
		switch s.Kind {
		case timeline.KindGap:
			bar.WriteString(m.styles.GapStyle.Render(strings.Repeat("·", widths[i])))
		case timeline.KindPlanting:
			block := strings.Repeat("█", widths[i])
			if s.Band%2 == 0 {
				bar.WriteString(m.styles.BandStyle.Render(block))
			} else {
				bar.WriteString(m.styles.BandAltStyle.Render(block))
			}
			labels = append(labels, s.Label)
		}
	}

	if len(labels) == 0 {
		return m.styles.GapStyle.Render("(empty)")
	}
	return bar.String() + "  " + m.styles.GapStyle.Render(strings.Join(labels, ", "))
}

func (m Model) renderFooter() string {
	if m.statusMsg != "" {
		return m.styles.StatusStyle.Render(m.statusMsg)
	}
	if m.mode == ModeSow {
		return m.styles.HelpStyle.Render("enter sow · tab complete · esc cancel")
	}
	return m.styles.HelpStyle.Render("←↓↑→ move · +/- day · {/} week · t today · s sow · r reload · q quit")
}
