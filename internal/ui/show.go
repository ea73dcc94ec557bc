package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/jeshuam/square-metre-garden-manager/internal/dateutil"
	"github.com/jeshuam/square-metre-garden-manager/internal/garden"
	"github.com/jeshuam/square-metre-garden-manager/internal/timeline"
)

const slotCellWidth = 14

func (a *App) showCmd() *cobra.Command {
	var (
		date    string
		copyOut bool
		noColor bool
	)

	cmd := &cobra.Command{
		Use:   "show [garden]",
		Short: "Show a garden on a given day",
		Long: `Display the slot grid and per-slot timelines for a garden.

Each slot shows what happens on the view date: a sowing, a harvest, a
growing crop, or nothing. The timeline bars below span a window of days
centered on the view date.`,
		Example: `  smgm show backyard
  smgm show backyard --date=2026-09-15
  smgm show backyard --copy`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if noColor || copyOut {
				DisableColor()
			}

			name := a.config.Garden.Default
			if len(args) > 0 {
				name = args[0]
			}
			if name == "" {
				return fmt.Errorf("no garden named; pass one or set a default in the config")
			}

			viewDate, err := dateutil.ParseDate(date)
			if err != nil {
				return err
			}

			g, err := a.store.Get(context.Background(), name)
			if err != nil {
				return fmt.Errorf("fetching garden: %w", err)
			}

			out, err := a.renderGarden(g, viewDate)
			if err != nil {
				return err
			}

			fmt.Print(out)

			if copyOut {
				if err := clipboard.WriteAll(out); err != nil {
					return fmt.Errorf("copying to clipboard: %w", err)
				}
				fmt.Println("Copied to clipboard.")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "View date (YYYY-MM-DD, default: today)")
	cmd.Flags().BoolVar(&copyOut, "copy", false, "Copy the plain-text output to the clipboard")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	return cmd
}

// renderGarden builds the grid plus timeline view for a single day.
func (a *App) renderGarden(g *garden.Garden, viewDate time.Time) (string, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "=== %s · %s ===\n\n",
		formatHeader(g.Name),
		viewDate.Format("Monday, January 2, 2006"))

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			idx, err := g.SlotIndex(x, y)
			if err != nil {
				return "", err
			}
			b.WriteString(padCell(slotLabel(g.Slots[idx], viewDate), slotCellWidth))
		}
		b.WriteByte('\n')
	}

	half := a.config.UI.WindowDays / 2
	windowStart := dateutil.AddDays(viewDate, -half)
	windowEnd := dateutil.AddDays(viewDate, a.config.UI.WindowDays-half)
	barWidth := termWidth() - 8
	if barWidth < 20 {
		barWidth = 20
	}

	fmt.Fprintf(&b, "\n%s %s .. %s\n",
		formatHeader("Timeline"),
		dateutil.Key(windowStart),
		dateutil.Key(windowEnd))

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			idx, _ := g.SlotIndex(x, y)
			line, err := timelineLine(g.Slots[idx], windowStart, windowEnd, barWidth)
			if err != nil {
				return "", err
			}
			fmt.Fprintf(&b, "(%d,%d) %s\n", x, y, line)
		}
	}

	return b.String(), nil
}

// slotLabel describes what happens in a slot on the view date.
func slotLabel(slot garden.Slot, viewDate time.Time) string {
	activity := garden.SlotActivity(slot, viewDate)
	switch {
	case activity.Sow != nil:
		return formatSow("* " + activity.Sow.Name)
	case activity.Harvest != nil:
		return formatHarvest("! " + activity.Harvest.Name)
	case activity.Growing != nil:
		return formatGrowing("~ " + activity.Growing.Name)
	default:
		return formatMuted(".")
	}
}

// timelineLine renders one slot's plantings as a proportional bar.
func timelineLine(slot garden.Slot, windowStart, windowEnd time.Time, barWidth int) (string, error) {
	segments, err := timeline.Layout(slot, windowStart, windowEnd)
	if err != nil {
		return "", err
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
			bar.WriteString(strings.Repeat("·", widths[i]))
		case timeline.KindPlanting:
			block := strings.Repeat("█", widths[i])
			if s.Band%2 == 0 {
				bar.WriteString(formatGrowing(block))
			} else {
				bar.WriteString(formatSow(block))
			}
			labels = append(labels, s.Label)
		}
	}

	if len(labels) == 0 {
		return formatMuted("(empty)"), nil
	}
	return bar.String() + "  " + formatMuted(strings.Join(labels, ", ")), nil
}

// padCell pads a possibly color-coded cell to a fixed display width.
func padCell(s string, width int) string {
	visible := visibleLen(s)
	if visible >= width {
		return s + " "
	}
	return s + strings.Repeat(" ", width-visible)
}

// visibleLen counts runes excluding ANSI escape sequences.
func visibleLen(s string) int {
	n := 0
	inEscape := false
	for _, r := range s {
		switch {
		case inEscape:
			if r == 'm' {
				inEscape = false
			}
		case r == '\x1b':
			inEscape = true
		default:
			n++
		}
	}
	return n
}
