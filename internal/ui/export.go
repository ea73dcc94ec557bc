package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jeshuam/square-metre-garden-manager/internal/garden"
)

const icsProductID = "-//smgm//garden planner//EN"

func (a *App) exportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export [garden]",
		Short: "Export a garden's sow and harvest days as an iCalendar file",
		Long: `Write every sowing and harvest in the garden as all-day calendar
events in iCalendar (.ics) format, suitable for import into any
calendar application.`,
		Example: `  smgm export backyard
  smgm export backyard --output=backyard.ics`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			g, err := a.store.Get(context.Background(), args[0])
			if err != nil {
				return fmt.Errorf("fetching garden: %w", err)
			}

			w := io.Writer(os.Stdout)
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("creating output file: %w", err)
				}
				defer func() { _ = f.Close() }()
				w = f
			}

			writeICS(w, g, time.Now())

			if output != "" {
				fmt.Printf("Exported %q to %s\n", g.Name, output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: stdout)")
	return cmd
}

// writeICS emits one all-day event per sowing and per harvest in the garden.
func writeICS(w io.Writer, g *garden.Garden, now time.Time) {
	stamp := now.UTC().Format("20060102T150405Z")

	fmt.Fprintln(w, "BEGIN:VCALENDAR")
	fmt.Fprintln(w, "VERSION:2.0")
	fmt.Fprintf(w, "PRODID:%s\n", icsProductID)
	fmt.Fprintf(w, "X-WR-CALNAME:Garden %s\n", g.Name)
	fmt.Fprintln(w, "CALSCALE:GREGORIAN")

	for i, slot := range g.Slots {
		x, y := i%g.Width, i/g.Width
		for _, p := range slot {
			writeEvent(w, g.Name, stamp, p.PlantDate,
				fmt.Sprintf("Sow %s", p.Name),
				fmt.Sprintf("Sow %s in slot (%d\\,%d) of %s", p.Name, x, y, g.Name))
			writeEvent(w, g.Name, stamp, p.HarvestDate,
				fmt.Sprintf("Harvest %s", p.Name),
				fmt.Sprintf("Harvest %s from slot (%d\\,%d) of %s", p.Name, x, y, g.Name))
		}
	}

	fmt.Fprintln(w, "END:VCALENDAR")
}

func writeEvent(w io.Writer, gardenName, stamp string, date time.Time, summary, description string) {
	uid := fmt.Sprintf("%s-%s-%s@smgm", date.Format("20060102"), summary, gardenName)

	fmt.Fprintln(w, "BEGIN:VEVENT")
	fmt.Fprintf(w, "UID:%s\n", uid)
	fmt.Fprintf(w, "DTSTAMP:%s\n", stamp)
	fmt.Fprintf(w, "DTSTART;VALUE=DATE:%s\n", date.Format("20060102"))
	fmt.Fprintf(w, "DTEND;VALUE=DATE:%s\n", date.AddDate(0, 0, 1).Format("20060102"))
	fmt.Fprintf(w, "SUMMARY:%s\n", summary)
	fmt.Fprintf(w, "DESCRIPTION:%s\n", description)
	fmt.Fprintln(w, "END:VEVENT")
}
