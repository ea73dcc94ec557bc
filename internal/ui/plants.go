package ui

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jeshuam/square-metre-garden-manager/internal/dateutil"
)

func (a *App) plantsCmd() *cobra.Command {
	var (
		date    string
		verbose bool
		noColor bool
	)

	cmd := &cobra.Command{
		Use:   "plants",
		Short: "List the plant catalog",
		Long: `List every plant in the catalog with its growth period.

Plants that can be sown in the view date's month are highlighted.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if noColor {
				DisableColor()
			}

			viewDate, err := dateutil.ParseDate(date)
			if err != nil {
				return err
			}
			month := viewDate.Month()

			fmt.Printf("=== %s ===\n\n", formatHeader("Plant catalog for "+viewDate.Format("January")))

			for _, name := range a.catalog.Names() {
				entry := a.catalog[name]

				label := formatMuted(name)
				if entry.PlantableIn(month) {
					label = formatSow(name)
				}

				fmt.Printf("  %s%s %d days\n",
					padCell(label, 16),
					formatMuted("~"),
					entry.GrowthDays(),
				)

				if verbose {
					printDetail("sowing", entry.Sowing)
					printDetail("spacing", entry.Spacing)
					printDetail("harvest", entry.Harvest)
					printDetail("companions", entry.Companion)
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", time.Now().Format("2006-01-02"), "View date (YYYY-MM-DD)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show growing notes")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	return cmd
}

func printDetail(field, value string) {
	if value == "" {
		return
	}
	fmt.Printf("      %s %s\n", formatMuted(field+":"), value)
}
