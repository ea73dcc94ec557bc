package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jeshuam/square-metre-garden-manager/internal/dateutil"
	"github.com/jeshuam/square-metre-garden-manager/internal/garden"
)

func (a *App) sowCmd() *cobra.Command {
	var (
		x    int
		y    int
		date string
	)

	cmd := &cobra.Command{
		Use:   "sow [garden] [plant]",
		Short: "Sow a plant in a slot",
		Long: `Sow a plant into a garden slot on a given date.

The harvest date is scheduled from the plant's growth period in the
catalog. Sowing on the plant date of an existing planting replaces it;
otherwise the new planting is slotted into the timeline in date order.`,
		Example: `  smgm sow backyard Bean --x=0 --y=1
  smgm sow backyard Radish --x=2 --y=0 --date=2026-09-15`,
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			name, plantType := args[0], args[1]

			sowDate, err := dateutil.ParseDate(date)
			if err != nil {
				return err
			}

			ctx := context.Background()
			g, err := a.store.Get(ctx, name)
			if err != nil {
				return fmt.Errorf("fetching garden: %w", err)
			}

			idx, err := g.SlotIndex(x, y)
			if err != nil {
				return err
			}

			next, pos, err := garden.Sow(g, idx, sowDate, plantType, a.catalog)
			if err != nil {
				return err
			}

			if err := a.store.Put(ctx, next); err != nil {
				return fmt.Errorf("saving garden: %w", err)
			}

			p := next.Slots[idx][pos]
			fmt.Printf("Sowed %s in (%d,%d): %s to %s\n",
				p.Name, x, y,
				dateutil.Key(p.PlantDate),
				dateutil.Key(p.HarvestDate),
			)
			return nil
		},
	}

	cmd.Flags().IntVar(&x, "x", 0, "Slot column (0-based)")
	cmd.Flags().IntVar(&y, "y", 0, "Slot row (0-based)")
	cmd.Flags().StringVar(&date, "date", "", "Sow date (YYYY-MM-DD, default: today)")

	_ = cmd.MarkFlagRequired("x")
	_ = cmd.MarkFlagRequired("y")

	return cmd
}
