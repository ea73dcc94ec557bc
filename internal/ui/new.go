package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) newCmd() *cobra.Command {
	var (
		width  int
		height int
	)

	cmd := &cobra.Command{
		Use:   "new [name]",
		Short: "Create a new garden",
		Long: `Create a new empty garden with the given slot grid.

Example:
  smgm new backyard --width=4 --height=2`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			g, err := a.store.Create(context.Background(), args[0], width, height)
			if err != nil {
				return fmt.Errorf("creating garden: %w", err)
			}

			fmt.Printf("Created garden %q with %dx%d slots\n", g.Name, g.Width, g.Height)
			return nil
		},
	}

	cmd.Flags().IntVar(&width, "width", 4, "Slots across")
	cmd.Flags().IntVar(&height, "height", 4, "Slots down")

	return cmd
}
