package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all gardens",
		RunE: func(_ *cobra.Command, _ []string) error {
			names, err := a.store.List(context.Background())
			if err != nil {
				return fmt.Errorf("listing gardens: %w", err)
			}

			if len(names) == 0 {
				fmt.Println("No gardens yet. Create one with 'smgm new'.")
				return nil
			}

			for _, name := range names {
				fmt.Println(name)
			}
			return nil
		},
	}
}
