package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [name]",
		Short: "Delete a garden",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := a.store.Delete(context.Background(), args[0]); err != nil {
				return fmt.Errorf("deleting garden: %w", err)
			}

			fmt.Printf("Deleted garden %q\n", args[0])
			return nil
		},
	}
}
