package cmd

import (
	"context"
	"fmt"

	"github.com/misterclayt0n/mapty/internal/app"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete every workout",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			n := a.Store.Len()
			if err := a.Controller.ResetAll(ctx); err != nil {
				return fmt.Errorf("Failed to reset: %w", err)
			}

			fmt.Printf("✅ Removed %d workouts\n", n)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
}
