package cmd

import (
	"context"
	"fmt"

	"github.com/misterclayt0n/mapty/internal/app"
	"github.com/misterclayt0n/mapty/internal/codec"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Add the workouts of a TOML export",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		workouts, err := codec.ImportFile(args[0])
		if err != nil {
			return fmt.Errorf("Failed to import workouts: %w", err)
		}

		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			added := a.Controller.Import(ctx, workouts)
			fmt.Printf("✅ Imported %d workouts (%d already present)\n", added, len(workouts)-added)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
