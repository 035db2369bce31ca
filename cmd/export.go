package cmd

import (
	"context"
	"fmt"

	"github.com/misterclayt0n/mapty/internal/app"
	"github.com/misterclayt0n/mapty/internal/codec"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Write all workouts to a TOML file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "workouts.toml"
		if len(args) == 1 {
			path = args[0]
		}

		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			abs, err := codec.ExportFile(path, a.Store.All())
			if err != nil {
				return fmt.Errorf("Failed to export workouts: %w", err)
			}

			fmt.Printf("✅ Exported %d workouts to %s\n", a.Store.Len(), abs)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
