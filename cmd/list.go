package cmd

import (
	"context"
	"os"

	"github.com/misterclayt0n/mapty/internal/app"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List workouts, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			a.List.Render(os.Stdout)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
