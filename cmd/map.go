package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/misterclayt0n/mapty/internal/app"
	"github.com/spf13/cobra"
)

var mapCmd = &cobra.Command{
	Use:   "map",
	Short: "Show the map markers and the pending workout",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			a.Map.Render(os.Stdout)
			fmt.Println()
			a.Form.Render(os.Stdout)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(mapCmd)
}
