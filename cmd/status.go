package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/misterclayt0n/mapty/internal/app"
	"github.com/misterclayt0n/mapty/internal/utils"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the pending workout and where workouts are stored",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			cyanBold := color.New(color.FgCyan, color.Bold).SprintFunc()

			a.Form.Render(os.Stdout)
			if w := a.Editing(); w != nil {
				fmt.Printf("  editing %s %s from %s\n", w.Variant().Icon(), w.Description(), utils.FormatLocal(w.CreatedAt()))
			}

			fmt.Printf("\n%s %d\n", cyanBold("Workouts:"), a.Store.Len())
			fmt.Printf("%s %s\n", cyanBold("Storage:"), cfg.Storage.Backend)
			if center, ok := a.Map.Center(); ok {
				fmt.Printf("%s %s\n", cyanBold("Position:"), center)
			} else {
				fmt.Printf("%s unknown\n", cyanBold("Position:"))
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
