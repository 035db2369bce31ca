package cmd

import (
	"context"
	"os"

	"github.com/misterclayt0n/mapty/internal/app"
	"github.com/misterclayt0n/mapty/internal/controller"
	"github.com/spf13/cobra"
)

var focusCmd = &cobra.Command{
	Use:   "focus <id>",
	Short: "Center the map on a workout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			w, err := resolve(a, args[0])
			if err != nil {
				return err
			}
			if err := a.List.Trigger(w.ID(), controller.ActionFocus); err != nil {
				return err
			}

			a.Map.Render(os.Stdout)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(focusCmd)
}
