package cmd

import (
	"context"
	"fmt"

	"github.com/misterclayt0n/mapty/internal/app"
	"github.com/misterclayt0n/mapty/internal/controller"
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a workout",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			w, err := resolve(a, args[0])
			if err != nil {
				return err
			}
			if err := a.List.Trigger(w.ID(), controller.ActionDelete); err != nil {
				return err
			}

			fmt.Printf("✅ Deleted %s %s\n", w.Variant().Icon(), w.Description())
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
