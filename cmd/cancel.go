package cmd

import (
	"context"
	"fmt"

	"github.com/misterclayt0n/mapty/internal/app"
	"github.com/misterclayt0n/mapty/internal/controller"
	"github.com/spf13/cobra"
)

var cancelCmd = &cobra.Command{
	Use:   "cancel",
	Short: "Discard the pending workout",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			if a.Controller.State().Phase != controller.AwaitingSubmit {
				return fmt.Errorf("No pending workout")
			}

			editing := a.Editing()
			a.Controller.Cancel(ctx)
			if editing != nil {
				fmt.Printf("✅ Edit cancelled, %s kept as it was\n", editing.Description())
				return nil
			}
			fmt.Println("✅ Pending workout discarded")
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(cancelCmd)
}
