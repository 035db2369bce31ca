package cmd

import (
	"context"

	"github.com/misterclayt0n/mapty/internal/app"
	"github.com/spf13/cobra"
)

var submitFlags formFlags

var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Save the pending workout",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			if err := submitFlags.apply(cmd, a); err != nil {
				return err
			}
			return submitForm(a)
		})
	},
}

func init() {
	rootCmd.AddCommand(submitCmd)
	submitFlags.register(submitCmd)
}
