package cmd

import (
	"context"
	"fmt"

	"github.com/misterclayt0n/mapty/internal/app"
	"github.com/misterclayt0n/mapty/internal/controller"
	"github.com/spf13/cobra"
)

var editFlags formFlags

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Reopen a workout in the form",
	Long: `Reopen a workout in the form. The workout is taken off the map until the
form is submitted. With field flags the changes are saved right away, without
them the form stays open for ` + "`mapty submit`" + ` or ` + "`mapty cancel`" + `.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			w, err := resolve(a, args[0])
			if err != nil {
				return err
			}
			if err := a.List.Trigger(w.ID(), controller.ActionEdit); err != nil {
				return pinError(err)
			}

			if !editFlags.changed(cmd) {
				fmt.Printf("✏️  Editing %s %s, save with `mapty submit`\n", w.Variant().Icon(), w.Description())
				return nil
			}
			if err := editFlags.apply(cmd, a); err != nil {
				return err
			}
			return submitForm(a)
		})
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
	editFlags.register(editCmd)
}
