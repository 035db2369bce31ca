package cmd

import (
	"context"

	"github.com/misterclayt0n/mapty/internal/app"
	"github.com/spf13/cobra"
)

var logFlags formFlags

var logCmd = &cobra.Command{
	Use:   "log [lat,lng]",
	Short: "Pin and save a workout in one go",
	Example: `  mapty log 38.72,-9.14 -t running -d 5.2 -m 24 --cadence 178
  mapty log -t cycling -d 27 -m 95 --elevation 523`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			at, err := pinTarget(a, args)
			if err != nil {
				return err
			}
			if err := a.Map.Click(at); err != nil {
				return pinError(err)
			}
			if err := logFlags.apply(cmd, a); err != nil {
				return err
			}
			return submitForm(a)
		})
	},
}

func init() {
	rootCmd.AddCommand(logCmd)
	logFlags.register(logCmd)
}
