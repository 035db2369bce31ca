package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/misterclayt0n/mapty/internal/app"
	"github.com/misterclayt0n/mapty/internal/controller"
	"github.com/misterclayt0n/mapty/internal/models"
	"github.com/spf13/cobra"
)

var pinCmd = &cobra.Command{
	Use:   "pin [lat,lng]",
	Short: "Pick the spot of a new workout, the current position by default",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			at, err := pinTarget(a, args)
			if err != nil {
				return err
			}
			if err := a.Map.Click(at); err != nil {
				return pinError(err)
			}

			fmt.Printf("✅ Pinned %s, fill it in with `mapty submit`\n", at)
			return nil
		})
	},
}

func pinTarget(a *app.App, args []string) (models.Coordinates, error) {
	if len(args) == 1 {
		return models.ParseCoordinates(args[0])
	}
	at, ok := a.Map.Center()
	if !ok {
		return models.Coordinates{}, pinError(controller.ErrMapNotReady)
	}
	return at, nil
}

func pinError(err error) error {
	if errors.Is(err, controller.ErrMapNotReady) {
		return fmt.Errorf("Could not get your current position. Set [map.home] in the config or pass coordinates")
	}
	return err
}

func init() {
	rootCmd.AddCommand(pinCmd)
}
