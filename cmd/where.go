package cmd

import (
	"context"
	"fmt"

	"github.com/misterclayt0n/mapty/internal/adapters"
	"github.com/spf13/cobra"
)

var whereCmd = &cobra.Command{
	Use:   "where",
	Short: "Show the current position",
	RunE: func(cmd *cobra.Command, args []string) error {
		geo, err := adapters.NewGeolocation(cfg.Geo, cfg.Map.Home)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		if cfg.Geo.Timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, cfg.Geo.Timeout)
			defer cancel()
		}

		at, err := geo.CurrentPosition(ctx)
		if err != nil {
			return fmt.Errorf("Could not get your current position: %w", err)
		}
		fmt.Printf("📍 %s\n", at)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(whereCmd)
}
