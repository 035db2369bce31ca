package cmd

import (
	"context"
	"fmt"

	"github.com/misterclayt0n/mapty/internal/app"
	"github.com/misterclayt0n/mapty/internal/config"
	"github.com/misterclayt0n/mapty/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

var (
	verbose    bool
	configPath string

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:          "mapty",
	Short:        "Log your runs and rides on a map",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if configPath != "" {
			cfg, err = config.LoadFrom(configPath)
		} else {
			cfg, err = config.LoadConfig()
		}
		if err != nil {
			return fmt.Errorf("Failed to load config: %w", err)
		}

		logger = logging.New(logging.Params{
			Level:   cfg.Log.Level,
			File:    cfg.Log.File,
			JSON:    cfg.Log.JSON,
			Verbose: verbose,
		})
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show debug logs")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default ~/.config/mapty/config.toml)")
}

// withApp runs fn inside one session: stored workouts are loaded before it
// and the pending form is saved after it.
func withApp(cmd *cobra.Command, fn func(ctx context.Context, a *app.App) error) error {
	ctx := cmd.Context()

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("Failed to start: %w", err)
	}
	a.Start(ctx)

	err = fn(ctx, a)
	if perr := a.Controller.State().PersistErr; perr != nil {
		fmt.Printf("⚠️  Workouts are kept for this run only: %v\n", perr)
	}
	return multierr.Append(err, a.Close())
}
