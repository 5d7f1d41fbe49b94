package main

import (
	"fmt"
	"os"

	"LocalDrawer/internal/applog"
	"LocalDrawer/internal/config"
	"LocalDrawer/internal/ui"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

func main() {
	if err := newRootCmd(ui.RunApp).Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the CLI. run receives the validated configuration.
func newRootCmd(run func(config.Config)) *cobra.Command {
	var configPath, logLevel string

	rootCmd := &cobra.Command{
		Use:          "localdrawer",
		Short:        "Sketch on a canvas and pin text labels on top",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if logLevel != "" {
				cfg.Log.Level = logLevel
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid config: %w", err)
			}

			logger, err := applog.New(cfg.Log.Level, os.Stderr)
			if err != nil {
				return err
			}
			applog.Init(logger)
			logger.Info("starting",
				"version", version,
				"canvas_width", cfg.Canvas.Width,
				"canvas_height", cfg.Canvas.Height)

			run(cfg)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (TOML)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "localdrawer %s\n", version)
		},
	})
	return rootCmd
}
