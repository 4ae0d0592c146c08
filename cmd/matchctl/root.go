package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/MikeSquared-Agency/Optiwork/internal/config"
)

const app = "matchctl"

var (
	cfgFile string
	debug   bool

	rootCmd = &cobra.Command{
		Use:          app,
		Short:        "matchctl ranks employees for a task, offline from a snapshot file or live against the data service",
		SilenceUsage: true,
	}
)

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "optiwork config file (roster url, token, role)")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "verbose/debug output")
}

// loadConfig reads the shared service config; the logger always goes to stderr
// so command output stays pipeable.
func loadConfig() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, err
	}
	if debug {
		cfg.Logging.Level = "debug"
	}
	cfg.Logging.Format = "text"
	return cfg, cfg.Logging.NewLogger(os.Stderr), nil
}
