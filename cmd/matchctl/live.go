package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/MikeSquared-Agency/Optiwork/internal/assign"
	"github.com/MikeSquared-Agency/Optiwork/internal/config"
	"github.com/MikeSquared-Agency/Optiwork/internal/roster"
	"github.com/MikeSquared-Agency/Optiwork/internal/store"
)

var (
	liveReq requirementFlags
	liveOut outputOptions
)

var liveCmd = &cobra.Command{
	Use:   "live",
	Short: "Rank employees fetched from the data service",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, logger, err := loadConfig()
		if err != nil {
			return err
		}
		svc, err := newLiveService(cmd, cfg, logger)
		if err != nil {
			return err
		}
		set, err := svc.Matches(cmd.Context(), liveReq.requirement())
		if err != nil {
			return err
		}
		return printMatches(cmd.OutOrStdout(), set.Results, liveOut)
	},
}

func init() {
	rootCmd.AddCommand(liveCmd)
	liveReq.register(liveCmd)
	liveOut.register(liveCmd)
}

// newLiveService builds a one-shot assignment service against the configured
// data service and loads its roster. Nothing is cached or published.
func newLiveService(cmd *cobra.Command, cfg *config.Config, logger *slog.Logger) (*assign.Service, error) {
	rc := roster.NewHTTPClient(cfg.Roster.URL, cfg.Roster.Token, cfg.Roster.Role)
	svc := assign.New(rc, store.NewMemoryStore(), nil, nil, nil, cfg.RefreshInterval(), logger)
	if err := svc.Refresh(cmd.Context()); err != nil {
		return nil, err
	}
	logger.Debug("roster loaded", "url", cfg.Roster.URL, "version", svc.Snapshot().Version)
	return svc, nil
}
