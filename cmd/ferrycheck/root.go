package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/couchcryptid/ferry-risk-service/internal/adapter/ndbc"
	"github.com/couchcryptid/ferry-risk-service/internal/config"
	"github.com/couchcryptid/ferry-risk-service/internal/domain"
	"github.com/couchcryptid/ferry-risk-service/internal/observability"
	"github.com/couchcryptid/ferry-risk-service/internal/pipeline"
)

// rootOptions are the flags shared by every subcommand.
type rootOptions struct {
	file    string
	verbose bool
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "ferrycheck",
		Short:        "Estimate ferry run/cancel risk from the marine forecast",
		Long:         "Reads the NWS Boston coastal waters forecast, picks the period for a departure and scores the chance the fast ferry runs.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.file, "file", "f", "", "read the bulletin from a saved file instead of FORECAST_URL")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log debug output to stderr")

	cmd.AddCommand(newAssessCommand(opts))
	cmd.AddCommand(newPeriodsCommand(opts))

	return cmd
}

// session is what a subcommand needs to talk to the pipeline.
type session struct {
	cfg      *config.Config
	assessor *pipeline.Assessor
}

func newSession(cmd *cobra.Command, opts *rootOptions) (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	metrics := observability.NewMetricsWithRegistry(nil)

	var fetcher domain.DocumentFetcher
	url := cfg.ForecastURL
	if opts.file != "" {
		fetcher = fileFetcher{}
		url = opts.file
	} else {
		fetcher = ndbc.NewClient(cfg.ForecastTimeout, cfg.ForecastRateLimit, metrics, logger)
	}

	source := pipeline.Source{URL: url, Zone: cfg.ForecastZone, Boundary: cfg.ForecastBoundary}
	return &session{
		cfg:      cfg,
		assessor: pipeline.New(fetcher, source, cfg.Model, nil, logger, metrics),
	}, nil
}

// fileFetcher serves a saved bulletin; the URL is a local path.
type fileFetcher struct{}

func (fileFetcher) Fetch(_ context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read bulletin: %w", err)
	}
	return string(data), nil
}
