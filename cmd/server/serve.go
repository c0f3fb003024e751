// Animerec - Anime Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/tomtom215/animerec/internal/api"
	"github.com/tomtom215/animerec/internal/config"
	"github.com/tomtom215/animerec/internal/logging"
	"github.com/tomtom215/animerec/internal/metrics"
	"github.com/tomtom215/animerec/internal/recommend"
	"github.com/tomtom215/animerec/internal/supervisor"
	"github.com/tomtom215/animerec/internal/supervisor/services"
	"github.com/tomtom215/animerec/internal/tracing"
)

const (
	statsReportInterval = 5 * time.Minute
	readHeaderTimeout   = 5 * time.Second
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context())
		},
	}
}

// runServe loads configuration, builds the supervisor tree and blocks until
// SIGINT or SIGTERM.
func runServe(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
		Service:   cfg.Tracing.ServiceName,
	})

	logging.Info().
		Str("version", version).
		Str("addr", cfg.Server.Addr()).
		Strs("cors_origins", cfg.Security.CORSOrigins).
		Bool("metrics_enabled", cfg.Metrics.Enabled).
		Bool("tracing_enabled", cfg.Tracing.Enabled).
		Msg("configuration loaded")

	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Init(ctx, tracing.Config{
		Enabled:     cfg.Tracing.Enabled,
		Endpoint:    cfg.Tracing.Endpoint,
		Insecure:    cfg.Tracing.Insecure,
		ServiceName: cfg.Tracing.ServiceName,
		Version:     version,
		SampleRatio: cfg.Tracing.SampleRatio,
	})
	if err != nil {
		return fmt.Errorf("initialize tracing: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			logging.Warn().Err(err).Msg("tracer shutdown failed")
		}
	}()

	metrics.SetBuildInfo(version)

	engine, err := recommend.NewEngine(&recommend.Config{
		Seed:                      cfg.Recommend.Seed,
		DefaultMaxRecommendations: cfg.Recommend.DefaultMax,
		DefaultMinScore:           cfg.Recommend.DefaultMinScore,
	}, logging.Logger())
	if err != nil {
		return fmt.Errorf("create recommendation engine: %w", err)
	}
	metrics.SetCatalogSize(engine.GetMetrics().CatalogSize)

	router := api.NewRouter(api.NewHandler(engine), cfg)
	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.Setup(),
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		return fmt.Errorf("create supervisor tree: %w", err)
	}

	svcLogger := logging.WithComponent("supervisor")
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout, svcLogger))
	tree.AddBackgroundService(services.NewStatsReporterService(engine, statsReportInterval, svcLogger))

	logBanner(cfg, router.Routes())

	treeCfg := tree.Config()
	logging.Debug().
		Float64("failure_threshold", treeCfg.FailureThreshold).
		Dur("failure_backoff", treeCfg.FailureBackoff).
		Dur("shutdown_timeout", treeCfg.ShutdownTimeout).
		Msg("supervisor tree configured")

	serveErr := awaitTree(ctx, tree.ServeBackground(ctx))

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("service failed to stop within timeout")
	}

	if serveErr != nil {
		return serveErr
	}
	logging.Info().Msg("animerec stopped")
	return nil
}

// awaitTree blocks until the tree stops. A stop caused by ctx cancellation is
// a clean shutdown; any other result is returned so the process exits non-zero.
func awaitTree(ctx context.Context, errCh <-chan error) error {
	var serveErr error
	select {
	case <-ctx.Done():
		logging.Info().Msg("shutdown signal received, stopping services")
		serveErr = <-errCh
	case serveErr = <-errCh:
	}

	if serveErr != nil && !errors.Is(serveErr, context.Canceled) {
		return fmt.Errorf("supervisor tree stopped: %w", serveErr)
	}
	return nil
}

// logBanner announces the listen address and every route.
func logBanner(cfg *config.Config, routes []api.Route) {
	logging.Info().
		Str("service", api.ServiceName).
		Str("version", version).
		Str("url", fmt.Sprintf("http://%s", cfg.Server.Addr())).
		Msg("starting anime recommendation API server")

	for _, r := range routes {
		logging.Info().
			Str("method", r.Method).
			Str("path", r.Path).
			Msg(r.Description)
	}
}
