// Reclookup - Precomputed Recommendation Lookup Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reclookup

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/reclookup/internal/api"
	"github.com/tomtom215/reclookup/internal/config"
	"github.com/tomtom215/reclookup/internal/logging"
	"github.com/tomtom215/reclookup/internal/recommend"
	"github.com/tomtom215/reclookup/internal/supervisor"
	"github.com/tomtom215/reclookup/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Config not yet available, default logger
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logCfg := logging.DefaultConfig()
	logCfg.Level = cfg.Logging.Level
	logCfg.Format = cfg.Logging.Format
	logCfg.Caller = cfg.Logging.Caller
	logging.Init(logCfg)

	logging.Info().
		Str("version", version).
		Str("environment", cfg.Server.Environment).
		Str("loader", cfg.Tables.Loader).
		Msg("Starting reclookup")

	if cfg.ShouldWarnAboutCORS() {
		logging.Warn().Msg("CORS allows any origin (CORS_ORIGINS=*)")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	specs, sources := sourcePlan(cfg)
	store, err := loadTables(ctx, cfg, specs)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create table store")
	}

	engine, err := recommend.NewEngine(store, sources, logging.Logger())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create recommendation engine")
	}

	handler := api.NewHandler(engine, store, version)
	router := api.NewRouter(handler, api.NewChiMiddlewareFromConfig(cfg.Security))

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       2 * cfg.Server.Timeout,
	}

	tree := supervisor.NewTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: shutdownTimeout,
	})
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Addr(), shutdownTimeout, logging.Logger()))

	logging.Info().
		Int("sources", len(sources)).
		Bool("ready", store.Ready()).
		Msg("Starting supervisor tree")

	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
	}

	logging.Info().Msg("Application stopped gracefully")
}
