// Reclookup - Precomputed Recommendation Lookup Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reclookup

/*
Package supervisor runs the service's long-lived work under a suture v4
supervisor tree.

# Overview

	root ("reclookup")
	└── api ("api-layer")
	    └── HTTPServerService

Recommendation tables are loaded before the tree starts and never change
afterwards, so they are not supervised. The HTTP server is restarted with
backoff if ListenAndServe fails.

# Usage

	tree := supervisor.NewTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Addr(), 10*time.Second, logger))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
	    logging.Error().Err(err).Msg("Supervisor stopped")
	}

# Failure Handling

Each failure increments a counter that decays over FailureDecay seconds.
Past FailureThreshold the supervisor waits FailureBackoff before the next
restart. Services that do not stop within ShutdownTimeout are listed by
UnstoppedServiceReport.

Supervisor events are logged through sutureslog, which writes to zerolog via
the logging package's slog adapter.
*/
package supervisor
