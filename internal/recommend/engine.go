// Reclookup - Precomputed Recommendation Lookup Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reclookup

package recommend

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/reclookup/internal/logging"
	"github.com/tomtom215/reclookup/internal/metrics"
	"github.com/tomtom215/reclookup/internal/table"
	"github.com/tomtom215/reclookup/internal/validation"
)

// missKeysLogged is how many table keys are logged when a lookup misses.
const missKeysLogged = 10

// Tables resolves a source name to its loaded table.
// *table.Store satisfies this interface.
type Tables interface {
	Table(name string) (*table.Table, error)
}

// Engine answers recommendation requests from precomputed tables.
// It is safe for concurrent use once constructed.
type Engine struct {
	tables  Tables
	sources []Source
	logger  zerolog.Logger

	requestCount  atomic.Int64
	errorCount    atomic.Int64
	notFoundCount atomic.Int64
}

// NewEngine creates an engine that queries sources in the given order.
func NewEngine(tables Tables, sources []Source, logger zerolog.Logger) (*Engine, error) {
	if tables == nil {
		return nil, errors.New("tables must not be nil")
	}

	seen := make(map[string]struct{}, len(sources))
	for _, src := range sources {
		if src.Name == "" {
			return nil, errors.New("source name must not be empty")
		}
		if _, dup := seen[src.Name]; dup {
			return nil, fmt.Errorf("duplicate source %q", src.Name)
		}
		seen[src.Name] = struct{}{}
	}

	return &Engine{
		tables:  tables,
		sources: append([]Source(nil), sources...),
		logger:  logger.With().Str("component", "recommend").Logger(),
	}, nil
}

// Sources returns the configured sources in query order.
func (e *Engine) Sources() []Source {
	return append([]Source(nil), e.sources...)
}

// Recommend validates req and looks its content ID up in every source.
//
// Results follow source order. The first failing source aborts the request
// with a *LookupFailure; no partial results are returned. Invalid requests
// fail with a *validation.RequestValidationError.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) Recommend(ctx context.Context, req Request) ([]Result, error) {
	e.requestCount.Add(1)

	if verr := validation.ValidateStruct(&req); verr != nil {
		e.errorCount.Add(1)
		return nil, verr
	}

	key := *req.ContentID
	logger := e.requestLogger(ctx, key)

	results := make([]Result, 0, len(e.sources))
	for _, src := range e.sources {
		if err := ctx.Err(); err != nil {
			e.errorCount.Add(1)
			return nil, err
		}

		recs, err := e.lookupSource(src, key, logger)
		if err != nil {
			e.errorCount.Add(1)
			logger.Warn().Err(err).Str("source", src.Name).Msg("Recommendation lookup failed")
			return nil, &LookupFailure{Source: src.Name, Err: err}
		}
		results = append(results, Result{Source: src.Name, Recommendations: recs})
	}

	logger.Debug().Int("sources", len(results)).Msg("Recommendations served")
	return results, nil
}

func (e *Engine) lookupSource(src Source, key string, logger zerolog.Logger) ([]string, error) {
	start := time.Now()

	t, err := e.tables.Table(src.Name)
	var recs []string
	if err == nil {
		recs, err = Lookup(t, key)
	}

	metrics.RecordLookup(src.Name, lookupOutcome(err), time.Since(start))

	if errors.Is(err, ErrNotFound) {
		e.notFoundCount.Add(1)
		logger.Debug().
			Str("source", src.Name).
			Strs("available_keys", t.Keys(missKeysLogged)).
			Msg("Content ID not in table")
	}
	return recs, err
}

func lookupOutcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeHit
	case errors.Is(err, ErrNotFound):
		return metrics.OutcomeNotFound
	case errors.Is(err, ErrTableNotLoaded), errors.Is(err, table.ErrUnknownTable):
		return metrics.OutcomeNotLoaded
	default:
		return metrics.OutcomeError
	}
}

func (e *Engine) requestLogger(ctx context.Context, key string) zerolog.Logger {
	lc := e.logger.With().Str("content_id", key)
	if id := logging.RequestIDFromContext(ctx); id != "" {
		lc = lc.Str("request_id", id)
	}
	return lc.Logger()
}

// GetMetrics returns the current engine metrics.
func (e *Engine) GetMetrics() Metrics {
	return Metrics{
		RequestCount: e.requestCount.Load(),
		ErrorCount:   e.errorCount.Load(),
		NotFound:     e.notFoundCount.Load(),
	}
}
