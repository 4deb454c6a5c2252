// Reclookup - Precomputed Recommendation Lookup Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reclookup

package table

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/reclookup/internal/metrics"
)

// Store holds one slot per recommendation source. A slot either holds a
// loaded *Table or is unloaded and carries the *LoadError that caused it.
//
// LoadAll must complete before the store is shared; afterwards the store is
// read-only and safe for concurrent use without locking.
type Store struct {
	loader Loader
	logger zerolog.Logger
	slots  map[string]*slot
	order  []string
}

type slot struct {
	spec     Spec
	table    *Table
	err      *LoadError
	loadedAt time.Time
	duration time.Duration
}

// Status describes one slot for health and listing endpoints.
type Status struct {
	Source     string     `json:"source"`
	Path       string     `json:"path"`
	Format     Format     `json:"format"`
	Loaded     bool       `json:"loaded"`
	Rows       int        `json:"rows"`
	Columns    []string   `json:"value_columns,omitempty"`
	LoadedAt   *time.Time `json:"loaded_at,omitempty"` // nil until loaded
	LoadTimeMS int64      `json:"load_time_ms"`
	Error      string     `json:"error,omitempty"`
}

// NewStore creates an empty store that reads tables with loader.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewStore(loader Loader, logger zerolog.Logger) *Store {
	return &Store{
		loader: loader,
		logger: logger.With().Str("component", "table-store").Str("loader", loader.Name()).Logger(),
		slots:  make(map[string]*slot),
	}
}

// LoadAll loads every spec into its slot. A failed load leaves the slot
// unloaded; it is logged and returned in the joined error but never stops
// the remaining loads. Specs sharing a name replace earlier slots.
func (s *Store) LoadAll(ctx context.Context, specs []Spec) error {
	var errs []error
	for _, spec := range specs {
		if err := s.load(ctx, spec); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

//nolint:gocritic // Spec passed by value for immutability
func (s *Store) load(ctx context.Context, spec Spec) error {
	if _, exists := s.slots[spec.Name]; !exists {
		s.order = append(s.order, spec.Name)
	}

	start := time.Now()
	t, err := s.loader.Load(ctx, spec)
	duration := time.Since(start)

	sl := &slot{spec: spec, duration: duration}
	s.slots[spec.Name] = sl

	if err != nil {
		var loadErr *LoadError
		if !errors.As(err, &loadErr) {
			loadErr = &LoadError{Source: spec.Name, Path: spec.Path, Err: err}
		}
		sl.err = loadErr
		metrics.RecordTableLoad(spec.Name, s.loader.Name(), 0, duration, loadErr.Kind(), loadErr)
		s.logger.Error().
			Err(loadErr.Err).
			Str("source", spec.Name).
			Str("path", spec.Path).
			Str("error_type", loadErr.Kind()).
			Msg("Failed to load recommendation table")
		return loadErr
	}

	sl.table = t
	sl.loadedAt = time.Now()
	metrics.RecordTableLoad(spec.Name, s.loader.Name(), t.Len(), duration, "", nil)
	s.logger.Info().
		Str("source", spec.Name).
		Str("path", spec.Path).
		Int("rows", t.Len()).
		Strs("value_columns", t.ValueColumns()).
		Dur("duration", duration).
		Msg("Loaded recommendation table")
	s.logger.Debug().
		Str("source", spec.Name).
		Strs("first_keys", t.Keys(10)).
		Msg("Sample of available keys")
	return nil
}

// Table returns the loaded table for source. Unloaded slots return an error
// matching ErrNotLoaded and the original *LoadError; unknown names return
// ErrUnknownTable.
func (s *Store) Table(source string) (*Table, error) {
	sl, ok := s.slots[source]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTable, source)
	}
	if sl.table == nil {
		return nil, &notLoadedError{cause: sl.err}
	}
	return sl.table, nil
}

// Ready reports whether every slot holds a loaded table. An empty store is
// not ready.
func (s *Store) Ready() bool {
	if len(s.slots) == 0 {
		return false
	}
	for _, sl := range s.slots {
		if sl.table == nil {
			return false
		}
	}
	return true
}

// Status reports every slot in load order.
func (s *Store) Status() []Status {
	out := make([]Status, 0, len(s.order))
	for _, name := range s.order {
		sl := s.slots[name]
		st := Status{
			Source:     name,
			Path:       sl.spec.Path,
			Format:     sl.spec.Format,
			LoadTimeMS: sl.duration.Milliseconds(),
		}
		if sl.table != nil {
			st.Loaded = true
			st.Rows = sl.table.Len()
			st.Columns = sl.table.ValueColumns()
			loadedAt := sl.loadedAt
			st.LoadedAt = &loadedAt
		}
		if sl.err != nil {
			st.Error = sl.err.Error()
		}
		out = append(out, st)
	}
	return out
}
