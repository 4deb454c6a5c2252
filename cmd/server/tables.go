// Reclookup - Precomputed Recommendation Lookup Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reclookup

package main

import (
	"context"

	"github.com/tomtom215/reclookup/internal/config"
	"github.com/tomtom215/reclookup/internal/logging"
	"github.com/tomtom215/reclookup/internal/recommend"
	"github.com/tomtom215/reclookup/internal/table"
)

// sourcePlan converts the enabled source slots into table specs and engine
// sources, both in declared order.
func sourcePlan(cfg *config.Config) ([]table.Spec, []recommend.Source) {
	var specs []table.Spec
	var sources []recommend.Source
	for _, src := range cfg.Sources.Ordered() {
		if !src.Enabled {
			continue
		}
		specs = append(specs, table.Spec{
			Name:          src.Name,
			Path:          cfg.ResolvePath(src.Path),
			Format:        table.Format(src.Format),
			KeyColumn:     src.KeyColumn,
			ValuePrefix:   src.ValuePrefix,
			ValueColumn:   src.ValueColumn,
			MissingValues: cfg.Tables.MissingValues,
		})
		sources = append(sources, recommend.Source{Name: src.Name})
	}
	return specs, sources
}

// loadTables builds the store and loads every enabled source. Load failures
// leave the slot unloaded and are already logged by the store, so the
// service still starts and reports them through /api/v1/health/ready.
func loadTables(ctx context.Context, cfg *config.Config, specs []table.Spec) (*table.Store, error) {
	loader, err := table.NewLoader(cfg.Tables.Loader)
	if err != nil {
		return nil, err
	}

	store := table.NewStore(loader, logging.Logger())
	if err := store.LoadAll(ctx, specs); err != nil {
		logging.Warn().Err(err).Msg("Some recommendation tables failed to load")
	}
	return store, nil
}
