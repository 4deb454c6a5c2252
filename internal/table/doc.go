// Reclookup - Precomputed Recommendation Lookup Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reclookup

// Package table loads precomputed recommendation tables from flat files and
// holds them in memory for lookup.
//
// # Formats
//
// A table has a key column, read as text, and value cells in one of two
// layouts:
//
//   - columns: every header starting with the value prefix (default
//     "Recommendation") is a value column, in header order
//   - delimited: a single value column holding a comma-joined string
//
// A cell is missing when it is empty, absent from a short row, or equal to one
// of the configured missing markers. Rows with more fields than the header
// make the file malformed.
//
// # Loaders
//
// CSVLoader streams the file through encoding/csv. DuckDBLoader reads it with
// DuckDB's read_csv with all_varchar set, which tolerates the sloppier
// exports some offline pipelines produce. Both return *LoadError.
//
// # Store
//
// Store holds one slot per source. LoadAll never aborts on a failed load; the
// slot stays unloaded and Store.Table reports ErrNotLoaded wrapping the
// original *LoadError:
//
//	store := table.NewStore(loader, logging.Logger())
//	if err := store.LoadAll(ctx, specs); err != nil {
//	    logging.Warn().Err(err).Msg("Some recommendation tables failed to load")
//	}
//	t, err := store.Table("Collaborative Filtering")
//
// When two rows share a key the first one wins.
package table
