// Reclookup - Precomputed Recommendation Lookup Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reclookup

// Package recommend serves precomputed recommendations from loaded tables.
//
// # Overview
//
// All ranking happened offline. This package only reads: [Lookup] extracts
// the recommendation values for one key from one table, and [Engine] fans a
// request out over the configured sources in their fixed order.
//
// # Table Formats
//
//   - Column tables: every value column contributes one recommendation;
//     missing cells are skipped.
//   - Delimited tables: one comma-joined cell is split on "," as-is.
//
// # Error Handling
//
// A key absent from a table is an error, not an empty result:
//
//	recs, err := recommend.Lookup(tbl, "42")
//	if errors.Is(err, recommend.ErrNotFound) {
//	    // key not in table
//	}
//
// [Engine.Recommend] stops at the first failing source and returns a
// [*LookupFailure] whose message names it ("Collaborative Filtering failed:
// ..."). Unloaded tables surface as [ErrTableNotLoaded].
//
// # Usage
//
//	engine, err := recommend.NewEngine(store, []recommend.Source{
//	    {Name: "Collaborative Filtering"},
//	}, logger)
//	if err != nil {
//	    return err
//	}
//	id := "42"
//	results, err := engine.Recommend(ctx, recommend.Request{ContentID: &id})
//
// # Thread Safety
//
// Tables are immutable after loading and the engine holds no mutable state
// besides atomic counters, so lookups run concurrently without locks.
package recommend
