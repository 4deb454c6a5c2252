// Reclookup - Precomputed Recommendation Lookup Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reclookup

package recommend

import (
	"errors"
	"fmt"

	"github.com/tomtom215/reclookup/internal/table"
)

var (
	// ErrNotFound matches any *NotFoundError.
	ErrNotFound = errors.New("no recommendations found")

	// ErrTableNotLoaded is returned when a source's table is unavailable.
	// It is the same sentinel the store uses for unloaded slots.
	ErrTableNotLoaded = table.ErrNotLoaded
)

// NotFoundError reports a key absent from a source's table.
type NotFoundError struct {
	Key string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no recommendations found for contentId %s", e.Key)
}

// Is reports whether target is ErrNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// LookupFailure wraps the first error raised while querying a source.
type LookupFailure struct {
	Source string
	Err    error
}

func (e *LookupFailure) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Source, e.Err)
}

func (e *LookupFailure) Unwrap() error {
	return e.Err
}
