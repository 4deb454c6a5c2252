// Reclookup - Precomputed Recommendation Lookup Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reclookup

package table

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
)

var (
	// ErrMalformed indicates the file was readable but its structure is invalid:
	// no header, a missing key or value column, or a row wider than the header.
	ErrMalformed = errors.New("malformed table")

	// ErrNotLoaded is returned by Store.Table for a source whose table failed to load.
	ErrNotLoaded = errors.New("table not loaded")

	// ErrUnknownTable is returned by Store.Table for a source name the store was never given.
	ErrUnknownTable = errors.New("unknown table")
)

// LoadError records why the table for a source could not be loaded.
type LoadError struct {
	Source string
	Path   string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s table from %s: %v", e.Source, e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Kind classifies the failure for metrics labels.
func (e *LoadError) Kind() string {
	switch {
	case errors.Is(e.Err, fs.ErrNotExist):
		return "missing_file"
	case errors.Is(e.Err, fs.ErrPermission):
		return "permission"
	case errors.Is(e.Err, ErrMalformed):
		return "malformed"
	case errors.Is(e.Err, context.Canceled), errors.Is(e.Err, context.DeadlineExceeded):
		return "canceled"
	default:
		return "read_error"
	}
}

// notLoadedError wraps the original load failure so callers can match both
// ErrNotLoaded and the underlying *LoadError.
type notLoadedError struct {
	cause *LoadError
}

func (e *notLoadedError) Error() string {
	if e.cause == nil {
		return ErrNotLoaded.Error()
	}
	return fmt.Sprintf("%s: %v", ErrNotLoaded, e.cause)
}

func (e *notLoadedError) Unwrap() []error {
	if e.cause == nil {
		return []error{ErrNotLoaded}
	}
	return []error{ErrNotLoaded, e.cause}
}
