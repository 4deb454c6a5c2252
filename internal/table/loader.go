// Reclookup - Precomputed Recommendation Lookup Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reclookup

package table

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
)

// Loader reads a table file described by a Spec.
// Implementations return *LoadError on failure.
type Loader interface {
	// Name identifies the backend in logs and metrics.
	Name() string

	// Load reads the whole file into memory.
	Load(ctx context.Context, spec Spec) (*Table, error)
}

// Loader backend names.
const (
	LoaderCSV    = "csv"
	LoaderDuckDB = "duckdb"
)

// NewLoader returns the loader backend registered under name.
func NewLoader(name string) (Loader, error) {
	switch name {
	case LoaderCSV, "":
		return CSVLoader{}, nil
	case LoaderDuckDB:
		return DuckDBLoader{}, nil
	default:
		return nil, fmt.Errorf("unknown table loader %q", name)
	}
}

// ctxCheckInterval is how many rows are read between context checks.
const ctxCheckInterval = 4096

// CSVLoader streams a CSV file through encoding/csv.
type CSVLoader struct{}

// Name implements Loader.
func (CSVLoader) Name() string { return LoaderCSV }

// Load implements Loader.
//
//nolint:gocritic // Spec passed by value for immutability
func (CSVLoader) Load(ctx context.Context, spec Spec) (*Table, error) {
	f, err := os.Open(spec.Path)
	if err != nil {
		return nil, &LoadError{Source: spec.Name, Path: spec.Path, Err: err}
	}
	defer f.Close()

	t, err := ReadCSV(ctx, f, spec)
	if err != nil {
		return nil, &LoadError{Source: spec.Name, Path: spec.Path, Err: err}
	}
	return t, nil
}

// ReadCSV builds a table from CSV data. The first record is the header.
//
//nolint:gocritic // Spec passed by value for immutability
func ReadCSV(ctx context.Context, r io.Reader, spec Spec) (*Table, error) {
	reader := csv.NewReader(r)
	// Row widths are checked against the header by the builder.
	reader.FieldsPerRecord = -1
	// A bare quote inside an unquoted field is kept as a literal character.
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: file has no header row", ErrMalformed)
	}
	if err != nil {
		return nil, csvError(err)
	}

	b, err := newBuilder(spec, header)
	if err != nil {
		return nil, err
	}

	for n := 0; ; n++ {
		if n%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, csvError(err)
		}

		line, _ := reader.FieldPos(0)
		if err := b.add(line, record, nil); err != nil {
			return nil, err
		}
	}

	return b.build(), nil
}

// csvError marks CSV syntax errors as malformed input.
func csvError(err error) error {
	var parseErr *csv.ParseError
	if errors.As(err, &parseErr) {
		return fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return err
}
