// Reclookup - Precomputed Recommendation Lookup Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reclookup

package table

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"

	_ "github.com/duckdb/duckdb-go/v2"
)

// DuckDBLoader reads the file with DuckDB's read_csv into an in-memory
// database. Every column is read as VARCHAR so keys keep their text form;
// NULL cells are treated as missing.
type DuckDBLoader struct{}

// Name implements Loader.
func (DuckDBLoader) Name() string { return LoaderDuckDB }

// Load implements Loader.
//
//nolint:gocritic // Spec passed by value for immutability
func (DuckDBLoader) Load(ctx context.Context, spec Spec) (*Table, error) {
	// read_csv reports a missing file as a generic IO error; stat first so
	// the error matches fs.ErrNotExist like the csv loader.
	if _, err := os.Stat(spec.Path); err != nil {
		return nil, &LoadError{Source: spec.Name, Path: spec.Path, Err: err}
	}

	t, err := readDuckDB(ctx, spec)
	if err != nil {
		return nil, &LoadError{Source: spec.Name, Path: spec.Path, Err: err}
	}
	return t, nil
}

//nolint:gocritic // Spec passed by value for immutability
func readDuckDB(ctx context.Context, spec Spec) (*Table, error) {
	conn, err := sql.Open("duckdb", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}
	defer conn.Close()

	rows, err := conn.QueryContext(ctx, readCSVQuery(spec.Path))
	if err != nil {
		return nil, fmt.Errorf("read_csv: %w", err)
	}
	defer rows.Close()

	header, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("read columns: %w", err)
	}

	b, err := newBuilder(spec, header)
	if err != nil {
		return nil, err
	}

	values := make([]sql.NullString, len(header))
	dest := make([]any, len(header))
	for i := range values {
		dest[i] = &values[i]
	}
	fields := make([]string, len(header))
	nulls := make([]bool, len(header))

	for line := 2; rows.Next(); line++ {
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan line %d: %w", line, err)
		}
		for i, v := range values {
			fields[i] = v.String
			nulls[i] = !v.Valid
		}
		if err := b.add(line, fields, nulls); err != nil {
			return nil, err
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}

	return b.build(), nil
}

// readCSVQuery builds the read_csv query for path. Short rows are padded
// with NULL and bare quotes inside unquoted fields are kept literally, both
// to match the csv loader.
func readCSVQuery(path string) string {
	escaped := strings.ReplaceAll(path, "'", "''")
	return fmt.Sprintf(
		"SELECT * FROM read_csv('%s', header = true, all_varchar = true, null_padding = true, quote = '\"', escape = '\"', strict_mode = false)",
		escaped,
	)
}
