// Reclookup - Precomputed Recommendation Lookup Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reclookup

package recommend

import (
	"fmt"
	"strings"

	"github.com/tomtom215/reclookup/internal/table"
)

// Lookup returns the recommendation values stored for key in t.
//
// For column tables the present cells are returned in column order. For
// delimited tables the single value cell is split on "," without trimming,
// and a missing cell yields an empty result. The returned slice is never nil
// and is never shared with the table.
func Lookup(t *table.Table, key string) ([]string, error) {
	if t == nil {
		return nil, ErrTableNotLoaded
	}

	row, ok := t.Row(key)
	if !ok {
		return nil, &NotFoundError{Key: key}
	}

	switch t.Format() {
	case table.FormatColumns:
		values := make([]string, 0, len(row.Cells))
		for _, cell := range row.Cells {
			if cell.Present {
				values = append(values, cell.Value)
			}
		}
		return values, nil

	case table.FormatDelimited:
		if len(row.Cells) == 0 || !row.Cells[0].Present {
			return []string{}, nil
		}
		return strings.Split(row.Cells[0].Value, ","), nil

	default:
		return nil, fmt.Errorf("unsupported table format %q", t.Format())
	}
}
