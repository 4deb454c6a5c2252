// Reclookup - Precomputed Recommendation Lookup Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reclookup

package recommend

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/rs/zerolog"

	"github.com/tomtom215/reclookup/internal/table"
)

// TestLookupColumnsProperty verifies column lookups return exactly the
// present cells in column order.
// Property: Lookup(row) == filter(cells, present)
func TestLookupColumnsProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("column lookup keeps present cells in order", prop.ForAll(
		func(cells []string) bool {
			header := []string{"contentId"}
			for i := range cells {
				header = append(header, fmt.Sprintf("Recommendation %d", i+1))
			}
			if len(cells) == 0 {
				header = append(header, "Recommendation 1")
			}
			tbl, err := table.NewTable(table.Spec{
				Format:        table.FormatColumns,
				KeyColumn:     "contentId",
				ValuePrefix:   "Recommendation",
				MissingValues: []string{"NA"},
			}, header, [][]string{append([]string{"k"}, cells...)})
			if err != nil {
				return false
			}

			want := []string{}
			for _, c := range cells {
				if c != "" && c != "NA" {
					want = append(want, c)
				}
			}

			got, err := Lookup(tbl, "k")
			return err == nil && reflect.DeepEqual(got, want)
		},
		gen.SliceOf(gen.OneGenOf(gen.AlphaString(), gen.Const("NA"), gen.Const(""))),
	))

	properties.TestingRun(t)
}

// TestLookupDelimitedProperty verifies delimited lookups are the exact
// comma-split tokens of the stored value.
// Property: Lookup(join(tokens, ",")) == tokens
func TestLookupDelimitedProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("delimited lookup splits without trimming", prop.ForAll(
		func(tokens []string) bool {
			value := strings.Join(tokens, ",")
			tbl, err := table.NewTable(table.Spec{
				Format:      table.FormatDelimited,
				KeyColumn:   "item_id",
				ValueColumn: "recommendations",
			}, []string{"item_id", "recommendations"}, [][]string{{"k", value}})
			if err != nil {
				return false
			}

			got, err := Lookup(tbl, "k")
			if err != nil {
				return false
			}
			if value == "" {
				return len(got) == 0
			}
			return reflect.DeepEqual(got, tokens)
		},
		gen.SliceOf(gen.OneGenOf(gen.AlphaString(), gen.Const(" padded "), gen.Const(""))),
	))

	properties.TestingRun(t)
}

// TestRecommendRoundTripProperty verifies a row's values come back unchanged
// regardless of the other rows in the table.
// Property: Recommend(K) == values(K) for any set of other rows
func TestRecommendRoundTripProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("round trip is independent of other rows", prop.ForAll(
		func(values []string, others []string) bool {
			if len(values) == 0 {
				return true
			}
			records := make([][]string, 0, len(others)+1)
			for i, v := range others {
				records = append(records, []string{fmt.Sprintf("other-%d", i), v})
			}
			records = append(records, []string{"target", strings.Join(values, ",")})

			tbl, err := table.NewTable(table.Spec{
				Name:        "Collaborative Filtering",
				Format:      table.FormatDelimited,
				KeyColumn:   "item_id",
				ValueColumn: "recommendations",
			}, []string{"item_id", "recommendations"}, records)
			if err != nil {
				return false
			}

			engine, err := NewEngine(&mockTables{tables: map[string]*table.Table{"Collaborative Filtering": tbl}},
				[]Source{{Name: "Collaborative Filtering"}}, zerolog.Nop())
			if err != nil {
				return false
			}

			key := "target"
			got, err := engine.Recommend(context.Background(), Request{ContentID: &key})
			return err == nil && len(got) == 1 && reflect.DeepEqual(got[0].Recommendations, values)
		},
		gen.SliceOf(gen.Identifier()),
		gen.SliceOf(gen.AlphaString()),
	))

	properties.TestingRun(t)
}
