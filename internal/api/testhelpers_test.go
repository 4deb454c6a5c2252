// Reclookup - Precomputed Recommendation Lookup Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reclookup

package api

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/reclookup/internal/models"
	"github.com/tomtom215/reclookup/internal/recommend"
	"github.com/tomtom215/reclookup/internal/table"
)

const (
	cfName      = "Collaborative Filtering"
	contentName = "Content Filtering"

	cfCSV      = "contentId,Recommendation 1,Recommendation 2\n42,Foo,Bar\n43,Baz\n"
	contentCSV = "contentId,recommendations\n42,\"1,2,3\"\n"
)

// testTable is a table file to write and load for a test server.
type testTable struct {
	spec    table.Spec
	content string // empty leaves the file missing
}

func cfTable() testTable {
	return testTable{
		spec: table.Spec{
			Name:        cfName,
			Path:        "article_recommendations2.csv",
			Format:      table.FormatColumns,
			KeyColumn:   "contentId",
			ValuePrefix: "Recommendation",
		},
		content: cfCSV,
	}
}

func contentTable() testTable {
	return testTable{
		spec: table.Spec{
			Name:        contentName,
			Path:        "content_filtering_results.csv",
			Format:      table.FormatDelimited,
			KeyColumn:   "contentId",
			ValueColumn: "recommendations",
		},
		content: contentCSV,
	}
}

// setupTestRouter loads tables from a temp dir and returns the full chi
// handler. Rate limiting is disabled unless mw says otherwise.
func setupTestRouter(t *testing.T, mw *ChiMiddlewareConfig, tables ...testTable) (http.Handler, *Handler) {
	t.Helper()

	dir := t.TempDir()
	specs := make([]table.Spec, 0, len(tables))
	sources := make([]recommend.Source, 0, len(tables))
	for _, tt := range tables {
		spec := tt.spec
		spec.Path = filepath.Join(dir, spec.Path)
		if tt.content != "" {
			if err := os.WriteFile(spec.Path, []byte(tt.content), 0o600); err != nil {
				t.Fatalf("write %s: %v", spec.Path, err)
			}
		}
		specs = append(specs, spec)
		sources = append(sources, recommend.Source{Name: spec.Name})
	}

	store := table.NewStore(table.CSVLoader{}, zerolog.Nop())
	_ = store.LoadAll(context.Background(), specs)

	engine, err := recommend.NewEngine(store, sources, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}

	if mw == nil {
		mw = DefaultChiMiddlewareConfig()
		mw.CORSAllowedOrigins = []string{"http://localhost:3000"}
		mw.RateLimitDisabled = true
	}

	handler := NewHandler(engine, store, "test")
	return NewRouter(handler, NewChiMiddleware(mw)).SetupChi(), handler
}

func doRequest(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// envelope mirrors models.APIResponse with the data left undecoded.
type envelope struct {
	Status   string           `json:"status"`
	Data     json.RawMessage  `json:"data"`
	Metadata models.Metadata  `json:"metadata"`
	Error    *models.APIError `json:"error"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope %q: %v", rec.Body.String(), err)
	}
	return env
}

func decodeDetail(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body models.DetailError
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode detail %q: %v", rec.Body.String(), err)
	}
	return body.Detail
}
