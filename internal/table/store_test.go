// Reclookup - Precomputed Recommendation Lookup Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reclookup

package table

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"

	"github.com/tomtom215/reclookup/internal/metrics"
)

func TestStore_LoadAll_PartialFailure(t *testing.T) {
	t.Parallel()

	var logBuf bytes.Buffer
	store := NewStore(CSVLoader{}, zerolog.New(&logBuf))

	good := columnsSpec()
	good.Name = "store-test-good"
	good.Path = writeTable(t, "good.csv", columnsCSV)

	bad := delimitedSpec()
	bad.Name = "store-test-bad"
	bad.Path = filepath.Join(t.TempDir(), "missing.csv")

	err := store.LoadAll(context.Background(), []Spec{good, bad})
	if err == nil {
		t.Fatal("LoadAll() expected joined error for the failed spec")
	}
	var loadErr *LoadError
	if !errors.As(err, &loadErr) || loadErr.Source != "store-test-bad" {
		t.Errorf("LoadAll() error = %v, want *LoadError for store-test-bad", err)
	}

	tbl, err := store.Table("store-test-good")
	if err != nil {
		t.Fatalf("Table(good) error = %v", err)
	}
	if tbl.Len() != 4 {
		t.Errorf("Table(good).Len() = %d, want 4", tbl.Len())
	}

	_, err = store.Table("store-test-bad")
	if !errors.Is(err, ErrNotLoaded) {
		t.Errorf("Table(bad) error = %v, want ErrNotLoaded", err)
	}
	if !errors.As(err, &loadErr) {
		t.Errorf("Table(bad) error should carry the *LoadError: %v", err)
	}

	_, err = store.Table("nope")
	if !errors.Is(err, ErrUnknownTable) {
		t.Errorf("Table(nope) error = %v, want ErrUnknownTable", err)
	}

	if store.Ready() {
		t.Error("Ready() = true with an unloaded slot")
	}

	if got := testutil.ToFloat64(metrics.TableLoaded.WithLabelValues("store-test-good")); got != 1 {
		t.Errorf("table_loaded{good} = %v, want 1", got)
	}
	if got := testutil.ToFloat64(metrics.TableLoadErrors.WithLabelValues("store-test-bad", "missing_file")); got != 1 {
		t.Errorf("table_load_errors_total{bad,missing_file} = %v, want 1", got)
	}

	logs := logBuf.String()
	if !strings.Contains(logs, "Failed to load recommendation table") {
		t.Errorf("expected load failure to be logged: %s", logs)
	}
	if !strings.Contains(logs, `"component":"table-store"`) {
		t.Errorf("expected component field in logs: %s", logs)
	}
}

func TestStore_Status(t *testing.T) {
	t.Parallel()

	store := NewStore(CSVLoader{}, zerolog.Nop())

	good := columnsSpec()
	good.Name = "status-good"
	good.Path = writeTable(t, "good.csv", columnsCSV)

	bad := columnsSpec()
	bad.Name = "status-bad"
	bad.Path = filepath.Join(t.TempDir(), "missing.csv")

	_ = store.LoadAll(context.Background(), []Spec{good, bad})

	status := store.Status()
	if len(status) != 2 {
		t.Fatalf("Status() returned %d entries, want 2", len(status))
	}
	if status[0].Source != "status-good" || status[1].Source != "status-bad" {
		t.Errorf("Status() order = [%s, %s], want load order", status[0].Source, status[1].Source)
	}
	if !status[0].Loaded || status[0].Rows != 4 || status[0].Error != "" {
		t.Errorf("Status(good) = %+v", status[0])
	}
	if status[0].LoadedAt == nil || status[0].LoadedAt.IsZero() {
		t.Errorf("Status(good).LoadedAt = %v, want load time", status[0].LoadedAt)
	}
	if status[1].Loaded || status[1].Error == "" {
		t.Errorf("Status(bad) = %+v, want unloaded with error", status[1])
	}
	if status[1].LoadedAt != nil {
		t.Errorf("Status(bad).LoadedAt = %v, want nil", status[1].LoadedAt)
	}

	body, err := json.Marshal(status[1])
	if err != nil {
		t.Fatalf("marshal status: %v", err)
	}
	if strings.Contains(string(body), "loaded_at") {
		t.Errorf("unloaded status JSON = %s, want no loaded_at", body)
	}
}

func TestStore_ReadyWhenAllLoaded(t *testing.T) {
	t.Parallel()

	store := NewStore(CSVLoader{}, zerolog.Nop())
	if store.Ready() {
		t.Error("empty store should not be ready")
	}

	spec := columnsSpec()
	spec.Name = "ready-test"
	spec.Path = writeTable(t, "good.csv", columnsCSV)
	if err := store.LoadAll(context.Background(), []Spec{spec}); err != nil {
		t.Fatalf("LoadAll() error = %v", err)
	}
	if !store.Ready() {
		t.Error("Ready() = false after successful load")
	}
}

func TestStore_ConcurrentReads(t *testing.T) {
	t.Parallel()

	store := NewStore(CSVLoader{}, zerolog.Nop())
	spec := columnsSpec()
	spec.Name = "concurrent-test"
	spec.Path = writeTable(t, "good.csv", columnsCSV)
	if err := store.LoadAll(context.Background(), []Spec{spec}); err != nil {
		t.Fatalf("LoadAll() error = %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				tbl, err := store.Table("concurrent-test")
				if err != nil {
					t.Errorf("Table() error = %v", err)
					return
				}
				if _, ok := tbl.Row("42"); !ok {
					t.Error("Row(42) not found")
					return
				}
				_ = store.Status()
			}
		}()
	}
	wg.Wait()
}
