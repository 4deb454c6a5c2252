// Reclookup - Precomputed Recommendation Lookup Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reclookup

package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
)

func TestPerformanceMonitor_SlidingWindow(t *testing.T) {
	t.Parallel()

	pm := NewPerformanceMonitor(3)
	for i := int64(1); i <= 5; i++ {
		pm.RecordRequest(&RequestMetrics{Endpoint: "/a", Method: "GET", DurationMS: i, StatusCode: 200})
	}

	recent := pm.GetRecentMetrics(10)
	if len(recent) != 3 {
		t.Fatalf("GetRecentMetrics() returned %d, want 3", len(recent))
	}
	if recent[0].DurationMS != 3 || recent[2].DurationMS != 5 {
		t.Errorf("window = %+v, want durations 3..5", recent)
	}

	if got := pm.GetRecentMetrics(-1); len(got) != 0 {
		t.Errorf("GetRecentMetrics(-1) returned %d entries", len(got))
	}
}

func TestPerformanceMonitor_GetStats(t *testing.T) {
	t.Parallel()

	pm := NewPerformanceMonitor(100)
	for _, d := range []int64{10, 20, 30, 40} {
		pm.RecordRequest(&RequestMetrics{Endpoint: "/api/v1/recommendations", Method: "POST", DurationMS: d, StatusCode: 200})
	}
	pm.RecordRequest(&RequestMetrics{Endpoint: "/api/v1/recommendations", Method: "POST", DurationMS: 50, StatusCode: 500})
	pm.RecordRequest(&RequestMetrics{Endpoint: "/api/v1/health", Method: "GET", DurationMS: 1, StatusCode: 200})

	stats := pm.GetStats()
	if len(stats) != 2 {
		t.Fatalf("GetStats() returned %d endpoints, want 2", len(stats))
	}

	rec := stats[0]
	if rec.Endpoint != "POST /api/v1/recommendations" {
		t.Errorf("busiest endpoint = %q", rec.Endpoint)
	}
	if rec.RequestCount != 5 || rec.ErrorCount != 1 {
		t.Errorf("counts = %d/%d, want 5/1", rec.RequestCount, rec.ErrorCount)
	}
	if rec.AvgDuration != 30 || rec.MinDuration != 10 || rec.MaxDuration != 50 || rec.P50Duration != 30 {
		t.Errorf("stats = %+v", rec)
	}
}

func TestPerformanceMonitor_Middleware(t *testing.T) {
	t.Parallel()

	pm := NewPerformanceMonitor(10)
	r := chi.NewRouter()
	r.Use(pm.Middleware)
	r.Get("/items/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/items/7", nil))

	recent := pm.GetRecentMetrics(1)
	if len(recent) != 1 {
		t.Fatalf("expected 1 recorded request, got %d", len(recent))
	}
	if recent[0].Endpoint != "/items/{id}" || recent[0].StatusCode != http.StatusNotFound {
		t.Errorf("recorded = %+v", recent[0])
	}
}

func TestPerformanceMonitor_SlowThreshold(t *testing.T) {
	t.Parallel()

	pm := NewPerformanceMonitor(10)
	pm.SetSlowThreshold(time.Millisecond)

	handler := pm.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(5 * time.Millisecond)
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/slow", nil))

	recent := pm.GetRecentMetrics(1)
	if len(recent) != 1 || recent[0].DurationMS < 5 {
		t.Errorf("recorded = %+v, want duration >= 5ms", recent)
	}
}

func TestPercentile(t *testing.T) {
	t.Parallel()

	sorted := []int64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	tests := []struct {
		p    float64
		want int64
	}{
		{0, 1},
		{0.5, 5},
		{0.95, 9},
		{1, 10},
	}
	for _, tt := range tests {
		if got := percentile(sorted, tt.p); got != tt.want {
			t.Errorf("percentile(%v) = %d, want %d", tt.p, got, tt.want)
		}
	}
	if got := percentile(nil, 0.5); got != 0 {
		t.Errorf("percentile(nil) = %d, want 0", got)
	}
}

func TestPerformanceMonitor_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	pm := NewPerformanceMonitor(50)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				pm.RecordRequest(&RequestMetrics{Endpoint: "/c", Method: "GET", DurationMS: int64(i), StatusCode: 200})
				_ = pm.GetStats()
			}
		}()
	}
	wg.Wait()

	if got := len(pm.GetRecentMetrics(100)); got != 50 {
		t.Errorf("window size = %d, want 50", got)
	}
}
