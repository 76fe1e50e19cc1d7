// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/humaidq/ehrkit/metrics"
)

func newTestServer(t *testing.T) (http.Handler, string) {
	t.Helper()

	dir := t.TempDir()
	f, err := newServer(metrics.Fallback(), dir)
	if err != nil {
		t.Fatalf("newServer failed: %v", err)
	}

	return f, dir
}

func get(h http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestServerMetricsAPI(t *testing.T) {
	t.Parallel()

	h, _ := newTestServer(t)

	rec := get(h, "/api/metrics")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"cpuUtilization":18.6`) {
		t.Fatalf("expected fallback document, got %q", rec.Body.String())
	}

	rec = get(h, "/api/metrics/scalability")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	rec = get(h, "/api/metrics/research")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, rec.Code)
	}

	rec = get(h, "/api/metrics/unknown")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Invalid metric category") {
		t.Fatalf("unexpected body %q", rec.Body.String())
	}
}

func TestServerReportView(t *testing.T) {
	t.Parallel()

	h, _ := newTestServer(t)

	for _, path := range []string{"/", "/report"} {
		rec := get(h, path)
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: expected status %d, got %d", path, http.StatusOK, rec.Code)
		}

		body := rec.Body.String()
		for _, want := range []string{"Report ID:", "Data source: stub", "99.5"} {
			if !strings.Contains(body, want) {
				t.Fatalf("%s: expected body to contain %q", path, want)
			}
		}
	}
}

func TestServerServesOutputFiles(t *testing.T) {
	t.Parallel()

	h, dir := newTestServer(t)

	if err := os.WriteFile(filepath.Join(dir, "metrics_report.svg"), []byte("<svg/>"), 0644); err != nil {
		t.Fatalf("failed to write output file: %v", err)
	}

	rec := get(h, "/metrics_report.svg")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if rec.Body.String() != "<svg/>" {
		t.Fatalf("unexpected body %q", rec.Body.String())
	}
}

func TestServerUnknownRouteReturnsEmpty404(t *testing.T) {
	t.Parallel()

	h, _ := newTestServer(t)

	rec := get(h, "/does-not-exist")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("expected empty 404 body, got %q", rec.Body.String())
	}
}

func TestListenAndServeStopsOnCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	srv := &http.Server{Addr: "127.0.0.1:0", Handler: http.NotFoundHandler()}

	done := make(chan error, 1)
	go func() {
		done <- listenAndServe(ctx, srv)
	}()

	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("expected clean shutdown, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("server did not stop after cancel")
	}
}
