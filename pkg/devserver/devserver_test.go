/*
 * MIT License
 * Copyright (c) 2026 Crrow
 */

package devserver

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/crrow/webui-go/pkg/webui"
	"github.com/prometheus/client_golang/prometheus"
)

func get(t *testing.T, h http.Handler, path string) (int, string) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	body, _ := io.ReadAll(rec.Result().Body)
	return rec.Code, string(body)
}

func TestHealthz(t *testing.T) {
	code, body := get(t, NewRouter(Options{}), "/healthz")
	if code != http.StatusOK || body != "ok\n" {
		t.Errorf("GET /healthz = %d %q", code, body)
	}
}

func TestMetricsExposeBridgeCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	webui.NewMetrics(reg)

	code, body := get(t, NewRouter(Options{Gatherer: reg}), "/metrics")
	if code != http.StatusOK {
		t.Fatalf("GET /metrics = %d", code)
	}
	for _, name := range []string{"webui_dispatch_misses_total", "webui_bindings"} {
		if !strings.Contains(body, name) {
			t.Errorf("/metrics missing %s", name)
		}
	}
}

func TestServesRoot(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "app.html"), []byte("<h1>hi</h1>"), 0o644); err != nil {
		t.Fatalf("write index: %v", err)
	}
	h := NewRouter(Options{Root: root})

	code, body := get(t, h, "/app.html")
	if code != http.StatusOK || body != "<h1>hi</h1>" {
		t.Errorf("GET /app.html = %d %q", code, body)
	}
	if code, _ := get(t, h, "/missing.html"); code != http.StatusNotFound {
		t.Errorf("GET /missing.html = %d, want 404", code)
	}
}

func TestNoRootServesNothing(t *testing.T) {
	if code, _ := get(t, NewRouter(Options{}), "/app.html"); code != http.StatusNotFound {
		t.Errorf("GET /app.html = %d, want 404", code)
	}
}

func TestServeStopsOnCancel(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	s := New(ln.Addr().String(), Options{})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	url := "http://" + ln.Addr().String() + "/healthz"
	var resp *http.Response
	for i := 0; i < 50; i++ {
		resp, err = http.Get(url)
		if err == nil {
			break
		}
		time.Sleep(20 * time.Millisecond)
	}
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	resp.Body.Close()

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Serve returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}
