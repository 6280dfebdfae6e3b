// ABOUTME: Test helpers for e2e tests
// ABOUTME: Builds the full service stack over a file-backed SQLite inventory

package e2e

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/markalston/assetdex-dcim/cache"
	"github.com/markalston/assetdex-dcim/config"
	"github.com/markalston/assetdex-dcim/handlers"
	"github.com/markalston/assetdex-dcim/metrics"
	"github.com/markalston/assetdex-dcim/middleware"
	"github.com/markalston/assetdex-dcim/services"
	"github.com/markalston/assetdex-dcim/store"
)

// withTestEnv loads configuration from a clean environment plus extra vars.
// DB_PATH points at a fresh file in the test's temp dir.
//
// Example:
//
//	func TestSomething(t *testing.T) {
//	    cfg := withTestEnv(t, map[string]string{
//	        "RATE_LIMIT_WRITE": "2",
//	    })
//	}
func withTestEnv(t *testing.T, extra map[string]string) *config.Config {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("ENV_FILE", filepath.Join(dir, "missing.env"))
	t.Setenv("DB_PATH", filepath.Join(dir, "assetdex.db"))
	for _, key := range []string{
		"PORT", "RACK_UNITS", "CACHE_TTL", "CORS_ALLOWED_ORIGINS",
		"RATE_LIMIT_ENABLED", "RATE_LIMIT_CHECK", "RATE_LIMIT_WRITE", "RATE_LIMIT_DEFAULT",
	} {
		t.Setenv(key, "")
	}
	for key, value := range extra {
		t.Setenv(key, value)
	}

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

// newStack serves every API route through the production middleware chain.
func newStack(t *testing.T, cfg *config.Config) *httptest.Server {
	t.Helper()

	inventory, err := store.Open(cfg.DBPath, services.NewAvailabilityEvaluator(),
		store.WithDefaultRackUnits(cfg.RackUnits))
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	t.Cleanup(func() { inventory.Close() })

	c := cache.New(time.Duration(cfg.CacheTTL) * time.Second)
	t.Cleanup(c.Close)

	m := metrics.New()
	h := handlers.NewHandler(cfg, c, inventory, m)

	limiters := map[handlers.RateClass]*middleware.RateLimiter{}
	if cfg.RateLimitEnabled {
		limiters[handlers.RateDefault] = middleware.PerMinute(cfg.RateLimitDefault)
		limiters[handlers.RateCheck] = middleware.PerMinute(cfg.RateLimitCheck)
		limiters[handlers.RateWrite] = middleware.PerMinute(cfg.RateLimitWrite)
	}

	cors := middleware.CORS(cfg.CORSAllowedOrigins)
	mux := http.NewServeMux()
	for _, route := range h.Routes() {
		mux.HandleFunc(route.Method+" "+route.Path, middleware.Chain(route.Handler,
			middleware.LogRequest,
			middleware.Instrument(m),
			cors,
			middleware.RateLimit(limiters[route.Class], middleware.ClientIP),
		))
	}
	mux.Handle("GET /metrics", m.Handler())

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

// call sends a JSON request and returns the status and raw body.
func call(t *testing.T, server *httptest.Server, method, path string, body any) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, server.URL+path, reader)
	if err != nil {
		t.Fatalf("Failed to build request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := server.Client().Do(req)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("Failed to read body: %v", err)
	}
	return resp.StatusCode, data
}

// callInto is call plus a status assertion and JSON decode into out.
func callInto(t *testing.T, server *httptest.Server, method, path string, body any, wantStatus int, out any) {
	t.Helper()

	status, data := call(t, server, method, path, body)
	if status != wantStatus {
		t.Fatalf("%s %s: expected %d, got %d: %s", method, path, wantStatus, status, data)
	}
	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			t.Fatalf("%s %s: decoding response: %v", method, path, err)
		}
	}
}
