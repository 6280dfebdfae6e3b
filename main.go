// ABOUTME: Entry point for the AssetDex rack-space service
// ABOUTME: Provides the HTTP API for rack inventory and placement availability checks

package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/markalston/assetdex-dcim/cache"
	"github.com/markalston/assetdex-dcim/config"
	"github.com/markalston/assetdex-dcim/handlers"
	"github.com/markalston/assetdex-dcim/logger"
	"github.com/markalston/assetdex-dcim/metrics"
	"github.com/markalston/assetdex-dcim/middleware"
	"github.com/markalston/assetdex-dcim/services"
	"github.com/markalston/assetdex-dcim/store"
)

func main() {
	// Initialize structured logging
	logger.Init()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting AssetDex rack-space service")

	if err := run(cfg); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Server stopped")
}

func run(cfg *config.Config) error {
	inventory, err := store.Open(cfg.DBPath, services.NewAvailabilityEvaluator(),
		store.WithDefaultRackUnits(cfg.RackUnits))
	if err != nil {
		return err
	}
	defer inventory.Close()

	cacheTTL := time.Duration(cfg.CacheTTL) * time.Second
	c := cache.New(cacheTTL)
	defer c.Close()
	slog.Info("Cache initialized", "ttl", cacheTTL)

	m := metrics.New()
	h := handlers.NewHandler(cfg, c, inventory, m)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           newMux(cfg, h, m),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("Server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("Shutting down", "timeout_seconds", cfg.ShutdownTimeout)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ShutdownTimeout)*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// newMux registers every API route with its middleware stack plus /metrics.
func newMux(cfg *config.Config, h *handlers.Handler, m *metrics.Metrics) *http.ServeMux {
	limiters := map[handlers.RateClass]*middleware.RateLimiter{}
	if cfg.RateLimitEnabled {
		limiters[handlers.RateDefault] = middleware.PerMinute(cfg.RateLimitDefault)
		limiters[handlers.RateCheck] = middleware.PerMinute(cfg.RateLimitCheck)
		limiters[handlers.RateWrite] = middleware.PerMinute(cfg.RateLimitWrite)
		slog.Info("Rate limiting enabled",
			"check_per_min", cfg.RateLimitCheck,
			"write_per_min", cfg.RateLimitWrite,
			"default_per_min", cfg.RateLimitDefault,
		)
	}

	cors := middleware.CORS(cfg.CORSAllowedOrigins)
	mux := http.NewServeMux()
	preflight := map[string]bool{}
	for _, route := range h.Routes() {
		mux.HandleFunc(route.Method+" "+route.Path, middleware.Chain(route.Handler,
			middleware.LogRequest,
			middleware.Instrument(m),
			cors,
			middleware.RateLimit(limiters[route.Class], middleware.ClientIP),
		))
		// Preflight requests need a matching pattern for every path.
		if !preflight[route.Path] {
			preflight[route.Path] = true
			mux.HandleFunc(http.MethodOptions+" "+route.Path, cors(func(http.ResponseWriter, *http.Request) {}))
		}
	}
	mux.Handle("GET /metrics", m.Handler())
	return mux
}
