// Package api wires the read-only artifact server: middleware, routes and
// handler dependencies.
package api

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	corslib "github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/albapepper/tennis-data/internal/api/handler"
	"github.com/albapepper/tennis-data/internal/artifact"
	"github.com/albapepper/tennis-data/internal/cache"
	"github.com/albapepper/tennis-data/internal/config"
	"github.com/albapepper/tennis-data/internal/metrics"
)

// NewRouter creates and configures the Chi router with all middleware and routes.
func NewRouter(store artifact.Store, appCache *cache.Cache, cfg *config.Config, m *metrics.API, logger *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// --- Middleware stack ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(TimingMiddleware)
	r.Use(middleware.Compress(5)) // gzip

	// CORS
	c := corslib.New(corslib.Options{
		AllowedOrigins:   cfg.CORSAllowOrigins,
		AllowedMethods:   []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Accept-Encoding", "Content-Type", "If-None-Match", "Cache-Control"},
		ExposedHeaders:   []string{"X-Process-Time", "X-Cache", "ETag"},
		AllowCredentials: false,
	})
	r.Use(c.Handler)

	// Rate limiting
	if cfg.RateLimitEnabled {
		r.Use(RateLimitMiddleware(cfg.RateLimitRequests, cfg.RateLimitWindow))
	}

	// --- Handler dependencies ---
	h := handler.New(store, appCache, cfg, m, logger)

	// --- Routes ---

	// Root
	r.Get("/", h.Root)

	// Health checks
	r.Route("/health", func(r chi.Router) {
		r.Get("/", h.HealthCheck)
		r.Get("/store", h.HealthCheckStore)
		r.Get("/cache", h.HealthCheckCache)
	})

	// Metrics
	r.Handle("/metrics", m.Handler())

	// Swagger UI
	r.Get("/docs/*", httpSwagger.Handler(httpSwagger.URL("/docs/doc.json")))

	// Artifacts, same layout as the store
	r.Route("/data", func(r chi.Router) {
		r.Get("/metadata.json", h.GetMetadata)
		r.Get("/stats.json", h.GetStats)
		r.Get("/players.json", h.GetPlayers)
		r.Get("/matches/{year}.json", h.GetMatches)
	})

	return r
}
