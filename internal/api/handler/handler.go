// Package handler provides HTTP handlers for all API endpoints.
// Artifacts are read from the store and passed through as raw bytes; the
// server never re-encodes them.
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/albapepper/tennis-data/internal/api/respond"
	"github.com/albapepper/tennis-data/internal/artifact"
	"github.com/albapepper/tennis-data/internal/cache"
	"github.com/albapepper/tennis-data/internal/config"
	"github.com/albapepper/tennis-data/internal/metrics"
)

// Handler holds shared dependencies for all endpoint handlers.
type Handler struct {
	store   artifact.Store
	cache   *cache.Cache
	cfg     *config.Config
	metrics *metrics.API
	logger  *slog.Logger
}

// New creates a Handler with shared dependencies. m may be nil.
func New(store artifact.Store, c *cache.Cache, cfg *config.Config, m *metrics.API, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{store: store, cache: c, cfg: cfg, metrics: m, logger: logger}
}

// Root serves API info at /.
// @Summary API root info
// @Description Returns API name, version, status, and the artifact paths.
// @Tags meta
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]any{
		"name":    "Tennis Data API",
		"version": "1.0.0",
		"status":  "running",
		"docs":    "/docs",
		"artifacts": []string{
			"/data/" + artifact.MetadataKey,
			"/data/" + artifact.StatsKey,
			"/data/" + artifact.PlayersKey,
			"/data/" + artifact.MatchesPrefix + "{year}.json",
		},
	})
}

// HealthCheck returns basic health status.
// @Summary Health check
// @Description Returns basic health status, environment and timestamp.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]any{
		"status":      "healthy",
		"environment": h.cfg.Environment,
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
	})
}

// HealthCheckStore verifies that an artifact set has been published.
// @Summary Artifact store health check
// @Description Reads metadata.json from the store and reports when the set was generated.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health/store [get]
func (h *Handler) HealthCheckStore(w http.ResponseWriter, r *http.Request) {
	unhealthy := func(reason string) {
		respond.WriteJSONObject(w, http.StatusServiceUnavailable, map[string]any{
			"status":    "unhealthy",
			"store":     reason,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}

	data, err := h.store.Get(r.Context(), artifact.MetadataKey)
	if errors.Is(err, artifact.ErrNotFound) {
		unhealthy("empty")
		return
	}
	if err != nil {
		h.logger.Error("Store health check failed", "error", err)
		unhealthy("unreachable")
		return
	}

	var md struct {
		TotalMatches   int    `json:"total_matches"`
		AvailableYears []int  `json:"available_years"`
		GeneratedAt    string `json:"generated_at"`
	}
	if err := json.Unmarshal(data, &md); err != nil {
		unhealthy("corrupt")
		return
	}
	respond.WriteJSONObject(w, http.StatusOK, map[string]any{
		"status":        "healthy",
		"store":         "ready",
		"generated_at":  md.GeneratedAt,
		"total_matches": md.TotalMatches,
		"partitions":    len(md.AvailableYears),
		"timestamp":     time.Now().UTC().Format(time.RFC3339),
	})
}

// HealthCheckCache returns cache statistics.
// @Summary Cache health check
// @Description Returns in-memory cache statistics (active keys, expired keys).
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health/cache [get]
func (h *Handler) HealthCheckCache(w http.ResponseWriter, r *http.Request) {
	respond.WriteJSONObject(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"cache":     h.cache.Stats(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
