package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/albapepper/tennis-data/internal/api/respond"
	"github.com/albapepper/tennis-data/internal/artifact"
	"github.com/albapepper/tennis-data/internal/cache"
)

// GetMetadata serves metadata.json.
// @Summary Get metadata
// @Description Filter options, year range, top players and available partition years.
// @Tags artifacts
// @Produce json
// @Success 200 {object} artifact.Metadata
// @Success 304 "Not modified"
// @Failure 404 {object} respond.ErrorResponse
// @Router /data/metadata.json [get]
func (h *Handler) GetMetadata(w http.ResponseWriter, r *http.Request) {
	h.serveArtifact(w, r, "metadata", artifact.MetadataKey, cache.TTLMetadata)
}

// GetStats serves stats.json.
// @Summary Get pre-aggregated stats
// @Description Per-year, per-surface and per-level counts, surface trends, grand slam leaders and average durations.
// @Tags artifacts
// @Produce json
// @Success 200 {object} artifact.Stats
// @Success 304 "Not modified"
// @Failure 404 {object} respond.ErrorResponse
// @Router /data/stats.json [get]
func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	h.serveArtifact(w, r, "stats", artifact.StatsKey, cache.TTLStats)
}

// GetPlayers serves players.json.
// @Summary Get active players
// @Description Every roster player who appears in at least one match.
// @Tags artifacts
// @Produce json
// @Success 200 {array} provider.Player
// @Success 304 "Not modified"
// @Failure 404 {object} respond.ErrorResponse
// @Router /data/players.json [get]
func (h *Handler) GetPlayers(w http.ResponseWriter, r *http.Request) {
	h.serveArtifact(w, r, "players", artifact.PlayersKey, cache.TTLPlayers)
}

// GetMatches serves one yearly partition.
// @Summary Get matches for a year
// @Description All matches whose tournament date falls in the year, in source order.
// @Tags artifacts
// @Produce json
// @Param year path int true "Calendar year, e.g. 2020"
// @Success 200 {array} provider.Match
// @Success 304 "Not modified"
// @Failure 400 {object} respond.ErrorResponse
// @Failure 404 {object} respond.ErrorResponse
// @Router /data/matches/{year}.json [get]
func (h *Handler) GetMatches(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "year")
	year, err := strconv.Atoi(raw)
	if err != nil || year <= 0 {
		h.metrics.RecordRequest("matches", "bad_request", 0)
		respond.WriteError(w, http.StatusBadRequest, "INVALID_YEAR", "year must be a positive integer, got "+strconv.Quote(raw))
		return
	}
	h.serveArtifact(w, r, "matches", artifact.MatchesKey(year), cache.TTLPartition)
}

// serveArtifact answers from the cache when possible, otherwise reads the
// store and caches the body. Conditional requests get a 304.
func (h *Handler) serveArtifact(w http.ResponseWriter, r *http.Request, kind, key string, ttl time.Duration) {
	ifNoneMatch := r.Header.Get("If-None-Match")

	if data, etag, ok := h.cache.Get(key); ok {
		if cache.CheckETagMatch(ifNoneMatch, etag) {
			h.metrics.RecordRequest(kind, "not_modified", 0)
			respond.WriteNotModified(w, etag, ttl)
			return
		}
		h.metrics.RecordRequest(kind, "hit", len(data))
		respond.WriteJSON(w, data, etag, ttl, true)
		return
	}

	data, err := h.store.Get(r.Context(), key)
	if errors.Is(err, artifact.ErrNotFound) {
		h.metrics.RecordRequest(kind, "not_found", 0)
		respond.WriteError(w, http.StatusNotFound, "NOT_FOUND", "No artifact at "+key)
		return
	}
	if err != nil {
		h.logger.Error("Artifact read failed", "key", key, "error", err)
		h.metrics.RecordRequest(kind, "error", 0)
		respond.WriteError(w, http.StatusServiceUnavailable, "STORE_UNAVAILABLE", "Artifact store is unavailable")
		return
	}

	etag := h.cache.Set(key, data, ttl)
	if cache.CheckETagMatch(ifNoneMatch, etag) {
		h.metrics.RecordRequest(kind, "not_modified", 0)
		respond.WriteNotModified(w, etag, ttl)
		return
	}
	h.metrics.RecordRequest(kind, "miss", len(data))
	respond.WriteJSON(w, data, etag, ttl, false)
}
