package sackmann

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/albapepper/tennis-data/internal/provider"
)

const playersFile = "atp_players.csv"

// MatchesFile returns the source unit name for one season of tour matches.
func MatchesFile(year int) string {
	return fmt.Sprintf("atp_matches_%d.csv", year)
}

// ATPHandler fetches and normalizes the ATP roster and match files.
type ATPHandler struct {
	src    Opener
	logger *slog.Logger
}

// NewATPHandler creates a handler reading through src.
func NewATPHandler(src Opener, logger *slog.Logger) *ATPHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ATPHandler{src: src, logger: logger}
}

// --------------------------------------------------------------------------
// Players
// --------------------------------------------------------------------------

// Players fetches the full roster in canonical format, in file order.
func (h *ATPHandler) Players(ctx context.Context) ([]provider.Player, error) {
	body, err := h.src.Open(ctx, playersFile)
	if err != nil {
		return nil, fmt.Errorf("fetch players: %w", err)
	}
	rows, err := provider.ParseRows(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", playersFile, err)
	}

	players := make([]provider.Player, len(rows))
	for i, r := range rows {
		players[i] = provider.NormalizePlayer(r)
	}
	return players, nil
}

// --------------------------------------------------------------------------
// Matches
// --------------------------------------------------------------------------

// Matches fetches one season of matches in canonical format, in file order.
func (h *ATPHandler) Matches(ctx context.Context, year int) ([]provider.Match, error) {
	name := MatchesFile(year)
	body, err := h.src.Open(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("fetch matches %d: %w", year, err)
	}
	rows, err := provider.ParseRows(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}

	matches := make([]provider.Match, len(rows))
	for i, r := range rows {
		matches[i] = provider.NormalizeMatch(r)
	}
	return matches, nil
}
