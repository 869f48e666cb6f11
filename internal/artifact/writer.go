package artifact

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"

	"github.com/albapepper/tennis-data/internal/provider"
)

// Set is one complete, internally consistent artifact generation.
type Set struct {
	// Partitions maps year to that year's matches in source order.
	// Year 0 (undated matches) is never written.
	Partitions map[int][]provider.Match
	Players    []provider.Player
	Stats      *Stats
	Metadata   *Metadata
}

// Writer persists a Set into a Store.
type Writer struct {
	store  Store
	prune  bool
	logger *slog.Logger
}

// NewWriter creates a writer. With prune set, partitions left over from
// earlier runs that are not part of the new set are deleted after the
// metadata has been replaced.
func NewWriter(store Store, prune bool, logger *slog.Logger) *Writer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Writer{store: store, prune: prune, logger: logger}
}

// Write persists every unit of set and returns the keys written, in order.
// Metadata goes last so a reader that sees the new available_years also
// finds every partition it names.
func (w *Writer) Write(ctx context.Context, set *Set) ([]string, error) {
	var written []string

	years := make([]int, 0, len(set.Partitions))
	for y := range set.Partitions {
		if y > 0 {
			years = append(years, y)
		}
	}
	sort.Ints(years)

	for _, y := range years {
		key := MatchesKey(y)
		matches := set.Partitions[y]
		if matches == nil {
			matches = []provider.Match{}
		}
		if err := w.put(ctx, key, matches, false); err != nil {
			return written, err
		}
		written = append(written, key)
	}
	w.logger.Info("Match partitions written", "files", len(years))

	players := set.Players
	if players == nil {
		players = []provider.Player{}
	}
	units := []struct {
		key    string
		v      any
		indent bool
	}{
		{PlayersKey, players, false},
		{StatsKey, set.Stats, false},
		{MetadataKey, set.Metadata, true},
	}
	for _, u := range units {
		if err := w.put(ctx, u.key, u.v, u.indent); err != nil {
			return written, err
		}
		written = append(written, u.key)
		w.logger.Info("Artifact written", "key", u.key)
	}

	if w.prune {
		removed, err := w.pruneStale(ctx, years)
		if err != nil {
			return written, err
		}
		if removed > 0 {
			w.logger.Info("Stale partitions removed", "count", removed)
		}
	}
	return written, nil
}

func (w *Writer) put(ctx context.Context, key string, v any, indent bool) error {
	data, err := Encode(v, indent)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := w.store.Put(ctx, key, data); err != nil {
		return fmt.Errorf("store %s: %w", key, err)
	}
	return nil
}

func (w *Writer) pruneStale(ctx context.Context, keep []int) (int, error) {
	wanted := make(map[int]bool, len(keep))
	for _, y := range keep {
		wanted[y] = true
	}
	keys, err := w.store.List(ctx, MatchesPrefix)
	if err != nil {
		return 0, fmt.Errorf("list partitions: %w", err)
	}
	removed := 0
	for _, key := range keys {
		year, ok := ParseMatchesKey(key)
		if ok && wanted[year] {
			continue
		}
		if err := w.store.Delete(ctx, key); err != nil {
			return removed, fmt.Errorf("prune %s: %w", key, err)
		}
		removed++
	}
	return removed, nil
}

// Encode renders an artifact as JSON without HTML escaping, optionally
// indented with two spaces.
func Encode(v any, indent bool) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
