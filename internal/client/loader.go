// Package client loads published artifacts for a browsing session.
//
// A Loader owns its cache; there is no package-level state, so two sessions
// (or two tests) never share memoized artifacts. Concurrent requests for
// the same artifact share a single fetch.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/albapepper/tennis-data/internal/artifact"
	"github.com/albapepper/tennis-data/internal/cache"
	"github.com/albapepper/tennis-data/internal/provider"
)

// Cache is the session cache. *cache.Cache satisfies it.
type Cache interface {
	Get(key string) (data []byte, etag string, ok bool)
	Set(key string, data []byte, ttl time.Duration) string
}

// maxParallelYears bounds MatchesForYears fan-out.
const maxParallelYears = 10

// Loader reads and decodes artifacts, caching raw bodies per key.
type Loader struct {
	fetcher Fetcher
	cache   Cache
	group   singleflight.Group
}

// NewLoader creates a loader. A nil cache disables caching.
func NewLoader(f Fetcher, c Cache) *Loader {
	if c == nil {
		c = cache.New(false)
	}
	return &Loader{fetcher: f, cache: c}
}

// Metadata loads metadata.json.
func (l *Loader) Metadata(ctx context.Context) (*artifact.Metadata, error) {
	var md artifact.Metadata
	if err := l.load(ctx, artifact.MetadataKey, cache.TTLMetadata, &md); err != nil {
		return nil, err
	}
	return &md, nil
}

// Stats loads stats.json.
func (l *Loader) Stats(ctx context.Context) (*artifact.Stats, error) {
	var s artifact.Stats
	if err := l.load(ctx, artifact.StatsKey, cache.TTLStats, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Players loads players.json.
func (l *Loader) Players(ctx context.Context) ([]provider.Player, error) {
	var players []provider.Player
	if err := l.load(ctx, artifact.PlayersKey, cache.TTLPlayers, &players); err != nil {
		return nil, err
	}
	return players, nil
}

// MatchesByYear loads one yearly partition.
func (l *Loader) MatchesByYear(ctx context.Context, year int) ([]provider.Match, error) {
	var matches []provider.Match
	if err := l.load(ctx, artifact.MatchesKey(year), cache.TTLPartition, &matches); err != nil {
		return nil, err
	}
	return matches, nil
}

// MatchesForYears loads several partitions concurrently and concatenates
// them in the order the years were given. Any failure fails the call.
func (l *Loader) MatchesForYears(ctx context.Context, years []int) ([]provider.Match, error) {
	parts := make([][]provider.Match, len(years))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelYears)
	for i, year := range years {
		g.Go(func() error {
			matches, err := l.MatchesByYear(gctx, year)
			if err != nil {
				return err
			}
			parts[i] = matches
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	n := 0
	for _, p := range parts {
		n += len(p)
	}
	out := make([]provider.Match, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out, nil
}

// load returns the cached body for key or fetches it once, then decodes
// into v. Failed fetches are not cached.
func (l *Loader) load(ctx context.Context, key string, ttl time.Duration, v any) error {
	data, _, ok := l.cache.Get(key)
	if !ok {
		res, err, _ := l.group.Do(key, func() (any, error) {
			if data, _, ok := l.cache.Get(key); ok {
				return data, nil
			}
			data, err := l.fetcher.Fetch(ctx, key)
			if err != nil {
				return nil, err
			}
			l.cache.Set(key, data, ttl)
			return data, nil
		})
		if err != nil {
			return err
		}
		data = res.([]byte)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}
