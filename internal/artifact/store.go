// Package artifact persists the pipeline's output set (metadata, stats,
// players, yearly match partitions) and reads it back for the API and the
// consumer loader.
//
// Every artifact is one addressable unit written whole; a reader sees
// either the previous version or the new one, never a partial file.
package artifact

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Artifact keys, relative to the store root.
const (
	MetadataKey   = "metadata.json"
	StatsKey      = "stats.json"
	PlayersKey    = "players.json"
	MatchesPrefix = "matches/"
)

// ErrNotFound is returned by Store.Get for a key that does not exist.
var ErrNotFound = errors.New("artifact not found")

// Store is the persistence boundary for artifacts.
type Store interface {
	// Put replaces the unit at key atomically.
	Put(ctx context.Context, key string, data []byte) error
	// Get reads a whole unit; missing keys wrap ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// List returns keys under prefix in lexical order.
	List(ctx context.Context, prefix string) ([]string, error)
	// Delete removes a unit; deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// MatchesKey returns the partition key for a year.
func MatchesKey(year int) string {
	return fmt.Sprintf("%s%d.json", MatchesPrefix, year)
}

// ParseMatchesKey extracts the year from a partition key.
func ParseMatchesKey(key string) (int, bool) {
	name, ok := strings.CutPrefix(key, MatchesPrefix)
	if !ok {
		return 0, false
	}
	name, ok = strings.CutSuffix(name, ".json")
	if !ok {
		return 0, false
	}
	year, err := strconv.Atoi(name)
	if err != nil || year <= 0 {
		return 0, false
	}
	return year, true
}
