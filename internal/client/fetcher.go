package client

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/albapepper/tennis-data/internal/artifact"
)

// Fetcher reads one whole artifact by key. Missing artifacts wrap
// artifact.ErrNotFound.
type Fetcher interface {
	Fetch(ctx context.Context, key string) ([]byte, error)
}

// --------------------------------------------------------------------------
// HTTP
// --------------------------------------------------------------------------

// HTTPFetcher loads artifacts from the artifact API (or any static host
// serving the same layout).
type HTTPFetcher struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewHTTPFetcher creates a fetcher for baseURL, e.g. http://localhost:8000/data.
func NewHTTPFetcher(baseURL string, timeout time.Duration, logger *slog.Logger) *HTTPFetcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &HTTPFetcher{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// Fetch GETs baseURL/key.
func (f *HTTPFetcher) Fetch(ctx context.Context, key string) ([]byte, error) {
	url := f.baseURL + "/" + key
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", key, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", key, err)
	}
	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%s: %w", key, artifact.ErrNotFound)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("fetch %s: status %d: %s", key, resp.StatusCode, truncate(body, 200))
	}

	f.logger.Debug("Fetched artifact", "key", key, "bytes", len(body))
	return body, nil
}

// --------------------------------------------------------------------------
// Store
// --------------------------------------------------------------------------

// StoreFetcher reads artifacts straight from a Store.
type StoreFetcher struct {
	store artifact.Store
}

// NewStoreFetcher wraps store.
func NewStoreFetcher(store artifact.Store) *StoreFetcher {
	return &StoreFetcher{store: store}
}

// Fetch reads key from the store.
func (f *StoreFetcher) Fetch(ctx context.Context, key string) ([]byte, error) {
	return f.store.Get(ctx, key)
}

func truncate(b []byte, maxLen int) string {
	if len(b) <= maxLen {
		return string(b)
	}
	return string(b[:maxLen]) + "..."
}
