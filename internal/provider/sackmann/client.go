// Package sackmann fetches the ATP tennis data set published as yearly CSV
// files (atp_players.csv, atp_matches_{year}.csv) and normalizes it into
// canonical provider types.
//
// The files are served as static raw content, so there is no auth and no
// pagination. Courtesy rate limiting is handled via a token bucket limiter.
package sackmann

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/time/rate"
)

// Opener returns the raw bytes of one named source unit.
type Opener interface {
	Open(ctx context.Context, name string) ([]byte, error)
}

// Client is the HTTP client for the raw CSV host.
type Client struct {
	httpClient *http.Client
	baseURL    string
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// NewClient creates an HTTP client with rate limiting. burst bounds how many
// requests may leave at once, which should match the fetch batch size.
func NewClient(baseURL string, requestsPerMinute, burst int, timeout time.Duration, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if burst < 1 {
		burst = 1
	}
	rps := float64(requestsPerMinute) / 60.0
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		limiter:    rate.NewLimiter(rate.Limit(rps), burst),
		logger:     logger,
	}
}

// Open performs a rate-limited GET for a file under the base URL.
func (c *Client) Open(ctx context.Context, name string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	u := c.baseURL + "/" + name
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "text/csv, text/plain")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request %s: %w", name, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET %s returned %d: %s", name, resp.StatusCode, truncate(body, 200))
	}

	c.logger.Debug("Fetched source file", "name", name, "bytes", len(body), "duration", time.Since(start).Round(time.Millisecond))
	return body, nil
}

// DirSource reads source units from a local mirror of the data set.
type DirSource struct {
	dir string
}

// NewDirSource returns an Opener rooted at dir.
func NewDirSource(dir string) *DirSource {
	return &DirSource{dir: dir}
}

// Open reads dir/name.
func (d *DirSource) Open(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b, err := os.ReadFile(filepath.Join(d.dir, filepath.FromSlash(name)))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return b, nil
}

// truncate returns a truncated string representation for error messages.
func truncate(b []byte, maxLen int) string {
	if len(b) <= maxLen {
		return string(b)
	}
	return string(b[:maxLen]) + "..."
}
