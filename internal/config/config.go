// Package config provides centralized configuration loaded from environment
// variables. Shared by both cmd/api and cmd/ingest.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// --------------------------------------------------------------------------
// Domain constants, fixed by the upstream data set
// --------------------------------------------------------------------------

const (
	DefaultSourceBaseURL = "https://raw.githubusercontent.com/JeffSackmann/tennis_atp/master"
	DefaultStartYear     = 1968
	DefaultEndYear       = 2024
	DefaultBatchSize     = 10
)

// --------------------------------------------------------------------------
// Config struct, populated from environment variables
// --------------------------------------------------------------------------

type Config struct {
	// Upstream source
	SourceBaseURL          string
	SourceDir              string // local mirror; overrides SourceBaseURL when set
	StartYear              int
	EndYear                int
	FetchBatchSize         int
	FetchRequestsPerMinute int
	FetchTimeout           time.Duration

	// Artifact output
	OutputDir            string
	S3Bucket             string
	S3Prefix             string
	AWSRegion            string
	PruneStalePartitions bool
	MetricsTextfile      string

	// API server
	APIHost     string
	APIPort     int
	Environment string // development, staging, production
	Debug       bool

	// CORS
	CORSAllowOrigins []string

	// Rate limiting
	RateLimitEnabled  bool
	RateLimitRequests int
	RateLimitWindow   time.Duration

	// Cache
	CacheEnabled bool

	// Consumer side (verify command)
	ArtifactBaseURL string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	cfg := &Config{
		SourceBaseURL:          strings.TrimRight(envOr("SOURCE_BASE_URL", DefaultSourceBaseURL), "/"),
		SourceDir:              envOr("SOURCE_DIR", ""),
		StartYear:              envInt("START_YEAR", DefaultStartYear),
		EndYear:                envInt("END_YEAR", DefaultEndYear),
		FetchBatchSize:         envInt("FETCH_BATCH_SIZE", DefaultBatchSize),
		FetchRequestsPerMinute: envInt("FETCH_REQUESTS_PER_MINUTE", 600),
		FetchTimeout:           time.Duration(envInt("FETCH_TIMEOUT_SECONDS", 60)) * time.Second,

		OutputDir:            envOr("OUTPUT_DIR", "public/data"),
		S3Bucket:             envOr("ARTIFACT_S3_BUCKET", ""),
		S3Prefix:             strings.Trim(envOr("ARTIFACT_S3_PREFIX", ""), "/"),
		AWSRegion:            envOr("AWS_REGION", "us-east-1"),
		PruneStalePartitions: envBool("PRUNE_STALE_PARTITIONS", true),
		MetricsTextfile:      envOr("METRICS_TEXTFILE", ""),

		APIHost:     envOr("API_HOST", "0.0.0.0"),
		APIPort:     envInt("API_PORT", envInt("PORT", 8000)),
		Environment: envOr("ENVIRONMENT", "development"),
		Debug:       envBool("DEBUG", false),

		CORSAllowOrigins: envList("CORS_ALLOW_ORIGINS", []string{
			"http://localhost:3000",
			"http://localhost:5173",
		}),

		RateLimitEnabled:  envBool("RATE_LIMIT_ENABLED", true),
		RateLimitRequests: envInt("RATE_LIMIT_REQUESTS", 100),
		RateLimitWindow:   time.Duration(envInt("RATE_LIMIT_WINDOW", 60)) * time.Second,

		CacheEnabled: envBool("CACHE_ENABLED", true),

		ArtifactBaseURL: strings.TrimRight(envOr("ARTIFACT_BASE_URL", ""), "/"),
	}

	if cfg.StartYear > cfg.EndYear {
		return nil, fmt.Errorf("START_YEAR (%d) must not be after END_YEAR (%d)", cfg.StartYear, cfg.EndYear)
	}
	if cfg.FetchBatchSize < 1 {
		return nil, fmt.Errorf("FETCH_BATCH_SIZE must be at least 1, got %d", cfg.FetchBatchSize)
	}
	if cfg.FetchRequestsPerMinute < 1 {
		return nil, fmt.Errorf("FETCH_REQUESTS_PER_MINUTE must be at least 1, got %d", cfg.FetchRequestsPerMinute)
	}
	return cfg, nil
}

// Years returns every year in [StartYear, EndYear].
func (c *Config) Years() []int {
	years := make([]int, 0, c.EndYear-c.StartYear+1)
	for y := c.StartYear; y <= c.EndYear; y++ {
		years = append(years, y)
	}
	return years
}

// IsProduction returns true if running in production environment.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// UsesS3 reports whether artifacts go to object storage instead of OutputDir.
func (c *Config) UsesS3() bool {
	return c.S3Bucket != ""
}

// --------------------------------------------------------------------------
// Env helpers
// --------------------------------------------------------------------------

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return fallback
}

func envList(key string, fallback []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return fallback
}
