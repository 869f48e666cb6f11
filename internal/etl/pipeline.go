// Package etl turns the upstream roster and yearly match files into the
// artifact set: fetch in batches, reconcile active players, aggregate,
// partition by year, write.
//
// Each run is a full rebuild. Nothing is carried between runs; the writer
// only runs after every aggregate has been computed, so a fatal error
// leaves the previous artifact set untouched.
package etl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/albapepper/tennis-data/internal/artifact"
	"github.com/albapepper/tennis-data/internal/metrics"
	"github.com/albapepper/tennis-data/internal/provider"
)

// Options configures a pipeline run.
type Options struct {
	// Years lists the match units to fetch, in fetch order.
	Years []int
	// BatchSize bounds how many years are fetched concurrently.
	BatchSize int
	// Now stamps generated_at. Defaults to time.Now.
	Now func() time.Time
}

// Pipeline coordinates one rebuild of the artifact set.
type Pipeline struct {
	src     Source
	writer  *artifact.Writer
	opts    Options
	metrics *metrics.Pipeline
	logger  *slog.Logger
}

// New creates a pipeline. writer may be nil when only Build is used;
// m may be nil to disable metrics.
func New(src Source, writer *artifact.Writer, opts Options, m *metrics.Pipeline, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Pipeline{src: src, writer: writer, opts: opts, metrics: m, logger: logger}
}

// Run builds the artifact set and writes it. Any returned error is fatal
// for the run.
func (p *Pipeline) Run(ctx context.Context) (*RunResult, error) {
	start := time.Now()

	set, result, err := p.Build(ctx)
	if err != nil {
		return result, err
	}
	if p.writer == nil {
		return result, fmt.Errorf("no artifact writer configured")
	}

	p.logger.Info("Writing artifacts...")
	written, err := p.writer.Write(ctx, set)
	result.Written = written
	if err != nil {
		return result, fmt.Errorf("write artifacts: %w", err)
	}

	result.Duration = time.Since(start)
	p.metrics.RecordRun(metrics.RunStats{
		YearsFetched:  result.YearsFetched,
		YearsSkipped:  len(result.SkippedYears),
		Matches:       result.Matches,
		RosterPlayers: result.RosterPlayers,
		ActivePlayers: result.ActivePlayers,
		Artifacts:     len(written),
		Duration:      result.Duration,
		FinishedAt:    p.opts.Now(),
	})

	p.logger.Info("Pipeline complete",
		"matches", result.Matches,
		"active_players", result.ActivePlayers,
		"duration", result.Duration.Round(time.Millisecond))
	for _, key := range written {
		p.logger.Info("Artifact", "key", key)
	}
	return result, nil
}

// Build fetches, reconciles, and aggregates, returning the complete set
// without writing anything.
func (p *Pipeline) Build(ctx context.Context) (*artifact.Set, *RunResult, error) {
	start := time.Now()
	result := &RunResult{YearsRequested: len(p.opts.Years)}

	// 1. Roster
	p.logger.Info("Fetching players...")
	roster, err := p.src.Players(ctx)
	if err != nil {
		return nil, result, fmt.Errorf("fetch roster: %w", err)
	}
	result.RosterPlayers = len(roster)
	p.logger.Info("Players parsed", "count", len(roster))

	// 2. Matches, batched by year
	first, last := yearBounds(p.opts.Years)
	p.logger.Info("Fetching matches...", "from", first, "to", last, "batch_size", p.opts.BatchSize)
	var matches []provider.Match
	err = fetchYears(ctx, p.src, p.opts.Years, p.opts.BatchSize, func(r YearResult) {
		p.metrics.RecordFetch(r.Duration, r.Err)
		if r.Err != nil {
			result.SkippedYears = append(result.SkippedYears, r.Year)
			result.AddErrorf("year %d: %v", r.Year, r.Err)
			p.logger.Warn("Skipping year", "year", r.Year, "error", r.Err)
			return
		}
		result.YearsFetched++
		matches = append(matches, r.Matches...)
		p.logger.Info("Year fetched", "year", r.Year, "matches", len(r.Matches))
	})
	if err != nil {
		return nil, result, fmt.Errorf("fetch matches: %w", err)
	}
	result.Matches = len(matches)
	p.logger.Info("Matches fetched", "total", len(matches), "skipped_years", len(result.SkippedYears))

	// 3. Active players
	active := FilterActive(roster, ActiveIDs(matches))
	result.ActivePlayers = len(active)
	p.logger.Info("Active players", "count", len(active))

	// 4. Aggregates and partitions
	p.logger.Info("Building pre-aggregated stats...")
	agg := NewAggregator()
	for i := range matches {
		agg.Add(&matches[i])
	}
	parts := PartitionByYear(matches)
	years := parts.Years()
	result.Partitions = len(years)
	result.UndatedMatches = len(parts.Undated())
	if result.UndatedMatches > 0 {
		p.logger.Warn("Undated matches excluded from partitions", "count", result.UndatedMatches)
	}

	set := &artifact.Set{
		Partitions: parts,
		Players:    active,
		Stats:      agg.Stats(len(active)),
		Metadata:   agg.Metadata(active, years, p.opts.Now()),
	}
	result.Duration = time.Since(start)
	return set, result, nil
}

func yearBounds(years []int) (int, int) {
	if len(years) == 0 {
		return 0, 0
	}
	lo, hi := years[0], years[0]
	for _, y := range years[1:] {
		lo = min(lo, y)
		hi = max(hi, y)
	}
	return lo, hi
}
