package etl

import (
	"context"
	"sync"
	"time"

	"github.com/albapepper/tennis-data/internal/provider"
)

// Source supplies the roster and per-year match units, already normalized.
// sackmann.ATPHandler is the production implementation.
type Source interface {
	Players(ctx context.Context) ([]provider.Player, error)
	Matches(ctx context.Context, year int) ([]provider.Match, error)
}

// YearResult is the outcome of fetching one year. A non-nil Err means the
// year contributes no matches.
type YearResult struct {
	Year     int
	Matches  []provider.Match
	Err      error
	Duration time.Duration
}

// fetchYears fetches years in sequential batches of batchSize. Within a
// batch every year runs in its own goroutine and writes only its own result
// slot; once the whole batch settles, results are handed to onYear one at a
// time in year order. Per-year failures are reported through
// YearResult.Err. The only error returned is context cancellation.
func fetchYears(ctx context.Context, src Source, years []int, batchSize int, onYear func(YearResult)) error {
	if batchSize < 1 {
		batchSize = 1
	}

	for start := 0; start < len(years); start += batchSize {
		if err := ctx.Err(); err != nil {
			return err
		}
		end := min(start+batchSize, len(years))
		batch := years[start:end]

		results := make([]YearResult, len(batch))
		var wg sync.WaitGroup
		for i, year := range batch {
			wg.Add(1)
			go func() {
				defer wg.Done()
				t := time.Now()
				matches, err := src.Matches(ctx, year)
				results[i] = YearResult{Year: year, Matches: matches, Err: err, Duration: time.Since(t)}
			}()
		}
		wg.Wait()

		// A cancelled batch fails every year; surface that as the run error
		// instead of a batch of skipped years.
		if err := ctx.Err(); err != nil {
			return err
		}
		for _, r := range results {
			if r.Err != nil {
				r.Matches = nil
			}
			onYear(r)
		}
	}
	return nil
}
