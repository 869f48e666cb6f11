package etl

import (
	"fmt"
	"time"
)

// RunResult tracks counts and skipped units from one pipeline run.
type RunResult struct {
	YearsRequested int
	YearsFetched   int
	SkippedYears   []int
	Matches        int
	UndatedMatches int
	RosterPlayers  int
	ActivePlayers  int
	Partitions     int
	Written        []string
	Errors         []string
	Duration       time.Duration
}

// AddErrorf records a formatted error message.
func (r *RunResult) AddErrorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// Summary returns a human-readable summary of the run.
func (r *RunResult) Summary() string {
	return fmt.Sprintf(
		"years=%d/%d skipped=%d matches=%d undated=%d players=%d/%d partitions=%d written=%d",
		r.YearsFetched, r.YearsRequested, len(r.SkippedYears),
		r.Matches, r.UndatedMatches,
		r.ActivePlayers, r.RosterPlayers,
		r.Partitions, len(r.Written),
	)
}
