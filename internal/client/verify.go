package client

import (
	"context"
	"fmt"

	"github.com/albapepper/tennis-data/internal/artifact"
	"github.com/albapepper/tennis-data/internal/etl"
)

// Report lists consistency violations found in a published artifact set.
type Report struct {
	Partitions int
	Matches    int
	Violations []string
}

// OK reports whether the set passed every check.
func (r *Report) OK() bool {
	return len(r.Violations) == 0
}

func (r *Report) failf(format string, args ...any) {
	r.Violations = append(r.Violations, fmt.Sprintf(format, args...))
}

// Verify loads the whole artifact set and checks it against its own
// aggregates. Load failures are returned as errors; inconsistencies are
// collected in the report.
func (l *Loader) Verify(ctx context.Context) (*Report, error) {
	md, err := l.Metadata(ctx)
	if err != nil {
		return nil, err
	}
	stats, err := l.Stats(ctx)
	if err != nil {
		return nil, err
	}
	players, err := l.Players(ctx)
	if err != nil {
		return nil, err
	}

	r := &Report{Partitions: len(md.AvailableYears)}

	if md.TotalMatches != stats.TotalMatches {
		r.failf("metadata total_matches %d != stats total_matches %d", md.TotalMatches, stats.TotalMatches)
	}
	if md.TotalPlayers != len(players) || stats.TotalPlayers != len(players) {
		r.failf("total_players %d/%d != players.json length %d", md.TotalPlayers, stats.TotalPlayers, len(players))
	}

	byYear := make(map[int]int, len(stats.ByYear))
	sum := 0
	for _, y := range stats.ByYear {
		byYear[y.Year] = y.Matches
		sum += y.Matches
	}
	if sum != stats.TotalMatches {
		r.failf("sum(by_year) %d != total_matches %d", sum, stats.TotalMatches)
	}
	surfaces := 0
	for _, n := range stats.BySurface {
		surfaces += n
	}
	if surfaces > stats.TotalMatches {
		r.failf("sum(by_surface) %d > total_matches %d", surfaces, stats.TotalMatches)
	}

	leaders := stats.GrandSlamLeaders
	if len(leaders) > etl.GrandSlamLeaderLimit {
		r.failf("grand_slam_leaders has %d entries", len(leaders))
	}
	for i := 1; i < len(leaders); i++ {
		if leaders[i].Count > leaders[i-1].Count {
			r.failf("grand_slam_leaders out of order at %d", i)
		}
	}

	for _, tp := range md.TopPlayers {
		if tp.ID == 0 {
			// PlayerByID treats 0 as absent.
			continue
		}
		p := PlayerByID(players, &tp.ID)
		switch {
		case p == nil:
			r.failf("top player %d is not an active player", tp.ID)
		case p.Name != tp.Name:
			r.failf("top player %d is named %q, players.json has %q", tp.ID, tp.Name, p.Name)
		}
	}

	trends := make(map[int]artifact.SurfaceTrend, len(stats.SurfaceTrends))
	for _, t := range stats.SurfaceTrends {
		trends[t.Year] = t
	}

	seen := make(map[int]bool)
	for _, year := range md.AvailableYears {
		matches, err := l.MatchesByYear(ctx, year)
		if err != nil {
			return nil, err
		}
		r.Matches += len(matches)
		if len(matches) != byYear[year] {
			r.failf("matches/%d.json has %d matches, by_year says %d", year, len(matches), byYear[year])
		}
		counts := make(map[string]int)
		for i := range matches {
			m := &matches[i]
			if m.Year() != year {
				r.failf("matches/%d.json holds a match dated %s", year, FormatDate(m.TourneyDate))
			}
			if m.Surface != nil {
				counts[*m.Surface]++
			}
			for _, id := range []*int{m.WinnerID, m.LoserID} {
				if id != nil {
					seen[*id] = true
				}
			}
		}
		for _, s := range artifact.Surfaces {
			if got := trends[year].Count(s); got != counts[s] {
				r.failf("surface_trends %d %s = %d, partition has %d", year, s, got, counts[s])
			}
		}
	}

	if r.Matches+byYear[0] != stats.TotalMatches {
		r.failf("partitions hold %d matches plus %d undated, want %d", r.Matches, byYear[0], stats.TotalMatches)
	}
	// With undated matches present a player may appear only outside partitions.
	for _, p := range players {
		if p.ID != nil && !seen[*p.ID] && byYear[0] == 0 {
			r.failf("player %d does not appear in any partition", *p.ID)
		}
	}
	return r, nil
}
