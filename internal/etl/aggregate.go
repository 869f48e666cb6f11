package etl

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/albapepper/tennis-data/internal/artifact"
	"github.com/albapepper/tennis-data/internal/provider"
)

// Leaderboard sizes.
const (
	GrandSlamLeaderLimit = 20
	TopPlayerLimit       = 500
)

// GeneratedAtLayout renders generated_at as UTC with millisecond precision.
const GeneratedAtLayout = "2006-01-02T15:04:05.000Z07:00"

type yearTally struct {
	matches  int
	surfaces map[string]int
	levels   map[string]int
}

type durationTally struct {
	total int
	count int
}

type record struct {
	wins   int
	losses int
}

// Aggregator accumulates every stats and metadata counter in one pass over
// the matches. Add matches in pipeline order; ties in the leaderboards are
// broken by the order in which entries were first seen.
type Aggregator struct {
	total int

	byYear      map[int]*yearTally
	bySurface   map[string]int
	byLevel     map[string]int
	yearSurface map[int]map[string]int

	dated            bool
	minYear, maxYear int

	slams     map[string]int
	slamOrder []string

	decades map[int]*durationTally

	records     map[int]*record
	recordOrder []int

	tournaments map[string]struct{}
}

// NewAggregator returns an empty aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{
		byYear:      make(map[int]*yearTally),
		bySurface:   make(map[string]int),
		byLevel:     make(map[string]int),
		yearSurface: make(map[int]map[string]int),
		slams:       make(map[string]int),
		decades:     make(map[int]*durationTally),
		records:     make(map[int]*record),
		tournaments: make(map[string]struct{}),
	}
}

// Add folds one match into every counter.
func (a *Aggregator) Add(m *provider.Match) {
	a.total++
	year := m.Year()
	dated := year != 0

	yt := a.byYear[year]
	if yt == nil {
		yt = &yearTally{surfaces: make(map[string]int), levels: make(map[string]int)}
		a.byYear[year] = yt
	}
	yt.matches++

	// Surface and level totals do not depend on the date.
	if m.Surface != nil {
		yt.surfaces[*m.Surface]++
		a.bySurface[*m.Surface]++
		if dated {
			cells := a.yearSurface[year]
			if cells == nil {
				cells = make(map[string]int)
				a.yearSurface[year] = cells
			}
			cells[*m.Surface]++
		}
	}
	if m.TourneyLevel != nil {
		yt.levels[*m.TourneyLevel]++
		a.byLevel[*m.TourneyLevel]++
	}
	if m.TourneyName != nil {
		a.tournaments[*m.TourneyName] = struct{}{}
	}

	if dated {
		if !a.dated || year < a.minYear {
			a.minYear = year
		}
		if !a.dated || year > a.maxYear {
			a.maxYear = year
		}
		a.dated = true
	}

	if isGrandSlamFinal(m) {
		if _, ok := a.slams[m.WinnerName]; !ok {
			a.slamOrder = append(a.slamOrder, m.WinnerName)
		}
		a.slams[m.WinnerName]++
	}

	if dated && m.Minutes != nil && *m.Minutes != 0 {
		decade := year / 10 * 10
		d := a.decades[decade]
		if d == nil {
			d = &durationTally{}
			a.decades[decade] = d
		}
		d.total += *m.Minutes
		d.count++
	}

	if m.WinnerID != nil {
		a.recordFor(*m.WinnerID).wins++
	}
	if m.LoserID != nil {
		a.recordFor(*m.LoserID).losses++
	}
}

func (a *Aggregator) recordFor(id int) *record {
	r := a.records[id]
	if r == nil {
		r = &record{}
		a.records[id] = r
		a.recordOrder = append(a.recordOrder, id)
	}
	return r
}

func isGrandSlamFinal(m *provider.Match) bool {
	return m.TourneyLevel != nil && *m.TourneyLevel == "G" &&
		m.Round != nil && *m.Round == "F" &&
		m.WinnerName != ""
}

// Total returns the number of matches added.
func (a *Aggregator) Total() int {
	return a.total
}

// YearRange returns the smallest and largest dated year, or {0,0} when no
// match carries a date.
func (a *Aggregator) YearRange() artifact.YearRange {
	if !a.dated {
		return artifact.YearRange{}
	}
	return artifact.YearRange{Min: a.minYear, Max: a.maxYear}
}

// --------------------------------------------------------------------------
// stats.json
// --------------------------------------------------------------------------

// Stats renders the stats bundle. activePlayers is the size of the
// reconciled player list.
func (a *Aggregator) Stats(activePlayers int) *artifact.Stats {
	return &artifact.Stats{
		TotalMatches:        a.total,
		TotalPlayers:        activePlayers,
		TotalTournaments:    len(a.tournaments),
		ByYear:              a.byYearStats(),
		BySurface:           copyCounts(a.bySurface),
		ByLevel:             copyCounts(a.byLevel),
		SurfaceTrends:       a.surfaceTrends(),
		GrandSlamLeaders:    a.grandSlamLeaders(),
		AvgDurationByDecade: a.decadeDurations(),
	}
}

func (a *Aggregator) byYearStats() []artifact.YearStats {
	years := make([]int, 0, len(a.byYear))
	for y := range a.byYear {
		years = append(years, y)
	}
	sort.Ints(years)

	out := make([]artifact.YearStats, len(years))
	for i, y := range years {
		yt := a.byYear[y]
		out[i] = artifact.YearStats{
			Year:     y,
			Matches:  yt.matches,
			Surfaces: copyCounts(yt.surfaces),
			Levels:   copyCounts(yt.levels),
		}
	}
	return out
}

// surfaceTrends is dense over [minYear, maxYear] and all known surfaces.
func (a *Aggregator) surfaceTrends() []artifact.SurfaceTrend {
	if !a.dated {
		return []artifact.SurfaceTrend{}
	}
	out := make([]artifact.SurfaceTrend, 0, a.maxYear-a.minYear+1)
	for y := a.minYear; y <= a.maxYear; y++ {
		cells := a.yearSurface[y]
		out = append(out, artifact.SurfaceTrend{
			Year:   y,
			Hard:   cells["Hard"],
			Clay:   cells["Clay"],
			Grass:  cells["Grass"],
			Carpet: cells["Carpet"],
		})
	}
	return out
}

func (a *Aggregator) grandSlamLeaders() []artifact.GrandSlamLeader {
	out := make([]artifact.GrandSlamLeader, len(a.slamOrder))
	for i, name := range a.slamOrder {
		out[i] = artifact.GrandSlamLeader{Name: name, Count: a.slams[name]}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	if len(out) > GrandSlamLeaderLimit {
		out = out[:GrandSlamLeaderLimit]
	}
	return out
}

func (a *Aggregator) decadeDurations() []artifact.DecadeDuration {
	out := make([]artifact.DecadeDuration, 0, len(a.decades))
	for decade, d := range a.decades {
		out = append(out, artifact.DecadeDuration{
			Decade: fmt.Sprintf("%ds", decade),
			Avg:    roundHalfUp(float64(d.total) / float64(d.count)),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Decade < out[j].Decade })
	return out
}

// --------------------------------------------------------------------------
// metadata.json
// --------------------------------------------------------------------------

// Metadata renders the metadata bundle. availableYears must be the sorted
// list of partitions being written.
func (a *Aggregator) Metadata(active []provider.Player, availableYears []int, now time.Time) *artifact.Metadata {
	countries := make(map[string]struct{})
	for _, p := range active {
		if p.IOC != nil {
			countries[*p.IOC] = struct{}{}
		}
	}
	if availableYears == nil {
		availableYears = []int{}
	}

	return &artifact.Metadata{
		TotalMatches:       a.total,
		TotalPlayers:       len(active),
		YearRange:          a.YearRange(),
		Surfaces:           sortedKeys(a.bySurface),
		TourneyLevels:      sortedKeys(a.byLevel),
		TourneyLevelLabels: artifact.LevelLabels,
		Rounds:             artifact.Rounds,
		Countries:          sortedKeys(countries),
		Tournaments:        sortedKeys(a.tournaments),
		TopPlayers:         a.topPlayers(active),
		AvailableYears:     availableYears,
		GeneratedAt:        now.UTC().Format(GeneratedAtLayout),
	}
}

// topPlayers ranks every id seen by wins+losses, keeps the first
// TopPlayerLimit, then drops ids that are not in the active list.
func (a *Aggregator) topPlayers(active []provider.Player) []artifact.TopPlayer {
	byID := make(map[int]*provider.Player, len(active))
	for i := range active {
		if id := active[i].ID; id != nil {
			if _, ok := byID[*id]; !ok {
				byID[*id] = &active[i]
			}
		}
	}

	ids := make([]int, len(a.recordOrder))
	copy(ids, a.recordOrder)
	sort.SliceStable(ids, func(i, j int) bool {
		ri, rj := a.records[ids[i]], a.records[ids[j]]
		return ri.wins+ri.losses > rj.wins+rj.losses
	})
	if len(ids) > TopPlayerLimit {
		ids = ids[:TopPlayerLimit]
	}

	out := make([]artifact.TopPlayer, 0, len(ids))
	for _, id := range ids {
		p, ok := byID[id]
		if !ok {
			continue
		}
		r := a.records[id]
		out = append(out, artifact.TopPlayer{ID: id, Name: p.Name, IOC: p.IOC, W: r.wins, L: r.losses})
	}
	return out
}

// --------------------------------------------------------------------------
// Helpers
// --------------------------------------------------------------------------

func copyCounts(m map[string]int) map[string]int {
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}
