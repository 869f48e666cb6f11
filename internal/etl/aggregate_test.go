package etl

import (
	"fmt"
	"testing"
	"time"

	"github.com/albapepper/tennis-data/internal/provider"
)

func aggregate(ms []provider.Match) *Aggregator {
	a := NewAggregator()
	for i := range ms {
		a.Add(&ms[i])
	}
	return a
}

func TestStatsCounts(t *testing.T) {
	ms := games(
		game{td: 20000110, surface: "Hard", level: "A", tn: "Sydney"},
		game{td: 20000520, surface: "Clay", level: "M", tn: "Rome"},
		game{td: 20030520, surface: "Clay", level: "M", tn: "Rome"},
		game{surface: "Grass", level: "D"}, // undated still counts by surface and level
		game{td: 20030601},
	)
	s := aggregate(ms).Stats(7)

	if s.TotalMatches != 5 || s.TotalPlayers != 7 || s.TotalTournaments != 2 {
		t.Errorf("totals = %d/%d/%d", s.TotalMatches, s.TotalPlayers, s.TotalTournaments)
	}

	sum := 0
	for _, y := range s.ByYear {
		sum += y.Matches
	}
	if sum != s.TotalMatches {
		t.Errorf("sum(by_year) = %d, want %d", sum, s.TotalMatches)
	}
	if len(s.ByYear) != 3 || s.ByYear[0].Year != 0 || s.ByYear[1].Year != 2000 || s.ByYear[2].Year != 2003 {
		t.Fatalf("by_year = %+v", s.ByYear)
	}
	if s.ByYear[1].Surfaces["Hard"] != 1 || s.ByYear[1].Levels["M"] != 1 {
		t.Errorf("2000 breakdown = %+v", s.ByYear[1])
	}

	if s.BySurface["Clay"] != 2 || s.BySurface["Grass"] != 1 || len(s.BySurface) != 3 {
		t.Errorf("by_surface = %v", s.BySurface)
	}
	if s.ByLevel["D"] != 1 || s.ByLevel["M"] != 2 {
		t.Errorf("by_level = %v", s.ByLevel)
	}
}

func TestSurfaceTrendsDense(t *testing.T) {
	ms := games(
		game{td: 20000110, surface: "Hard"},
		game{td: 20030520, surface: "Clay"},
		game{td: 20030521, surface: "Clay"},
		game{td: 20030522, surface: "Indoor"},
		game{surface: "Grass"},
	)
	trends := aggregate(ms).Stats(0).SurfaceTrends

	if len(trends) != 4 {
		t.Fatalf("trends = %+v, want 2000..2003", trends)
	}
	for i, tr := range trends {
		if tr.Year != 2000+i {
			t.Errorf("trends[%d].Year = %d", i, tr.Year)
		}
	}
	if trends[0].Hard != 1 || trends[3].Clay != 2 {
		t.Errorf("cells = %+v", trends)
	}
	for _, gap := range trends[1:3] {
		if gap.Hard+gap.Clay+gap.Grass+gap.Carpet != 0 {
			t.Errorf("gap year should be zero: %+v", gap)
		}
	}
	for _, tr := range trends {
		if tr.Grass != 0 {
			t.Errorf("undated Grass match counted in %d", tr.Year)
		}
	}
}

func TestGrandSlamLeaders(t *testing.T) {
	final := func(name string) game {
		return game{td: 20100101, level: "G", round: "F", wn: name}
	}
	ms := games(
		final("Alpha"),
		final("Bravo"),
		final("Charlie"),
		final("Bravo"),
		game{td: 20100101, level: "G", round: "SF", wn: "Delta"},
		game{td: 20100101, level: "M", round: "F", wn: "Delta"},
		game{td: 20100101, level: "G", round: "F"},
	)
	leaders := aggregate(ms).Stats(0).GrandSlamLeaders

	want := []string{"Bravo:2", "Alpha:1", "Charlie:1"}
	if len(leaders) != len(want) {
		t.Fatalf("leaders = %+v", leaders)
	}
	for i, l := range leaders {
		if got := fmt.Sprintf("%s:%d", l.Name, l.Count); got != want[i] {
			t.Errorf("leaders[%d] = %s, want %s", i, got, want[i])
		}
	}
}

func TestGrandSlamLeadersTruncated(t *testing.T) {
	var gs []game
	for i := 0; i < 25; i++ {
		gs = append(gs, game{td: 19900101, level: "G", round: "F", wn: fmt.Sprintf("P%02d", i)})
	}
	gs = append(gs, game{td: 19900101, level: "G", round: "F", wn: "P24"})
	leaders := aggregate(games(gs...)).Stats(0).GrandSlamLeaders

	if len(leaders) != GrandSlamLeaderLimit {
		t.Fatalf("len = %d", len(leaders))
	}
	if leaders[0].Name != "P24" || leaders[1].Name != "P00" {
		t.Errorf("head = %+v", leaders[:2])
	}
	for i := 1; i < len(leaders); i++ {
		if leaders[i].Count > leaders[i-1].Count {
			t.Errorf("leaders out of order at %d", i)
		}
	}
}

func TestAvgDurationByDecade(t *testing.T) {
	ms := games(
		game{td: 19950101, minutes: 100},
		game{td: 19990101, minutes: 101},
		game{td: 20010101, minutes: 90},
		game{td: 20010101}, // no duration
		game{minutes: 500}, // no date
		game{td: 19850101, minutes: 60},
	)
	got := aggregate(ms).Stats(0).AvgDurationByDecade

	want := []string{"1980s:60", "1990s:101", "2000s:90"}
	if len(got) != len(want) {
		t.Fatalf("decades = %+v", got)
	}
	for i, d := range got {
		if s := fmt.Sprintf("%s:%d", d.Decade, d.Avg); s != want[i] {
			t.Errorf("decades[%d] = %s, want %s", i, s, want[i])
		}
	}
}

func TestMetadata(t *testing.T) {
	ms := games(
		game{td: 20190101, surface: "Hard", level: "A", tn: "Doha", wi: 1, li: 2},
		game{td: 20200101, surface: "Clay", level: "G", tn: "Roland Garros", wi: 2, li: 1},
		game{td: 20200102, surface: "Clay", level: "G", tn: "Roland Garros", wi: 2, li: 3},
		game{td: 20200103, wi: 4, li: 2},
	)
	active := []provider.Player{
		player(1, "One", "SRB"),
		player(2, "Two", "ESP"),
		player(4, "Four", ""),
	}
	now := time.Date(2024, 3, 5, 6, 7, 8, 9_000_000, time.FixedZone("CET", 3600))
	md := aggregate(ms).Metadata(active, []int{2019, 2020}, now)

	if md.TotalMatches != 4 || md.TotalPlayers != 3 {
		t.Errorf("totals = %d/%d", md.TotalMatches, md.TotalPlayers)
	}
	if md.YearRange.Min != 2019 || md.YearRange.Max != 2020 {
		t.Errorf("year_range = %+v", md.YearRange)
	}
	if fmt.Sprint(md.Surfaces) != "[Clay Hard]" || fmt.Sprint(md.TourneyLevels) != "[A G]" {
		t.Errorf("surfaces=%v levels=%v", md.Surfaces, md.TourneyLevels)
	}
	if fmt.Sprint(md.Countries) != "[ESP SRB]" {
		t.Errorf("countries = %v", md.Countries)
	}
	if fmt.Sprint(md.Tournaments) != "[Doha Roland Garros]" {
		t.Errorf("tournaments = %v", md.Tournaments)
	}
	if md.GeneratedAt != "2024-03-05T05:07:08.009Z" {
		t.Errorf("generated_at = %s", md.GeneratedAt)
	}

	// Player 2 has 4 matches, 1 has 2, 3 has 1 but is not active, 4 has 1.
	if len(md.TopPlayers) != 3 {
		t.Fatalf("top_players = %+v", md.TopPlayers)
	}
	tp := md.TopPlayers
	if tp[0].ID != 2 || tp[0].W != 2 || tp[0].L != 2 {
		t.Errorf("top_players[0] = %+v", tp[0])
	}
	if tp[1].ID != 1 || tp[2].ID != 4 || tp[2].IOC != nil {
		t.Errorf("top_players = %+v", tp)
	}
}

func TestTopPlayersTiesKeepFirstSeen(t *testing.T) {
	ms := games(
		game{wi: 7, li: 8},
		game{wi: 9, li: 7},
		game{wi: 8, li: 9},
	)
	active := []provider.Player{player(9, "Nine", ""), player(8, "Eight", ""), player(7, "Seven", "")}
	tp := aggregate(ms).Metadata(active, nil, time.Unix(0, 0)).TopPlayers

	// Every player has two matches; order is winner-first encounter order.
	if len(tp) != 3 || tp[0].ID != 7 || tp[1].ID != 8 || tp[2].ID != 9 {
		t.Errorf("top_players = %+v", tp)
	}
}

func TestAggregatesWithoutDates(t *testing.T) {
	a := aggregate(games(game{surface: "Hard"}))
	s := a.Stats(0)
	md := a.Metadata(nil, nil, time.Unix(0, 0))

	if md.YearRange.Min != 0 || md.YearRange.Max != 0 {
		t.Errorf("year_range = %+v", md.YearRange)
	}
	if len(s.SurfaceTrends) != 0 || s.SurfaceTrends == nil {
		t.Errorf("surface_trends = %#v, want empty slice", s.SurfaceTrends)
	}
	if md.AvailableYears == nil || len(md.AvailableYears) != 0 {
		t.Errorf("available_years = %#v", md.AvailableYears)
	}
}

func TestMalformedDatesCountAsUndated(t *testing.T) {
	ms := games(
		game{td: 20200101, surface: "Hard", minutes: 100},
		game{td: -20200101, surface: "Clay", minutes: 90},
		game{td: 123456789012, surface: "Grass", minutes: 80},
	)
	a := aggregate(ms)
	s := a.Stats(0)

	if r := a.YearRange(); r.Min != 2020 || r.Max != 2020 {
		t.Errorf("year_range = %+v, want 2020..2020", r)
	}
	if len(s.SurfaceTrends) != 1 || s.SurfaceTrends[0].Clay+s.SurfaceTrends[0].Grass != 0 {
		t.Errorf("surface_trends = %+v", s.SurfaceTrends)
	}
	if len(s.ByYear) != 2 || s.ByYear[0].Year != 0 || s.ByYear[0].Matches != 2 {
		t.Errorf("by_year = %+v, want two undated", s.ByYear)
	}
	if len(s.AvgDurationByDecade) != 1 || s.AvgDurationByDecade[0].Avg != 100 {
		t.Errorf("decades = %+v", s.AvgDurationByDecade)
	}

	parts := PartitionByYear(ms)
	if years := parts.Years(); len(years) != 1 || years[0] != 2020 {
		t.Errorf("years = %v", years)
	}
	if len(parts.Undated()) != 2 {
		t.Errorf("undated = %d, want 2", len(parts.Undated()))
	}
}
