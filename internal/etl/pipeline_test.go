package etl

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/albapepper/tennis-data/internal/artifact"
	"github.com/albapepper/tennis-data/internal/metrics"
	"github.com/albapepper/tennis-data/internal/provider"
	"github.com/albapepper/tennis-data/internal/provider/sackmann"
)

var fixedNow = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }

const rosterCSV = `player_id,name_first,name_last,hand,dob,ioc,height,wikidata_id
100,Player,X,R,19900101,SRB,188,Q1
200,Player,Y,L,19920202,ESP,185,Q2
300,Never,Played,R,19930303,USA,,Q3
`

const matches2020CSV = `tourney_id,tourney_name,surface,draw_size,tourney_level,tourney_date,match_num,winner_id,winner_seed,winner_entry,winner_name,winner_hand,winner_ht,winner_ioc,winner_age,loser_id,loser_seed,loser_entry,loser_name,loser_hand,loser_ht,loser_ioc,loser_age,score,best_of,round,minutes
2020-580,Australian Open,Hard,128,G,20200101,1,100,1,,Player X,R,188,SRB,32.7,200,2,,Player Y,L,185,ESP,33.6,6-4 6-4 6-4,5,F,170
2020-520,Roland Garros,Clay,128,A,20200615,2,200,,,Player Y,L,185,ESP,34.0,100,,,Player X,R,188,SRB,33.1,6-0 6-2 7-5,5,QF,
`

func writeSourceDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func readJSON(t *testing.T, store artifact.Store, key string, v any) {
	t.Helper()
	b, err := store.Get(context.Background(), key)
	if err != nil {
		t.Fatalf("read %s: %v", key, err)
	}
	if err := json.Unmarshal(b, v); err != nil {
		t.Fatalf("decode %s: %v", key, err)
	}
}

func TestPipelineEndToEnd(t *testing.T) {
	dir := writeSourceDir(t, map[string]string{
		"atp_players.csv":      rosterCSV,
		"atp_matches_2020.csv": matches2020CSV,
	})
	src := sackmann.NewATPHandler(sackmann.NewDirSource(dir), nil)
	store := artifact.NewFileStore(t.TempDir())
	m := metrics.NewPipeline()

	p := New(src, artifact.NewWriter(store, true, nil), Options{
		Years:     []int{2019, 2020},
		BatchSize: 10,
		Now:       fixedNow,
	}, m, nil)

	result, err := p.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.Matches != 2 || result.ActivePlayers != 2 || result.RosterPlayers != 3 {
		t.Errorf("result = %s", result.Summary())
	}
	if len(result.SkippedYears) != 1 || result.SkippedYears[0] != 2019 {
		t.Errorf("skipped = %v, want [2019] (no file)", result.SkippedYears)
	}

	var matches []provider.Match
	readJSON(t, store, artifact.MatchesKey(2020), &matches)
	if len(matches) != 2 {
		t.Fatalf("matches/2020.json has %d records", len(matches))
	}
	if matches[1].Minutes != nil {
		t.Errorf("empty minutes should be null, got %d", *matches[1].Minutes)
	}

	var stats artifact.Stats
	readJSON(t, store, artifact.StatsKey, &stats)
	if len(stats.BySurface) != 2 || stats.BySurface["Hard"] != 1 || stats.BySurface["Clay"] != 1 {
		t.Errorf("by_surface = %v", stats.BySurface)
	}
	if len(stats.GrandSlamLeaders) != 1 || stats.GrandSlamLeaders[0] != (artifact.GrandSlamLeader{Name: "Player X", Count: 1}) {
		t.Errorf("grand_slam_leaders = %+v", stats.GrandSlamLeaders)
	}

	var md artifact.Metadata
	readJSON(t, store, artifact.MetadataKey, &md)
	if len(md.AvailableYears) != 1 || md.AvailableYears[0] != 2020 {
		t.Errorf("available_years = %v", md.AvailableYears)
	}
	if md.GeneratedAt != "2025-06-01T12:00:00.000Z" {
		t.Errorf("generated_at = %s", md.GeneratedAt)
	}

	var players []provider.Player
	readJSON(t, store, artifact.PlayersKey, &players)
	if len(players) != 2 || *players[0].ID != 100 || *players[1].ID != 200 {
		t.Errorf("players = %+v", players)
	}
	if players[0].Name != "Player X" {
		t.Errorf("display name = %q", players[0].Name)
	}

	want := []string{artifact.MatchesKey(2020), artifact.PlayersKey, artifact.StatsKey, artifact.MetadataKey}
	if len(result.Written) != len(want) || result.Written[len(want)-1] != artifact.MetadataKey {
		t.Errorf("written = %v", result.Written)
	}
}

func yearsSource(years ...int) *fakeSource {
	src := &fakeSource{
		players: []provider.Player{player(1, "One", "AUS"), player(2, "Two", "GBR")},
		matches: map[int][]provider.Match{},
	}
	for _, y := range years {
		src.matches[y] = games(
			game{td: y*10000 + 110, surface: "Grass", level: "G", round: "F", tn: "Wimbledon", wi: 1, li: 2, wn: "One", ln: "Two", minutes: 120},
			game{td: y*10000 + 520, surface: "Clay", level: "A", round: "SF", tn: "Nice", wi: 2, li: 1, wn: "Two", ln: "One"},
		)
	}
	return src
}

func TestPipelineIsolatesFailedYear(t *testing.T) {
	src := yearsSource(1972, 1973, 1974)
	src.fail = map[int]error{1973: errors.New("fetch matches 1973: status 500")}
	store := artifact.NewFileStore(t.TempDir())

	result, err := New(src, artifact.NewWriter(store, true, nil), Options{
		Years: []int{1972, 1973, 1974}, BatchSize: 2, Now: fixedNow,
	}, nil, nil).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.YearsFetched != 2 || len(result.Errors) != 1 {
		t.Errorf("result = %s errors=%v", result.Summary(), result.Errors)
	}

	if _, err := store.Get(context.Background(), artifact.MatchesKey(1973)); !errors.Is(err, artifact.ErrNotFound) {
		t.Errorf("matches/1973.json should be absent, err = %v", err)
	}
	var md artifact.Metadata
	readJSON(t, store, artifact.MetadataKey, &md)
	if len(md.AvailableYears) != 2 || md.AvailableYears[0] != 1972 || md.AvailableYears[1] != 1974 {
		t.Errorf("available_years = %v", md.AvailableYears)
	}
}

func TestPipelineRosterFailureIsFatal(t *testing.T) {
	src := yearsSource(2000)
	src.playersErr = errors.New("status 503")
	store := artifact.NewFileStore(t.TempDir())

	_, err := New(src, artifact.NewWriter(store, true, nil), Options{Years: []int{2000}, BatchSize: 10}, nil, nil).
		Run(context.Background())
	if err == nil {
		t.Fatal("expected roster failure to abort the run")
	}
	keys, _ := store.List(context.Background(), "")
	if len(keys) != 0 {
		t.Errorf("nothing should be written, got %v", keys)
	}
}

func TestPipelineCancelledRunIsFatal(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	store := artifact.NewFileStore(t.TempDir())

	_, err := New(yearsSource(2000), artifact.NewWriter(store, true, nil), Options{Years: []int{2000}}, nil, nil).Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestPipelineIsDeterministic(t *testing.T) {
	years := []int{2001, 2002, 2003, 2004, 2005}
	run := func(batch int) artifact.Store {
		store := artifact.NewFileStore(t.TempDir())
		_, err := New(yearsSource(years...), artifact.NewWriter(store, true, nil), Options{
			Years: years, BatchSize: batch, Now: fixedNow,
		}, nil, nil).Run(context.Background())
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
		return store
	}
	a, b := run(2), run(5)

	keys := []string{artifact.StatsKey, artifact.MetadataKey, artifact.PlayersKey}
	for _, y := range years {
		keys = append(keys, artifact.MatchesKey(y))
	}
	for _, key := range keys {
		ba, _ := a.Get(context.Background(), key)
		bb, _ := b.Get(context.Background(), key)
		if len(ba) == 0 || !bytes.Equal(ba, bb) {
			t.Errorf("%s differs between runs", key)
		}
	}
}

func TestPipelineAggregateConsistency(t *testing.T) {
	years := []int{2010, 2011}
	src := yearsSource(years...)
	src.matches[2011] = append(src.matches[2011], game{surface: "Hard", wi: 1, li: 2}.match())

	set, result, err := New(src, nil, Options{Years: years, BatchSize: 10, Now: fixedNow}, nil, nil).
		Build(context.Background())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if result.UndatedMatches != 1 {
		t.Errorf("undated = %d", result.UndatedMatches)
	}

	s := set.Stats
	sum := 0
	for _, y := range s.ByYear {
		sum += y.Matches
	}
	if sum != s.TotalMatches || s.TotalMatches != 5 {
		t.Errorf("sum(by_year) = %d, total = %d", sum, s.TotalMatches)
	}
	surfaces := 0
	for _, n := range s.BySurface {
		surfaces += n
	}
	if surfaces > s.TotalMatches {
		t.Errorf("sum(by_surface) = %d > total %d", surfaces, s.TotalMatches)
	}

	for _, tr := range s.SurfaceTrends {
		for _, surface := range artifact.Surfaces {
			want := 0
			for _, m := range set.Partitions[tr.Year] {
				if m.Surface != nil && *m.Surface == surface {
					want++
				}
			}
			if tr.Count(surface) != want {
				t.Errorf("surface_trends %d %s = %d, want %d", tr.Year, surface, tr.Count(surface), want)
			}
		}
	}

	persisted := 0
	for _, y := range set.Metadata.AvailableYears {
		persisted += len(set.Partitions[y])
	}
	if persisted+result.UndatedMatches != s.TotalMatches {
		t.Errorf("partitions hold %d + %d undated, want %d", persisted, result.UndatedMatches, s.TotalMatches)
	}
}
