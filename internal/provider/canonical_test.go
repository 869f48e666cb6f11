package provider

import (
	"encoding/json"
	"strings"
	"testing"
)

const matchHeader = "tourney_id,tourney_name,surface,draw_size,tourney_level,tourney_date,match_num," +
	"winner_id,winner_seed,winner_entry,winner_name,winner_hand,winner_ht,winner_ioc,winner_age," +
	"loser_id,loser_seed,loser_entry,loser_name,loser_hand,loser_ht,loser_ioc,loser_age," +
	"score,best_of,round,minutes," +
	"w_ace,w_df,w_svpt,w_1stIn,w_1stWon,w_2ndWon,w_SvGms,w_bpSaved,w_bpFaced," +
	"l_ace,l_df,l_svpt,l_1stIn,l_1stWon,l_2ndWon,l_SvGms,l_bpSaved,l_bpFaced," +
	"winner_rank,winner_rank_points,loser_rank,loser_rank_points"

func TestNormalizeMatch(t *testing.T) {
	text := matchHeader + "\n" +
		"2020-580,Australian Open,Hard,128,G,20200120,300," +
		"104925,2,,Novak Djokovic,R,188,SRB,32.7," +
		"106233,5,WC,Dominic Thiem,R,185,AUT,26.4," +
		"6-4 4-6 2-6 6-3 6-4,5,F,238," +
		"9,2,127,83,64,22,24,3,5," +
		"8,2,112,70,51,20,24,2,5," +
		"2,9720,5,7045\n"

	rows, err := ParseRows(strings.NewReader(text))
	if err != nil {
		t.Fatalf("ParseRows: %v", err)
	}
	m := NormalizeMatch(rows[0])

	if m.TourneyName == nil || *m.TourneyName != "Australian Open" {
		t.Errorf("TourneyName = %v", m.TourneyName)
	}
	if m.Year() != 2020 {
		t.Errorf("Year() = %d, want 2020", m.Year())
	}
	if m.WinnerName != "Novak Djokovic" || m.LoserName != "Dominic Thiem" {
		t.Errorf("names = %q / %q", m.WinnerName, m.LoserName)
	}
	if m.WinnerEntry != nil {
		t.Errorf("empty winner_entry should be nil, got %q", *m.WinnerEntry)
	}
	if m.LoserEntry == nil || *m.LoserEntry != "WC" {
		t.Errorf("LoserEntry = %v", m.LoserEntry)
	}
	if m.WinnerAge == nil || *m.WinnerAge != 32.7 {
		t.Errorf("WinnerAge = %v", m.WinnerAge)
	}
	if m.Minutes == nil || *m.Minutes != 238 {
		t.Errorf("Minutes = %v", m.Minutes)
	}
	if m.LBpFaced == nil || *m.LBpFaced != 5 {
		t.Errorf("LBpFaced = %v", m.LBpFaced)
	}
	if m.LoserRankPoints == nil || *m.LoserRankPoints != 7045 {
		t.Errorf("LoserRankPoints = %v", m.LoserRankPoints)
	}
}

func TestNormalizeMatchMissingFields(t *testing.T) {
	row := RawRow{
		"winner_name":  "Player X",
		"loser_name":   "Player Y",
		"tourney_date": "bad",
		"w_ace":        "",
		"w_df":         "3",
	}
	m := NormalizeMatch(row)
	if m.TourneyDate != nil || m.Year() != 0 {
		t.Errorf("unparseable date should be nil / year 0, got %v / %d", m.TourneyDate, m.Year())
	}
	if m.WAce != nil {
		t.Error("empty w_ace should be nil")
	}
	if m.WDf == nil || *m.WDf != 3 {
		t.Error("a missing stat must not block the others")
	}
	if m.Surface != nil || m.TourneyLevel != nil || m.Round != nil {
		t.Error("absent string fields should be nil")
	}
}

func TestMatchJSONKeys(t *testing.T) {
	m := Match{WinnerName: "A", LoserName: "B", Surface: strp("Clay"), TourneyDate: intp(19990607)}
	b, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(got) != 49 {
		t.Errorf("match has %d keys, want 49", len(got))
	}
	if got["sf"] != "Clay" || got["wn"] != "A" {
		t.Errorf("sf/wn = %v / %v", got["sf"], got["wn"])
	}
	if v, ok := got["mi"]; !ok || v != nil {
		t.Errorf("absent minutes should serialize as null, got %v (%v)", v, ok)
	}
}

func TestNormalizePlayer(t *testing.T) {
	tests := []struct {
		name     string
		row      RawRow
		wantName string
		wantID   *int
	}{
		{
			name:     "full",
			row:      RawRow{"player_id": "100", "name_first": "Player", "name_last": "X", "ioc": "ESP", "dob": "19860603"},
			wantName: "Player X",
			wantID:   intp(100),
		},
		{
			name:     "last only",
			row:      RawRow{"player_id": "101", "name_last": "Mononym"},
			wantName: "Mononym",
			wantID:   intp(101),
		},
		{
			name:     "no names, bad id",
			row:      RawRow{"player_id": "x"},
			wantName: "",
			wantID:   nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NormalizePlayer(tt.row)
			if p.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", p.Name, tt.wantName)
			}
			if !equalInt(p.ID, tt.wantID) {
				t.Errorf("ID = %v, want %v", deref(p.ID), deref(tt.wantID))
			}
		})
	}
}

func TestYearOf(t *testing.T) {
	tests := []struct {
		td   *int
		want int
	}{
		{nil, 0},
		{intp(0), 0},
		{intp(20200101), 2020},
		{intp(19680429), 1968},
		{intp(MinDate), 1000},
		{intp(MaxDate), 9999},
		{intp(-20200101), 0},
		{intp(2020), 0},
		{intp(202001011), 0},
		{intp(123456789012), 0},
	}
	for _, tt := range tests {
		if got := YearOf(tt.td); got != tt.want {
			t.Errorf("YearOf(%v) = %d, want %d", deref(tt.td), got, tt.want)
		}
	}
}
