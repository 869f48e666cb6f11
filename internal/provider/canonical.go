// Package provider defines canonical data types that the upstream source is
// normalized into. These structs are the contract between the source handler
// and the ETL stages: the handler outputs these, the aggregator and the
// artifact writer consume them.
//
// JSON keys are deliberately compact: every match is persisted verbatim into
// a yearly partition and the browsing client downloads whole partitions.
package provider

import "strings"

// Match is the canonical, normalized match record. Every field except the
// winner and loser names is independently nullable.
type Match struct {
	// Tournament
	TourneyID    *string `json:"tid"`
	TourneyName  *string `json:"tn"`
	Surface      *string `json:"sf"`
	DrawSize     *int    `json:"ds"`
	TourneyLevel *string `json:"tl"`
	TourneyDate  *int    `json:"td"` // YYYYMMDD

	// Match
	MatchNum *int    `json:"mn"`
	Score    *string `json:"sc"`
	BestOf   *int    `json:"bo"`
	Round    *string `json:"rd"`
	Minutes  *int    `json:"mi"`

	// Winner
	WinnerID     *int     `json:"wi"`
	WinnerSeed   *int     `json:"ws"`
	WinnerEntry  *string  `json:"we"`
	WinnerName   string   `json:"wn"`
	WinnerHand   *string  `json:"wh"`
	WinnerHeight *int     `json:"wht"`
	WinnerIOC    *string  `json:"wc"`
	WinnerAge    *float64 `json:"wa"`

	// Loser
	LoserID     *int     `json:"li"`
	LoserSeed   *int     `json:"ls"`
	LoserEntry  *string  `json:"le"`
	LoserName   string   `json:"ln"`
	LoserHand   *string  `json:"lh"`
	LoserHeight *int     `json:"lht"`
	LoserIOC    *string  `json:"lc"`
	LoserAge    *float64 `json:"la"`

	// Winner serve stats
	WAce     *int `json:"wAce"`
	WDf      *int `json:"wDf"`
	WSvPt    *int `json:"wSv"`
	W1stIn   *int `json:"w1i"`
	W1stWon  *int `json:"w1w"`
	W2ndWon  *int `json:"w2w"`
	WSvGms   *int `json:"wSg"`
	WBpSaved *int `json:"wBs"`
	WBpFaced *int `json:"wBf"`

	// Loser serve stats
	LAce     *int `json:"lAce"`
	LDf      *int `json:"lDf"`
	LSvPt    *int `json:"lSv"`
	L1stIn   *int `json:"l1i"`
	L1stWon  *int `json:"l1w"`
	L2ndWon  *int `json:"l2w"`
	LSvGms   *int `json:"lSg"`
	LBpSaved *int `json:"lBs"`
	LBpFaced *int `json:"lBf"`

	// Rankings at the time of the match
	WinnerRank       *int `json:"wr"`
	WinnerRankPoints *int `json:"wrp"`
	LoserRank        *int `json:"lr"`
	LoserRankPoints  *int `json:"lrp"`
}

// Year returns the calendar year of the tournament date, or 0 when the
// match has no usable date.
func (m *Match) Year() int {
	return YearOf(m.TourneyDate)
}

// Dates outside [MinDate, MaxDate] are not YYYYMMDD values and count as
// undated.
const (
	MinDate = 10000101
	MaxDate = 99991231
)

// YearOf converts a YYYYMMDD value to its year. nil, zero, and values that
// are not eight-digit dates map to 0.
func YearOf(td *int) int {
	if td == nil || *td < MinDate || *td > MaxDate {
		return 0
	}
	return *td / 10000
}

// Player is the canonical player profile shape written to players.json.
type Player struct {
	ID     *int    `json:"id"`
	First  *string `json:"fn"`
	Last   *string `json:"ln"`
	Name   string  `json:"name"`
	Hand   *string `json:"hand"` // R/L/U
	DOB    *int    `json:"dob"`  // YYYYMMDD
	IOC    *string `json:"ioc"`
	Height *int    `json:"ht"` // cm
}

// NormalizeMatch converts a raw match row into its canonical form.
func NormalizeMatch(r RawRow) Match {
	return Match{
		TourneyID:    r.Str("tourney_id"),
		TourneyName:  r.Str("tourney_name"),
		Surface:      r.Str("surface"),
		DrawSize:     r.Int("draw_size"),
		TourneyLevel: r.Str("tourney_level"),
		TourneyDate:  r.Int("tourney_date"),

		MatchNum: r.Int("match_num"),
		Score:    r.Str("score"),
		BestOf:   r.Int("best_of"),
		Round:    r.Str("round"),
		Minutes:  r.Int("minutes"),

		WinnerID:     r.Int("winner_id"),
		WinnerSeed:   r.Int("winner_seed"),
		WinnerEntry:  r.Str("winner_entry"),
		WinnerName:   r.Text("winner_name"),
		WinnerHand:   r.Str("winner_hand"),
		WinnerHeight: r.Int("winner_ht"),
		WinnerIOC:    r.Str("winner_ioc"),
		WinnerAge:    r.Float("winner_age"),

		LoserID:     r.Int("loser_id"),
		LoserSeed:   r.Int("loser_seed"),
		LoserEntry:  r.Str("loser_entry"),
		LoserName:   r.Text("loser_name"),
		LoserHand:   r.Str("loser_hand"),
		LoserHeight: r.Int("loser_ht"),
		LoserIOC:    r.Str("loser_ioc"),
		LoserAge:    r.Float("loser_age"),

		WAce:     r.Int("w_ace"),
		WDf:      r.Int("w_df"),
		WSvPt:    r.Int("w_svpt"),
		W1stIn:   r.Int("w_1stIn"),
		W1stWon:  r.Int("w_1stWon"),
		W2ndWon:  r.Int("w_2ndWon"),
		WSvGms:   r.Int("w_SvGms"),
		WBpSaved: r.Int("w_bpSaved"),
		WBpFaced: r.Int("w_bpFaced"),

		LAce:     r.Int("l_ace"),
		LDf:      r.Int("l_df"),
		LSvPt:    r.Int("l_svpt"),
		L1stIn:   r.Int("l_1stIn"),
		L1stWon:  r.Int("l_1stWon"),
		L2ndWon:  r.Int("l_2ndWon"),
		LSvGms:   r.Int("l_SvGms"),
		LBpSaved: r.Int("l_bpSaved"),
		LBpFaced: r.Int("l_bpFaced"),

		WinnerRank:       r.Int("winner_rank"),
		WinnerRankPoints: r.Int("winner_rank_points"),
		LoserRank:        r.Int("loser_rank"),
		LoserRankPoints:  r.Int("loser_rank_points"),
	}
}

// NormalizePlayer converts a raw roster row into its canonical form.
// wikidata_id is not carried.
func NormalizePlayer(r RawRow) Player {
	first := r.Str("name_first")
	last := r.Str("name_last")
	return Player{
		ID:     r.Int("player_id"),
		First:  first,
		Last:   last,
		Name:   DisplayName(first, last),
		Hand:   r.Str("hand"),
		DOB:    r.Int("dob"),
		IOC:    r.Str("ioc"),
		Height: r.Int("height"),
	}
}

// DisplayName joins the non-empty name parts with a single space.
func DisplayName(parts ...*string) string {
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != nil && *p != "" {
			names = append(names, *p)
		}
	}
	return strings.Join(names, " ")
}
