package client

import (
	"fmt"
	"strconv"

	"github.com/albapepper/tennis-data/internal/provider"
)

// Missing is shown for absent dates and durations.
const Missing = "\u2014"

// Year returns the year of a YYYYMMDD date, 0 when absent.
func Year(td *int) int {
	return provider.YearOf(td)
}

// FormatDate renders a YYYYMMDD date as YYYY-MM-DD.
func FormatDate(td *int) string {
	if td == nil || *td == 0 {
		return Missing
	}
	s := strconv.Itoa(*td)
	return fmt.Sprintf("%s-%s-%s", slice(s, 0, 4), slice(s, 4, 6), slice(s, 6, 8))
}

// FormatDuration renders minutes as "2h 5m", or "45m" under an hour.
func FormatDuration(minutes *int) string {
	if minutes == nil || *minutes == 0 {
		return Missing
	}
	h, m := *minutes/60, *minutes%60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}

func slice(s string, from, to int) string {
	from = min(from, len(s))
	to = min(to, len(s))
	return s[from:to]
}

// PlayerByID finds a player by id. A nil or zero id finds nothing.
func PlayerByID(players []provider.Player, id *int) *provider.Player {
	if id == nil || *id == 0 {
		return nil
	}
	for i := range players {
		if players[i].ID != nil && *players[i].ID == *id {
			return &players[i]
		}
	}
	return nil
}

// Record is a player's win/loss record over a match list.
type Record struct {
	Wins   int
	Losses int
	// Matches lists wins first, then losses, each in input order.
	Matches []provider.Match
}

// PlayerRecord computes id's record over matches.
func PlayerRecord(matches []provider.Match, id int) Record {
	var wins, losses []provider.Match
	for _, m := range matches {
		switch {
		case m.WinnerID != nil && *m.WinnerID == id:
			wins = append(wins, m)
		case m.LoserID != nil && *m.LoserID == id:
			losses = append(losses, m)
		}
	}
	return Record{
		Wins:    len(wins),
		Losses:  len(losses),
		Matches: append(wins, losses...),
	}
}

// H2H is the head-to-head between two players.
type H2H struct {
	P1Wins  int
	P2Wins  int
	Matches []provider.Match
}

// HeadToHead returns the matches between p1 and p2, in input order.
func HeadToHead(matches []provider.Match, p1, p2 int) H2H {
	var h H2H
	for _, m := range matches {
		if m.WinnerID == nil || m.LoserID == nil {
			continue
		}
		w, l := *m.WinnerID, *m.LoserID
		switch {
		case w == p1 && l == p2:
			h.P1Wins++
		case w == p2 && l == p1:
			h.P2Wins++
		default:
			continue
		}
		h.Matches = append(h.Matches, m)
	}
	return h
}
