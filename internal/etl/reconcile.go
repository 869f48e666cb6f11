package etl

import "github.com/albapepper/tennis-data/internal/provider"

// IDSet is a set of player ids.
type IDSet map[int]struct{}

// Has reports whether id is in the set.
func (s IDSet) Has(id int) bool {
	_, ok := s[id]
	return ok
}

// ActiveIDs collects every non-null winner and loser id.
func ActiveIDs(matches []provider.Match) IDSet {
	ids := make(IDSet)
	for i := range matches {
		if id := matches[i].WinnerID; id != nil {
			ids[*id] = struct{}{}
		}
		if id := matches[i].LoserID; id != nil {
			ids[*id] = struct{}{}
		}
	}
	return ids
}

// FilterActive returns the roster players whose id is in active, keeping
// roster order. Players without an id are never active. A roster id listed
// more than once is kept at its first row only.
func FilterActive(players []provider.Player, active IDSet) []provider.Player {
	out := make([]provider.Player, 0, len(active))
	seen := make(IDSet, len(active))
	for _, p := range players {
		if p.ID == nil || !active.Has(*p.ID) || seen.Has(*p.ID) {
			continue
		}
		seen[*p.ID] = struct{}{}
		out = append(out, p)
	}
	return out
}
