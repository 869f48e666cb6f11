package etl

import (
	"sort"

	"github.com/albapepper/tennis-data/internal/provider"
)

// Partitions groups matches by tournament year. Key 0 holds matches with no
// usable date.
type Partitions map[int][]provider.Match

// PartitionByYear is a stable partition: matches keep their input order
// within each year.
func PartitionByYear(matches []provider.Match) Partitions {
	p := make(Partitions)
	for _, m := range matches {
		y := m.Year()
		p[y] = append(p[y], m)
	}
	return p
}

// Years returns the partition years that get persisted (year > 0), sorted.
func (p Partitions) Years() []int {
	years := make([]int, 0, len(p))
	for y := range p {
		if y > 0 {
			years = append(years, y)
		}
	}
	sort.Ints(years)
	return years
}

// Undated returns the year-0 bucket.
func (p Partitions) Undated() []provider.Match {
	return p[0]
}
