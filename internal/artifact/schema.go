package artifact

// Known surfaces, in the column order used by surface_trends.
var Surfaces = []string{"Hard", "Clay", "Grass", "Carpet"}

// Rounds lists round codes from the final outwards.
var Rounds = []string{"F", "SF", "QF", "R16", "R32", "R64", "R128", "RR"}

// LevelLabels maps tourney level codes to display labels.
var LevelLabels = map[string]string{
	"G": "Grand Slam",
	"M": "Masters 1000",
	"A": "ATP Tour",
	"F": "Tour Finals",
	"D": "Davis Cup",
	"C": "Challenger",
}

// --------------------------------------------------------------------------
// stats.json
// --------------------------------------------------------------------------

// Stats is the pre-aggregated dashboard bundle.
type Stats struct {
	TotalMatches        int               `json:"total_matches"`
	TotalPlayers        int               `json:"total_players"`
	TotalTournaments    int               `json:"total_tournaments"`
	ByYear              []YearStats       `json:"by_year"`
	BySurface           map[string]int    `json:"by_surface"`
	ByLevel             map[string]int    `json:"by_level"`
	SurfaceTrends       []SurfaceTrend    `json:"surface_trends"`
	GrandSlamLeaders    []GrandSlamLeader `json:"grand_slam_leaders"`
	AvgDurationByDecade []DecadeDuration  `json:"avg_duration_by_decade"`
}

// YearStats counts one year's matches, overall and by surface and level.
// Year 0 collects matches without a date.
type YearStats struct {
	Year     int            `json:"year"`
	Matches  int            `json:"matches"`
	Surfaces map[string]int `json:"surfaces"`
	Levels   map[string]int `json:"levels"`
}

// SurfaceTrend is one row of the dense year × surface matrix.
type SurfaceTrend struct {
	Year   int `json:"year"`
	Hard   int `json:"Hard"`
	Clay   int `json:"Clay"`
	Grass  int `json:"Grass"`
	Carpet int `json:"Carpet"`
}

// Count returns the cell for a surface name.
func (t SurfaceTrend) Count(surface string) int {
	switch surface {
	case "Hard":
		return t.Hard
	case "Clay":
		return t.Clay
	case "Grass":
		return t.Grass
	case "Carpet":
		return t.Carpet
	}
	return 0
}

type GrandSlamLeader struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type DecadeDuration struct {
	Decade string `json:"decade"`
	Avg    int    `json:"avg"`
}

// --------------------------------------------------------------------------
// metadata.json
// --------------------------------------------------------------------------

// Metadata holds filter options and data ranges for the browsing client.
type Metadata struct {
	TotalMatches       int               `json:"total_matches"`
	TotalPlayers       int               `json:"total_players"`
	YearRange          YearRange         `json:"year_range"`
	Surfaces           []string          `json:"surfaces"`
	TourneyLevels      []string          `json:"tourney_levels"`
	TourneyLevelLabels map[string]string `json:"tourney_level_labels"`
	Rounds             []string          `json:"rounds"`
	Countries          []string          `json:"countries"`
	Tournaments        []string          `json:"tournaments"`
	TopPlayers         []TopPlayer       `json:"top_players"`
	AvailableYears     []int             `json:"available_years"`
	GeneratedAt        string            `json:"generated_at"`
}

type YearRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// TopPlayer is a most-active-players leaderboard entry.
type TopPlayer struct {
	ID   int     `json:"id"`
	Name string  `json:"name"`
	IOC  *string `json:"ioc"`
	W    int     `json:"w"`
	L    int     `json:"l"`
}
