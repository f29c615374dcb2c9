package models

// MetricKey selects which statistic the leaderboard is sorted by.
// The set is closed; anything else is a caller error.
type MetricKey string

const (
	MetricPlaytime         MetricKey = "playtime"
	MetricKills            MetricKey = "kills"
	MetricBlocksMined      MetricKey = "blocksMined"
	MetricDistanceTraveled MetricKey = "distanceTraveled"
	MetricDeaths           MetricKey = "deaths"
)

// MetricKeys returns the closed set of valid leaderboard metrics.
func MetricKeys() []MetricKey {
	return []MetricKey{
		MetricPlaytime,
		MetricKills,
		MetricBlocksMined,
		MetricDistanceTraveled,
		MetricDeaths,
	}
}

// Valid reports whether k is one of the five supported metrics.
func (k MetricKey) Valid() bool {
	switch k {
	case MetricPlaytime, MetricKills, MetricBlocksMined, MetricDistanceTraveled, MetricDeaths:
		return true
	}
	return false
}

// RankedEntry is one position in a sorted leaderboard projection.
// Rank is 1-based and purely positional: ties keep their input order and
// still get distinct ranks.
type RankedEntry struct {
	Rank        int              `json:"rank"`
	Player      NormalizedPlayer `json:"player"`
	MetricValue float64          `json:"metricValue"`
}

// RosterSummary is the whole-roster reduction shown as headline totals.
// It is metric-independent and recomputed only when the roster changes.
type RosterSummary struct {
	PlayerCount          int     `json:"playerCount"`
	TotalPlaytimeMinutes float64 `json:"totalPlaytimeMinutes"`
	TotalDeaths          float64 `json:"totalDeaths"`
	TotalBlocksMined     float64 `json:"totalBlocksMined"`
	TotalDistanceBlocks  float64 `json:"totalDistanceBlocks"`
}

// LeaderboardRow is the view model for one list row: rank, identity,
// cosmetic name/avatar fields and the selected metric both raw and
// display-formatted.
type LeaderboardRow struct {
	Rank         int     `json:"rank"`
	PlayerID     string  `json:"player_id"`
	PlayerName   string  `json:"player_name"`
	ShortName    string  `json:"short_name"`
	AvatarRef    string  `json:"avatar_ref"`
	Value        float64 `json:"value"`
	DisplayValue string  `json:"display_value"`
}

// PlayerDetail is the modal detail view model for a single player.
type PlayerDetail struct {
	Player NormalizedPlayer `json:"player"`

	ShortName string `json:"short_name"`
	AvatarRef string `json:"avatar_ref"`

	KDRatio         float64 `json:"kd_ratio"`
	PlaytimeDisplay string  `json:"playtime_display"`
	DistanceDisplay string  `json:"distance_display"`
}
