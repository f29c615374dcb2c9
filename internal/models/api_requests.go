package models

// LeaderboardQuery carries the paging parameters of a leaderboard request
// after parsing. Validation tags are enforced by the handler's validator.
type LeaderboardQuery struct {
	Limit int `validate:"min=1,max=100"`
	Page  int `validate:"min=1"`
}

type LeaderboardResponse struct {
	Metric  MetricKey        `json:"metric"`
	Page    int              `json:"page"`
	Total   int              `json:"total"`
	Players []LeaderboardRow `json:"players"`
}

type SummaryResponse struct {
	Summary RosterSummary `json:"summary"`

	// Display-formatted totals for the headline badges.
	TotalPlaytimeDisplay string `json:"total_playtime_display"`
	TotalDistanceDisplay string `json:"total_distance_display"`
}

type RosterResponse struct {
	Players []NormalizedPlayer `json:"players"`
	Total   int                `json:"total"`
}

type HistoryResponse struct {
	PlayerID string      `json:"player_id"`
	Series   []KDRSample `json:"series"`
}
