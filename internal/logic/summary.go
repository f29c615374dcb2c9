package logic

import "github.com/craftstats/leaderboard-api/internal/models"

// Summarize reduces the whole roster to its headline totals. An empty
// roster is valid and yields all zeros. The summary depends only on the
// roster, not on the selected metric, so it is recomputed on roster change
// and nowhere else.
func Summarize(players []models.NormalizedPlayer) models.RosterSummary {
	s := models.RosterSummary{PlayerCount: len(players)}
	for _, p := range players {
		s.TotalPlaytimeMinutes += p.PlaytimeMinutes
		s.TotalDeaths += p.Deaths
		s.TotalBlocksMined += p.BlocksMined
		s.TotalDistanceBlocks += p.DistanceTraveledBlocks
	}
	return s
}
