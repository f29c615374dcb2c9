package handlers

import (
	"net/http"

	"github.com/craftstats/leaderboard-api/internal/logic"
	"github.com/craftstats/leaderboard-api/internal/models"
)

// GetSummary returns whole-roster headline totals
// @Summary Roster Summary
// @Description Totals across the whole roster: headcount, playtime, deaths, blocks mined, distance
// @Tags Summary
// @Produce json
// @Success 200 {object} models.SummaryResponse
// @Failure 503 {object} map[string]string "Roster unavailable"
// @Router /summary [get]
func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	snap, ok := h.snapshot(w)
	if !ok {
		return
	}

	// The summary was computed when the snapshot was built; only the
	// display formatting happens per request.
	h.jsonResponse(w, http.StatusOK, models.SummaryResponse{
		Summary:              snap.Summary,
		TotalPlaytimeDisplay: logic.FormatDuration(snap.Summary.TotalPlaytimeMinutes),
		TotalDistanceDisplay: logic.FormatDistance(snap.Summary.TotalDistanceBlocks),
	})
}
