package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/craftstats/leaderboard-api/internal/logic"
	"github.com/craftstats/leaderboard-api/internal/models"
)

// GetPlayers returns the full normalized roster in load order
// @Summary Roster
// @Tags Players
// @Produce json
// @Success 200 {object} models.RosterResponse
// @Failure 503 {object} map[string]string "Roster unavailable"
// @Router /players [get]
func (h *Handler) GetPlayers(w http.ResponseWriter, r *http.Request) {
	snap, ok := h.snapshot(w)
	if !ok {
		return
	}

	h.jsonResponse(w, http.StatusOK, models.RosterResponse{
		Players: snap.Players,
		Total:   len(snap.Players),
	})
}

// GetPlayer returns the detail view model for one player
// @Summary Player Detail
// @Tags Players
// @Produce json
// @Param id path string true "Player ID"
// @Success 200 {object} models.PlayerDetail
// @Failure 404 {object} map[string]string "Unknown player"
// @Failure 503 {object} map[string]string "Roster unavailable"
// @Router /players/{id} [get]
func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	snap, ok := h.snapshot(w)
	if !ok {
		return
	}

	id := chi.URLParam(r, "id")
	p, ok := snap.Player(id)
	if !ok {
		h.errorResponse(w, http.StatusNotFound, "Unknown player: "+id)
		return
	}

	h.jsonResponse(w, http.StatusOK, models.PlayerDetail{
		Player:          p,
		ShortName:       logic.ShortenName(p.DisplayName),
		AvatarRef:       logic.AvatarReference(p.HasDotPrefix, p.DisplayName),
		KDRatio:         logic.KillDeathRatio(p.Kills, p.Deaths),
		PlaytimeDisplay: logic.FormatDuration(p.PlaytimeMinutes),
		DistanceDisplay: logic.FormatDistance(p.DistanceTraveledBlocks),
	})
}

// GetPlayerHistory returns the raw KDR history series for the trend chart
// @Summary Player KDR History
// @Description The historical kill/death-ratio series, passed through uninterpreted
// @Tags Players
// @Produce json
// @Param id path string true "Player ID"
// @Success 200 {object} models.HistoryResponse
// @Failure 404 {object} map[string]string "Unknown player"
// @Failure 503 {object} map[string]string "Roster unavailable"
// @Router /players/{id}/history [get]
func (h *Handler) GetPlayerHistory(w http.ResponseWriter, r *http.Request) {
	snap, ok := h.snapshot(w)
	if !ok {
		return
	}

	id := chi.URLParam(r, "id")
	p, ok := snap.Player(id)
	if !ok {
		h.errorResponse(w, http.StatusNotFound, "Unknown player: "+id)
		return
	}

	h.jsonResponse(w, http.StatusOK, models.HistoryResponse{
		PlayerID: p.ID,
		Series:   p.KDRHistorySeries,
	})
}
