package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/craftstats/leaderboard-api/internal/logic"
	"github.com/craftstats/leaderboard-api/internal/models"
)

// GetLeaderboard returns the ranked player list for one metric key
// @Summary Leaderboard
// @Description Get the roster ranked descending by a metric key (playtime, kills, blocksMined, distanceTraveled, deaths)
// @Tags Leaderboard
// @Produce json
// @Param metric path string true "Metric key to sort by"
// @Param limit query int false "Limit" default(25)
// @Param page query int false "Page" default(1)
// @Success 200 {object} models.LeaderboardResponse
// @Failure 400 {object} map[string]string "Unknown metric key or bad paging"
// @Failure 503 {object} map[string]string "Roster unavailable"
// @Router /leaderboard/{metric} [get]
func (h *Handler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	metric := models.MetricKey(chi.URLParam(r, "metric"))

	q := models.LeaderboardQuery{Limit: 25, Page: 1}
	if l := r.URL.Query().Get("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil {
			q.Limit = parsed
		}
	}
	if p := r.URL.Query().Get("page"); p != "" {
		if parsed, err := strconv.Atoi(p); err == nil {
			q.Page = parsed
		}
	}
	if err := h.validator.Struct(q); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid paging parameters")
		return
	}

	snap, ok := h.snapshot(w)
	if !ok {
		return
	}

	entries, err := logic.Rank(snap.Players, metric)
	if err != nil {
		if errors.Is(err, logic.ErrInvalidMetricKey) {
			// Unknown keys are a caller error, not a fallback to a default stat.
			h.errorResponse(w, http.StatusBadRequest, "Unknown metric key: "+string(metric))
			return
		}
		h.logger.Errorw("Failed to rank roster", "metric", metric, "error", err)
		h.errorResponse(w, http.StatusInternalServerError, "Ranking failed")
		return
	}

	offset := (q.Page - 1) * q.Limit
	rows := make([]models.LeaderboardRow, 0, q.Limit)
	for i := offset; i < len(entries) && i < offset+q.Limit; i++ {
		e := entries[i]
		rows = append(rows, models.LeaderboardRow{
			Rank:         e.Rank,
			PlayerID:     e.Player.ID,
			PlayerName:   e.Player.DisplayName,
			ShortName:    logic.ShortenName(e.Player.DisplayName),
			AvatarRef:    logic.AvatarReference(e.Player.HasDotPrefix, e.Player.DisplayName),
			Value:        e.MetricValue,
			DisplayValue: logic.DisplayMetricValue(metric, e.MetricValue),
		})
	}

	h.jsonResponse(w, http.StatusOK, models.LeaderboardResponse{
		Metric:  metric,
		Page:    q.Page,
		Total:   len(entries),
		Players: rows,
	})
}

// GetMetricKeys returns the closed set of rankable metrics
// @Summary Metric Keys
// @Tags Leaderboard
// @Produce json
// @Success 200 {array} string
// @Router /metrics/keys [get]
func (h *Handler) GetMetricKeys(w http.ResponseWriter, r *http.Request) {
	h.jsonResponse(w, http.StatusOK, models.MetricKeys())
}
