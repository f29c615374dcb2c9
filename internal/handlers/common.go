package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/craftstats/leaderboard-api/internal/roster"
)

func (h *Handler) jsonResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *Handler) errorResponse(w http.ResponseWriter, status int, message string) {
	h.jsonResponse(w, status, map[string]string{"error": message})
}

// snapshot fetches the current roster or answers 503. A missing snapshot
// means the session's source load failed (or has not finished): the roster
// is either fully available or not available at all.
func (h *Handler) snapshot(w http.ResponseWriter) (*roster.Snapshot, bool) {
	snap, ok := h.store.Current()
	if !ok {
		h.errorResponse(w, http.StatusServiceUnavailable, "Roster unavailable")
		return nil, false
	}
	return snap, true
}
