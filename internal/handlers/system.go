package handlers

import (
	"net/http"
	"time"
)

// Health check endpoint
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().UTC(),
	})
}

// Ready reports whether a roster snapshot has been applied this session.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	snap, ok := h.store.Current()
	if !ok {
		h.jsonResponse(w, http.StatusServiceUnavailable, map[string]interface{}{
			"ready": false,
		})
		return
	}

	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"ready":      true,
		"players":    len(snap.Players),
		"generation": snap.Generation,
		"loaded_at":  snap.LoadedAt,
	})
}
