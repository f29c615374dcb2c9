package handlers

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/craftstats/leaderboard-api/internal/roster"
)

// SnapshotSource provides the current roster snapshot to the view layer.
type SnapshotSource interface {
	Current() (*roster.Snapshot, bool)
}

type Config struct {
	Store  SnapshotSource
	Logger *zap.Logger
}

type Handler struct {
	store     SnapshotSource
	logger    *zap.SugaredLogger
	validator *validator.Validate
}

func New(cfg Config) *Handler {
	return &Handler{
		store:     cfg.Store,
		logger:    cfg.Logger.Sugar(),
		validator: validator.New(),
	}
}

// Routes assembles the read-only API surface.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/leaderboard/{metric}", h.GetLeaderboard)
	r.Get("/metrics/keys", h.GetMetricKeys)
	r.Get("/summary", h.GetSummary)
	r.Get("/players", h.GetPlayers)
	r.Get("/players/{id}", h.GetPlayer)
	r.Get("/players/{id}/history", h.GetPlayerHistory)

	return r
}
