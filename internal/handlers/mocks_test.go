package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/craftstats/leaderboard-api/internal/models"
	"github.com/craftstats/leaderboard-api/internal/roster"
)

// fakeStore implements SnapshotSource for handler tests.
type fakeStore struct {
	snap *roster.Snapshot
}

func (f *fakeStore) Current() (*roster.Snapshot, bool) {
	return f.snap, f.snap != nil
}

func testHandler(snap *roster.Snapshot) *Handler {
	return New(Config{
		Store:  &fakeStore{snap: snap},
		Logger: zap.NewNop(),
	})
}

func testSnapshot() *roster.Snapshot {
	f := func(v float64) *float64 { return &v }
	return roster.NewSnapshot(1, []models.PlayerRecord{
		{ID: "p1", DisplayName: "Anna", Kills: f(10), Deaths: f(2), PlaytimeMinutes: f(125), DistanceTraveledBlocks: f(1500)},
		{ID: "p2", DisplayName: ".ghost", Kills: f(25), Deaths: f(5),
			KDRHistorySeries: []models.KDRSample{{Label: "week-1", Value: 2.0}, {Value: 5.0}}},
		{ID: "p3", DisplayName: "AlexanderTheGreat", Kills: f(10)},
	})
}

// newTestRequest builds a GET request carrying chi URL parameters.
func newTestRequest(path string, params map[string]string) *http.Request {
	req := httptest.NewRequest("GET", path, nil)
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}
