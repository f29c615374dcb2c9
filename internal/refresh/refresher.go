// Package refresh drives roster snapshot loads: the initial session load
// and, when an interval is configured, periodic re-reads of the same static
// source. Overlap between loads is resolved by the store's generation check,
// so a slow older fetch can never clobber a newer roster.
package refresh

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/craftstats/leaderboard-api/internal/roster"
)

// Prometheus metrics
var (
	snapshotLoads = promauto.NewCounter(prometheus.CounterOpts{
		Name: "leaderboard_snapshot_loads_total",
		Help: "Total number of successful roster snapshot loads",
	})

	snapshotLoadFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "leaderboard_snapshot_load_failures_total",
		Help: "Total number of failed roster snapshot loads",
	})

	snapshotsDiscarded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "leaderboard_snapshots_discarded_total",
		Help: "Total number of snapshots discarded as stale (last-write-wins)",
	})

	snapshotLoadDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "leaderboard_snapshot_load_duration_seconds",
		Help:    "Duration of roster snapshot loads",
		Buckets: prometheus.DefBuckets,
	})

	rosterPlayers = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "leaderboard_roster_players",
		Help: "Player count of the currently applied roster snapshot",
	})
)

// SnapshotLoader is the fetch side of a refresh cycle.
type SnapshotLoader interface {
	Load(ctx context.Context) (*roster.Snapshot, error)
}

// SnapshotSink is the apply side of a refresh cycle.
type SnapshotSink interface {
	Apply(snap *roster.Snapshot) error
}

type Refresher struct {
	loader   SnapshotLoader
	store    SnapshotSink
	interval time.Duration
	logger   *zap.SugaredLogger
}

// New builds a refresher. interval <= 0 means the roster is loaded once per
// session and Run exits immediately after the context is honored.
func New(loader SnapshotLoader, store SnapshotSink, interval time.Duration, logger *zap.Logger) *Refresher {
	return &Refresher{
		loader:   loader,
		store:    store,
		interval: interval,
		logger:   logger.Sugar(),
	}
}

// LoadOnce performs one load-and-apply cycle. A stale result (an overlapping
// newer load won) is not an error: the latest snapshot is already current.
func (r *Refresher) LoadOnce(ctx context.Context) error {
	start := time.Now()
	snap, err := r.loader.Load(ctx)
	snapshotLoadDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		snapshotLoadFailures.Inc()
		return err
	}
	snapshotLoads.Inc()

	if err := r.store.Apply(snap); err != nil {
		if errors.Is(err, roster.ErrStaleSnapshot) {
			snapshotsDiscarded.Inc()
			r.logger.Warnw("Discarded stale roster snapshot",
				"generation", snap.Generation,
				"load_id", snap.LoadID,
			)
			return nil
		}
		return err
	}

	rosterPlayers.Set(float64(len(snap.Players)))
	r.logger.Infow("Roster snapshot applied",
		"players", len(snap.Players),
		"generation", snap.Generation,
		"load_id", snap.LoadID,
		"duration", time.Since(start),
	)
	return nil
}

// Run re-loads the snapshot on every tick until the context is canceled.
// Load failures are logged and the previous snapshot stays current; the
// next tick is the only re-attempt path.
func (r *Refresher) Run(ctx context.Context) {
	if r.interval <= 0 {
		<-ctx.Done()
		return
	}

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.logger.Infow("Snapshot refresher started", "interval", r.interval)

	for {
		select {
		case <-ticker.C:
			if err := r.LoadOnce(ctx); err != nil {
				r.logger.Errorw("Roster refresh failed", "error", err)
			}
		case <-ctx.Done():
			r.logger.Info("Snapshot refresher stopped")
			return
		}
	}
}
