package roster

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/craftstats/leaderboard-api/internal/models"
)

// maxSnapshotBytes caps how much of a remote snapshot body is read (16MB).
const maxSnapshotBytes = 16 << 20

// LoaderConfig configures the snapshot loader. Exactly one of Path and URL
// should be set; Path wins when both are.
type LoaderConfig struct {
	Path    string
	URL     string
	Timeout time.Duration
	Logger  *zap.Logger
}

// Loader performs the one-shot fetch of the full roster record set from the
// external source. A load either yields the complete set or fails as a
// whole; there is no retry and no partial roster. Concurrent callers share
// a single in-flight fetch, and each fetch gets a monotonic generation so
// the store can resolve overlapping loads last-write-wins.
type Loader struct {
	path    string
	url     string
	client  *http.Client
	logger  *zap.SugaredLogger
	gen     atomic.Uint64
	flights singleflight.Group
}

func NewLoader(cfg LoaderConfig) *Loader {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Loader{
		path:   cfg.Path,
		url:    cfg.URL,
		client: &http.Client{Timeout: timeout},
		logger: cfg.Logger.Sugar(),
	}
}

// Load fetches and decodes the record set into a fresh snapshot.
// Malformed top-level JSON or an unreachable source is a terminal failure
// for the attempt; malformed optional fields on individual records are not
// (the flexible record decoder drops them and normalization defaults them).
func (l *Loader) Load(ctx context.Context) (*Snapshot, error) {
	v, err, shared := l.flights.Do("roster", func() (interface{}, error) {
		gen := l.gen.Add(1)

		data, err := l.fetch(ctx)
		if err != nil {
			return nil, err
		}

		var records []models.PlayerRecord
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, fmt.Errorf("decode roster snapshot: %w", err)
		}

		return NewSnapshot(gen, records), nil
	})
	if err != nil {
		return nil, err
	}
	snap := v.(*Snapshot)
	if shared {
		l.logger.Debugw("Joined in-flight roster load", "generation", snap.Generation)
	}
	return snap, nil
}

func (l *Loader) fetch(ctx context.Context) ([]byte, error) {
	if l.path != "" {
		data, err := os.ReadFile(l.path)
		if err != nil {
			return nil, fmt.Errorf("read roster snapshot %s: %w", l.path, err)
		}
		return data, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build snapshot request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch roster snapshot %s: %w", l.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch roster snapshot %s: unexpected status %d", l.url, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxSnapshotBytes))
	if err != nil {
		return nil, fmt.Errorf("read snapshot body: %w", err)
	}
	return data, nil
}
