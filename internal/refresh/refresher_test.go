package refresh

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/craftstats/leaderboard-api/internal/roster"
)

type fakeLoader struct {
	snaps []*roster.Snapshot
	err   error
	calls int
}

func (f *fakeLoader) Load(ctx context.Context) (*roster.Snapshot, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	snap := f.snaps[0]
	if len(f.snaps) > 1 {
		f.snaps = f.snaps[1:]
	}
	return snap, nil
}

func TestLoadOnce_AppliesSnapshot(t *testing.T) {
	store := roster.NewStore()
	loader := &fakeLoader{snaps: []*roster.Snapshot{roster.NewSnapshot(1, nil)}}
	r := New(loader, store, 0, zap.NewNop())

	if err := r.LoadOnce(context.Background()); err != nil {
		t.Fatalf("LoadOnce: %v", err)
	}
	snap, ok := store.Current()
	if !ok || snap.Generation != 1 {
		t.Errorf("current = %v, %v, want generation 1", snap, ok)
	}
}

func TestLoadOnce_PropagatesLoadFailure(t *testing.T) {
	store := roster.NewStore()
	wantErr := errors.New("source down")
	r := New(&fakeLoader{err: wantErr}, store, 0, zap.NewNop())

	if err := r.LoadOnce(context.Background()); !errors.Is(err, wantErr) {
		t.Errorf("LoadOnce = %v, want %v", err, wantErr)
	}
	if _, ok := store.Current(); ok {
		t.Error("a failed load must not install a snapshot")
	}
}

func TestLoadOnce_StaleResultIsNotAnError(t *testing.T) {
	store := roster.NewStore()
	// The newer generation was applied first; the older result arriving
	// late is discarded silently (last-write-wins).
	if err := store.Apply(roster.NewSnapshot(5, nil)); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	r := New(&fakeLoader{snaps: []*roster.Snapshot{roster.NewSnapshot(2, nil)}}, store, 0, zap.NewNop())
	if err := r.LoadOnce(context.Background()); err != nil {
		t.Errorf("stale snapshot must be discarded without error, got %v", err)
	}

	snap, _ := store.Current()
	if snap.Generation != 5 {
		t.Errorf("generation = %d, want the newer 5 to stay current", snap.Generation)
	}
}

func TestRun_DisabledIntervalWaitsForCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	loader := &fakeLoader{snaps: []*roster.Snapshot{roster.NewSnapshot(1, nil)}}
	r := New(loader, roster.NewStore(), 0, zap.NewNop())

	done := make(chan struct{})
	go func() {
		r.Run(ctx)
		close(done)
	}()
	cancel()
	<-done

	if loader.calls != 0 {
		t.Errorf("disabled refresher must not load, did %d times", loader.calls)
	}
}
