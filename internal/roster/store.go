package roster

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/craftstats/leaderboard-api/internal/logic"
	"github.com/craftstats/leaderboard-api/internal/models"
)

// ErrStaleSnapshot is returned by Apply when a newer generation has already
// been applied. Overlapping loads resolve last-write-wins.
var ErrStaleSnapshot = errors.New("stale snapshot")

// Snapshot is one immutable generation of the roster: the normalized
// players in load order, their precomputed summary, and load identity.
// Nothing mutates a snapshot after construction; metric changes re-rank on
// top of it without touching it.
type Snapshot struct {
	LoadID     uuid.UUID
	Generation uint64
	LoadedAt   time.Time

	Players []models.NormalizedPlayer
	Summary models.RosterSummary

	byID map[string]int
}

// NewSnapshot normalizes the raw record set into a snapshot. The summary is
// computed once here, at the only point the roster changes, never per request.
func NewSnapshot(generation uint64, records []models.PlayerRecord) *Snapshot {
	players := logic.NormalizeAll(records)
	byID := make(map[string]int, len(players))
	for i, p := range players {
		byID[p.ID] = i
	}
	return &Snapshot{
		LoadID:     uuid.New(),
		Generation: generation,
		LoadedAt:   time.Now().UTC(),
		Players:    players,
		Summary:    logic.Summarize(players),
		byID:       byID,
	}
}

// Player looks a player up by id.
func (s *Snapshot) Player(id string) (models.NormalizedPlayer, bool) {
	i, ok := s.byID[id]
	if !ok {
		return models.NormalizedPlayer{}, false
	}
	return s.Players[i], true
}

// Store holds the current roster snapshot for the session. Readers get a
// consistent snapshot pointer; writers swap the whole snapshot at once, so
// there is nothing to lock per field.
type Store struct {
	mu      sync.RWMutex
	current *Snapshot
}

func NewStore() *Store {
	return &Store{}
}

// Apply installs a snapshot unless a newer generation is already current.
// Rejecting stale generations is what makes overlapping loads safe: only
// the latest result is ever visible.
func (st *Store) Apply(snap *Snapshot) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	if st.current != nil && snap.Generation <= st.current.Generation {
		return fmt.Errorf("%w: generation %d, current %d",
			ErrStaleSnapshot, snap.Generation, st.current.Generation)
	}
	st.current = snap
	return nil
}

// Current returns the active snapshot, or false when no load has succeeded
// yet this session.
func (st *Store) Current() (*Snapshot, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.current, st.current != nil
}
