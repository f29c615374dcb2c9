package logic

import (
	"errors"
	"fmt"
	"sort"

	"github.com/craftstats/leaderboard-api/internal/models"
)

// ErrInvalidMetricKey is returned when a caller asks to rank by a key
// outside the closed metric set. There is no fallback key.
var ErrInvalidMetricKey = errors.New("invalid metric key")

// Rank orders the roster by the selected metric, descending, and assigns
// 1-based positional ranks. The sort is stable: players with equal values
// keep their input order and still get distinct ranks. This holds for
// deaths too: most deaths ranks first there, which is intentional. The
// input slice is never mutated; every call builds a fresh projection.
func Rank(players []models.NormalizedPlayer, key models.MetricKey) ([]models.RankedEntry, error) {
	if !key.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMetricKey, key)
	}

	entries := make([]models.RankedEntry, len(players))
	for i, p := range players {
		entries[i] = models.RankedEntry{
			Player:      p,
			MetricValue: MetricValue(p, key),
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].MetricValue > entries[j].MetricValue
	})

	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries, nil
}

// MetricValue extracts the numeric value a metric key selects on a player.
// Callers must have validated the key; an unknown key reads as zero.
func MetricValue(p models.NormalizedPlayer, key models.MetricKey) float64 {
	switch key {
	case models.MetricPlaytime:
		return p.PlaytimeMinutes
	case models.MetricKills:
		return p.Kills
	case models.MetricBlocksMined:
		return p.BlocksMined
	case models.MetricDistanceTraveled:
		return p.DistanceTraveledBlocks
	case models.MetricDeaths:
		return p.Deaths
	}
	return 0
}
