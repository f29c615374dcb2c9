package logic

import (
	"strings"

	"github.com/craftstats/leaderboard-api/internal/models"
)

// FallbackName is substituted for empty or absent display names.
const FallbackName = "Unknown"

// Normalize projects a raw roster record into its fully-defaulted form.
// It never fails: an absent or malformed optional stat is a valid, common
// case and becomes zero. The raw display name is preserved (trimming is a
// display concern, see ShortenName); only the dot-prefix marker is derived
// here because it is needed before any cosmetic trimming happens.
func Normalize(raw models.PlayerRecord) models.NormalizedPlayer {
	name := raw.DisplayName
	hasDot := strings.HasPrefix(name, ".")
	if name == "" {
		name = FallbackName
	}

	p := models.NormalizedPlayer{
		ID:           raw.ID,
		DisplayName:  name,
		HasDotPrefix: hasDot,

		PlaytimeMinutes:        orZero(raw.PlaytimeMinutes),
		HeartsCurrent:          orZero(raw.HeartsCurrent),
		BlocksMined:            orZero(raw.BlocksMined),
		DistanceTraveledBlocks: orZero(raw.DistanceTraveledBlocks),
		PlayerKills:            orZero(raw.PlayerKills),
		MobKills:               orZero(raw.MobKills),
		Kills:                  orZero(raw.Kills),
		Deaths:                 orZero(raw.Deaths),
		ItemsUsed:              orZero(raw.ItemsUsed),
		EntitiesKilled:         orZero(raw.EntitiesKilled),
		Jumps:                  orZero(raw.Jumps),

		MovementBreakdown: make(map[string]float64, len(raw.MovementBreakdown)),
		KDRHistorySeries:  make([]models.KDRSample, len(raw.KDRHistorySeries)),
	}

	// An absent timestamp must stay distinguishable from a real epoch zero.
	if raw.LastSeenTimestamp != nil {
		ts := *raw.LastSeenTimestamp
		p.LastSeenTimestamp = &ts
	}

	for k, v := range raw.MovementBreakdown {
		p.MovementBreakdown[k] = v
	}
	copy(p.KDRHistorySeries, raw.KDRHistorySeries)

	return p
}

// NormalizeAll normalizes a whole roster, preserving input order.
func NormalizeAll(raw []models.PlayerRecord) []models.NormalizedPlayer {
	players := make([]models.NormalizedPlayer, len(raw))
	for i, r := range raw {
		players[i] = Normalize(r)
	}
	return players
}

func orZero(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}
