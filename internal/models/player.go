package models

// PlayerRecord is one raw entry of the roster snapshot, exactly as supplied
// by the external source. Every numeric stat is optional: a nil pointer means
// "not tracked", which is distinct from a real zero. Records are never
// mutated after load; Normalize projects them into NormalizedPlayer.
type PlayerRecord struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`

	PlaytimeMinutes        *float64 `json:"playtimeMinutes,omitempty"`
	HeartsCurrent          *float64 `json:"heartsCurrent,omitempty"`
	BlocksMined            *float64 `json:"blocksMined,omitempty"`
	DistanceTraveledBlocks *float64 `json:"distanceTraveledBlocks,omitempty"`
	PlayerKills            *float64 `json:"playerKills,omitempty"`
	MobKills               *float64 `json:"mobKills,omitempty"`
	Kills                  *float64 `json:"kills,omitempty"`
	Deaths                 *float64 `json:"deaths,omitempty"`
	ItemsUsed              *float64 `json:"itemsUsed,omitempty"`
	EntitiesKilled         *float64 `json:"entitiesKilled,omitempty"`
	Jumps                  *float64 `json:"jumps,omitempty"`

	// Epoch milliseconds. Absent stays absent; never defaulted to "now".
	LastSeenTimestamp *int64 `json:"lastSeenTimestamp,omitempty"`

	MovementBreakdown map[string]float64 `json:"movementBreakdown,omitempty"`
	KDRHistorySeries  []KDRSample        `json:"kdrHistorySeries,omitempty"`
}

// NormalizedPlayer is a PlayerRecord with every optional numeric field
// resolved to a concrete value and the display name guaranteed non-empty.
// LastSeenTimestamp keeps its optionality on purpose: a zero epoch is a real
// instant, absence is not.
type NormalizedPlayer struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`

	// True when the raw display name begins with '.', which marks accounts
	// without a registered skin. Drives avatar selection only.
	HasDotPrefix bool `json:"hasDotPrefix"`

	PlaytimeMinutes        float64 `json:"playtimeMinutes"`
	HeartsCurrent          float64 `json:"heartsCurrent"`
	BlocksMined            float64 `json:"blocksMined"`
	DistanceTraveledBlocks float64 `json:"distanceTraveledBlocks"`
	PlayerKills            float64 `json:"playerKills"`
	MobKills               float64 `json:"mobKills"`
	Kills                  float64 `json:"kills"`
	Deaths                 float64 `json:"deaths"`
	ItemsUsed              float64 `json:"itemsUsed"`
	EntitiesKilled         float64 `json:"entitiesKilled"`
	Jumps                  float64 `json:"jumps"`

	LastSeenTimestamp *int64 `json:"lastSeenTimestamp,omitempty"`

	MovementBreakdown map[string]float64 `json:"movementBreakdown"`
	KDRHistorySeries  []KDRSample        `json:"kdrHistorySeries"`
}
