package logic

import (
	"encoding/json"
	"testing"

	"github.com/craftstats/leaderboard-api/internal/models"
)

func TestNormalize_DefaultsEveryNumericField(t *testing.T) {
	p := Normalize(models.PlayerRecord{ID: "p1"})

	if p.ID != "p1" {
		t.Errorf("ID = %q, want p1", p.ID)
	}
	if p.DisplayName != FallbackName {
		t.Errorf("DisplayName = %q, want %q", p.DisplayName, FallbackName)
	}
	for name, v := range map[string]float64{
		"PlaytimeMinutes":        p.PlaytimeMinutes,
		"HeartsCurrent":          p.HeartsCurrent,
		"BlocksMined":            p.BlocksMined,
		"DistanceTraveledBlocks": p.DistanceTraveledBlocks,
		"PlayerKills":            p.PlayerKills,
		"MobKills":               p.MobKills,
		"Kills":                  p.Kills,
		"Deaths":                 p.Deaths,
		"ItemsUsed":              p.ItemsUsed,
		"EntitiesKilled":         p.EntitiesKilled,
		"Jumps":                  p.Jumps,
	} {
		if v != 0 {
			t.Errorf("%s = %v, want 0", name, v)
		}
	}
	if p.LastSeenTimestamp != nil {
		t.Error("absent LastSeenTimestamp must stay absent")
	}
	if p.MovementBreakdown == nil || p.KDRHistorySeries == nil {
		t.Error("movement breakdown and KDR series must be non-nil after normalization")
	}
}

func TestNormalize_DotPrefixFlag(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		hasDot  bool
		display string
	}{
		{"regular name", "Steve", false, "Steve"},
		{"dot prefix", ".bedrock_joe", true, ".bedrock_joe"},
		{"empty falls back", "", false, FallbackName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Normalize(models.PlayerRecord{DisplayName: tt.raw})
			if p.HasDotPrefix != tt.hasDot {
				t.Errorf("HasDotPrefix = %v, want %v", p.HasDotPrefix, tt.hasDot)
			}
			if p.DisplayName != tt.display {
				// The raw name is preserved; trimming is display-only.
				t.Errorf("DisplayName = %q, want %q", p.DisplayName, tt.display)
			}
		})
	}
}

func TestNormalize_TimestampZeroIsNotAbsence(t *testing.T) {
	ts := int64(0)
	p := Normalize(models.PlayerRecord{LastSeenTimestamp: &ts})
	if p.LastSeenTimestamp == nil || *p.LastSeenTimestamp != 0 {
		t.Error("a real zero timestamp must survive normalization")
	}
}

func TestNormalize_DoesNotAliasRecordData(t *testing.T) {
	ts := int64(1700000000000)
	raw := models.PlayerRecord{
		DisplayName:       "Steve",
		LastSeenTimestamp: &ts,
		MovementBreakdown: map[string]float64{"Distance Walked": 100},
		KDRHistorySeries:  []models.KDRSample{{Value: 1.5}},
	}

	p := Normalize(raw)
	p.MovementBreakdown["Distance Walked"] = 999
	p.KDRHistorySeries[0].Value = 999
	*p.LastSeenTimestamp = 999

	if raw.MovementBreakdown["Distance Walked"] != 100 {
		t.Error("normalization must not share the movement map with the record")
	}
	if raw.KDRHistorySeries[0].Value != 1.5 {
		t.Error("normalization must not share the KDR series with the record")
	}
	if *raw.LastSeenTimestamp != 1700000000000 {
		t.Error("normalization must not share the timestamp with the record")
	}
}

func TestNormalize_NeverFailsOnMalformedOptionalFields(t *testing.T) {
	// Malformed optional fields are dropped at decode time and default to
	// zero here; only the record-level shape matters.
	input := `{"id":"p1","displayName":"Steve","kills":{"weird":true},"deaths":[1,2],"playtimeMinutes":"banana"}`

	var rec models.PlayerRecord
	if err := json.Unmarshal([]byte(input), &rec); err != nil {
		t.Fatalf("decode: %v", err)
	}

	p := Normalize(rec)
	if p.Kills != 0 || p.Deaths != 0 || p.PlaytimeMinutes != 0 {
		t.Errorf("malformed optional fields must default to zero, got kills=%v deaths=%v playtime=%v",
			p.Kills, p.Deaths, p.PlaytimeMinutes)
	}
}
