package logic

import (
	"fmt"
	"math"
	"strings"
	"unicode"

	"github.com/google/uuid"

	"github.com/craftstats/leaderboard-api/internal/models"
)

// DefaultSkinRef is the avatar identifier used for dot-prefixed accounts,
// which have no registered skin of their own.
const DefaultSkinRef = "8667ba71-b85a-4004-af54-457a9734eed7"

// shortNameMax is the longest display name rendered without shortening.
const shortNameMax = 12

// FormatDuration renders playtime minutes as "0m", "Ym", "Xh" or "Xh Ym".
func FormatDuration(minutes float64) string {
	total := int(minutes)
	if total <= 0 {
		return "0m"
	}
	hours := total / 60
	mins := total % 60
	switch {
	case hours == 0:
		return fmt.Sprintf("%dm", mins)
	case mins == 0:
		return fmt.Sprintf("%dh", hours)
	default:
		return fmt.Sprintf("%dh %dm", hours, mins)
	}
}

// FormatDistance renders a block count as kilometers with two decimals.
func FormatDistance(blocks float64) string {
	if blocks <= 0 {
		return "0.00 km"
	}
	return fmt.Sprintf("%.2f km", blocks/1000)
}

// KillDeathRatio computes KDR rounded to two decimals. A player with kills
// but no deaths gets their kill count, never an infinity; no kills and no
// deaths is exactly zero.
func KillDeathRatio(kills, deaths float64) float64 {
	if deaths == 0 {
		if kills > 0 {
			return round2(kills)
		}
		return 0
	}
	return round2(kills / deaths)
}

// ShortenName strips leading/trailing '.' and whitespace, then abbreviates
// anything longer than 12 runes to first-3 + "..." + last-3. Purely
// cosmetic; must never be used as a lookup key.
func ShortenName(name string) string {
	trimmed := strings.TrimFunc(name, func(r rune) bool {
		return r == '.' || unicode.IsSpace(r)
	})
	runes := []rune(trimmed)
	if len(runes) <= shortNameMax {
		return trimmed
	}
	return string(runes[:3]) + "..." + string(runes[len(runes)-3:])
}

// AvatarReference resolves which avatar asset a player gets. Dot-prefixed
// names denote accounts without a registered skin and map to the fixed
// default. Everyone else gets the deterministic offline-mode identity
// derived from the literal (untrimmed, unshortened) name: the RFC 4122
// version-3 UUID of "OfflinePlayer:"+name.
func AvatarReference(hasDotPrefix bool, name string) string {
	if hasDotPrefix {
		return DefaultSkinRef
	}
	return uuid.NewMD5(uuid.Nil, []byte("OfflinePlayer:"+name)).String()
}

// DisplayMetricValue formats a ranked metric value for list rows: durations
// and distances get their unit rendering, plain counters render as integers.
func DisplayMetricValue(key models.MetricKey, value float64) string {
	switch key {
	case models.MetricPlaytime:
		return FormatDuration(value)
	case models.MetricDistanceTraveled:
		return FormatDistance(value)
	default:
		return fmt.Sprintf("%.0f", value)
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
