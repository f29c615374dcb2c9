// Seeder writes a synthetic roster snapshot for local development. The
// output matches what the stats exporter produces: sparse optional fields,
// the occasional dot-prefixed account, and a short KDR history per player.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/craftstats/leaderboard-api/internal/models"
)

var names = []string{
	"Herobrine_Fan", "Steve", "Alexandra", "Diggy", "CreeperBane",
	".bedrock_joe", "EnderQueen", "Pickaxe_Pete", "TNTim", "RedstoneRita",
	"NetherKnight", ".console_kid", "VillagerVic", "SkyBlockSam",
	"DiamondDave", "ZombieHunter_99", "TheArchitectOfMidnight", "Glowstone",
}

func main() {
	out := flag.String("out", "players.json", "output snapshot path")
	count := flag.Int("count", len(names), "number of players to generate")
	seed := flag.Int64("seed", 42, "PRNG seed")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))

	if *count > len(names) {
		*count = len(names)
	}

	players := make([]models.PlayerRecord, 0, *count)
	for i := 0; i < *count; i++ {
		players = append(players, randomPlayer(rng, i))
	}

	data, err := json.MarshalIndent(players, "", "  ")
	if err != nil {
		log.Fatalf("Failed to marshal roster: %v", err)
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		log.Fatalf("Failed to write %s: %v", *out, err)
	}

	log.Printf("Wrote %d players to %s", len(players), *out)
}

func randomPlayer(rng *rand.Rand, i int) models.PlayerRecord {
	kills := float64(rng.Intn(400))
	deaths := float64(rng.Intn(120))
	playtime := float64(rng.Intn(20000))
	walked := float64(rng.Intn(300000))
	sprinted := float64(rng.Intn(150000))

	p := models.PlayerRecord{
		ID:          fmt.Sprintf("player-%04d", i),
		DisplayName: names[i%len(names)],

		PlaytimeMinutes:        f(playtime),
		BlocksMined:            f(float64(rng.Intn(500000))),
		DistanceTraveledBlocks: f(walked + sprinted),
		Kills:                  f(kills),
		Deaths:                 f(deaths),
		MovementBreakdown: map[string]float64{
			"Distance Walked":   walked,
			"Distance Sprinted": sprinted,
		},
	}

	// Leave a slice of optional fields absent to exercise normalization.
	if rng.Intn(3) > 0 {
		p.HeartsCurrent = f(float64(rng.Intn(21)))
		p.PlayerKills = f(kills * 0.3)
		p.MobKills = f(kills * 0.7)
		p.ItemsUsed = f(float64(rng.Intn(80000)))
		p.EntitiesKilled = f(kills)
		p.Jumps = f(float64(rng.Intn(200000)))
		ts := time.Now().Add(-time.Duration(rng.Intn(720)) * time.Hour).UnixMilli()
		p.LastSeenTimestamp = &ts
	}

	samples := rng.Intn(10)
	for s := 0; s < samples; s++ {
		p.KDRHistorySeries = append(p.KDRHistorySeries, models.KDRSample{
			Label: fmt.Sprintf("week-%d", s+1),
			Value: float64(rng.Intn(500)) / 100,
		})
	}

	return p
}

func f(v float64) *float64 {
	return &v
}
