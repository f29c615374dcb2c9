package logic

import (
	"errors"
	"reflect"
	"testing"

	"github.com/craftstats/leaderboard-api/internal/models"
)

func testRoster() []models.NormalizedPlayer {
	return []models.NormalizedPlayer{
		{ID: "a", DisplayName: "Anna", Kills: 10, Deaths: 3, PlaytimeMinutes: 500, BlocksMined: 100, DistanceTraveledBlocks: 2000},
		{ID: "b", DisplayName: "Ben", Kills: 25, Deaths: 7, PlaytimeMinutes: 100, BlocksMined: 900, DistanceTraveledBlocks: 500},
		{ID: "c", DisplayName: "Cleo", Kills: 10, Deaths: 1, PlaytimeMinutes: 700, BlocksMined: 100, DistanceTraveledBlocks: 9000},
		{ID: "d", DisplayName: "Drew", Kills: 2, Deaths: 7, PlaytimeMinutes: 300, BlocksMined: 400, DistanceTraveledBlocks: 100},
	}
}

func TestRank_InvalidMetricKey(t *testing.T) {
	for _, key := range []models.MetricKey{"", "kdr", "KILLS", "kills; DROP TABLE players"} {
		_, err := Rank(testRoster(), key)
		if !errors.Is(err, ErrInvalidMetricKey) {
			t.Errorf("Rank(%q) error = %v, want ErrInvalidMetricKey", key, err)
		}
	}
}

func TestRank_DescendingWithPositionalRanks(t *testing.T) {
	entries, err := Rank(testRoster(), models.MetricKills)
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}

	wantOrder := []string{"b", "a", "c", "d"}
	for i, want := range wantOrder {
		if entries[i].Player.ID != want {
			t.Errorf("position %d = %s, want %s", i, entries[i].Player.ID, want)
		}
		if entries[i].Rank != i+1 {
			t.Errorf("rank at position %d = %d, want %d", i, entries[i].Rank, i+1)
		}
	}

	for i := 1; i < len(entries); i++ {
		if entries[i].MetricValue > entries[i-1].MetricValue {
			t.Errorf("not descending at %d: %v > %v", i, entries[i].MetricValue, entries[i-1].MetricValue)
		}
	}
}

func TestRank_StableOnTies(t *testing.T) {
	// a and c tie on kills (10) and blocksMined (100); a precedes c in the
	// input and must keep doing so in the output, with distinct ranks.
	entries, err := Rank(testRoster(), models.MetricBlocksMined)
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}

	posA, posC := -1, -1
	for i, e := range entries {
		switch e.Player.ID {
		case "a":
			posA = i
		case "c":
			posC = i
		}
	}
	if posA == -1 || posC == -1 || posA >= posC {
		t.Errorf("tied players out of input order: a at %d, c at %d", posA, posC)
	}
	if entries[posA].Rank == entries[posC].Rank {
		t.Error("tied players must not share a rank")
	}
}

func TestRank_DeathsRankDescending(t *testing.T) {
	// Most deaths ranks first on the deaths tab. Deliberate.
	entries, err := Rank(testRoster(), models.MetricDeaths)
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}
	if first := entries[0].Player.ID; first != "b" {
		t.Errorf("rank 1 = %s, want b (7 deaths, first in input among the tie)", first)
	}
	if entries[0].MetricValue < entries[len(entries)-1].MetricValue {
		t.Error("deaths leaderboard must be descending end to end")
	}
}

func TestRank_Idempotent(t *testing.T) {
	roster := testRoster()
	first, err := Rank(roster, models.MetricPlaytime)
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}
	second, err := Rank(roster, models.MetricPlaytime)
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("ranking twice with the same roster and key must yield identical sequences")
	}
}

func TestRank_DoesNotMutateInput(t *testing.T) {
	roster := testRoster()
	want := testRoster()
	if _, err := Rank(roster, models.MetricDistanceTraveled); err != nil {
		t.Fatalf("Rank: %v", err)
	}
	if !reflect.DeepEqual(roster, want) {
		t.Error("Rank must not reorder or mutate its input")
	}
}

func TestRank_EmptyRoster(t *testing.T) {
	entries, err := Rank(nil, models.MetricKills)
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("got %d entries, want 0", len(entries))
	}
}
