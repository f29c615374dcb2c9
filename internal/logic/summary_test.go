package logic

import (
	"testing"
)

func TestSummarize_EmptyRoster(t *testing.T) {
	s := Summarize(nil)
	if s.PlayerCount != 0 || s.TotalPlaytimeMinutes != 0 || s.TotalDeaths != 0 ||
		s.TotalBlocksMined != 0 || s.TotalDistanceBlocks != 0 {
		t.Errorf("empty roster summary must be all zeros, got %+v", s)
	}
}

func TestSummarize_Totals(t *testing.T) {
	s := Summarize(testRoster())

	if s.PlayerCount != 4 {
		t.Errorf("PlayerCount = %d, want 4", s.PlayerCount)
	}
	if s.TotalPlaytimeMinutes != 1600 {
		t.Errorf("TotalPlaytimeMinutes = %v, want 1600", s.TotalPlaytimeMinutes)
	}
	if s.TotalDeaths != 18 {
		t.Errorf("TotalDeaths = %v, want 18", s.TotalDeaths)
	}
	if s.TotalBlocksMined != 1500 {
		t.Errorf("TotalBlocksMined = %v, want 1500", s.TotalBlocksMined)
	}
	if s.TotalDistanceBlocks != 11600 {
		t.Errorf("TotalDistanceBlocks = %v, want 11600", s.TotalDistanceBlocks)
	}
}
