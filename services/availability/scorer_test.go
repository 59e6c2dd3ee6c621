package availability

import (
	"testing"
	"time"

	"meetplan/models"
)

func slotStartingAt(hour int) models.CandidateSlot {
	start := time.Date(2025, 12, 15, hour, 0, 0, 0, time.UTC)
	return models.CandidateSlot{
		Interval: models.TimeInterval{Start: start, End: start.Add(time.Hour)},
	}
}

func TestFlatScorer(t *testing.T) {
	for _, hour := range []int{9, 10, 12, 13, 17} {
		if got := FlatScorer(slotStartingAt(hour)); got != FlatScore {
			t.Errorf("FlatScorer(%02d:00) = %d, want %d", hour, got, FlatScore)
		}
	}
}

func TestPreferenceScorer(t *testing.T) {
	scorer := PreferenceScorer(DefaultPreferences)

	tests := []struct {
		hour int
		want int
	}{
		{9, FlatScore},
		{10, FlatScore + 20},
		{11, FlatScore + 20},
		{12, FlatScore - 20},
		{13, FlatScore - 20},
		{14, FlatScore},
		{17, FlatScore},
	}
	for _, tc := range tests {
		if got := scorer(slotStartingAt(tc.hour)); got != tc.want {
			t.Errorf("PreferenceScorer(%02d:00) = %d, want %d", tc.hour, got, tc.want)
		}
	}
}

func TestPreferenceScorerDoesNotChangeInclusion(t *testing.T) {
	flat := &DefaultEngine{}
	pref := &DefaultEngine{Scorer: PreferenceScorer(DefaultPreferences)}

	busy := map[string][]models.TimeInterval{
		"alice": {{
			Start: time.Date(2025, 12, 15, 11, 0, 0, 0, time.UTC),
			End:   time.Date(2025, 12, 15, 13, 0, 0, 0, time.UTC),
		}},
	}
	window := oneDayWindow(monday, 60)

	flatSlots, err := flat.ComputeAvailableSlots(busy, window)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	prefSlots, err := pref.ComputeAvailableSlots(busy, window)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(flatSlots) != len(prefSlots) {
		t.Fatalf("scorer changed inclusion: %d vs %d slots", len(flatSlots), len(prefSlots))
	}
	for i := range flatSlots {
		if !flatSlots[i].Interval.Start.Equal(prefSlots[i].Interval.Start) {
			t.Errorf("slot %d differs: %v vs %v", i, flatSlots[i].Interval.Start, prefSlots[i].Interval.Start)
		}
	}
}
