package availability

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"meetplan/models"
)

// 2025-12-15 is a Monday.
var monday = time.Date(2025, 12, 15, 0, 0, 0, 0, time.UTC)

func at(day time.Time, hour, min int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, min, 0, 0, day.Location())
}

func oneDayWindow(day time.Time, durationMinutes int) models.SearchWindow {
	return models.SearchWindow{
		Start:           at(day, 9, 0),
		End:             at(day, 18, 0),
		WorkStartHour:   9,
		WorkEndHour:     18,
		StepMinutes:     30,
		DurationMinutes: durationMinutes,
	}
}

func TestComputeAvailableSlots_FullFreeDay(t *testing.T) {
	engine := &DefaultEngine{}
	slots, err := engine.ComputeAvailableSlots(
		map[string][]models.TimeInterval{"alice": nil, "bob": nil},
		oneDayWindow(monday, 60),
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 09:00 through 17:00 inclusive, every 30 minutes.
	if len(slots) != 17 {
		t.Fatalf("expected 17 slots, got %d", len(slots))
	}
	if got := slots[0].Interval.Start; !got.Equal(at(monday, 9, 0)) {
		t.Errorf("first slot starts at %v, want 09:00", got)
	}
	if got := slots[len(slots)-1].Interval.Start; !got.Equal(at(monday, 17, 0)) {
		t.Errorf("last slot starts at %v, want 17:00", got)
	}
	for _, slot := range slots {
		if slot.Interval.Start.Equal(at(monday, 17, 30)) {
			t.Error("slot starting 17:30 would end past work hours and must not be emitted")
		}
		if slot.Score != FlatScore {
			t.Errorf("slot %v scored %d, want flat %d", slot.Interval.Start, slot.Score, FlatScore)
		}
		if slot.Conflicts != 0 {
			t.Errorf("slot %v has %d conflicts, want 0", slot.Interval.Start, slot.Conflicts)
		}
	}
}

func TestComputeAvailableSlots_BusyIntervalBoundaries(t *testing.T) {
	engine := &DefaultEngine{}
	busy := map[string][]models.TimeInterval{
		"alice": {{Start: at(monday, 10, 0), End: at(monday, 11, 0)}},
	}
	slots, err := engine.ComputeAvailableSlots(busy, oneDayWindow(monday, 60))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	starts := make(map[string]bool)
	for _, slot := range slots {
		starts[slot.Interval.Start.Format("15:04")] = true
	}

	// Half-open rule: a slot ending exactly at the busy start is allowed.
	if !starts["09:00"] {
		t.Error("slot 09:00-10:00 touches the busy start only at the boundary and must be kept")
	}
	// Slots overlapping [10:00, 11:00) must be dropped.
	for _, excluded := range []string{"09:30", "10:00", "10:30"} {
		if starts[excluded] {
			t.Errorf("slot starting %s overlaps the busy interval and must be excluded", excluded)
		}
	}
	// A slot starting exactly at the busy end is allowed.
	if !starts["11:00"] {
		t.Error("slot 11:00-12:00 starts exactly at the busy end and must be kept")
	}
	if len(slots) != 14 {
		t.Errorf("expected 14 slots, got %d", len(slots))
	}
}

func TestComputeAvailableSlots_SkipsWeekend(t *testing.T) {
	friday := time.Date(2025, 12, 19, 0, 0, 0, 0, time.UTC)
	window := models.SearchWindow{
		Start:           at(friday, 17, 0),
		End:             at(friday.AddDate(0, 0, 3), 10, 0), // Monday 10:00
		WorkStartHour:   9,
		WorkEndHour:     18,
		StepMinutes:     30,
		DurationMinutes: 60,
	}

	engine := &DefaultEngine{}
	slots, err := engine.ComputeAvailableSlots(nil, window)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) == 0 {
		t.Fatal("expected Friday and Monday slots")
	}
	for _, slot := range slots {
		if wd := slot.Interval.Start.Weekday(); wd == time.Saturday || wd == time.Sunday {
			t.Errorf("slot generated on %v", wd)
		}
	}
}

func TestComputeAvailableSlots_NoParticipantsMatchesAllFree(t *testing.T) {
	engine := &DefaultEngine{}
	window := oneDayWindow(monday, 60)

	empty, err := engine.ComputeAvailableSlots(map[string][]models.TimeInterval{}, window)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	free, err := engine.ComputeAvailableSlots(map[string][]models.TimeInterval{"alice": nil}, window)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(empty, free) {
		t.Error("zero participants must behave identically to all-free participants")
	}
}

func TestComputeAvailableSlots_DurationExceedsWorkDay(t *testing.T) {
	engine := &DefaultEngine{}
	slots, err := engine.ComputeAvailableSlots(nil, oneDayWindow(monday, 600))
	if err != nil {
		t.Fatalf("a too-long duration is an empty result, not an error: %v", err)
	}
	if len(slots) != 0 {
		t.Errorf("expected no slots for a 600-minute meeting in a 540-minute work day, got %d", len(slots))
	}
}

func TestComputeAvailableSlots_ValidationErrors(t *testing.T) {
	engine := &DefaultEngine{}

	tests := []struct {
		name   string
		window models.SearchWindow
		want   error
	}{
		{
			name: "window start after end",
			window: models.SearchWindow{
				Start: at(monday, 18, 0), End: at(monday, 9, 0),
				WorkStartHour: 9, WorkEndHour: 18, StepMinutes: 30, DurationMinutes: 60,
			},
			want: ErrInvalidWindow,
		},
		{
			name: "non-positive duration",
			window: models.SearchWindow{
				Start: at(monday, 9, 0), End: at(monday, 18, 0),
				WorkStartHour: 9, WorkEndHour: 18, StepMinutes: 30, DurationMinutes: 0,
			},
			want: ErrInvalidDuration,
		},
		{
			name: "negative step",
			window: models.SearchWindow{
				Start: at(monday, 9, 0), End: at(monday, 18, 0),
				WorkStartHour: 9, WorkEndHour: 18, StepMinutes: -5, DurationMinutes: 60,
			},
			want: ErrInvalidStep,
		},
		{
			name: "inverted work hours",
			window: models.SearchWindow{
				Start: at(monday, 9, 0), End: at(monday, 18, 0),
				WorkStartHour: 18, WorkEndHour: 9, StepMinutes: 30, DurationMinutes: 60,
			},
			want: ErrInvalidWorkHours,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := engine.ComputeAvailableSlots(nil, tc.window)
			if !errors.Is(err, tc.want) {
				t.Errorf("got error %v, want %v", err, tc.want)
			}
		})
	}
}

func TestComputeAvailableSlots_Invariants(t *testing.T) {
	engine := &DefaultEngine{}
	busy := map[string][]models.TimeInterval{
		"alice": {
			{Start: at(monday, 9, 30), End: at(monday, 10, 15)},
			{Start: at(monday, 14, 0), End: at(monday, 15, 0)},
		},
		"bob": {
			{Start: at(monday, 8, 0), End: at(monday, 9, 30)}, // extends outside work hours
		},
	}
	window := models.SearchWindow{
		Start:           at(monday, 9, 0),
		End:             at(monday.AddDate(0, 0, 2), 18, 0),
		WorkStartHour:   9,
		WorkEndHour:     18,
		StepMinutes:     30,
		DurationMinutes: 45,
	}

	slots, err := engine.ComputeAvailableSlots(busy, window)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) == 0 {
		t.Fatal("expected slots")
	}

	prev := time.Time{}
	for _, slot := range slots {
		// Duration invariant.
		if got := slot.Interval.Duration(); got != 45*time.Minute {
			t.Errorf("slot %v has duration %v, want 45m", slot.Interval.Start, got)
		}
		// No-conflict invariant against every busy interval.
		for _, intervals := range busy {
			for _, b := range intervals {
				if slot.Interval.Overlaps(b) {
					t.Errorf("slot %v overlaps busy interval %v", slot.Interval, b)
				}
			}
		}
		// Working-hours invariant.
		if slot.Interval.Start.Hour() < 9 {
			t.Errorf("slot starts before work hours: %v", slot.Interval.Start)
		}
		endH, endM := slot.Interval.End.Hour(), slot.Interval.End.Minute()
		if endH > 18 || (endH == 18 && endM != 0) {
			t.Errorf("slot ends past work hours: %v", slot.Interval.End)
		}
		// Monotonic chronology.
		if slot.Interval.Start.Before(prev) {
			t.Errorf("slot %v out of order", slot.Interval.Start)
		}
		prev = slot.Interval.Start
	}

	// Determinism: same inputs, identical output.
	again, err := engine.ComputeAvailableSlots(busy, window)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(slots, again) {
		t.Error("two runs over identical inputs returned different slot sequences")
	}
}

func TestComputeAvailableSlots_WindowStartFlooredToWorkStart(t *testing.T) {
	engine := &DefaultEngine{}
	window := oneDayWindow(monday, 60)
	window.Start = at(monday, 14, 20)

	slots, err := engine.ComputeAvailableSlots(nil, window)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) == 0 {
		t.Fatal("expected slots")
	}
	// The grid anchors at the work start of the window's first day.
	if got := slots[0].Interval.Start; !got.Equal(at(monday, 9, 0)) {
		t.Errorf("first slot starts at %v, want the 09:00 grid anchor", got)
	}
}

func TestComputeAvailableSlots_OverlappingCandidatesKept(t *testing.T) {
	engine := &DefaultEngine{}
	slots, err := engine.ComputeAvailableSlots(nil, oneDayWindow(monday, 60))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 09:00-10:00 and 09:30-10:30 overlap each other and both must survive.
	if len(slots) < 2 {
		t.Fatal("expected at least two slots")
	}
	if !slots[0].Interval.Overlaps(slots[1].Interval) {
		t.Error("adjacent grid candidates should overlap when step < duration")
	}
}
