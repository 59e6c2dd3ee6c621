package intelligence

import (
	"context"
	"testing"
	"time"
)

type fakeGenerator struct {
	output string
	err    error
}

func (f *fakeGenerator) GenerateContent(context.Context, string) (string, error) {
	return f.output, f.err
}

func TestParseMeetingRequest(t *testing.T) {
	gen := &fakeGenerator{output: "```json\n" + `{
		"subject": "Q1 planning",
		"objective": "agree the roadmap",
		"participant_names": ["Alice Martin", "Bob"],
		"preferred_start_date": "2025-12-15",
		"preferred_end_date": "2025-12-19T18:00:00",
		"duration_minutes": 45,
		"preferences": {"time": "morning"}
	}` + "\n```"}
	parser := &GeminiRequestParser{Generator: gen}

	req, err := parser.ParseMeetingRequest(context.Background(), "plan q1 meeting with alice and bob")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Subject != "Q1 planning" {
		t.Errorf("subject = %q", req.Subject)
	}
	if len(req.ParticipantNames) != 2 {
		t.Errorf("participants = %v", req.ParticipantNames)
	}
	if req.DurationMinutes != 45 {
		t.Errorf("duration = %d", req.DurationMinutes)
	}
	if req.PreferredStart.Day() != 15 || req.PreferredStart.Month() != time.December {
		t.Errorf("preferred start = %v", req.PreferredStart)
	}
	if req.PreferredEnd.Hour() != 18 {
		t.Errorf("preferred end = %v", req.PreferredEnd)
	}
	if req.Preferences["time"] != "morning" {
		t.Errorf("preferences = %v", req.Preferences)
	}
}

func TestParseMeetingRequest_InvalidJSON(t *testing.T) {
	parser := &GeminiRequestParser{Generator: &fakeGenerator{output: "sorry, I can't do that"}}
	if _, err := parser.ParseMeetingRequest(context.Background(), "anything"); err == nil {
		t.Fatal("expected an error for non-JSON model output")
	}
}

func TestParseFlexibleDate(t *testing.T) {
	tests := []struct {
		in        string
		wantYear  int
		wantMonth time.Month
		wantDay   int
	}{
		{"2025-12-15T10:00:00Z", 2025, time.December, 15},
		{"2025-12-15T10:00:00", 2025, time.December, 15},
		{"2025-12-15 10:00", 2025, time.December, 15},
		{"2025-12-15", 2025, time.December, 15},
		{"15/12/2025", 2025, time.December, 15},
	}
	for _, tc := range tests {
		got, err := ParseFlexibleDate(tc.in)
		if err != nil {
			t.Errorf("ParseFlexibleDate(%q) error: %v", tc.in, err)
			continue
		}
		if got.Year() != tc.wantYear || got.Month() != tc.wantMonth || got.Day() != tc.wantDay {
			t.Errorf("ParseFlexibleDate(%q) = %v", tc.in, got)
		}
	}

	if _, err := ParseFlexibleDate("next Tuesday-ish"); err == nil {
		t.Error("expected an error for an unparseable date")
	}
}

func TestSelectSlot(t *testing.T) {
	gen := &fakeGenerator{output: `{"slot_index": 2, "reasoning": "mid-morning", "alternative_slots": [0, 1]}`}
	selector := &GeminiSlotSelector{Generator: gen}

	sel, err := selector.SelectSlot(context.Background(), "1. ...\n2. ...\n3. ...\n", testRequest(), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sel.SlotIndex != 2 {
		t.Errorf("slot index = %d", sel.SlotIndex)
	}
	if len(sel.AlternativeSlots) != 2 {
		t.Errorf("alternatives = %v", sel.AlternativeSlots)
	}
}

func TestSelectSlot_NegativeIndexRejected(t *testing.T) {
	selector := &GeminiSlotSelector{Generator: &fakeGenerator{output: `{"slot_index": -1}`}}
	if _, err := selector.SelectSlot(context.Background(), "slots", testRequest(), 1); err == nil {
		t.Fatal("expected an error for a negative slot index")
	}
}
