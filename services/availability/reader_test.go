package availability

import (
	"testing"
	"time"

	"meetplan/models"
)

// fakeEventRepo serves canned events keyed by user, filtering by overlap the
// way the Mongo query does.
type fakeEventRepo struct {
	events map[string][]models.CalendarEvent
}

func (f *fakeEventRepo) Create(*models.CalendarEvent) error                  { return nil }
func (f *fakeEventRepo) Update(*models.CalendarEvent) error                  { return nil }
func (f *fakeEventRepo) Delete(string) error                                 { return nil }
func (f *fakeEventRepo) GetByID(string) (*models.CalendarEvent, error)       { return nil, nil }
func (f *fakeEventRepo) GetByType(string) ([]models.CalendarEvent, error)    { return nil, nil }
func (f *fakeEventRepo) GetByUser(id string) ([]models.CalendarEvent, error) { return f.events[id], nil }

func (f *fakeEventRepo) GetOverlapping(userID string, from, to time.Time) ([]models.CalendarEvent, error) {
	var out []models.CalendarEvent
	for _, ev := range f.events[userID] {
		if ev.Start.Before(to) && ev.End.After(from) {
			out = append(out, ev)
		}
	}
	return out, nil
}

func TestEventStoreReader_BusyIntervals(t *testing.T) {
	repo := &fakeEventRepo{events: map[string][]models.CalendarEvent{
		"alice": {
			{ID: "e1", UserID: "alice", Start: at(monday, 10, 0), End: at(monday, 11, 0)},
			{ID: "e2", UserID: "alice", Start: at(monday, 8, 0), End: at(monday, 9, 30)},
			{ID: "e3", UserID: "alice", Start: at(monday.AddDate(0, 0, 5), 10, 0), End: at(monday.AddDate(0, 0, 5), 11, 0)},
		},
	}}
	reader := &EventStoreReader{Events: repo}

	intervals, err := reader.BusyIntervals("alice", at(monday, 9, 0), at(monday, 18, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// e3 is outside the range; e2 overlaps despite starting before it.
	if len(intervals) != 2 {
		t.Fatalf("expected 2 intervals, got %d", len(intervals))
	}
	if !intervals[0].Start.Equal(at(monday, 10, 0)) && !intervals[1].Start.Equal(at(monday, 10, 0)) {
		t.Error("missing the 10:00-11:00 interval")
	}
}

func TestCollectBusyIntervals_EveryParticipantPresent(t *testing.T) {
	repo := &fakeEventRepo{events: map[string][]models.CalendarEvent{
		"alice": {{ID: "e1", UserID: "alice", Start: at(monday, 10, 0), End: at(monday, 11, 0)}},
	}}
	reader := &EventStoreReader{Events: repo}

	busy, err := CollectBusyIntervals(reader, []string{"alice", "bob"}, at(monday, 9, 0), at(monday, 18, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(busy) != 2 {
		t.Fatalf("expected entries for both participants, got %d", len(busy))
	}
	if len(busy["alice"]) != 1 {
		t.Errorf("alice should have one busy interval, got %d", len(busy["alice"]))
	}
	if len(busy["bob"]) != 0 {
		t.Errorf("bob is fully free, got %d intervals", len(busy["bob"]))
	}
}
