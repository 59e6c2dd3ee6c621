package meeting

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"meetplan/models"
	"meetplan/services/availability"
)

// 2025-12-15 is a Monday.
var monday = time.Date(2025, 12, 15, 0, 0, 0, 0, time.UTC)

type fakeUserRepo struct {
	users map[string]models.User // keyed by first name
}

func (f *fakeUserRepo) Create(*models.User) error              { return nil }
func (f *fakeUserRepo) Update(*models.User) error              { return nil }
func (f *fakeUserRepo) Delete(string) error                    { return nil }
func (f *fakeUserRepo) GetByID(string) (*models.User, error)   { return nil, errors.New("not implemented") }
func (f *fakeUserRepo) GetAll() ([]models.User, error)         { return nil, nil }
func (f *fakeUserRepo) GetByEmail(string) (*models.User, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeUserRepo) GetByName(name string) (*models.User, error) {
	first, _, _ := strings.Cut(strings.TrimSpace(name), " ")
	if u, ok := f.users[first]; ok {
		return &u, nil
	}
	return nil, fmt.Errorf("user named %q not found", name)
}

type fakeEventStore struct {
	created []models.CalendarEvent
	fail    bool
}

func (f *fakeEventStore) Create(ev *models.CalendarEvent) error {
	if f.fail {
		return errors.New("insert failed")
	}
	f.created = append(f.created, *ev)
	return nil
}
func (f *fakeEventStore) Update(*models.CalendarEvent) error            { return nil }
func (f *fakeEventStore) Delete(string) error                           { return nil }
func (f *fakeEventStore) GetByID(string) (*models.CalendarEvent, error) { return nil, nil }
func (f *fakeEventStore) GetByUser(string) ([]models.CalendarEvent, error) {
	return nil, nil
}
func (f *fakeEventStore) GetByType(string) ([]models.CalendarEvent, error) { return nil, nil }
func (f *fakeEventStore) GetOverlapping(string, time.Time, time.Time) ([]models.CalendarEvent, error) {
	return nil, nil
}

type fakeReader struct {
	busy map[string][]models.TimeInterval
}

func (f *fakeReader) BusyIntervals(id string, from, to time.Time) ([]models.TimeInterval, error) {
	return f.busy[id], nil
}

type fakeParser struct {
	req *models.MeetingRequest
	err error
}

func (f *fakeParser) ParseMeetingRequest(context.Context, string) (*models.MeetingRequest, error) {
	return f.req, f.err
}

type fakeSelector struct {
	selection *models.SlotSelection
	err       error
}

func (f *fakeSelector) SelectSlot(context.Context, string, models.MeetingRequest, int) (*models.SlotSelection, error) {
	return f.selection, f.err
}

type fakeWriter struct{}

func (f *fakeWriter) GenerateInvitation(_ context.Context, subject, _ string, _ []models.ParticipantInfo, _, _ time.Time) (*models.Invitation, error) {
	return &models.Invitation{Subject: "Invitation: " + subject, Message: "join us"}, nil
}

func (f *fakeWriter) GeneratePersonalizedInvitation(_ context.Context, r models.ParticipantInfo, subject, _ string, _ []models.ParticipantInfo, _, _ time.Time) (*models.Invitation, error) {
	return &models.Invitation{Subject: "Invitation: " + subject, Message: "join us", Recipient: r.Name}, nil
}

type fakeNotifier struct {
	sent    []string
	failFor map[string]bool
}

func (f *fakeNotifier) SendEmail(_ context.Context, to, _, _ string) error {
	if f.failFor[to] {
		return errors.New("smtp rejected")
	}
	f.sent = append(f.sent, to)
	return nil
}

func testPlanner(users *fakeUserRepo, events *fakeEventStore, reader *fakeReader, parser *fakeParser, selector *fakeSelector, notifier *fakeNotifier) *DefaultPlanner {
	return &DefaultPlanner{
		Users:    users,
		Events:   events,
		Reader:   reader,
		Engine:   &availability.DefaultEngine{},
		Parser:   parser,
		Selector: selector,
		Writer:   &fakeWriter{},
		Notifier: notifier,
		Defaults: PlannerDefaults{
			WorkStartHour:   9,
			WorkEndHour:     18,
			StepMinutes:     30,
			DurationMinutes: 60,
			SearchDays:      7,
		},
	}
}

func twoUsers() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]models.User{
		"Alice": {ID: "u1", FirstName: "Alice", LastName: "Martin", Email: "alice@example.com"},
		"Bob":   {ID: "u2", FirstName: "Bob", LastName: "Stone", Email: "bob@example.com"},
	}}
}

func mondayRequest() *models.MeetingRequest {
	return &models.MeetingRequest{
		Subject:          "Q1 planning",
		Objective:        "agree the roadmap",
		ParticipantNames: []string{"Alice Martin", "Bob"},
		PreferredStart:   monday.Add(9 * time.Hour),
		PreferredEnd:     monday.Add(18 * time.Hour),
		DurationMinutes:  60,
	}
}

func TestPlanMeeting_EndToEnd(t *testing.T) {
	events := &fakeEventStore{}
	notifier := &fakeNotifier{}
	reader := &fakeReader{busy: map[string][]models.TimeInterval{
		"u1": {{Start: monday.Add(9 * time.Hour), End: monday.Add(10 * time.Hour)}},
	}}
	selector := &fakeSelector{selection: &models.SlotSelection{
		SlotIndex: 1, Reasoning: "mid-morning works best", AlternativeSlots: []int{0, 2},
	}}

	planner := testPlanner(twoUsers(), events, reader, &fakeParser{req: mondayRequest()}, selector, notifier)

	result, err := planner.PlanMeeting(context.Background(), models.PlanRequest{Text: "plan it"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Success {
		t.Fatalf("planning failed: %s", result.Error)
	}

	detail := result.Details
	if detail == nil {
		t.Fatal("missing details")
	}
	// With 09:00-10:00 busy, the grid starts at 10:00; index 1 is 10:30.
	if got := detail.SelectedSlot.Interval.Start; !got.Equal(monday.Add(10*time.Hour + 30*time.Minute)) {
		t.Errorf("selected slot starts at %v", got)
	}
	if detail.SelectedSlot.Interval.Overlaps(models.TimeInterval{
		Start: monday.Add(9 * time.Hour), End: monday.Add(10 * time.Hour),
	}) {
		t.Error("selected slot overlaps a busy interval")
	}
	if len(detail.CreatedEvents) != 2 {
		t.Errorf("created %d local events, want 2", len(detail.CreatedEvents))
	}
	if len(events.created) != 2 {
		t.Errorf("event store holds %d events, want 2", len(events.created))
	}
	for _, ev := range events.created {
		if ev.TypeID != DefaultEventTypeID {
			t.Errorf("event type = %q", ev.TypeID)
		}
		if ev.Title != "Q1 planning" {
			t.Errorf("event title = %q", ev.Title)
		}
	}
	if len(notifier.sent) != 2 {
		t.Errorf("sent %d emails, want 2", len(notifier.sent))
	}
	if len(detail.Alternatives) != 2 {
		t.Errorf("alternatives = %d, want 2", len(detail.Alternatives))
	}
	if !strings.Contains(result.Message, "Meeting planned successfully") {
		t.Errorf("confirmation message = %q", result.Message)
	}
}

func TestPlanMeeting_NoParticipants(t *testing.T) {
	req := mondayRequest()
	req.ParticipantNames = []string{"Nobody Known"}

	planner := testPlanner(twoUsers(), &fakeEventStore{}, &fakeReader{},
		&fakeParser{req: req}, &fakeSelector{}, &fakeNotifier{})

	result, err := planner.PlanMeeting(context.Background(), models.PlanRequest{Text: "plan it"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Success {
		t.Fatal("planning should fail without resolvable participants")
	}
	if result.Error == "" {
		t.Error("missing error message")
	}
}

func TestPlanMeeting_NoFreeSlot(t *testing.T) {
	// Both participants busy for the entire working day.
	reader := &fakeReader{busy: map[string][]models.TimeInterval{
		"u1": {{Start: monday.Add(9 * time.Hour), End: monday.Add(18 * time.Hour)}},
	}}

	planner := testPlanner(twoUsers(), &fakeEventStore{}, reader,
		&fakeParser{req: mondayRequest()}, &fakeSelector{}, &fakeNotifier{})

	result, err := planner.PlanMeeting(context.Background(), models.PlanRequest{Text: "plan it"})
	if err != nil {
		t.Fatalf("an empty availability result is not an error: %v", err)
	}
	if result.Success {
		t.Fatal("planning should report failure when no slot is free")
	}
}

func TestPlanMeeting_SelectionFallsBackToEarliest(t *testing.T) {
	events := &fakeEventStore{}
	selector := &fakeSelector{err: errors.New("model unavailable")}

	planner := testPlanner(twoUsers(), events, &fakeReader{},
		&fakeParser{req: mondayRequest()}, selector, &fakeNotifier{})

	result, err := planner.PlanMeeting(context.Background(), models.PlanRequest{Text: "plan it"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Success {
		t.Fatalf("planning failed: %s", result.Error)
	}
	if got := result.Details.SelectedSlot.Interval.Start; !got.Equal(monday.Add(9 * time.Hour)) {
		t.Errorf("fallback should pick the earliest slot, got %v", got)
	}
}

func TestPlanMeeting_OutOfRangeSelectionClamped(t *testing.T) {
	selector := &fakeSelector{selection: &models.SlotSelection{SlotIndex: 9999}}

	planner := testPlanner(twoUsers(), &fakeEventStore{}, &fakeReader{},
		&fakeParser{req: mondayRequest()}, selector, &fakeNotifier{})

	result, err := planner.PlanMeeting(context.Background(), models.PlanRequest{Text: "plan it"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := result.Details.SelectedSlot.Interval.Start; !got.Equal(monday.Add(9 * time.Hour)) {
		t.Errorf("out-of-range selection should clamp to the earliest slot, got %v", got)
	}
}

func TestPlanMeeting_ParserFailureUsesDefaults(t *testing.T) {
	parser := &fakeParser{err: errors.New("model unavailable")}

	planner := testPlanner(twoUsers(), &fakeEventStore{}, &fakeReader{},
		parser, &fakeSelector{}, &fakeNotifier{})

	result, err := planner.PlanMeeting(context.Background(), models.PlanRequest{Text: "plan something"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Defaults carry no participant names, so the run reports failure
	// rather than erroring.
	if result.Success {
		t.Fatal("default request has no participants and should fail gracefully")
	}
}

func TestPlanMeeting_EmailFailureReported(t *testing.T) {
	notifier := &fakeNotifier{failFor: map[string]bool{"bob@example.com": true}}

	planner := testPlanner(twoUsers(), &fakeEventStore{}, &fakeReader{},
		&fakeParser{req: mondayRequest()}, &fakeSelector{err: errors.New("down")}, notifier)

	result, err := planner.PlanMeeting(context.Background(), models.PlanRequest{Text: "plan it"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Success {
		t.Fatalf("email failure must not fail the plan: %s", result.Error)
	}

	res := result.Details.EmailResults
	if !res["u1"].Sent {
		t.Error("alice's invitation should be sent")
	}
	if res["u2"].Sent {
		t.Error("bob's invitation should be reported as failed")
	}
	if !strings.Contains(result.Message, "1/2") {
		t.Errorf("confirmation should mention partial delivery:\n%s", result.Message)
	}
}

func TestGetAvailability(t *testing.T) {
	reader := &fakeReader{busy: map[string][]models.TimeInterval{
		"u1": {{Start: monday.Add(9 * time.Hour), End: monday.Add(17 * time.Hour)}},
	}}
	planner := testPlanner(twoUsers(), &fakeEventStore{}, reader,
		&fakeParser{}, &fakeSelector{}, &fakeNotifier{})

	slots, err := planner.GetAvailability(context.Background(), []string{"u1", "u2"}, models.SearchWindow{
		Start:           monday.Add(9 * time.Hour),
		End:             monday.Add(18 * time.Hour),
		WorkStartHour:   9,
		WorkEndHour:     18,
		StepMinutes:     30,
		DurationMinutes: 60,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Only 17:00-18:00 survives the busy block.
	if len(slots) != 1 {
		t.Fatalf("expected 1 slot, got %d", len(slots))
	}
	if !slots[0].Interval.Start.Equal(monday.Add(17 * time.Hour)) {
		t.Errorf("slot starts at %v", slots[0].Interval.Start)
	}
}
