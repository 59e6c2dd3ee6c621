// Package meeting orchestrates multi-participant meeting planning: parse the
// request, intersect calendars, pick a slot, draft and deliver invitations,
// and record the resulting events.
package meeting

import (
	"context"
	"time"

	"meetplan/models"
)

// PlannerService is the orchestration entry point consumed by the HTTP layer.
type PlannerService interface {
	// PlanMeeting runs the full planning flow over a natural-language request.
	PlanMeeting(ctx context.Context, req models.PlanRequest) (*models.PlanMeetingResult, error)
	// GetAvailability computes ranked conflict-free slots for explicit
	// participants and window, without planning anything.
	GetAvailability(ctx context.Context, participantIDs []string, window models.SearchWindow) ([]models.CandidateSlot, error)
}

// ReminderScheduler enqueues a reminder ahead of a planned meeting.
// Implementations must be safe to skip: reminder failure never fails a plan.
type ReminderScheduler interface {
	ScheduleReminder(ctx context.Context, email, subject string, start time.Time) error
}

// PlannerDefaults are applied when a parsed request leaves fields unset.
type PlannerDefaults struct {
	WorkStartHour   int
	WorkEndHour     int
	StepMinutes     int
	DurationMinutes int
	SearchDays      int
}
