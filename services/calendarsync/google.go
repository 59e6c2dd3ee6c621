// Package calendarsync mirrors planned meetings into an external calendar.
// Sync failure is non-fatal: local calendar events are the source of truth
// and are created regardless.
package calendarsync

import (
	"context"
	"fmt"
	"time"

	"meetplan/models"
	"meetplan/utils"

	"go.uber.org/zap"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// CalendarSync creates meeting events in an external calendar.
type CalendarSync interface {
	CreateEvent(ctx context.Context, summary, description string, start, end time.Time, attendees []string) (*models.SyncedEvent, error)
}

// GoogleCalendarSync is the Google Calendar implementation.
type GoogleCalendarSync struct {
	svc        *calendar.Service
	calendarID string
}

// NewGoogleCalendarSync builds the sync client from the configured OAuth
// credentials. Events are written to the authenticated user's primary
// calendar.
func NewGoogleCalendarSync(ctx context.Context) (*GoogleCalendarSync, error) {
	client, err := utils.GoogleOAuthClient(ctx, calendar.CalendarEventsScope)
	if err != nil {
		return nil, fmt.Errorf("calendar auth failed: %w", err)
	}
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &GoogleCalendarSync{svc: svc, calendarID: "primary"}, nil
}

// CreateEvent inserts one event with the given attendees invited.
func (s *GoogleCalendarSync) CreateEvent(
	ctx context.Context,
	summary, description string,
	start, end time.Time,
	attendees []string,
) (*models.SyncedEvent, error) {
	logger := utils.GetLogger()

	event := &calendar.Event{
		Summary:     summary,
		Description: description,
		Start:       &calendar.EventDateTime{DateTime: start.Format(time.RFC3339)},
		End:         &calendar.EventDateTime{DateTime: end.Format(time.RFC3339)},
	}
	for _, email := range attendees {
		event.Attendees = append(event.Attendees, &calendar.EventAttendee{Email: email})
	}

	created, err := s.svc.Events.Insert(s.calendarID, event).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar event: %w", err)
	}

	logger.Info("Event synced to Google Calendar",
		zap.String("eventID", created.Id), zap.String("link", created.HtmlLink))
	return &models.SyncedEvent{ID: created.Id, HTMLLink: created.HtmlLink}, nil
}
