package availability

import (
	"fmt"
	"time"

	eventRepo "meetplan/database/repository/event"
	"meetplan/models"
)

// CalendarReader supplies a participant's busy intervals for a date range.
// Returned intervals may extend past the range boundaries; the engine does
// its own overlap arithmetic and never relies on pre-clipping.
type CalendarReader interface {
	BusyIntervals(participantID string, from, to time.Time) ([]models.TimeInterval, error)
}

// EventStoreReader reads busy intervals from the calendar event store.
type EventStoreReader struct {
	Events eventRepo.EventRepository
}

// BusyIntervals returns one interval per stored event of the participant
// that overlaps [from, to). An empty result means the participant is free.
func (r *EventStoreReader) BusyIntervals(participantID string, from, to time.Time) ([]models.TimeInterval, error) {
	events, err := r.Events.GetOverlapping(participantID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to read busy intervals for participant %s: %w", participantID, err)
	}

	intervals := make([]models.TimeInterval, 0, len(events))
	for _, ev := range events {
		intervals = append(intervals, models.TimeInterval{Start: ev.Start, End: ev.End})
	}
	return intervals, nil
}

// CollectBusyIntervals gathers the busy set of every participant. Every
// requested participant gets a map entry, so a fully free participant is
// represented explicitly rather than dropped.
func CollectBusyIntervals(
	reader CalendarReader,
	participantIDs []string,
	from, to time.Time,
) (map[string][]models.TimeInterval, error) {
	busy := make(map[string][]models.TimeInterval, len(participantIDs))
	for _, id := range participantIDs {
		intervals, err := reader.BusyIntervals(id, from, to)
		if err != nil {
			return nil, err
		}
		busy[id] = intervals
	}
	return busy, nil
}
