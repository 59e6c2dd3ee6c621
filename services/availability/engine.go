// Package availability computes conflict-free meeting slots for a set of
// participants by intersecting their calendars over a search window.
package availability

import (
	"errors"
	"time"

	"meetplan/models"
)

// Validation errors surfaced by ComputeAvailableSlots. An empty result is
// not an error: a window with no conflict-free slot returns (nil, nil).
var (
	ErrInvalidWindow    = errors.New("availability: search window start must be before end")
	ErrInvalidDuration  = errors.New("availability: meeting duration must be positive")
	ErrInvalidStep      = errors.New("availability: grid step must be positive")
	ErrInvalidWorkHours = errors.New("availability: work hours must satisfy 0 <= start < end <= 24")
)

// Engine computes ranked, conflict-free candidate slots.
type Engine interface {
	ComputeAvailableSlots(busy map[string][]models.TimeInterval, window models.SearchWindow) ([]models.CandidateSlot, error)
}

// DefaultEngine is the production engine. Scorer may be nil, in which case
// every conflict-free slot gets the flat baseline score.
type DefaultEngine struct {
	Scorer SlotScorer
}

// ComputeAvailableSlots walks the candidate grid from the window start to the
// window end and emits every slot of the requested duration that fits inside
// working hours on a weekday and overlaps no busy interval of any participant.
//
// The cursor advances by the grid step, not the slot duration, so consecutive
// candidates may overlap each other. That is intentional: it maximizes
// placement options before conflict filtering.
func (e *DefaultEngine) ComputeAvailableSlots(
	busy map[string][]models.TimeInterval,
	window models.SearchWindow,
) ([]models.CandidateSlot, error) {
	window = window.Normalized()

	if !window.Start.Before(window.End) {
		return nil, ErrInvalidWindow
	}
	if window.DurationMinutes <= 0 {
		return nil, ErrInvalidDuration
	}
	if window.StepMinutes <= 0 {
		return nil, ErrInvalidStep
	}
	if window.WorkStartHour < 0 || window.WorkEndHour > 24 || window.WorkStartHour >= window.WorkEndHour {
		return nil, ErrInvalidWorkHours
	}

	// Flatten all participants' intervals into one busy set. Every candidate
	// is tested against every interval, so merging is unnecessary.
	var busySet []models.TimeInterval
	for _, intervals := range busy {
		busySet = append(busySet, intervals...)
	}

	scorer := e.Scorer
	if scorer == nil {
		scorer = FlatScorer
	}

	duration := time.Duration(window.DurationMinutes) * time.Minute
	step := time.Duration(window.StepMinutes) * time.Minute

	var slots []models.CandidateSlot
	cursor := atHour(window.Start, window.WorkStartHour)

	for cursor.Before(window.End) {
		if wd := cursor.Weekday(); wd == time.Saturday || wd == time.Sunday {
			cursor = nextWorkDay(cursor, window.WorkStartHour)
			continue
		}
		if cursor.Hour() >= window.WorkEndHour {
			cursor = nextWorkDay(cursor, window.WorkStartHour)
			continue
		}

		slotEnd := cursor.Add(duration)
		if overflowsWorkDay(cursor, slotEnd, window.WorkEndHour) {
			cursor = nextWorkDay(cursor, window.WorkStartHour)
			continue
		}

		slot := models.TimeInterval{Start: cursor, End: slotEnd}
		conflicts := 0
		for _, b := range busySet {
			if slot.Overlaps(b) {
				conflicts++
			}
		}
		if conflicts == 0 {
			cand := models.CandidateSlot{Interval: slot, Conflicts: 0}
			cand.Score = scorer(cand)
			slots = append(slots, cand)
		}

		cursor = cursor.Add(step)
	}

	return slots, nil
}

// atHour returns t's calendar day at hour:00:00. The window start is floored
// to the work start on its own day, so a window opening mid-afternoon still
// anchors the grid at the top of the working day.
func atHour(t time.Time, hour int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), hour, 0, 0, 0, t.Location())
}

// nextWorkDay returns the work start on the calendar day after t.
func nextWorkDay(t time.Time, startHour int) time.Time {
	next := t.AddDate(0, 0, 1)
	return atHour(next, startHour)
}

// overflowsWorkDay reports whether a slot ending at slotEnd spills past the
// working day that contains its start: a different calendar day, an hour
// past the work end, or exactly the work end hour with minutes left over.
func overflowsWorkDay(start, slotEnd time.Time, endHour int) bool {
	sy, sm, sd := start.Date()
	ey, em, ed := slotEnd.Date()
	if sy != ey || sm != em || sd != ed {
		return true
	}
	if slotEnd.Hour() > endHour {
		return true
	}
	return slotEnd.Hour() == endHour && slotEnd.Minute() > 0
}
