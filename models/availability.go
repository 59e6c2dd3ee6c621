// models/availability.go
package models

import "time"

// TimeInterval is a half-open time range [Start, End). Start < End.
type TimeInterval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Overlaps reports whether the two half-open intervals share any instant.
// A slot ending exactly when a busy interval starts does not overlap it.
func (iv TimeInterval) Overlaps(other TimeInterval) bool {
	return iv.End.After(other.Start) && iv.Start.Before(other.End)
}

// Duration returns End - Start.
func (iv TimeInterval) Duration() time.Duration {
	return iv.End.Sub(iv.Start)
}

// CandidateSlot is a generated meeting slot that survived conflict filtering.
// Conflicts is the number of busy intervals overlapping the slot; only
// zero-conflict slots are emitted by the engine. Score ranks slots, higher
// is better.
type CandidateSlot struct {
	Interval  TimeInterval `json:"interval"`
	Conflicts int          `json:"conflicts"`
	Score     int          `json:"score"`
}

// SearchWindow bounds slot generation: the date range to search, the daily
// working-hour range slots must fit in, the candidate grid step, and the
// requested meeting duration.
type SearchWindow struct {
	Start           time.Time `json:"start"`
	End             time.Time `json:"end"`
	WorkStartHour   int       `json:"workStartHour"`
	WorkEndHour     int       `json:"workEndHour"`
	StepMinutes     int       `json:"stepMinutes"`
	DurationMinutes int       `json:"durationMinutes"`
}

// Defaults applied when a SearchWindow leaves the optional fields zero.
const (
	DefaultWorkStartHour = 9
	DefaultWorkEndHour   = 18
	DefaultStepMinutes   = 30
)

// Normalized returns a copy with defaults filled in for unset optional fields.
func (w SearchWindow) Normalized() SearchWindow {
	if w.WorkStartHour == 0 && w.WorkEndHour == 0 {
		w.WorkStartHour = DefaultWorkStartHour
		w.WorkEndHour = DefaultWorkEndHour
	}
	if w.StepMinutes == 0 {
		w.StepMinutes = DefaultStepMinutes
	}
	return w
}
