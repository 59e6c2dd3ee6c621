// models/meeting.go
package models

import "time"

// MeetingRequest is the structured form of a natural-language planning
// request, as extracted by the request parser.
type MeetingRequest struct {
	Subject          string            `json:"subject"`
	Objective        string            `json:"objective"`
	ParticipantNames []string          `json:"participant_names"`
	PreferredStart   time.Time         `json:"preferred_start_date"`
	PreferredEnd     time.Time         `json:"preferred_end_date"`
	DurationMinutes  int               `json:"duration_minutes"`
	Preferences      map[string]string `json:"preferences,omitempty"`
}

// SlotSelection is the slot-selection decision made over a formatted
// candidate list: the chosen index, why, and fallback indices.
type SlotSelection struct {
	SlotIndex        int    `json:"slot_index"`
	Reasoning        string `json:"reasoning"`
	AlternativeSlots []int  `json:"alternative_slots,omitempty"`
}

// Invitation is a drafted meeting invitation.
type Invitation struct {
	Subject     string    `json:"subject"`
	Message     string    `json:"message"`
	Recipient   string    `json:"recipient,omitempty"`
	GeneratedAt time.Time `json:"generatedAt"`
}

// EmailResult records the delivery outcome for one participant.
type EmailResult struct {
	Sent     bool   `json:"sent"`
	Email    string `json:"email,omitempty"`
	UserName string `json:"userName"`
	Error    string `json:"error,omitempty"`
}

// SyncedEvent describes the event created in the external calendar.
type SyncedEvent struct {
	ID       string `json:"id"`
	HTMLLink string `json:"htmlLink,omitempty"`
}

// CreatedEvent records a local calendar event written for a participant.
type CreatedEvent struct {
	UserID   string `json:"userId"`
	EventID  string `json:"eventId,omitempty"`
	UserName string `json:"userName"`
	Error    string `json:"error,omitempty"`
}

// PlanMeetingResult is the full outcome of one planning run.
type PlanMeetingResult struct {
	Success bool               `json:"success"`
	Message string             `json:"message,omitempty"`
	Error   string             `json:"error,omitempty"`
	Details *PlanMeetingDetail `json:"details,omitempty"`
}

// PlanMeetingDetail carries the machine-readable breakdown of a successful run.
type PlanMeetingDetail struct {
	Subject         string                 `json:"subject"`
	Objective       string                 `json:"objective"`
	SelectedSlot    CandidateSlot          `json:"selectedSlot"`
	Reasoning       string                 `json:"reasoning"`
	Alternatives    []CandidateSlot        `json:"alternativeSlots,omitempty"`
	Participants    []ParticipantInfo      `json:"participants"`
	Invitation      Invitation             `json:"invitation"`
	SyncedEvent     *SyncedEvent           `json:"syncedEvent,omitempty"`
	CreatedEvents   []CreatedEvent         `json:"createdEvents"`
	EmailResults    map[string]EmailResult `json:"emailNotifications"`
	TotalSlotsFound int                    `json:"totalSlotsFound"`
}
