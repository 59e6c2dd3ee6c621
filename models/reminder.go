package models

// ReminderPayload is the asynq task payload for a scheduled meeting reminder.
type ReminderPayload struct {
	ReminderID   string `json:"reminderId"`
	Email        string `json:"email"`
	Subject      string `json:"subject"`
	MeetingStart string `json:"meetingStart"` // RFC3339
}
