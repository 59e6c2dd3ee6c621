package models

// PlanRequest is the payload coming from the frontend into /api/planner/plan.
type PlanRequest struct {
	UserID string `json:"user_id,omitempty"` // requester, used for conversation context
	Text   string `json:"text"`              // natural-language meeting request (voice→text or typed)
}

// PlannerContext is the short-lived conversation state kept between
// planning turns for a single requester.
type PlannerContext struct {
	LastRequestText string `json:"lastRequestText,omitempty"`
	LastSubject     string `json:"lastSubject,omitempty"`
	LastPlannedAt   string `json:"lastPlannedAt,omitempty"`
}
