// Package intelligence wraps the LLM collaborators used by the meeting
// orchestrator: request parsing, slot selection, and invitation drafting.
// Everything is consumed through interfaces so planning degrades to
// deterministic fallbacks when the model is unavailable.
package intelligence

import (
	"context"
	"time"

	"meetplan/models"
)

// TextGenerator maps a prompt to free-form model output.
type TextGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// RequestParser extracts a structured meeting request from natural language.
type RequestParser interface {
	ParseMeetingRequest(ctx context.Context, text string) (*models.MeetingRequest, error)
}

// SlotSelector picks one slot index from a formatted candidate list.
type SlotSelector interface {
	SelectSlot(ctx context.Context, formattedSlots string, req models.MeetingRequest, participantCount int) (*models.SlotSelection, error)
}

// InvitationWriter drafts invitation text for a planned meeting.
type InvitationWriter interface {
	GenerateInvitation(ctx context.Context, subject, objective string, participants []models.ParticipantInfo, start, end time.Time) (*models.Invitation, error)
	GeneratePersonalizedInvitation(ctx context.Context, recipient models.ParticipantInfo, subject, objective string, all []models.ParticipantInfo, start, end time.Time) (*models.Invitation, error)
}
