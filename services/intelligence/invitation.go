package intelligence

import (
	"context"
	"fmt"
	"strings"
	"time"

	"meetplan/models"
)

const invitationPrompt = `You write clear, warm, professional meeting invitations.
Write the invitation body only, no subject line and no markdown headers.
Include the meeting details, the participant list, the objective, and a
polite closing followed by this signature:
%s

Meeting: %s
Participants: %s
Date: %s
Time: %s - %s
Objective: %s`

const personalizedInvitationPrompt = `You write clear, warm, professional meeting invitations.
Write the invitation body only, addressed to %s alone. Start the greeting
with their first name only, never the full participant list. Include the
meeting details, the full participant list in a Participants section, the
objective, and a polite closing followed by this signature:
%s

Meeting: %s
All participants: %s
Date: %s
Time: %s - %s
Objective: %s`

// GeminiInvitationWriter drafts invitations with the LLM, falling back to a
// deterministic template when generation fails so an invitation is always
// produced.
type GeminiInvitationWriter struct {
	Generator TextGenerator
	Signature string
}

func (w *GeminiInvitationWriter) GenerateInvitation(
	ctx context.Context,
	subject, objective string,
	participants []models.ParticipantInfo,
	start, end time.Time,
) (*models.Invitation, error) {
	names := participantNames(participants)
	prompt := fmt.Sprintf(invitationPrompt,
		w.Signature, subject, names,
		start.Format("Monday 02 January 2006"),
		start.Format("15:04"), end.Format("15:04"),
		objective)

	message, err := w.Generator.GenerateContent(ctx, prompt)
	if err != nil {
		message = fallbackInvitation(subject, names, objective, start, end, w.Signature)
	}

	return &models.Invitation{
		Subject:     "Invitation: " + subject,
		Message:     strings.TrimSpace(message),
		GeneratedAt: time.Now(),
	}, nil
}

func (w *GeminiInvitationWriter) GeneratePersonalizedInvitation(
	ctx context.Context,
	recipient models.ParticipantInfo,
	subject, objective string,
	all []models.ParticipantInfo,
	start, end time.Time,
) (*models.Invitation, error) {
	firstName := recipient.Name
	if i := strings.IndexByte(firstName, ' '); i > 0 {
		firstName = firstName[:i]
	}
	names := participantNames(all)

	prompt := fmt.Sprintf(personalizedInvitationPrompt,
		firstName, w.Signature, subject, names,
		start.Format("Monday 02 January 2006"),
		start.Format("15:04"), end.Format("15:04"),
		objective)

	message, err := w.Generator.GenerateContent(ctx, prompt)
	if err != nil {
		message = "Hello " + firstName + ",\n\n" +
			fallbackInvitation(subject, names, objective, start, end, w.Signature)
	}

	return &models.Invitation{
		Subject:     "Invitation: " + subject,
		Message:     strings.TrimSpace(message),
		Recipient:   recipient.Name,
		GeneratedAt: time.Now(),
	}, nil
}

func participantNames(participants []models.ParticipantInfo) string {
	names := make([]string, 0, len(participants))
	for _, p := range participants {
		names = append(names, p.Name)
	}
	return strings.Join(names, ", ")
}

func fallbackInvitation(subject, names, objective string, start, end time.Time, signature string) string {
	return fmt.Sprintf(
		"You are invited to the meeting %q.\n\n"+
			"Date: %s\nTime: %s - %s\nParticipants: %s\nObjective: %s\n\n"+
			"Best regards,\n%s",
		subject,
		start.Format("Monday 02 January 2006"),
		start.Format("15:04"), end.Format("15:04"),
		names, objective, signature)
}
