package meeting

import (
	"fmt"
	"strings"

	"meetplan/models"
)

// confirmationMessage builds the human-readable summary returned to the
// requester after a successful planning run.
func confirmationMessage(
	subject string,
	selected models.CandidateSlot,
	participants []models.ParticipantInfo,
	emailResults map[string]models.EmailResult,
	synced *models.SyncedEvent,
	reasoning string,
) string {
	var parts []string

	parts = append(parts, "Meeting planned successfully!")
	parts = append(parts, fmt.Sprintf("Subject: %s", subject))
	parts = append(parts, fmt.Sprintf("Date: %s", selected.Interval.Start.Format("Monday 02 January 2006")))
	parts = append(parts, fmt.Sprintf("Time: %s - %s",
		selected.Interval.Start.Format("15:04"), selected.Interval.End.Format("15:04")))

	parts = append(parts, fmt.Sprintf("Participants (%d): %s", len(participants), joinNames(participants)))

	if reasoning != "" {
		parts = append(parts, fmt.Sprintf("Why this slot: %s", reasoning))
	}

	if synced != nil {
		line := "Google Calendar: event created"
		if synced.HTMLLink != "" {
			line += " (" + synced.HTMLLink + ")"
		}
		parts = append(parts, line)
	} else {
		parts = append(parts, "Google Calendar: not synced (events created locally only)")
	}

	sent, total := 0, len(emailResults)
	var failed []string
	for _, res := range emailResults {
		if res.Sent {
			sent++
		} else {
			failed = append(failed, res.UserName)
		}
	}
	switch {
	case total > 0 && sent == total:
		parts = append(parts, fmt.Sprintf("Invitations: all sent (%d/%d)", sent, total))
	case sent > 0:
		parts = append(parts, fmt.Sprintf("Invitations: %d/%d sent, failed for: %s",
			sent, total, strings.Join(failed, ", ")))
	default:
		parts = append(parts, "Invitations: none could be sent")
	}

	return strings.Join(parts, "\n")
}
