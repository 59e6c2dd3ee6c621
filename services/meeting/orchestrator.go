package meeting

import (
	"context"
	"fmt"
	"time"

	eventRepo "meetplan/database/repository/event"
	userRepo "meetplan/database/repository/user"
	"meetplan/models"
	"meetplan/services/availability"
	"meetplan/services/calendarsync"
	"meetplan/services/intelligence"
	"meetplan/services/notification"
	"meetplan/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultEventTypeID classifies events the planner creates.
const DefaultEventTypeID = "meeting"

// DefaultPlanner is the production orchestrator. CalendarSync, Reminders and
// ContextStore are optional; a nil value skips that stage.
type DefaultPlanner struct {
	Users    userRepo.UserRepository
	Events   eventRepo.EventRepository
	Reader   availability.CalendarReader
	Engine   availability.Engine
	Parser   intelligence.RequestParser
	Selector intelligence.SlotSelector
	Writer   intelligence.InvitationWriter
	Notifier notification.NotificationService

	CalendarSync calendarsync.CalendarSync
	Reminders    ReminderScheduler
	ContextStore *intelligence.RedisContextStore

	Defaults PlannerDefaults
}

// PlanMeeting runs the planning flow end to end. Collaborator failures that
// have a sensible fallback (parsing, selection, invitation drafting, sync,
// reminders) degrade gracefully; only missing participants or an engine
// failure abort the run.
func (p *DefaultPlanner) PlanMeeting(ctx context.Context, planReq models.PlanRequest) (*models.PlanMeetingResult, error) {
	logger := utils.GetLogger()

	// 1. Extract a structured request; fall back to defaults on LLM failure.
	req := p.parseOrDefault(ctx, planReq.Text)

	// 2. Resolve participant names to users.
	participants := p.resolveParticipants(req.ParticipantNames)
	if len(participants) == 0 {
		return &models.PlanMeetingResult{
			Success: false,
			Error:   "no valid participants found in the request",
		}, nil
	}
	participantIDs := make([]string, 0, len(participants))
	for _, part := range participants {
		participantIDs = append(participantIDs, part.ID)
	}

	// 3. Compute conflict-free slots.
	window := models.SearchWindow{
		Start:           req.PreferredStart,
		End:             req.PreferredEnd,
		WorkStartHour:   p.Defaults.WorkStartHour,
		WorkEndHour:     p.Defaults.WorkEndHour,
		StepMinutes:     p.Defaults.StepMinutes,
		DurationMinutes: req.DurationMinutes,
	}
	slots, err := p.GetAvailability(ctx, participantIDs, window)
	if err != nil {
		return nil, fmt.Errorf("availability computation failed: %w", err)
	}
	if len(slots) == 0 {
		return &models.PlanMeetingResult{
			Success: false,
			Error: fmt.Sprintf("no slot is free for all participants between %s and %s",
				window.Start.Format("2006-01-02"), window.End.Format("2006-01-02")),
		}, nil
	}

	// 4. Pick a slot; fall back to the earliest on selection failure.
	selection := p.selectOrFirst(ctx, slots, req, len(participants))
	selected := slots[selection.SlotIndex]

	// 5. Draft the generic invitation.
	invitation, err := p.Writer.GenerateInvitation(ctx, req.Subject, req.Objective,
		participants, selected.Interval.Start, selected.Interval.End)
	if err != nil {
		return nil, fmt.Errorf("invitation generation failed: %w", err)
	}

	// 6. Mirror the meeting into the external calendar. Non-fatal.
	var synced *models.SyncedEvent
	if p.CalendarSync != nil {
		attendees := make([]string, 0, len(participants))
		for _, part := range participants {
			if part.Email != "" {
				attendees = append(attendees, part.Email)
			}
		}
		description := fmt.Sprintf("%s\n\nParticipants: %s", req.Objective, joinNames(participants))
		synced, err = p.CalendarSync.CreateEvent(ctx, req.Subject, description,
			selected.Interval.Start, selected.Interval.End, attendees)
		if err != nil {
			logger.Warn("Calendar sync failed, continuing with local events only", zap.Error(err))
			synced = nil
		}
	}

	// 7. Record a local calendar event for every participant.
	created := p.createLocalEvents(participants, req.Subject, selected.Interval)

	// 8. Email a personalized invitation to every participant.
	emailResults := p.sendInvitations(ctx, participants, req, selected.Interval)

	// 9. Schedule reminders. Non-fatal.
	if p.Reminders != nil {
		for _, part := range participants {
			if part.Email == "" {
				continue
			}
			if err := p.Reminders.ScheduleReminder(ctx, part.Email, req.Subject, selected.Interval.Start); err != nil {
				logger.Warn("Failed to schedule reminder",
					zap.String("email", part.Email), zap.Error(err))
			}
		}
	}

	// 10. Remember this conversation turn. Non-fatal.
	if p.ContextStore != nil && planReq.UserID != "" {
		pc := &models.PlannerContext{
			LastRequestText: planReq.Text,
			LastSubject:     req.Subject,
			LastPlannedAt:   time.Now().Format(time.RFC3339),
		}
		if err := p.ContextStore.Set(ctx, planReq.UserID, pc); err != nil {
			logger.Warn("Failed to save planner context", zap.Error(err))
		}
	}

	alternatives := pickAlternatives(slots, selection.AlternativeSlots)

	return &models.PlanMeetingResult{
		Success: true,
		Message: confirmationMessage(req.Subject, selected, participants, emailResults, synced, selection.Reasoning),
		Details: &models.PlanMeetingDetail{
			Subject:         req.Subject,
			Objective:       req.Objective,
			SelectedSlot:    selected,
			Reasoning:       selection.Reasoning,
			Alternatives:    alternatives,
			Participants:    participants,
			Invitation:      *invitation,
			SyncedEvent:     synced,
			CreatedEvents:   created,
			EmailResults:    emailResults,
			TotalSlotsFound: len(slots),
		},
	}, nil
}

// GetAvailability gathers every participant's busy intervals and runs the
// engine over them.
func (p *DefaultPlanner) GetAvailability(
	ctx context.Context,
	participantIDs []string,
	window models.SearchWindow,
) ([]models.CandidateSlot, error) {
	busy, err := availability.CollectBusyIntervals(p.Reader, participantIDs, window.Start, window.End)
	if err != nil {
		return nil, err
	}
	return p.Engine.ComputeAvailableSlots(busy, window)
}

// parseOrDefault extracts the structured request, substituting defaults on
// parser failure or for fields the parser left empty.
func (p *DefaultPlanner) parseOrDefault(ctx context.Context, text string) models.MeetingRequest {
	logger := utils.GetLogger()

	var req models.MeetingRequest
	parsed, err := p.Parser.ParseMeetingRequest(ctx, text)
	if err != nil {
		logger.Warn("Request parsing failed, using defaults", zap.Error(err))
		req = models.MeetingRequest{Subject: "Meeting", Objective: text}
	} else {
		req = *parsed
	}

	if req.Subject == "" {
		req.Subject = "Meeting"
	}
	if req.Objective == "" {
		req.Objective = text
	}
	if req.DurationMinutes <= 0 {
		req.DurationMinutes = p.Defaults.DurationMinutes
	}
	if req.PreferredStart.IsZero() {
		req.PreferredStart = time.Now()
	}
	if req.PreferredEnd.IsZero() || !req.PreferredStart.Before(req.PreferredEnd) {
		req.PreferredEnd = req.PreferredStart.AddDate(0, 0, p.Defaults.SearchDays)
	}
	return req
}

// resolveParticipants maps names to known users, dropping the ones that
// cannot be resolved.
func (p *DefaultPlanner) resolveParticipants(names []string) []models.ParticipantInfo {
	logger := utils.GetLogger()

	var participants []models.ParticipantInfo
	for _, name := range names {
		user, err := p.Users.GetByName(name)
		if err != nil {
			logger.Warn("Participant not found", zap.String("name", name), zap.Error(err))
			continue
		}
		participants = append(participants, models.ParticipantInfo{
			ID:    user.ID,
			Name:  user.DisplayName(),
			Email: user.Email,
		})
	}
	return participants
}

// selectOrFirst lets the selection collaborator pick a slot, clamping an
// out-of-range answer and falling back to the earliest slot on failure.
func (p *DefaultPlanner) selectOrFirst(
	ctx context.Context,
	slots []models.CandidateSlot,
	req models.MeetingRequest,
	participantCount int,
) models.SlotSelection {
	logger := utils.GetLogger()

	formatted := availability.FormatSlotsForSelection(slots, availability.DefaultSelectionLimit)
	selection, err := p.Selector.SelectSlot(ctx, formatted, req, participantCount)
	if err != nil || selection.SlotIndex >= len(slots) {
		if err != nil {
			logger.Warn("Slot selection failed, falling back to the earliest slot", zap.Error(err))
		}
		fallback := models.SlotSelection{
			SlotIndex: 0,
			Reasoning: "Earliest available slot (automatic selection)",
		}
		if len(slots) > 2 {
			fallback.AlternativeSlots = []int{1, 2}
		}
		return fallback
	}
	return *selection
}

func (p *DefaultPlanner) createLocalEvents(
	participants []models.ParticipantInfo,
	subject string,
	interval models.TimeInterval,
) []models.CreatedEvent {
	logger := utils.GetLogger()

	created := make([]models.CreatedEvent, 0, len(participants))
	for _, part := range participants {
		event := &models.CalendarEvent{
			ID:     uuid.NewString(),
			UserID: part.ID,
			TypeID: DefaultEventTypeID,
			Title:  subject,
			Start:  interval.Start,
			End:    interval.End,
		}
		if err := p.Events.Create(event); err != nil {
			logger.Error("Failed to create local event",
				zap.String("userID", part.ID), zap.Error(err))
			created = append(created, models.CreatedEvent{
				UserID: part.ID, UserName: part.Name, Error: err.Error(),
			})
			continue
		}
		created = append(created, models.CreatedEvent{
			UserID: part.ID, EventID: event.ID, UserName: part.Name,
		})
	}
	return created
}

func (p *DefaultPlanner) sendInvitations(
	ctx context.Context,
	participants []models.ParticipantInfo,
	req models.MeetingRequest,
	interval models.TimeInterval,
) map[string]models.EmailResult {
	logger := utils.GetLogger()

	results := make(map[string]models.EmailResult, len(participants))
	for _, part := range participants {
		if part.Email == "" {
			results[part.ID] = models.EmailResult{Sent: false, UserName: part.Name, Error: "missing email"}
			continue
		}

		invitation, err := p.Writer.GeneratePersonalizedInvitation(ctx, part,
			req.Subject, req.Objective, participants, interval.Start, interval.End)
		if err != nil {
			results[part.ID] = models.EmailResult{
				Sent: false, Email: part.Email, UserName: part.Name, Error: err.Error(),
			}
			continue
		}

		if err := p.Notifier.SendEmail(ctx, part.Email, invitation.Subject, invitation.Message); err != nil {
			logger.Error("Failed to send invitation",
				zap.String("email", part.Email), zap.Error(err))
			results[part.ID] = models.EmailResult{
				Sent: false, Email: part.Email, UserName: part.Name, Error: err.Error(),
			}
			continue
		}
		results[part.ID] = models.EmailResult{Sent: true, Email: part.Email, UserName: part.Name}
	}
	return results
}

func pickAlternatives(slots []models.CandidateSlot, indices []int) []models.CandidateSlot {
	var alternatives []models.CandidateSlot
	for _, idx := range indices {
		if idx >= 0 && idx < len(slots) {
			alternatives = append(alternatives, slots[idx])
		}
	}
	return alternatives
}

func joinNames(participants []models.ParticipantInfo) string {
	names := ""
	for i, part := range participants {
		if i > 0 {
			names += ", "
		}
		names += part.Name
	}
	return names
}
