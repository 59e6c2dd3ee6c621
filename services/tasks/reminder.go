// Package tasks builds and enqueues background jobs.
package tasks

import (
	"context"
	"encoding/json"
	"time"

	"meetplan/config"
	"meetplan/models"
	"meetplan/utils"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeSendReminder = "reminder:send"

// NewReminderTask wraps a reminder payload into an asynq task scheduled to
// fire at fireAt.
func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// AsynqReminderScheduler enqueues reminder emails on the shared reminder
// queue. Reminders fire LeadMinutes before the meeting starts; a meeting
// already closer than that gets its reminder immediately.
type AsynqReminderScheduler struct {
	Client      *asynq.Client
	LeadMinutes int
}

// NewAsynqReminderScheduler builds the scheduler from the configured Redis
// reminder queue.
func NewAsynqReminderScheduler() *AsynqReminderScheduler {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	return &AsynqReminderScheduler{
		Client:      client,
		LeadMinutes: config.AppConfig.ReminderLeadMinutes,
	}
}

func (s *AsynqReminderScheduler) ScheduleReminder(ctx context.Context, email, subject string, start time.Time) error {
	fireAt := start.Add(-time.Duration(s.LeadMinutes) * time.Minute)
	if fireAt.Before(time.Now()) {
		fireAt = time.Now()
	}

	payload := models.ReminderPayload{
		ReminderID:   uuid.NewString(),
		Email:        email,
		Subject:      subject,
		MeetingStart: start.Format(time.RFC3339),
	}
	task, opts, err := NewReminderTask(payload, fireAt)
	if err != nil {
		return err
	}

	info, err := s.Client.EnqueueContext(ctx, task, opts...)
	if err != nil {
		return err
	}
	utils.GetLogger().Info("Reminder scheduled",
		zap.String("taskID", info.ID),
		zap.String("email", email),
		zap.Time("fireAt", fireAt))
	return nil
}
