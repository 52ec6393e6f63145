package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"pirouette/config"
	"pirouette/models"
)

// ReminderScheduler enqueues one class-start reminder per created class.
type ReminderScheduler interface {
	ScheduleClassReminders(ctx context.Context, classes []models.Class) error
}

// AsynqReminderScheduler enqueues reminder tasks on the asynq queue, each
// scheduled to fire at class start minus the configured lead time.
type AsynqReminderScheduler struct {
	Client *asynq.Client
	Lead   time.Duration
	Logger *zap.Logger
}

// NewAsynqReminderScheduler builds a scheduler backed by the shared Redis queue.
func NewAsynqReminderScheduler(logger *zap.Logger) *AsynqReminderScheduler {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	return &AsynqReminderScheduler{
		Client: client,
		Lead:   time.Duration(config.AppConfig.ReminderLeadMinutes) * time.Minute,
		Logger: logger,
	}
}

func (s *AsynqReminderScheduler) ScheduleClassReminders(ctx context.Context, classes []models.Class) error {
	for _, class := range classes {
		fireAt := class.StartUTC.Add(-s.Lead)
		if fireAt.Before(time.Now()) {
			// Class starts inside the lead window already; no reminder.
			continue
		}
		payload, err := json.Marshal(models.ReminderPayload{
			ClassID:  class.ID,
			StudioID: class.StudioID,
			Title:    class.Title,
			StartUTC: class.StartUTC.Format(time.RFC3339),
		})
		if err != nil {
			return fmt.Errorf("failed to marshal reminder payload for class %s: %w", class.ID, err)
		}
		task := asynq.NewTask(TaskTypeClassReminder, payload)
		if _, err := s.Client.EnqueueContext(ctx, task, asynq.ProcessAt(fireAt)); err != nil {
			s.Logger.Warn("failed to enqueue class reminder",
				zap.String("classId", class.ID), zap.Error(err))
		}
	}
	return nil
}
