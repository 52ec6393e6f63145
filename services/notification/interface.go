package notification

import (
	"context"

	"go.uber.org/zap"

	"pirouette/models"
)

// TaskTypeClassReminder is the asynq task type for class-start reminders.
const TaskTypeClassReminder = "reminder:class"

// NotificationService delivers class-start reminders. Actual push/email
// delivery belongs to an external collaborator; the default implementation
// records the event.
type NotificationService interface {
	NotifyClassStartingSoon(ctx context.Context, p models.ReminderPayload) error
}

// DefaultNotificationService logs reminder deliveries.
type DefaultNotificationService struct {
	Logger *zap.Logger
}

func (s *DefaultNotificationService) NotifyClassStartingSoon(ctx context.Context, p models.ReminderPayload) error {
	s.Logger.Info("class starting soon",
		zap.String("classId", p.ClassID),
		zap.String("studioId", p.StudioID),
		zap.String("title", p.Title),
		zap.String("startUtc", p.StartUTC),
	)
	return nil
}
