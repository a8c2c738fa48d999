package notification

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/minutemind/minutemind/internal/domain/entities"
	"github.com/minutemind/minutemind/internal/domain/repositories"
	"github.com/minutemind/minutemind/internal/usecase/task"
)

// maxTitleChars bounds how much of a task description is quoted in a
// notification message.
const maxTitleChars = 50

// Dispatcher writes one notification row per task event. Delivery is
// strictly best effort: a failed insert is logged and dropped, the
// operation that emitted the event already succeeded.
type Dispatcher struct {
	notificationRepo repositories.NotificationRepository
	logger           *zap.Logger
}

// NewDispatcher creates a new notification dispatcher
func NewDispatcher(notificationRepo repositories.NotificationRepository, logger *zap.Logger) *Dispatcher {
	return &Dispatcher{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

// Dispatch converts the event into a notification for its recipient.
// Never returns an error.
func (d *Dispatcher) Dispatch(ctx context.Context, event task.Event) {
	notification := &entities.Notification{
		UserID:    event.RecipientID,
		Type:      event.Type,
		Message:   messageFor(event),
		TaskID:    &event.TaskID,
		MeetingID: &event.MeetingID,
	}

	if err := d.notificationRepo.Create(ctx, notification); err != nil {
		if d.logger != nil {
			d.logger.Warn("⚠️ Failed to create notification",
				zap.String("type", string(event.Type)),
				zap.String("recipient_id", event.RecipientID.String()),
				zap.Error(err))
		}
		return
	}

	if d.logger != nil {
		d.logger.Debug("🔔 Notification created",
			zap.String("type", string(event.Type)),
			zap.String("recipient_id", event.RecipientID.String()))
	}
}

func messageFor(event task.Event) string {
	switch event.Type {
	case entities.NotificationTaskAssigned:
		return fmt.Sprintf("You have been assigned a new task: %q", truncate(event.TaskTitle))
	case entities.NotificationProofSubmitted:
		return fmt.Sprintf("New proof submitted for task %q", truncate(event.TaskTitle))
	case entities.NotificationTaskApproved:
		return fmt.Sprintf("Your proof for task \"%s...\" has been approved.", clip(event.TaskTitle))
	case entities.NotificationTaskRejected:
		return fmt.Sprintf("Your task \"%s...\" needs rework. Comments: %s", clip(event.TaskTitle), event.Comments)
	default:
		return fmt.Sprintf("Task updated: %q", truncate(event.TaskTitle))
	}
}

// truncate caps the title and marks the cut only when something was
// actually cut
func truncate(s string) string {
	if len(s) > maxTitleChars {
		return s[:maxTitleChars] + "..."
	}
	return s
}

// clip caps the title without adding the ellipsis; the review message
// templates carry their own
func clip(s string) string {
	if len(s) > maxTitleChars {
		return s[:maxTitleChars]
	}
	return s
}
