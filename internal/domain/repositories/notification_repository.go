package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/minutemind/minutemind/internal/domain/entities"
)

// NotificationRepository defines the interface for notification data access
type NotificationRepository interface {
	// Create creates a new notification
	Create(ctx context.Context, notification *entities.Notification) error

	// FindByUserID retrieves a user's notifications, newest first
	FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.Notification, int64, error)

	// CountUnread counts a user's unread notifications
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)

	// MarkRead marks a single notification as read
	MarkRead(ctx context.Context, id, userID uuid.UUID) error

	// MarkAllRead marks all of a user's notifications as read
	MarkAllRead(ctx context.Context, userID uuid.UUID) error
}
