package notification

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "github.com/minutemind/minutemind/errors"
	"github.com/minutemind/minutemind/internal/domain/entities"
	"github.com/minutemind/minutemind/internal/domain/repositories"
)

// Service exposes a user's notification feed
type Service struct {
	notificationRepo repositories.NotificationRepository
}

// NewService creates a new notification service
func NewService(notificationRepo repositories.NotificationRepository) *Service {
	return &Service{notificationRepo: notificationRepo}
}

// List returns a user's notifications together with the unread count
func (s *Service) List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.Notification, int64, int64, error) {
	notifications, total, err := s.notificationRepo.FindByUserID(ctx, userID, limit, offset)
	if err != nil {
		return nil, 0, 0, apperrors.ErrInternal(err)
	}
	unread, err := s.notificationRepo.CountUnread(ctx, userID)
	if err != nil {
		return nil, 0, 0, apperrors.ErrInternal(err)
	}
	return notifications, total, unread, nil
}

// MarkRead marks one of the user's notifications as read. A notification
// belonging to someone else is indistinguishable from a missing one.
func (s *Service) MarkRead(ctx context.Context, id, userID uuid.UUID) error {
	if err := s.notificationRepo.MarkRead(ctx, id, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound("Notification")
		}
		return apperrors.ErrInternal(err)
	}
	return nil
}

// MarkAllRead marks every unread notification of the user as read
func (s *Service) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	if err := s.notificationRepo.MarkAllRead(ctx, userID); err != nil {
		return apperrors.ErrInternal(err)
	}
	return nil
}
