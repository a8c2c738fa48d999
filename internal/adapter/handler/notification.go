package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "github.com/minutemind/minutemind/errors"
	"github.com/minutemind/minutemind/internal/infrastructure/http/middleware"
	"github.com/minutemind/minutemind/internal/usecase/notification"
)

// Notification handles the notification feed endpoints
type Notification struct {
	service *notification.Service
	logger  *zap.Logger
}

// NewNotification creates a new notification handler
func NewNotification(service *notification.Service, logger *zap.Logger) *Notification {
	return &Notification{service: service, logger: logger}
}

// List returns the user's notifications with the unread count
func (h *Notification) List(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return HandleError(h.logger, c, apperrors.ErrUnauthenticated())
	}

	limit, offset := Pagination(c)
	notifications, total, unread, err := h.service.List(c.Request().Context(), userID, limit, offset)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, map[string]interface{}{
		"items":  notifications,
		"total":  total,
		"unread": unread,
	})
}

// MarkRead marks one notification as read
func (h *Notification) MarkRead(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return HandleError(h.logger, c, apperrors.ErrUnauthenticated())
	}
	id, err := ParamUUID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	if err := h.service.MarkRead(c.Request().Context(), id, userID); err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, map[string]string{"message": "Notification marked as read"})
}

// MarkAllRead marks every notification of the user as read
func (h *Notification) MarkAllRead(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return HandleError(h.logger, c, apperrors.ErrUnauthenticated())
	}

	if err := h.service.MarkAllRead(c.Request().Context(), userID); err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, map[string]string{"message": "All notifications marked as read"})
}
