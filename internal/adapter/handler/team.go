package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "github.com/minutemind/minutemind/errors"
	teamdto "github.com/minutemind/minutemind/internal/adapter/dto/team"
	"github.com/minutemind/minutemind/internal/infrastructure/http/middleware"
	"github.com/minutemind/minutemind/internal/usecase/meeting"
	"github.com/minutemind/minutemind/internal/usecase/team"
)

// Team handles team management endpoints
type Team struct {
	service  *team.Service
	meetings *meeting.Service
	logger   *zap.Logger
}

// NewTeam creates a new team handler
func NewTeam(service *team.Service, meetings *meeting.Service, logger *zap.Logger) *Team {
	return &Team{service: service, meetings: meetings, logger: logger}
}

// Create creates a team led by the authenticated user
func (h *Team) Create(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return HandleError(h.logger, c, apperrors.ErrUnauthenticated())
	}

	var req teamdto.CreateTeamRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument(err.Error()))
	}

	created, err := h.service.Create(c.Request().Context(), userID, req.Name, req.Description)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccessWithStatus(h.logger, c, http.StatusCreated, created)
}

// Get returns a team
func (h *Team) Get(c echo.Context) error {
	id, err := ParamUUID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	found, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, found)
}

// ListMine returns the authenticated user's teams
func (h *Team) ListMine(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return HandleError(h.logger, c, apperrors.ErrUnauthenticated())
	}

	teams, err := h.service.ListMine(c.Request().Context(), userID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, teams)
}

// AddMember adds a user to the team
func (h *Team) AddMember(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return HandleError(h.logger, c, apperrors.ErrUnauthenticated())
	}
	id, err := ParamUUID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req teamdto.MemberRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument(err.Error()))
	}

	memberID, err := uuid.Parse(req.UserID)
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument("Invalid user_id"))
	}

	updated, err := h.service.AddMember(c.Request().Context(), id, userID, memberID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, updated)
}

// RemoveMember removes a user from the team
func (h *Team) RemoveMember(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return HandleError(h.logger, c, apperrors.ErrUnauthenticated())
	}
	id, err := ParamUUID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	memberID, err := ParamUUID(c, "userId")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	updated, err := h.service.RemoveMember(c.Request().Context(), id, userID, memberID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, updated)
}

// Delete removes a team
func (h *Team) Delete(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return HandleError(h.logger, c, apperrors.ErrUnauthenticated())
	}
	id, err := ParamUUID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	if err := h.service.Delete(c.Request().Context(), id, userID); err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, map[string]string{"message": "Team deleted successfully"})
}

// ListMeetings returns a team's meetings
func (h *Team) ListMeetings(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return HandleError(h.logger, c, apperrors.ErrUnauthenticated())
	}
	id, err := ParamUUID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	limit, offset := Pagination(c)
	meetings, total, err := h.meetings.ListByTeam(c.Request().Context(), userID, id, limit, offset)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, map[string]interface{}{"items": meetings, "total": total})
}
