package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "github.com/minutemind/minutemind/errors"
	authdto "github.com/minutemind/minutemind/internal/adapter/dto/auth"
	"github.com/minutemind/minutemind/internal/infrastructure/http/middleware"
	"github.com/minutemind/minutemind/internal/usecase/auth"
)

// Auth handles authentication endpoints
type Auth struct {
	service *auth.Service
	logger  *zap.Logger
}

// NewAuth creates a new auth handler
func NewAuth(service *auth.Service, logger *zap.Logger) *Auth {
	return &Auth{service: service, logger: logger}
}

// Register creates a new account
func (h *Auth) Register(c echo.Context) error {
	var req authdto.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument(err.Error()))
	}

	user, token, err := h.service.Register(c.Request().Context(), req.Name, req.Email, req.Password)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, authdto.AuthResponse{
		Token: token,
		User:  user.ToPublic(),
	})
}

// Login exchanges credentials for a token
func (h *Auth) Login(c echo.Context) error {
	var req authdto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument(err.Error()))
	}

	user, token, err := h.service.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, authdto.AuthResponse{
		Token: token,
		User:  user.ToPublic(),
	})
}

// Me returns the authenticated user
func (h *Auth) Me(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return HandleError(h.logger, c, apperrors.ErrUnauthenticated())
	}

	user, err := h.service.GetUser(c.Request().Context(), userID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, user.ToPublic())
}
