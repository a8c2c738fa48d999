package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "github.com/minutemind/minutemind/errors"
	"github.com/minutemind/minutemind/internal/domain/entities"
	"github.com/minutemind/minutemind/internal/domain/repositories"
	"github.com/minutemind/minutemind/pkg/jwt"
)

// minPasswordLength for credential registration
const minPasswordLength = 8

// Service handles credential registration and login
type Service struct {
	userRepo   repositories.UserRepository
	jwtManager *jwt.Manager
	logger     *zap.Logger
}

// NewService creates a new auth service
func NewService(userRepo repositories.UserRepository, jwtManager *jwt.Manager, logger *zap.Logger) *Service {
	return &Service{
		userRepo:   userRepo,
		jwtManager: jwtManager,
		logger:     logger,
	}
}

// Register creates a user account and returns it with a signed token
func (s *Service) Register(ctx context.Context, name, email, password string) (*entities.User, string, error) {
	if len(password) < minPasswordLength {
		return nil, "", apperrors.ErrInvalidArgument("Password must be at least 8 characters")
	}

	if _, err := s.userRepo.FindByEmail(ctx, email); err == nil {
		return nil, "", apperrors.ErrAlreadyExists("User")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", apperrors.ErrInternal(err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", apperrors.ErrInternal(err)
	}

	user := entities.NewUser(email, name, string(hash))
	if err := user.Validate(); err != nil {
		return nil, "", apperrors.ErrInvalidArgument(err.Error())
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, "", apperrors.ErrInternal(err)
	}

	token, err := s.jwtManager.GenerateToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, "", apperrors.ErrInternal(err)
	}

	if s.logger != nil {
		s.logger.Info("👤 User registered", zap.String("user_id", user.ID.String()))
	}
	return user, token, nil
}

// Login verifies credentials and returns the user with a signed token.
// A missing account and a wrong password produce the same error.
func (s *Service) Login(ctx context.Context, email, password string) (*entities.User, string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", apperrors.ErrInvalidCredentials()
		}
		return nil, "", apperrors.ErrInternal(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", apperrors.ErrInvalidCredentials()
	}

	token, err := s.jwtManager.GenerateToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, "", apperrors.ErrInternal(err)
	}

	if s.logger != nil {
		s.logger.Info("🔑 User logged in", zap.String("user_id", user.ID.String()))
	}
	return user, token, nil
}

// GetUser returns a user by id
func (s *Service) GetUser(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound("User")
		}
		return nil, apperrors.ErrInternal(err)
	}
	return user, nil
}
