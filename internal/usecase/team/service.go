package team

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	apperrors "github.com/minutemind/minutemind/errors"
	"github.com/minutemind/minutemind/internal/domain/entities"
	"github.com/minutemind/minutemind/internal/domain/repositories"
)

// Service handles team management. The creator of a team becomes its
// leader and membership changes are leader only.
type Service struct {
	teamRepo repositories.TeamRepository
	userRepo repositories.UserRepository
	logger   *zap.Logger
}

// NewService creates a new team service
func NewService(teamRepo repositories.TeamRepository, userRepo repositories.UserRepository, logger *zap.Logger) *Service {
	return &Service{
		teamRepo: teamRepo,
		userRepo: userRepo,
		logger:   logger,
	}
}

// Create creates a team led by the acting user
func (s *Service) Create(ctx context.Context, leaderUserID uuid.UUID, name string, description *string) (*entities.Team, error) {
	if name == "" {
		return nil, apperrors.ErrInvalidArgument("Team name must not be empty")
	}

	team := entities.NewTeam(name, leaderUserID)
	team.Description = description

	if err := s.teamRepo.Create(ctx, team); err != nil {
		return nil, apperrors.ErrInternal(err)
	}

	// The leader is also a member so membership checks stay uniform.
	if err := s.teamRepo.AddMember(ctx, team.ID, leaderUserID); err != nil {
		return nil, apperrors.ErrInternal(err)
	}

	if s.logger != nil {
		s.logger.Info("👥 Team created", zap.String("team_id", team.ID.String()))
	}
	return s.Get(ctx, team.ID)
}

// Get returns a team with leader and members preloaded
func (s *Service) Get(ctx context.Context, teamID uuid.UUID) (*entities.Team, error) {
	team, err := s.teamRepo.FindByID(ctx, teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound("Team")
		}
		return nil, apperrors.ErrInternal(err)
	}
	return team, nil
}

// ListMine returns the teams the user belongs to
func (s *Service) ListMine(ctx context.Context, userID uuid.UUID) ([]*entities.Team, error) {
	teams, err := s.teamRepo.FindByMemberID(ctx, userID)
	if err != nil {
		return nil, apperrors.ErrInternal(err)
	}
	return teams, nil
}

// AddMember adds a registered user to the team. Leader only.
func (s *Service) AddMember(ctx context.Context, teamID, actingUserID, memberID uuid.UUID) (*entities.Team, error) {
	team, err := s.Get(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if !team.IsLeader(actingUserID) {
		return nil, apperrors.ErrNotTeamLeader()
	}

	if _, err := s.userRepo.FindByID(ctx, memberID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound("User")
		}
		return nil, apperrors.ErrInternal(err)
	}

	if err := s.teamRepo.AddMember(ctx, teamID, memberID); err != nil {
		return nil, apperrors.ErrInternal(err)
	}
	return s.Get(ctx, teamID)
}

// RemoveMember removes a user from the team. Leader only; the leader
// cannot remove themselves.
func (s *Service) RemoveMember(ctx context.Context, teamID, actingUserID, memberID uuid.UUID) (*entities.Team, error) {
	team, err := s.Get(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if !team.IsLeader(actingUserID) {
		return nil, apperrors.ErrNotTeamLeader()
	}
	if memberID == team.LeaderID {
		return nil, apperrors.ErrInvalidArgument("The team leader cannot be removed")
	}

	if err := s.teamRepo.RemoveMember(ctx, teamID, memberID); err != nil {
		return nil, apperrors.ErrInternal(err)
	}
	return s.Get(ctx, teamID)
}

// Delete removes a team. Leader only.
func (s *Service) Delete(ctx context.Context, teamID, actingUserID uuid.UUID) error {
	team, err := s.Get(ctx, teamID)
	if err != nil {
		return err
	}
	if !team.IsLeader(actingUserID) {
		return apperrors.ErrNotTeamLeader()
	}
	if err := s.teamRepo.Delete(ctx, teamID); err != nil {
		return apperrors.ErrInternal(err)
	}
	return nil
}
