package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/minutemind/minutemind/internal/domain/entities"
	"github.com/minutemind/minutemind/internal/domain/repositories"
)

// teamRepository implements the TeamRepository interface
type teamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) repositories.TeamRepository {
	return &teamRepository{db: db}
}

// Create creates a new team
func (r *teamRepository) Create(ctx context.Context, team *entities.Team) error {
	return r.db.WithContext(ctx).Create(team).Error
}

// FindByID retrieves a team by its ID, preloading leader and members
func (r *teamRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Team, error) {
	var team entities.Team
	err := r.db.WithContext(ctx).
		Preload("Leader").
		Preload("Members").
		Where("id = ?", id).
		First(&team).Error

	if err != nil {
		return nil, err
	}
	return &team, nil
}

// FindByMemberID retrieves all teams the user belongs to
func (r *teamRepository) FindByMemberID(ctx context.Context, userID uuid.UUID) ([]*entities.Team, error) {
	var teams []*entities.Team
	err := r.db.WithContext(ctx).
		Preload("Leader").
		Joins("JOIN team_members ON team_members.team_id = teams.id").
		Where("team_members.user_id = ?", userID).
		Find(&teams).Error

	if err != nil {
		return nil, err
	}
	return teams, nil
}

// Update updates an existing team
func (r *teamRepository) Update(ctx context.Context, team *entities.Team) error {
	return r.db.WithContext(ctx).Save(team).Error
}

// Delete deletes a team
func (r *teamRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entities.Team{}, id).Error
}

// AddMember adds a user to the team
func (r *teamRepository) AddMember(ctx context.Context, teamID, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&entities.Team{ID: teamID}).
		Association("Members").
		Append(&entities.User{ID: userID})
}

// RemoveMember removes a user from the team
func (r *teamRepository) RemoveMember(ctx context.Context, teamID, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&entities.Team{ID: teamID}).
		Association("Members").
		Delete(&entities.User{ID: userID})
}
