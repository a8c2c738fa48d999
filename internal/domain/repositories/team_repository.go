package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/minutemind/minutemind/internal/domain/entities"
)

// TeamRepository defines the interface for team data access
type TeamRepository interface {
	// Create creates a new team
	Create(ctx context.Context, team *entities.Team) error

	// FindByID retrieves a team by its ID, preloading leader and members
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Team, error)

	// FindByMemberID retrieves all teams the user belongs to
	FindByMemberID(ctx context.Context, userID uuid.UUID) ([]*entities.Team, error)

	// Update updates an existing team
	Update(ctx context.Context, team *entities.Team) error

	// Delete deletes a team
	Delete(ctx context.Context, id uuid.UUID) error

	// AddMember adds a user to the team
	AddMember(ctx context.Context, teamID, userID uuid.UUID) error

	// RemoveMember removes a user from the team
	RemoveMember(ctx context.Context, teamID, userID uuid.UUID) error
}
