package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/minutemind/minutemind/internal/domain/entities"
)

// MeetingRepository defines the interface for meeting data access
type MeetingRepository interface {
	// Create creates a new meeting
	Create(ctx context.Context, meeting *entities.Meeting) error

	// FindByID retrieves a meeting by its ID, preloading its team
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Meeting, error)

	// FindByIDWithBreakdown retrieves a meeting with every breakdown
	// collection preloaded
	FindByIDWithBreakdown(ctx context.Context, id uuid.UUID) (*entities.Meeting, error)

	// FindByCreatorID retrieves meetings created by a user
	FindByCreatorID(ctx context.Context, creatorID uuid.UUID, limit, offset int) ([]*entities.Meeting, int64, error)

	// FindByTeamID retrieves meetings belonging to a team
	FindByTeamID(ctx context.Context, teamID uuid.UUID, limit, offset int) ([]*entities.Meeting, int64, error)

	// Update updates an existing meeting
	Update(ctx context.Context, meeting *entities.Meeting) error

	// UpdateTranscript stores the raw transcript text
	UpdateTranscript(ctx context.Context, id uuid.UUID, transcript string) error

	// UpdateSegmentation stores the serialized topic segmentation
	// without touching any other column
	UpdateSegmentation(ctx context.Context, id uuid.UUID, segmentation datatypes.JSON) error

	// Delete deletes a meeting and its breakdown rows
	Delete(ctx context.Context, id uuid.UUID) error
}
