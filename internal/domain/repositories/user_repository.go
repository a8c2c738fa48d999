package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/minutemind/minutemind/internal/domain/entities"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(ctx context.Context, user *entities.User) error

	// FindByID retrieves a user by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*entities.User, error)

	// FindByEmail retrieves a user by email
	FindByEmail(ctx context.Context, email string) (*entities.User, error)

	// Update updates an existing user
	Update(ctx context.Context, user *entities.User) error

	// List retrieves users with pagination
	List(ctx context.Context, limit, offset int) ([]*entities.User, int64, error)
}
