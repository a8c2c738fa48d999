package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/minutemind/minutemind/internal/domain/entities"
)

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(ctx context.Context, task *entities.Task) error

	// FindByID retrieves a task with its meeting and team preloaded so
	// callers can check leadership
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Task, error)

	// FindByMeetingID retrieves all tasks of a meeting
	FindByMeetingID(ctx context.Context, meetingID uuid.UUID) ([]*entities.Task, error)

	// FindByAssigneeID retrieves tasks assigned to a user
	FindByAssigneeID(ctx context.Context, assigneeID uuid.UUID, limit, offset int) ([]*entities.Task, int64, error)

	// Update updates an existing task
	Update(ctx context.Context, task *entities.Task) error

	// UpdateStatus transitions the task from one status to another.
	// The update only applies when the task is still in the expected
	// status; a lost race reports false and the caller maps that to an
	// invalid state error.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to entities.TaskStatus, fields map[string]interface{}) (bool, error)

	// Delete deletes a task
	Delete(ctx context.Context, id uuid.UUID) error

	// AddProof stores a proof of completion
	AddProof(ctx context.Context, proof *entities.TaskProof) error
}
