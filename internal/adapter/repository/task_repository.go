package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/minutemind/minutemind/internal/domain/entities"
	"github.com/minutemind/minutemind/internal/domain/repositories"
)

// taskRepository implements the TaskRepository interface
type taskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *gorm.DB) repositories.TaskRepository {
	return &taskRepository{db: db}
}

// Create creates a new task
func (r *taskRepository) Create(ctx context.Context, task *entities.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

// FindByID retrieves a task with its meeting and team preloaded.
// Team members must be named explicitly; gorm does not load nested
// associations on their own.
func (r *taskRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Task, error) {
	var task entities.Task
	err := r.db.WithContext(ctx).
		Preload("Meeting").
		Preload("Meeting.Team").
		Preload("Meeting.Team.Members").
		Preload("Assignee").
		Preload("Proofs").
		Where("id = ?", id).
		First(&task).Error

	if err != nil {
		return nil, err
	}
	return &task, nil
}

// FindByMeetingID retrieves all tasks of a meeting
func (r *taskRepository) FindByMeetingID(ctx context.Context, meetingID uuid.UUID) ([]*entities.Task, error) {
	var tasks []*entities.Task
	err := r.db.WithContext(ctx).
		Preload("Assignee").
		Where("meeting_id = ?", meetingID).
		Order("created_at ASC").
		Find(&tasks).Error

	if err != nil {
		return nil, err
	}
	return tasks, nil
}

// FindByAssigneeID retrieves tasks assigned to a user
func (r *taskRepository) FindByAssigneeID(ctx context.Context, assigneeID uuid.UUID, limit, offset int) ([]*entities.Task, int64, error) {
	var tasks []*entities.Task
	var total int64

	query := r.db.WithContext(ctx).Model(&entities.Task{}).Where("assignee_id = ?", assigneeID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Preload("Meeting").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&tasks).Error

	if err != nil {
		return nil, 0, err
	}
	return tasks, total, nil
}

// Update updates an existing task
func (r *taskRepository) Update(ctx context.Context, task *entities.Task) error {
	return r.db.WithContext(ctx).Save(task).Error
}

// UpdateStatus transitions the task only when it is still in the
// expected status. Reports false if another writer got there first.
func (r *taskRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to entities.TaskStatus, fields map[string]interface{}) (bool, error) {
	updates := map[string]interface{}{"status": to}
	for k, v := range fields {
		updates[k] = v
	}

	result := r.db.WithContext(ctx).
		Model(&entities.Task{}).
		Where("id = ? AND status = ?", id, from).
		Updates(updates)

	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Delete deletes a task
func (r *taskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entities.Task{}, id).Error
}

// AddProof stores a proof of completion
func (r *taskRepository) AddProof(ctx context.Context, proof *entities.TaskProof) error {
	return r.db.WithContext(ctx).Create(proof).Error
}
