package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/minutemind/minutemind/internal/domain/entities"
	"github.com/minutemind/minutemind/internal/domain/repositories"
)

// meetingRepository implements the MeetingRepository interface
type meetingRepository struct {
	db *gorm.DB
}

// NewMeetingRepository creates a new meeting repository
func NewMeetingRepository(db *gorm.DB) repositories.MeetingRepository {
	return &meetingRepository{db: db}
}

// Create creates a new meeting
func (r *meetingRepository) Create(ctx context.Context, meeting *entities.Meeting) error {
	return r.db.WithContext(ctx).Create(meeting).Error
}

// FindByID retrieves a meeting by its ID, preloading its team
func (r *meetingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Meeting, error) {
	var meeting entities.Meeting
	err := r.db.WithContext(ctx).
		Preload("Team").
		Where("id = ?", id).
		First(&meeting).Error

	if err != nil {
		return nil, err
	}
	return &meeting, nil
}

// FindByIDWithBreakdown retrieves a meeting with every breakdown
// collection preloaded
func (r *meetingRepository) FindByIDWithBreakdown(ctx context.Context, id uuid.UUID) (*entities.Meeting, error) {
	var meeting entities.Meeting
	err := r.db.WithContext(ctx).
		Preload("Team").
		Preload("Tasks").
		Preload("Tasks.Assignee").
		Preload("Decisions").
		Preload("Questions").
		Preload("Insights").
		Preload("Deadlines").
		Preload("Attendees").
		Preload("FollowUps").
		Preload("Risks").
		Where("id = ?", id).
		First(&meeting).Error

	if err != nil {
		return nil, err
	}
	return &meeting, nil
}

// FindByCreatorID retrieves meetings created by a user
func (r *meetingRepository) FindByCreatorID(ctx context.Context, creatorID uuid.UUID, limit, offset int) ([]*entities.Meeting, int64, error) {
	var meetings []*entities.Meeting
	var total int64

	query := r.db.WithContext(ctx).Model(&entities.Meeting{}).Where("creator_id = ?", creatorID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&meetings).Error

	if err != nil {
		return nil, 0, err
	}
	return meetings, total, nil
}

// FindByTeamID retrieves meetings belonging to a team
func (r *meetingRepository) FindByTeamID(ctx context.Context, teamID uuid.UUID, limit, offset int) ([]*entities.Meeting, int64, error) {
	var meetings []*entities.Meeting
	var total int64

	query := r.db.WithContext(ctx).Model(&entities.Meeting{}).Where("team_id = ?", teamID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&meetings).Error

	if err != nil {
		return nil, 0, err
	}
	return meetings, total, nil
}

// Update updates an existing meeting
func (r *meetingRepository) Update(ctx context.Context, meeting *entities.Meeting) error {
	return r.db.WithContext(ctx).Save(meeting).Error
}

// UpdateTranscript stores the raw transcript text
func (r *meetingRepository) UpdateTranscript(ctx context.Context, id uuid.UUID, transcript string) error {
	return r.db.WithContext(ctx).
		Model(&entities.Meeting{}).
		Where("id = ?", id).
		Update("raw_transcript", transcript).Error
}

// UpdateSegmentation stores the topic segmentation column only, so it
// never overwrites the name/summary written by an analysis run.
func (r *meetingRepository) UpdateSegmentation(ctx context.Context, id uuid.UUID, segmentation datatypes.JSON) error {
	return r.db.WithContext(ctx).
		Model(&entities.Meeting{}).
		Where("id = ?", id).
		Update("topic_segmentation", segmentation).Error
}

// Delete deletes a meeting and its breakdown rows
func (r *meetingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Select(clause.Associations).
		Delete(&entities.Meeting{ID: id}).Error
}
