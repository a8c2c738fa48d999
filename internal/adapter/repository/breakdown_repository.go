package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/minutemind/minutemind/internal/domain/entities"
	"github.com/minutemind/minutemind/internal/domain/repositories"
)

// breakdownRepository implements the BreakdownRepository interface
type breakdownRepository struct {
	db *gorm.DB
}

// NewBreakdownRepository creates a new breakdown repository
func NewBreakdownRepository(db *gorm.DB) repositories.BreakdownRepository {
	return &breakdownRepository{db: db}
}

// Replace deletes the meeting's previous breakdown rows and inserts the
// new ones in one transaction. Attendees are merged by name so that a
// re-analysis never duplicates a participant. Any failure rolls the
// whole write back.
func (r *breakdownRepository) Replace(ctx context.Context, meetingID uuid.UUID, w *repositories.BreakdownWrite) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"name":        w.MeetingName,
			"description": w.MeetingDescription,
			"summary":     w.Summary,
		}
		if err := tx.Model(&entities.Meeting{}).Where("id = ?", meetingID).Updates(updates).Error; err != nil {
			return err
		}

		replaced := []interface{}{
			&entities.Decision{},
			&entities.Question{},
			&entities.Insight{},
			&entities.Deadline{},
			&entities.FollowUp{},
			&entities.Risk{},
		}
		if !w.PreserveTasks {
			replaced = append(replaced, &entities.Task{})
		}
		for _, model := range replaced {
			if err := tx.Where("meeting_id = ?", meetingID).Delete(model).Error; err != nil {
				return err
			}
		}

		if len(w.Tasks) > 0 {
			if err := tx.Create(&w.Tasks).Error; err != nil {
				return err
			}
		}
		if len(w.Decisions) > 0 {
			if err := tx.Create(&w.Decisions).Error; err != nil {
				return err
			}
		}
		if len(w.Questions) > 0 {
			if err := tx.Create(&w.Questions).Error; err != nil {
				return err
			}
		}
		if len(w.Insights) > 0 {
			if err := tx.Create(&w.Insights).Error; err != nil {
				return err
			}
		}
		if len(w.Deadlines) > 0 {
			if err := tx.Create(&w.Deadlines).Error; err != nil {
				return err
			}
		}
		if len(w.FollowUps) > 0 {
			if err := tx.Create(&w.FollowUps).Error; err != nil {
				return err
			}
		}
		if len(w.Risks) > 0 {
			if err := tx.Create(&w.Risks).Error; err != nil {
				return err
			}
		}

		// Attendees upsert on (meeting_id, name) so the ORGANIZER row
		// added at first analysis keeps its role across runs only when
		// the new payload does not override it.
		if len(w.Attendees) > 0 {
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "meeting_id"}, {Name: "name"}},
				DoUpdates: clause.AssignmentColumns([]string{"role"}),
			}).Create(&w.Attendees).Error
			if err != nil {
				return err
			}
		}

		return nil
	})
}
