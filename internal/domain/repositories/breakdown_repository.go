package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/minutemind/minutemind/internal/domain/entities"
)

// BreakdownWrite carries the normalized rows of one analysis run,
// ready to be persisted in a single transaction.
type BreakdownWrite struct {
	MeetingName        string
	MeetingDescription string
	Summary            string
	Tasks              []entities.Task
	Decisions          []entities.Decision
	Questions          []entities.Question
	Insights           []entities.Insight
	Deadlines          []entities.Deadline
	Attendees          []entities.Attendee
	FollowUps          []entities.FollowUp
	Risks              []entities.Risk

	// PreserveTasks leaves existing task rows untouched and appends the
	// new ones; otherwise tasks are replaced like every other category.
	PreserveTasks bool
}

// BreakdownRepository persists analysis results atomically
type BreakdownRepository interface {
	// Replace deletes the meeting's previous breakdown rows and inserts
	// the new ones in one transaction. Attendees are merged by name.
	// Either every write lands or none does.
	Replace(ctx context.Context, meetingID uuid.UUID, w *BreakdownWrite) error
}
