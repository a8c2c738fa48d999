package task

import (
	"context"

	"github.com/google/uuid"

	"github.com/minutemind/minutemind/internal/domain/entities"
)

// Event describes a task lifecycle change that someone should hear
// about. The recipient is resolved by the emitting operation: the
// assignee for decisions about their work, the leader for submissions.
type Event struct {
	Type        entities.NotificationType
	RecipientID uuid.UUID
	TaskID      uuid.UUID
	MeetingID   uuid.UUID
	TaskTitle   string
	Comments    string
}

// Dispatcher delivers task events as notifications. Implementations
// must be fire-and-forget: delivery failure never reaches the caller.
type Dispatcher interface {
	Dispatch(ctx context.Context, event Event)
}
