package entities

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType identifies the event that produced a notification
type NotificationType string

const (
	NotificationTaskAssigned   NotificationType = "TASK_ASSIGNED"
	NotificationProofSubmitted NotificationType = "PROOF_SUBMITTED"
	NotificationTaskApproved   NotificationType = "TASK_APPROVED"
	NotificationTaskRejected   NotificationType = "TASK_REJECTED"
)

// Notification is a per-user message produced by a task lifecycle event.
// Delivery is best effort; a failed insert is logged and forgotten.
type Notification struct {
	ID        uuid.UUID        `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    uuid.UUID        `json:"user_id" gorm:"type:uuid;not null;index"`
	Type      NotificationType `json:"type" gorm:"type:varchar(50);not null"`
	Message   string           `json:"message" gorm:"type:text;not null"`
	TaskID    *uuid.UUID       `json:"task_id,omitempty" gorm:"type:uuid"`
	MeetingID *uuid.UUID       `json:"meeting_id,omitempty" gorm:"type:uuid"`
	IsRead    bool             `json:"is_read" gorm:"not null;default:false"`
	CreatedAt time.Time        `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for Notification
func (Notification) TableName() string {
	return "notifications"
}
