package entities

import (
	"time"

	"github.com/google/uuid"
)

// TaskStatus represents the lifecycle state of a task
type TaskStatus string

const (
	TaskStatusOpen            TaskStatus = "OPEN"
	TaskStatusPendingApproval TaskStatus = "PENDING_APPROVAL"
	TaskStatusNeedsRework     TaskStatus = "NEEDS_REWORK"
	TaskStatusCompleted       TaskStatus = "COMPLETED"
)

// IsValid checks if the task status is one of the known states
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusOpen, TaskStatusPendingApproval, TaskStatusNeedsRework, TaskStatusCompleted:
		return true
	}
	return false
}

// CanSubmitProof reports whether an assignee may submit proof from this
// state. Submission moves the task to PENDING_APPROVAL.
func (s TaskStatus) CanSubmitProof() bool {
	return s == TaskStatusOpen || s == TaskStatusNeedsRework
}

// Task is an actionable work item extracted from a meeting transcript.
// Owner is the free-form name the model produced; AssigneeID is set only
// when a leader explicitly assigns the task to a registered user.
type Task struct {
	ID          uuid.UUID  `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	MeetingID   uuid.UUID  `json:"meeting_id" gorm:"type:uuid;not null;index"`
	Meeting     *Meeting   `json:"meeting,omitempty" gorm:"foreignKey:MeetingID"`
	Description string     `json:"description" gorm:"type:text;not null"`
	Owner       string     `json:"owner" gorm:"type:varchar(255)"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Status      TaskStatus `json:"status" gorm:"type:varchar(20);not null;default:'OPEN';index"`
	AssigneeID  *uuid.UUID `json:"assignee_id,omitempty" gorm:"type:uuid;index"`
	Assignee    *User      `json:"assignee,omitempty" gorm:"foreignKey:AssigneeID"`

	// Comments carries the leader's rework feedback from the most recent
	// rejection. Cleared on resubmission.
	Comments *string `json:"comments,omitempty" gorm:"type:text"`

	Proofs []TaskProof `json:"proofs,omitempty" gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for Task
func (Task) TableName() string {
	return "tasks"
}

// IsAssignedTo reports whether the task is assigned to the given user
func (t *Task) IsAssignedTo(userID uuid.UUID) bool {
	return t.AssigneeID != nil && *t.AssigneeID == userID
}

// TaskProof is evidence of completion uploaded by the assignee.
type TaskProof struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	TaskID      uuid.UUID `json:"task_id" gorm:"type:uuid;not null;index"`
	UserID      uuid.UUID `json:"user_id" gorm:"type:uuid;not null"`
	FileURL     string    `json:"file_url" gorm:"type:text;not null"`
	Description *string   `json:"description,omitempty" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for TaskProof
func (TaskProof) TableName() string {
	return "task_proofs"
}
