package entities

import (
	"time"

	"github.com/google/uuid"
)

// QuestionStatus values for Question.Status.
const (
	QuestionStatusPending  = "PENDING"
	QuestionStatusAnswered = "ANSWERED"
)

// AttendeeRoleParticipant is assigned when the model provides no role.
// The acting user is always stored with the ORGANIZER role.
const (
	AttendeeRoleParticipant = "PARTICIPANT"
	AttendeeRoleOrganizer   = "ORGANIZER"
)

// Decision is a resolution recorded during the meeting.
type Decision struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	MeetingID uuid.UUID `json:"meeting_id" gorm:"type:uuid;not null;index"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	Date      time.Time `json:"date" gorm:"not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for Decision
func (Decision) TableName() string {
	return "decisions"
}

// Question is an open or answered question raised during the meeting.
type Question struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	MeetingID uuid.UUID `json:"meeting_id" gorm:"type:uuid;not null;index"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	Status    string    `json:"status" gorm:"type:varchar(20);not null;default:'PENDING'"`
	Answer    *string   `json:"answer,omitempty" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for Question
func (Question) TableName() string {
	return "questions"
}

// Insight is a noteworthy observation extracted from the transcript.
type Insight struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	MeetingID uuid.UUID `json:"meeting_id" gorm:"type:uuid;not null;index"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	Reference *string   `json:"reference,omitempty" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for Insight
func (Insight) TableName() string {
	return "insights"
}

// Deadline is a dated commitment mentioned in the meeting.
type Deadline struct {
	ID          uuid.UUID  `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	MeetingID   uuid.UUID  `json:"meeting_id" gorm:"type:uuid;not null;index"`
	Description string     `json:"description" gorm:"type:text;not null"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	CreatedAt   time.Time  `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for Deadline
func (Deadline) TableName() string {
	return "deadlines"
}

// Attendee is a meeting participant. Names are unique per meeting;
// re-analysis merges by name instead of duplicating rows.
type Attendee struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	MeetingID uuid.UUID `json:"meeting_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_attendee_meeting_name"`
	Name      string    `json:"name" gorm:"type:varchar(255);not null;uniqueIndex:idx_attendee_meeting_name"`
	Role      string    `json:"role" gorm:"type:varchar(50);not null;default:'PARTICIPANT'"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for Attendee
func (Attendee) TableName() string {
	return "attendees"
}

// FollowUp is an action to revisit after the meeting.
type FollowUp struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	MeetingID   uuid.UUID `json:"meeting_id" gorm:"type:uuid;not null;index"`
	Description string    `json:"description" gorm:"type:text;not null"`
	Owner       *string   `json:"owner,omitempty" gorm:"type:varchar(255)"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for FollowUp
func (FollowUp) TableName() string {
	return "follow_ups"
}

// Risk is a concern surfaced during the meeting.
type Risk struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	MeetingID uuid.UUID `json:"meeting_id" gorm:"type:uuid;not null;index"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	Impact    *string   `json:"impact,omitempty" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for Risk
func (Risk) TableName() string {
	return "risks"
}
