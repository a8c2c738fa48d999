package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Meeting is a persisted meeting record together with the breakdown
// collections derived from its transcript. Breakdown children are owned
// exclusively by the meeting and cascade on delete; re-analysis replaces
// them wholesale (tasks optionally preserved, see AnalysisConfig).
type Meeting struct {
	ID            uuid.UUID  `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name          string     `json:"name" gorm:"type:varchar(255);not null"`
	Description   string     `json:"description" gorm:"type:text"`
	Summary       string     `json:"summary" gorm:"type:text"`
	RawTranscript string     `json:"raw_transcript,omitempty" gorm:"type:text"`
	CreatorID     uuid.UUID  `json:"creator_id" gorm:"type:uuid;not null;index"`
	Creator       *User      `json:"creator,omitempty" gorm:"foreignKey:CreatorID"`
	TeamID        *uuid.UUID `json:"team_id,omitempty" gorm:"type:uuid;index"`
	Team          *Team      `json:"team,omitempty" gorm:"foreignKey:TeamID"`

	// TopicSegmentation is the serialized best-effort enrichment; nil when
	// segmentation failed or was never run.
	TopicSegmentation datatypes.JSON `json:"topic_segmentation,omitempty" gorm:"type:jsonb"`

	Tasks     []Task     `json:"tasks,omitempty" gorm:"foreignKey:MeetingID;constraint:OnDelete:CASCADE"`
	Decisions []Decision `json:"decisions,omitempty" gorm:"foreignKey:MeetingID;constraint:OnDelete:CASCADE"`
	Questions []Question `json:"questions,omitempty" gorm:"foreignKey:MeetingID;constraint:OnDelete:CASCADE"`
	Insights  []Insight  `json:"insights,omitempty" gorm:"foreignKey:MeetingID;constraint:OnDelete:CASCADE"`
	Deadlines []Deadline `json:"deadlines,omitempty" gorm:"foreignKey:MeetingID;constraint:OnDelete:CASCADE"`
	Attendees []Attendee `json:"attendees,omitempty" gorm:"foreignKey:MeetingID;constraint:OnDelete:CASCADE"`
	FollowUps []FollowUp `json:"follow_ups,omitempty" gorm:"foreignKey:MeetingID;constraint:OnDelete:CASCADE"`
	Risks     []Risk     `json:"risks,omitempty" gorm:"foreignKey:MeetingID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for Meeting
func (Meeting) TableName() string {
	return "meetings"
}

// NewMeeting creates a meeting owned by the given creator
func NewMeeting(name string, creatorID uuid.UUID) *Meeting {
	return &Meeting{
		ID:        uuid.New(),
		Name:      name,
		CreatorID: creatorID,
	}
}

// HasTranscript reports whether there is transcript text to analyze
func (m *Meeting) HasTranscript() bool {
	return len(m.RawTranscript) > 0
}

// LeaderID returns the id of the team leader governing this meeting's
// tasks, or uuid.Nil when the meeting belongs to no team.
func (m *Meeting) LeaderID() uuid.UUID {
	if m.Team == nil {
		return uuid.Nil
	}
	return m.Team.LeaderID
}

// CanAnalyze checks whether the given user may (re-)analyze this meeting:
// the creator always can, the team leader can when the meeting has a team.
func (m *Meeting) CanAnalyze(userID uuid.UUID) bool {
	if m.CreatorID == userID {
		return true
	}
	return m.Team != nil && m.Team.LeaderID == userID
}
