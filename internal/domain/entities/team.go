package entities

import (
	"time"

	"github.com/google/uuid"
)

// Team groups users under a single leader. The leader is the only user
// authorized to manage tasks and attendees for the team's meetings.
type Team struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name        string    `json:"name" gorm:"type:varchar(255);not null"`
	Description *string   `json:"description,omitempty" gorm:"type:text"`
	LeaderID    uuid.UUID `json:"leader_id" gorm:"type:uuid;not null;index"`
	Leader      *User     `json:"leader,omitempty" gorm:"foreignKey:LeaderID"`
	Members     []*User   `json:"members,omitempty" gorm:"many2many:team_members;"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for Team
func (Team) TableName() string {
	return "teams"
}

// NewTeam creates a team led by the given user
func NewTeam(name string, leaderID uuid.UUID) *Team {
	return &Team{
		ID:       uuid.New(),
		Name:     name,
		LeaderID: leaderID,
	}
}

// IsLeader checks whether the given user leads this team
func (t *Team) IsLeader(userID uuid.UUID) bool {
	return t.LeaderID == userID
}

// HasMember checks whether the given user is a member (the leader counts)
func (t *Team) HasMember(userID uuid.UUID) bool {
	if t.LeaderID == userID {
		return true
	}
	for _, m := range t.Members {
		if m != nil && m.ID == userID {
			return true
		}
	}
	return false
}
