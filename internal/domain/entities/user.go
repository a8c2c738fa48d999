package entities

import (
	"time"

	"github.com/google/uuid"
)

// UserRole defines user roles
type UserRole string

const (
	RoleAdmin  UserRole = "ADMIN"
	RoleLeader UserRole = "LEADER"
	RoleMember UserRole = "MEMBER"
)

// IsValid checks if the user role is valid
func (r UserRole) IsValid() bool {
	switch r {
	case RoleAdmin, RoleLeader, RoleMember:
		return true
	}
	return false
}

// User represents a registered user
type User struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Email        string    `json:"email" gorm:"type:varchar(255);uniqueIndex;not null"`
	Name         string    `json:"name" gorm:"type:varchar(255);not null"`
	Role         UserRole  `json:"role" gorm:"type:varchar(50);default:'MEMBER';not null"`
	PasswordHash string    `json:"-" gorm:"column:password_hash;type:text;not null"`

	Teams []*Team `json:"teams,omitempty" gorm:"many2many:team_members;"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}

// NewUser creates a new user with default values
func NewUser(email, name, passwordHash string) *User {
	return &User{
		ID:           uuid.New(),
		Email:        email,
		Name:         name,
		Role:         RoleMember,
		PasswordHash: passwordHash,
	}
}

// Validate validates user data
func (u *User) Validate() error {
	if u.Email == "" {
		return ErrInvalidEmail
	}
	if u.Name == "" {
		return ErrInvalidName
	}
	if !u.Role.IsValid() {
		return ErrInvalidRole
	}
	return nil
}

// PublicUser is a user with sensitive fields removed
type PublicUser struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
	Role  UserRole  `json:"role"`
}

// ToPublic converts User to PublicUser
func (u *User) ToPublic() *PublicUser {
	return &PublicUser{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
		Role:  u.Role,
	}
}
