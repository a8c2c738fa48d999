package team

// CreateTeamRequest is the payload for creating a team
type CreateTeamRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=255"`
	Description *string `json:"description,omitempty"`
}

// MemberRequest adds or removes a team member
type MemberRequest struct {
	UserID string `json:"user_id" validate:"required,uuid"`
}
