package auth

import "github.com/minutemind/minutemind/internal/domain/entities"

// RegisterRequest is the payload for credential registration
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=255"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginRequest is the payload for credential login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse carries the signed token and the authenticated user
type AuthResponse struct {
	Token string               `json:"token"`
	User  *entities.PublicUser `json:"user"`
}
