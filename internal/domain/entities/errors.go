package entities

import "errors"

// Validation errors returned by entity constructors and Validate methods.
var (
	ErrInvalidEmail    = errors.New("invalid email address")
	ErrInvalidName     = errors.New("name must not be empty")
	ErrInvalidRole     = errors.New("invalid user role")
	ErrInvalidPassword = errors.New("password must be at least 8 characters")
	ErrInvalidStatus   = errors.New("invalid task status")
)
