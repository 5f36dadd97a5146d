package auth

import "task-scheduler/internal/model"

// RegisterInput holds the validated data for a password-based signup.
type RegisterInput struct {
	Email    string
	Name     string
	Password string
}

// LoginInput holds the credentials for a password login.
type LoginInput struct {
	Email    string
	Password string
}

// GoogleCallbackInput carries the authorization code returned by Google.
type GoogleCallbackInput struct {
	Code string
}

// SessionOutput is a signed session for a user.
type SessionOutput struct {
	User  model.User
	Token string
}

// UserOutput is a single user view.
type UserOutput struct {
	User model.User
}
