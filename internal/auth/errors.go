package auth

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrMissingField       = errors.New("email and password are required")
	ErrOAuthExchange      = errors.New("could not verify the Google sign-in")
)
