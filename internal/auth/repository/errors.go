package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert record")
	ErrFailedToGet    = errors.New("failed to get record")

	// ErrDuplicateEmail surfaces the UNIQUE constraint on users.email.
	ErrDuplicateEmail = errors.New("email is already registered")
)
