package repository

import "task-scheduler/internal/model"

// CreateRoutineOptions holds parameters for inserting a new Routine.
type CreateRoutineOptions struct {
	UserID           string
	Title            string
	Description      string
	RepeatType       model.RepeatType
	RepeatInterval   int
	EstimatedMinutes int
}

// GetOneRoutineOptions holds filter parameters for fetching a single
// Routine. All non-empty fields are applied as AND conditions.
type GetOneRoutineOptions struct {
	ID     string
	UserID string
}

// UpdateRoutineOptions holds parameters for a partial Routine update.
// Only non-nil fields are written; updated_at is always bumped.
type UpdateRoutineOptions struct {
	ID string

	Title            *string
	Description      *string
	RepeatType       *model.RepeatType
	RepeatInterval   *int
	EstimatedMinutes *int
	Active           *bool
}
