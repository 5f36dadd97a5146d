package repository

import (
	"time"

	"task-scheduler/internal/model"
)

// CreateTaskOptions holds parameters for inserting a new Task.
type CreateTaskOptions struct {
	UserID           string
	RoutineID        string
	Title            string
	Description      string
	Category         string
	PlannedDate      time.Time
	PlannedStartTime *time.Time
	EstimatedMinutes int
	Priority         model.Priority
	Importance       model.Importance
	Status           model.TaskStatus
	Tags             []string
}

// GetOneTaskOptions holds filter parameters for fetching a single Task.
// All non-empty fields are applied as AND conditions.
type GetOneTaskOptions struct {
	ID          string
	UserID      string
	RoutineID   string
	PlannedDate *time.Time
}

// ListTasksOptions holds filter parameters for listing Tasks.
// The date filter is a half-open interval [DateFrom, DateTo).
type ListTasksOptions struct {
	UserID   string
	DateFrom *time.Time
	DateTo   *time.Time
	Status   string
}

// UpdateTaskOptions holds parameters for a partial Task update.
// Only non-nil fields are written; updated_at is always bumped.
type UpdateTaskOptions struct {
	ID string

	Title            *string
	Description      *string
	Category         *string
	PlannedDate      *time.Time
	PlannedStartTime *time.Time
	EstimatedMinutes *int
	Priority         *model.Priority
	Importance       *model.Importance
	Status           *model.TaskStatus
	Tags             *[]string
	Notes            *string
	ActualStartTime  *time.Time
	ActualEndTime    *time.Time
	ActualMinutes    *int
	Interruptions    *int
}
