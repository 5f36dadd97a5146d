package routine

import (
	"time"

	"task-scheduler/internal/model"
)

// CreateRoutineInput holds the validated data for a new Routine.
type CreateRoutineInput struct {
	UserID           string
	Title            string
	Description      string
	RepeatType       model.RepeatType
	RepeatInterval   int
	EstimatedMinutes int
}

// UpdateRoutineInput holds a partial Routine update. Nil fields are
// left untouched.
type UpdateRoutineInput struct {
	ID     string
	UserID string

	Title            *string
	Description      *string
	RepeatType       *string
	RepeatInterval   *int
	EstimatedMinutes *int
	Active           *bool
}

// GenerateTaskInput identifies the routine and the planned day to
// materialize a task for.
type GenerateTaskInput struct {
	RoutineID   string
	UserID      string
	PlannedDate time.Time
}

// RoutineOutput is a single Routine view.
type RoutineOutput struct {
	Routine model.Routine
}

// ListRoutinesOutput is the routine collection view.
type ListRoutinesOutput struct {
	Routines []model.Routine
	Total    int
}

// GenerateTaskOutput is the task materialized from a routine.
type GenerateTaskOutput struct {
	Task model.Task
}
