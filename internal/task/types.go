package task

import (
	"time"

	"task-scheduler/internal/model"
)

// --- UseCase Inputs ---

// All inputs carry the caller's UserID; a task owned by someone else is
// indistinguishable from a missing one.

type CreateTaskInput struct {
	UserID           string
	Title            string
	Description      string
	Category         string
	PlannedDate      time.Time
	PlannedStartTime *time.Time
	EstimatedMinutes int
	Priority         model.Priority
	Importance       model.Importance
	Tags             []string
	RoutineID        string
}

type ListTasksInput struct {
	UserID string
	Date   string // absolute "2006-01-02" or relative ("today", ...); empty = no date filter
	Status string
}

// UpdateTaskInput applies partial-update semantics: only non-nil fields are
// written, absent fields are left untouched.
type UpdateTaskInput struct {
	ID     string
	UserID string

	Title            *string
	Description      *string
	Category         *string
	PlannedDate      *time.Time
	PlannedStartTime *time.Time
	EstimatedMinutes *int
	Priority         *string
	Importance       *string
	Status           *string
	Tags             *[]string
	Notes            *string
	ActualStartTime  *time.Time
	ActualEndTime    *time.Time
	ActualMinutes    *int
	Interruptions    *int
}

type CompleteTaskInput struct {
	ID     string
	UserID string

	// ActualMinutes is caller-supplied focused work time. It is persisted
	// as-is, never re-derived from elapsed wall time.
	ActualMinutes int
}

// --- UseCase Outputs ---

type TaskOutput struct {
	Task        model.Task
	Routine     *model.Routine
	Records     []model.TimeRecord
	RecordCount int
}

type ListTasksOutput struct {
	Tasks []model.Task
	Total int
}
