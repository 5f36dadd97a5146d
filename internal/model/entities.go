package model

import "time"

// User owns Tasks and Routines. Created on first sign-in.
type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string // empty for OAuth-only accounts
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Task is a single schedulable unit of work with a lifecycle.
type Task struct {
	ID               string
	UserID           string
	RoutineID        string // non-empty if generated from a Routine
	Title            string
	Description      string
	Category         string
	PlannedDate      time.Time
	PlannedStartTime *time.Time
	EstimatedMinutes int
	Priority         Priority
	Importance       Importance
	Status           TaskStatus
	Tags             []string
	Notes            string
	ActualStartTime  *time.Time
	ActualEndTime    *time.Time
	ActualMinutes    int
	Interruptions    int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Routine is a recurring task template. It is never itself executed;
// tasks are generated from it per target date.
type Routine struct {
	ID               string
	UserID           string
	Title            string
	Description      string
	RepeatType       RepeatType
	RepeatInterval   int
	EstimatedMinutes int
	Active           bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TimeRecord is one logged work session against a Task. Append-only,
// ordered by start time. EndTime is nil while the session is open.
type TimeRecord struct {
	ID        string
	TaskID    string
	StartTime time.Time
	EndTime   *time.Time
	CreatedAt time.Time
}
