package task

import "errors"

var (
	ErrTaskNotFound       = errors.New("task not found")
	ErrMissingTitle       = errors.New("title is required")
	ErrMissingPlannedDate = errors.New("plannedDate is required")
	ErrInvalidEstimate    = errors.New("estimatedMinutes must be positive")
	ErrInvalidEnum        = errors.New("invalid enum value")
	ErrInvalidDateFilter  = errors.New("invalid date filter")
	ErrInvalidTransition  = errors.New("invalid status transition")
)
