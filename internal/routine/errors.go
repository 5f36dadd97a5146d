package routine

import "errors"

var (
	ErrRoutineNotFound   = errors.New("routine not found")
	ErrMissingTitle      = errors.New("title is required")
	ErrInvalidRepeatType = errors.New("invalid repeat type")
	ErrInvalidInterval   = errors.New("repeat interval must be a positive integer")
	ErrInvalidEstimate   = errors.New("estimated minutes must be a positive integer")
	ErrRoutineInactive   = errors.New("routine is not active")

	// ErrTaskAlreadyGenerated means a task already exists for this
	// routine and planned date.
	ErrTaskAlreadyGenerated = errors.New("task already generated for this date")
)
