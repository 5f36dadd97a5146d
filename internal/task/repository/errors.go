package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert record")
	ErrFailedToGet    = errors.New("failed to get record")
	ErrFailedToList   = errors.New("failed to list records")
	ErrFailedToUpdate = errors.New("failed to update record")
	ErrFailedToDelete = errors.New("failed to delete record")

	// ErrDuplicateRoutineTask surfaces the UNIQUE (routine_id, planned_date)
	// constraint, the backstop for concurrent generate-task requests.
	ErrDuplicateRoutineTask = errors.New("task already generated for this routine and date")
)
