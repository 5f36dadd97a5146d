package repository

import (
	"context"

	"task-scheduler/internal/model"
)

// Repository defines all data access methods for the Routine entity.
type Repository interface {
	CreateRoutine(ctx context.Context, opt CreateRoutineOptions) (model.Routine, error)
	GetOneRoutine(ctx context.Context, opt GetOneRoutineOptions) (model.Routine, error)
	ListRoutines(ctx context.Context, userID string) ([]model.Routine, int, error)
	UpdateRoutine(ctx context.Context, opt UpdateRoutineOptions) (model.Routine, error)
	DeleteRoutine(ctx context.Context, id string) error
}
