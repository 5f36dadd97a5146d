package routine

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, input CreateRoutineInput) (RoutineOutput, error)
	List(ctx context.Context, userID string) (ListRoutinesOutput, error)
	Detail(ctx context.Context, userID, id string) (RoutineOutput, error)
	Update(ctx context.Context, input UpdateRoutineInput) (RoutineOutput, error)
	Delete(ctx context.Context, userID, id string) error

	// GenerateTask materializes a PENDING task from the routine template
	// for one planned day. At most one task per (routine, day).
	GenerateTask(ctx context.Context, input GenerateTaskInput) (GenerateTaskOutput, error)
}
