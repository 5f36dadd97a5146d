package task

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Task CRUD
	Create(ctx context.Context, input CreateTaskInput) (TaskOutput, error)
	List(ctx context.Context, input ListTasksInput) (ListTasksOutput, error)
	Detail(ctx context.Context, userID, id string) (TaskOutput, error)
	Update(ctx context.Context, input UpdateTaskInput) (TaskOutput, error)
	Delete(ctx context.Context, userID, id string) error

	// Lifecycle transitions
	Start(ctx context.Context, userID, id string) (TaskOutput, error)
	Pause(ctx context.Context, userID, id string) (TaskOutput, error)
	Complete(ctx context.Context, input CompleteTaskInput) (TaskOutput, error)
}
