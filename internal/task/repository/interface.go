package repository

import (
	"context"

	"task-scheduler/internal/model"
)

// Repository is the composed interface for the task domain data store.
type Repository interface {
	TaskRepository
	TimeRecordRepository
}

// TaskRepository defines all data access methods for the Task entity.
type TaskRepository interface {
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)
	GetOneTask(ctx context.Context, opt GetOneTaskOptions) (model.Task, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, int, error)
	UpdateTask(ctx context.Context, opt UpdateTaskOptions) (model.Task, error)
	DeleteTask(ctx context.Context, id string) error

	// GetTaskRoutine is a read-only lookup of the routine a task was
	// generated from, for embedding in task responses.
	GetTaskRoutine(ctx context.Context, routineID string) (model.Routine, error)
}

// TimeRecordRepository manages the append-only work session log of a Task.
type TimeRecordRepository interface {
	OpenTimeRecord(ctx context.Context, taskID string) (model.TimeRecord, error)
	CloseOpenTimeRecord(ctx context.Context, taskID string) error
	ListTimeRecords(ctx context.Context, taskID string) ([]model.TimeRecord, error)
}
