package usecase

import (
	"context"
	"time"

	"task-scheduler/internal/model"
	"task-scheduler/internal/task"
	repo "task-scheduler/internal/task/repository"
)

// List returns the caller's tasks, optionally filtered to one planned day
// and/or one status.
func (uc *implUseCase) List(ctx context.Context, input task.ListTasksInput) (task.ListTasksOutput, error) {
	opt := repo.ListTasksOptions{UserID: input.UserID}

	if input.Date != "" {
		from, to, err := uc.dateParser.DayRange(input.Date, time.Now())
		if err != nil {
			return task.ListTasksOutput{}, task.ErrInvalidDateFilter
		}
		opt.DateFrom = &from
		opt.DateTo = &to
	}

	if input.Status != "" {
		if !model.TaskStatus(input.Status).Valid() {
			return task.ListTasksOutput{}, task.ErrInvalidEnum
		}
		opt.Status = input.Status
	}

	tasks, total, err := uc.repo.ListTasks(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListTasks: %v", err)
		return task.ListTasksOutput{}, err
	}

	return task.ListTasksOutput{Tasks: tasks, Total: total}, nil
}
