package usecase

import (
	"context"

	"task-scheduler/internal/model"
	"task-scheduler/internal/task"
	repo "task-scheduler/internal/task/repository"
)

// Create validates and persists a new Task in PENDING state.
func (uc *implUseCase) Create(ctx context.Context, input task.CreateTaskInput) (task.TaskOutput, error) {
	if input.Title == "" {
		return task.TaskOutput{}, task.ErrMissingTitle
	}
	if input.PlannedDate.IsZero() {
		return task.TaskOutput{}, task.ErrMissingPlannedDate
	}
	if input.EstimatedMinutes <= 0 {
		return task.TaskOutput{}, task.ErrInvalidEstimate
	}

	priority := input.Priority
	if priority == "" {
		priority = model.PriorityMedium
	}
	importance := input.Importance
	if importance == "" {
		importance = model.ImportanceMedium
	}
	if !priority.Valid() || !importance.Valid() {
		return task.TaskOutput{}, task.ErrInvalidEnum
	}

	created, err := uc.repo.CreateTask(ctx, repo.CreateTaskOptions{
		UserID:           input.UserID,
		RoutineID:        input.RoutineID,
		Title:            input.Title,
		Description:      input.Description,
		Category:         input.Category,
		PlannedDate:      input.PlannedDate,
		PlannedStartTime: input.PlannedStartTime,
		EstimatedMinutes: input.EstimatedMinutes,
		Priority:         priority,
		Importance:       importance,
		Status:           model.StatusPending,
		Tags:             input.Tags,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateTask: %v", err)
		return task.TaskOutput{}, err
	}

	return uc.buildOutput(ctx, created)
}
