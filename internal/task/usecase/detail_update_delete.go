package usecase

import (
	"context"

	"task-scheduler/internal/model"
	"task-scheduler/internal/task"
	repo "task-scheduler/internal/task/repository"
)

// Detail retrieves a single Task with its routine link and session log.
func (uc *implUseCase) Detail(ctx context.Context, userID, id string) (task.TaskOutput, error) {
	t, err := uc.getOwnedTask(ctx, userID, id)
	if err != nil {
		return task.TaskOutput{}, err
	}
	return uc.buildOutput(ctx, t)
}

// Update applies only the fields explicitly present in the input; absent
// fields are left untouched. Enum fields are validated before writing.
func (uc *implUseCase) Update(ctx context.Context, input task.UpdateTaskInput) (task.TaskOutput, error) {
	if _, err := uc.getOwnedTask(ctx, input.UserID, input.ID); err != nil {
		return task.TaskOutput{}, err
	}

	opt := repo.UpdateTaskOptions{
		ID:               input.ID,
		Title:            input.Title,
		Description:      input.Description,
		Category:         input.Category,
		PlannedDate:      input.PlannedDate,
		PlannedStartTime: input.PlannedStartTime,
		Tags:             input.Tags,
		Notes:            input.Notes,
		ActualStartTime:  input.ActualStartTime,
		ActualEndTime:    input.ActualEndTime,
		ActualMinutes:    input.ActualMinutes,
		Interruptions:    input.Interruptions,
	}

	if input.EstimatedMinutes != nil {
		if *input.EstimatedMinutes <= 0 {
			return task.TaskOutput{}, task.ErrInvalidEstimate
		}
		opt.EstimatedMinutes = input.EstimatedMinutes
	}
	if input.Priority != nil {
		p := model.Priority(*input.Priority)
		if !p.Valid() {
			return task.TaskOutput{}, task.ErrInvalidEnum
		}
		opt.Priority = &p
	}
	if input.Importance != nil {
		i := model.Importance(*input.Importance)
		if !i.Valid() {
			return task.TaskOutput{}, task.ErrInvalidEnum
		}
		opt.Importance = &i
	}
	if input.Status != nil {
		s := model.TaskStatus(*input.Status)
		if !s.Valid() {
			return task.TaskOutput{}, task.ErrInvalidEnum
		}
		opt.Status = &s
	}

	updated, err := uc.repo.UpdateTask(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateTask: %v", err)
		return task.TaskOutput{}, err
	}
	if updated.ID == "" {
		return task.TaskOutput{}, task.ErrTaskNotFound
	}

	return uc.buildOutput(ctx, updated)
}

// Delete removes a Task by ID. Returns ErrTaskNotFound when absent/not owned.
func (uc *implUseCase) Delete(ctx context.Context, userID, id string) error {
	if _, err := uc.getOwnedTask(ctx, userID, id); err != nil {
		return err
	}
	if err := uc.repo.DeleteTask(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteTask: %v", err)
		return err
	}
	return nil
}
