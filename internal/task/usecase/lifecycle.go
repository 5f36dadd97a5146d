package usecase

import (
	"context"
	"time"

	"task-scheduler/internal/model"
	"task-scheduler/internal/task"
	repo "task-scheduler/internal/task/repository"
)

// Start moves a task from PENDING or PAUSED to IN_PROGRESS, stamps the first
// actual start time and opens a new work session.
func (uc *implUseCase) Start(ctx context.Context, userID, id string) (task.TaskOutput, error) {
	t, err := uc.getOwnedTask(ctx, userID, id)
	if err != nil {
		return task.TaskOutput{}, err
	}
	if t.Status != model.StatusPending && t.Status != model.StatusPaused {
		return task.TaskOutput{}, task.ErrInvalidTransition
	}

	status := model.StatusInProgress
	opt := repo.UpdateTaskOptions{ID: id, Status: &status}
	if t.ActualStartTime == nil {
		now := time.Now()
		opt.ActualStartTime = &now
	}

	updated, err := uc.repo.UpdateTask(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Start UpdateTask: %v", err)
		return task.TaskOutput{}, err
	}

	if _, err := uc.repo.OpenTimeRecord(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Start OpenTimeRecord: %v", err)
		return task.TaskOutput{}, err
	}

	return uc.buildOutput(ctx, updated)
}

// Pause moves a task from IN_PROGRESS to PAUSED, counts the interruption and
// closes the open work session.
func (uc *implUseCase) Pause(ctx context.Context, userID, id string) (task.TaskOutput, error) {
	t, err := uc.getOwnedTask(ctx, userID, id)
	if err != nil {
		return task.TaskOutput{}, err
	}
	if t.Status != model.StatusInProgress {
		return task.TaskOutput{}, task.ErrInvalidTransition
	}

	status := model.StatusPaused
	interruptions := t.Interruptions + 1
	updated, err := uc.repo.UpdateTask(ctx, repo.UpdateTaskOptions{
		ID:            id,
		Status:        &status,
		Interruptions: &interruptions,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Pause UpdateTask: %v", err)
		return task.TaskOutput{}, err
	}

	if err := uc.repo.CloseOpenTimeRecord(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Pause CloseOpenTimeRecord: %v", err)
		return task.TaskOutput{}, err
	}

	return uc.buildOutput(ctx, updated)
}

// Complete moves a task from IN_PROGRESS to COMPLETED. The caller supplies
// actualMinutes: focused work time may differ from elapsed wall time, so it
// is persisted as-is.
func (uc *implUseCase) Complete(ctx context.Context, input task.CompleteTaskInput) (task.TaskOutput, error) {
	t, err := uc.getOwnedTask(ctx, input.UserID, input.ID)
	if err != nil {
		return task.TaskOutput{}, err
	}
	if t.Status != model.StatusInProgress {
		return task.TaskOutput{}, task.ErrInvalidTransition
	}
	if input.ActualMinutes < 0 {
		return task.TaskOutput{}, task.ErrInvalidEstimate
	}

	status := model.StatusCompleted
	now := time.Now()
	updated, err := uc.repo.UpdateTask(ctx, repo.UpdateTaskOptions{
		ID:            input.ID,
		Status:        &status,
		ActualEndTime: &now,
		ActualMinutes: &input.ActualMinutes,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Complete UpdateTask: %v", err)
		return task.TaskOutput{}, err
	}

	if err := uc.repo.CloseOpenTimeRecord(ctx, input.ID); err != nil {
		uc.l.Errorf(ctx, "uc.Complete CloseOpenTimeRecord: %v", err)
		return task.TaskOutput{}, err
	}

	return uc.buildOutput(ctx, updated)
}
