package usecase

import (
	"context"

	"task-scheduler/internal/model"
	"task-scheduler/internal/task"
	repo "task-scheduler/internal/task/repository"
)

// buildOutput assembles the full task view: linked routine (if any) and the
// ordered work session log.
func (uc *implUseCase) buildOutput(ctx context.Context, t model.Task) (task.TaskOutput, error) {
	out := task.TaskOutput{Task: t}

	if t.RoutineID != "" {
		routine, err := uc.repo.GetTaskRoutine(ctx, t.RoutineID)
		if err != nil {
			uc.l.Errorf(ctx, "uc.buildOutput GetTaskRoutine: %v", err)
			return task.TaskOutput{}, err
		}
		if routine.ID != "" {
			out.Routine = &routine
		}
	}

	records, err := uc.repo.ListTimeRecords(ctx, t.ID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.buildOutput ListTimeRecords: %v", err)
		return task.TaskOutput{}, err
	}
	out.Records = records
	out.RecordCount = len(records)

	return out, nil
}

// getOwnedTask fetches a task scoped to the caller. A task owned by another
// user resolves to ErrTaskNotFound, not a permission error.
func (uc *implUseCase) getOwnedTask(ctx context.Context, userID, id string) (model.Task, error) {
	t, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: id, UserID: userID})
	if err != nil {
		return model.Task{}, err
	}
	if t.ID == "" {
		return model.Task{}, task.ErrTaskNotFound
	}
	return t, nil
}
