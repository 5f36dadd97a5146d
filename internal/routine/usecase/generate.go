package usecase

import (
	"context"
	"time"

	"task-scheduler/internal/model"
	"task-scheduler/internal/routine"
	taskRepo "task-scheduler/internal/task/repository"
)

// GenerateTask materializes a PENDING task from the routine template for the
// given planned day. Template fields are copied at generation time, so later
// routine edits never touch already generated tasks. At most one task exists
// per (routine, day): a concurrent duplicate is caught by the store's unique
// constraint even when the pre-check passes on both sides.
func (uc *implUseCase) GenerateTask(ctx context.Context, input routine.GenerateTaskInput) (routine.GenerateTaskOutput, error) {
	rt, err := uc.getOwnedRoutine(ctx, input.UserID, input.RoutineID)
	if err != nil {
		return routine.GenerateTaskOutput{}, err
	}
	if !rt.Active {
		return routine.GenerateTaskOutput{}, routine.ErrRoutineInactive
	}

	day := startOfDay(input.PlannedDate)

	existing, err := uc.taskRepo.GetOneTask(ctx, taskRepo.GetOneTaskOptions{
		RoutineID:   rt.ID,
		PlannedDate: &day,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.GenerateTask GetOneTask: %v", err)
		return routine.GenerateTaskOutput{}, err
	}
	if existing.ID != "" {
		return routine.GenerateTaskOutput{}, routine.ErrTaskAlreadyGenerated
	}

	created, err := uc.taskRepo.CreateTask(ctx, taskRepo.CreateTaskOptions{
		UserID:           rt.UserID,
		RoutineID:        rt.ID,
		Title:            rt.Title,
		Description:      rt.Description,
		PlannedDate:      day,
		EstimatedMinutes: rt.EstimatedMinutes,
		Priority:         model.PriorityMedium,
		Importance:       model.ImportanceMedium,
		Status:           model.StatusPending,
	})
	if err == taskRepo.ErrDuplicateRoutineTask {
		return routine.GenerateTaskOutput{}, routine.ErrTaskAlreadyGenerated
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.GenerateTask CreateTask: %v", err)
		return routine.GenerateTaskOutput{}, err
	}

	return routine.GenerateTaskOutput{Task: created}, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
