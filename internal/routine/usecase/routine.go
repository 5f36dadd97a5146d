package usecase

import (
	"context"

	"task-scheduler/internal/model"
	"task-scheduler/internal/routine"
	repo "task-scheduler/internal/routine/repository"
)

const (
	defaultRepeatInterval   = 1
	defaultEstimatedMinutes = 60
)

// Create validates and persists a new Routine. Missing interval and
// estimate fall back to sensible defaults; repeat type is mandatory.
func (uc *implUseCase) Create(ctx context.Context, input routine.CreateRoutineInput) (routine.RoutineOutput, error) {
	if input.Title == "" {
		return routine.RoutineOutput{}, routine.ErrMissingTitle
	}
	if !input.RepeatType.Valid() {
		return routine.RoutineOutput{}, routine.ErrInvalidRepeatType
	}

	interval := input.RepeatInterval
	if interval == 0 {
		interval = defaultRepeatInterval
	}
	if interval < 0 {
		return routine.RoutineOutput{}, routine.ErrInvalidInterval
	}

	estimate := input.EstimatedMinutes
	if estimate == 0 {
		estimate = defaultEstimatedMinutes
	}
	if estimate < 0 {
		return routine.RoutineOutput{}, routine.ErrInvalidEstimate
	}

	created, err := uc.repo.CreateRoutine(ctx, repo.CreateRoutineOptions{
		UserID:           input.UserID,
		Title:            input.Title,
		Description:      input.Description,
		RepeatType:       input.RepeatType,
		RepeatInterval:   interval,
		EstimatedMinutes: estimate,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateRoutine: %v", err)
		return routine.RoutineOutput{}, err
	}

	return routine.RoutineOutput{Routine: created}, nil
}

// List returns all of the caller's routines, newest first.
func (uc *implUseCase) List(ctx context.Context, userID string) (routine.ListRoutinesOutput, error) {
	routines, total, err := uc.repo.ListRoutines(ctx, userID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListRoutines: %v", err)
		return routine.ListRoutinesOutput{}, err
	}
	return routine.ListRoutinesOutput{Routines: routines, Total: total}, nil
}

// Detail retrieves a single Routine scoped to the caller.
func (uc *implUseCase) Detail(ctx context.Context, userID, id string) (routine.RoutineOutput, error) {
	rt, err := uc.getOwnedRoutine(ctx, userID, id)
	if err != nil {
		return routine.RoutineOutput{}, err
	}
	return routine.RoutineOutput{Routine: rt}, nil
}

// Update applies only the fields explicitly present in the input.
func (uc *implUseCase) Update(ctx context.Context, input routine.UpdateRoutineInput) (routine.RoutineOutput, error) {
	if _, err := uc.getOwnedRoutine(ctx, input.UserID, input.ID); err != nil {
		return routine.RoutineOutput{}, err
	}

	opt := repo.UpdateRoutineOptions{
		ID:          input.ID,
		Title:       input.Title,
		Description: input.Description,
		Active:      input.Active,
	}

	if input.RepeatType != nil {
		rt := model.RepeatType(*input.RepeatType)
		if !rt.Valid() {
			return routine.RoutineOutput{}, routine.ErrInvalidRepeatType
		}
		opt.RepeatType = &rt
	}
	if input.RepeatInterval != nil {
		if *input.RepeatInterval <= 0 {
			return routine.RoutineOutput{}, routine.ErrInvalidInterval
		}
		opt.RepeatInterval = input.RepeatInterval
	}
	if input.EstimatedMinutes != nil {
		if *input.EstimatedMinutes <= 0 {
			return routine.RoutineOutput{}, routine.ErrInvalidEstimate
		}
		opt.EstimatedMinutes = input.EstimatedMinutes
	}

	updated, err := uc.repo.UpdateRoutine(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateRoutine: %v", err)
		return routine.RoutineOutput{}, err
	}
	if updated.ID == "" {
		return routine.RoutineOutput{}, routine.ErrRoutineNotFound
	}

	return routine.RoutineOutput{Routine: updated}, nil
}

// Delete removes a Routine by ID. Previously generated tasks survive with
// their copied fields.
func (uc *implUseCase) Delete(ctx context.Context, userID, id string) error {
	if _, err := uc.getOwnedRoutine(ctx, userID, id); err != nil {
		return err
	}
	if err := uc.repo.DeleteRoutine(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteRoutine: %v", err)
		return err
	}
	return nil
}

func (uc *implUseCase) getOwnedRoutine(ctx context.Context, userID, id string) (model.Routine, error) {
	rt, err := uc.repo.GetOneRoutine(ctx, repo.GetOneRoutineOptions{ID: id, UserID: userID})
	if err != nil {
		return model.Routine{}, err
	}
	if rt.ID == "" {
		return model.Routine{}, routine.ErrRoutineNotFound
	}
	return rt, nil
}
