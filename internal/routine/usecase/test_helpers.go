package usecase

import (
	"context"
	"fmt"
	"time"

	"task-scheduler/internal/model"
	repo "task-scheduler/internal/routine/repository"
	taskRepo "task-scheduler/internal/task/repository"
)

// memoryRepo is an in-memory repository.Repository used by the tests.
type memoryRepo struct {
	routines map[string]model.Routine
	nextID   int
	failWith error
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{routines: make(map[string]model.Routine)}
}

// routineSeedOptions is a minimal valid create payload for seeding tests.
func routineSeedOptions(userID string) repo.CreateRoutineOptions {
	return repo.CreateRoutineOptions{
		UserID:           userID,
		Title:            "Morning review",
		RepeatType:       model.RepeatDaily,
		RepeatInterval:   1,
		EstimatedMinutes: 30,
	}
}

func (m *memoryRepo) newID() string {
	m.nextID++
	return fmt.Sprintf("routine-%d", m.nextID)
}

func (m *memoryRepo) CreateRoutine(ctx context.Context, opt repo.CreateRoutineOptions) (model.Routine, error) {
	if m.failWith != nil {
		return model.Routine{}, m.failWith
	}
	now := time.Now()
	rt := model.Routine{
		ID:               m.newID(),
		UserID:           opt.UserID,
		Title:            opt.Title,
		Description:      opt.Description,
		RepeatType:       opt.RepeatType,
		RepeatInterval:   opt.RepeatInterval,
		EstimatedMinutes: opt.EstimatedMinutes,
		Active:           true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	m.routines[rt.ID] = rt
	return rt, nil
}

func (m *memoryRepo) GetOneRoutine(ctx context.Context, opt repo.GetOneRoutineOptions) (model.Routine, error) {
	if m.failWith != nil {
		return model.Routine{}, m.failWith
	}
	for _, rt := range m.routines {
		if opt.ID != "" && rt.ID != opt.ID {
			continue
		}
		if opt.UserID != "" && rt.UserID != opt.UserID {
			continue
		}
		return rt, nil
	}
	return model.Routine{}, nil
}

func (m *memoryRepo) ListRoutines(ctx context.Context, userID string) ([]model.Routine, int, error) {
	if m.failWith != nil {
		return nil, 0, m.failWith
	}
	var out []model.Routine
	for _, rt := range m.routines {
		if rt.UserID == userID {
			out = append(out, rt)
		}
	}
	return out, len(out), nil
}

func (m *memoryRepo) UpdateRoutine(ctx context.Context, opt repo.UpdateRoutineOptions) (model.Routine, error) {
	if m.failWith != nil {
		return model.Routine{}, m.failWith
	}
	rt, ok := m.routines[opt.ID]
	if !ok {
		return model.Routine{}, nil
	}
	if opt.Title != nil {
		rt.Title = *opt.Title
	}
	if opt.Description != nil {
		rt.Description = *opt.Description
	}
	if opt.RepeatType != nil {
		rt.RepeatType = *opt.RepeatType
	}
	if opt.RepeatInterval != nil {
		rt.RepeatInterval = *opt.RepeatInterval
	}
	if opt.EstimatedMinutes != nil {
		rt.EstimatedMinutes = *opt.EstimatedMinutes
	}
	if opt.Active != nil {
		rt.Active = *opt.Active
	}
	rt.UpdatedAt = time.Now()
	m.routines[rt.ID] = rt
	return rt, nil
}

func (m *memoryRepo) DeleteRoutine(ctx context.Context, id string) error {
	if m.failWith != nil {
		return m.failWith
	}
	delete(m.routines, id)
	return nil
}

// memoryTaskRepo is the minimal task store the generate flow needs: create
// with duplicate detection and lookup by (routineID, plannedDate).
type memoryTaskRepo struct {
	tasks  map[string]model.Task
	nextID int
}

func newMemoryTaskRepo() *memoryTaskRepo {
	return &memoryTaskRepo{tasks: make(map[string]model.Task)}
}

func (m *memoryTaskRepo) CreateTask(ctx context.Context, opt taskRepo.CreateTaskOptions) (model.Task, error) {
	if opt.RoutineID != "" {
		for _, t := range m.tasks {
			if t.RoutineID == opt.RoutineID && t.PlannedDate.Equal(opt.PlannedDate) {
				return model.Task{}, taskRepo.ErrDuplicateRoutineTask
			}
		}
	}
	m.nextID++
	t := model.Task{
		ID:               fmt.Sprintf("task-%d", m.nextID),
		UserID:           opt.UserID,
		RoutineID:        opt.RoutineID,
		Title:            opt.Title,
		Description:      opt.Description,
		PlannedDate:      opt.PlannedDate,
		EstimatedMinutes: opt.EstimatedMinutes,
		Priority:         opt.Priority,
		Importance:       opt.Importance,
		Status:           opt.Status,
	}
	m.tasks[t.ID] = t
	return t, nil
}

func (m *memoryTaskRepo) GetOneTask(ctx context.Context, opt taskRepo.GetOneTaskOptions) (model.Task, error) {
	for _, t := range m.tasks {
		if opt.ID != "" && t.ID != opt.ID {
			continue
		}
		if opt.UserID != "" && t.UserID != opt.UserID {
			continue
		}
		if opt.RoutineID != "" && t.RoutineID != opt.RoutineID {
			continue
		}
		if opt.PlannedDate != nil && !t.PlannedDate.Equal(*opt.PlannedDate) {
			continue
		}
		return t, nil
	}
	return model.Task{}, nil
}

func (m *memoryTaskRepo) ListTasks(ctx context.Context, opt taskRepo.ListTasksOptions) ([]model.Task, int, error) {
	return nil, 0, nil
}

func (m *memoryTaskRepo) UpdateTask(ctx context.Context, opt taskRepo.UpdateTaskOptions) (model.Task, error) {
	return model.Task{}, nil
}

func (m *memoryTaskRepo) DeleteTask(ctx context.Context, id string) error {
	return nil
}

func (m *memoryTaskRepo) GetTaskRoutine(ctx context.Context, routineID string) (model.Routine, error) {
	return model.Routine{}, nil
}
