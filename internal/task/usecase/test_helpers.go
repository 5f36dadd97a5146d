package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"task-scheduler/internal/model"
	repo "task-scheduler/internal/task/repository"
)

// memoryRepo is an in-memory repository.Repository used by the usecase tests.
type memoryRepo struct {
	tasks    map[string]model.Task
	routines map[string]model.Routine
	records  map[string][]model.TimeRecord
	nextID   int
	failWith error
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{
		tasks:    make(map[string]model.Task),
		routines: make(map[string]model.Routine),
		records:  make(map[string][]model.TimeRecord),
	}
}

// taskSeedOptions is a minimal valid create payload for seeding tests.
func taskSeedOptions(userID string) repo.CreateTaskOptions {
	return repo.CreateTaskOptions{
		UserID:           userID,
		Title:            "Deep work block",
		PlannedDate:      time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		EstimatedMinutes: 30,
		Priority:         model.PriorityMedium,
		Importance:       model.ImportanceMedium,
		Status:           model.StatusPending,
	}
}

func (m *memoryRepo) newID() string {
	m.nextID++
	return fmt.Sprintf("id-%d", m.nextID)
}

func (m *memoryRepo) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	if m.failWith != nil {
		return model.Task{}, m.failWith
	}
	if opt.RoutineID != "" {
		for _, t := range m.tasks {
			if t.RoutineID == opt.RoutineID && t.PlannedDate.Equal(opt.PlannedDate) {
				return model.Task{}, repo.ErrDuplicateRoutineTask
			}
		}
	}
	now := time.Now()
	t := model.Task{
		ID:               m.newID(),
		UserID:           opt.UserID,
		RoutineID:        opt.RoutineID,
		Title:            opt.Title,
		Description:      opt.Description,
		Category:         opt.Category,
		PlannedDate:      opt.PlannedDate,
		PlannedStartTime: opt.PlannedStartTime,
		EstimatedMinutes: opt.EstimatedMinutes,
		Priority:         opt.Priority,
		Importance:       opt.Importance,
		Status:           opt.Status,
		Tags:             opt.Tags,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	m.tasks[t.ID] = t
	return t, nil
}

func (m *memoryRepo) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (model.Task, error) {
	if m.failWith != nil {
		return model.Task{}, m.failWith
	}
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

func (m *memoryRepo) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, int, error) {
	if m.failWith != nil {
		return nil, 0, m.failWith
	}
	var out []model.Task
	for _, t := range m.tasks {
		if t.UserID != opt.UserID {
			continue
		}
		if opt.Status != "" && string(t.Status) != opt.Status {
			continue
		}
		if opt.DateFrom != nil && opt.DateTo != nil {
			if t.PlannedDate.Before(*opt.DateFrom) || !t.PlannedDate.Before(*opt.DateTo) {
				continue
			}
		}
		out = append(out, t)
	}
	return out, len(out), nil
}

func (m *memoryRepo) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
	if m.failWith != nil {
		return model.Task{}, m.failWith
	}
	t, ok := m.tasks[opt.ID]
	if !ok {
		return model.Task{}, nil
	}
	if opt.Title != nil {
		t.Title = *opt.Title
	}
	if opt.Description != nil {
		t.Description = *opt.Description
	}
	if opt.Category != nil {
		t.Category = *opt.Category
	}
	if opt.PlannedDate != nil {
		t.PlannedDate = *opt.PlannedDate
	}
	if opt.PlannedStartTime != nil {
		t.PlannedStartTime = opt.PlannedStartTime
	}
	if opt.EstimatedMinutes != nil {
		t.EstimatedMinutes = *opt.EstimatedMinutes
	}
	if opt.Priority != nil {
		t.Priority = *opt.Priority
	}
	if opt.Importance != nil {
		t.Importance = *opt.Importance
	}
	if opt.Status != nil {
		t.Status = *opt.Status
	}
	if opt.Tags != nil {
		t.Tags = *opt.Tags
	}
	if opt.Notes != nil {
		t.Notes = *opt.Notes
	}
	if opt.ActualStartTime != nil {
		t.ActualStartTime = opt.ActualStartTime
	}
	if opt.ActualEndTime != nil {
		t.ActualEndTime = opt.ActualEndTime
	}
	if opt.ActualMinutes != nil {
		t.ActualMinutes = *opt.ActualMinutes
	}
	if opt.Interruptions != nil {
		t.Interruptions = *opt.Interruptions
	}
	t.UpdatedAt = time.Now()
	m.tasks[t.ID] = t
	return t, nil
}

func (m *memoryRepo) DeleteTask(ctx context.Context, id string) error {
	if m.failWith != nil {
		return m.failWith
	}
	if _, ok := m.tasks[id]; !ok {
		return errors.New("missing task")
	}
	delete(m.tasks, id)
	delete(m.records, id)
	return nil
}

func (m *memoryRepo) GetTaskRoutine(ctx context.Context, routineID string) (model.Routine, error) {
	return m.routines[routineID], nil
}

func (m *memoryRepo) OpenTimeRecord(ctx context.Context, taskID string) (model.TimeRecord, error) {
	rec := model.TimeRecord{
		ID:        m.newID(),
		TaskID:    taskID,
		StartTime: time.Now(),
		CreatedAt: time.Now(),
	}
	m.records[taskID] = append(m.records[taskID], rec)
	return rec, nil
}

func (m *memoryRepo) CloseOpenTimeRecord(ctx context.Context, taskID string) error {
	recs := m.records[taskID]
	for i := range recs {
		if recs[i].EndTime == nil {
			now := time.Now()
			recs[i].EndTime = &now
		}
	}
	return nil
}

func (m *memoryRepo) ListTimeRecords(ctx context.Context, taskID string) ([]model.TimeRecord, error) {
	return m.records[taskID], nil
}
