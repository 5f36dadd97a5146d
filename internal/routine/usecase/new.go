package usecase

import (
	"task-scheduler/internal/routine/repository"
	taskRepo "task-scheduler/internal/task/repository"
	"task-scheduler/pkg/log"
)

// implUseCase is the private implementation of routine.UseCase.
// Generated tasks are written through the task repository so the
// (routine_id, planned_date) uniqueness backstop applies.
type implUseCase struct {
	repo     repository.Repository
	taskRepo taskRepo.TaskRepository
	l        log.Logger
}

// New creates a new routine UseCase implementation.
func New(repo repository.Repository, taskRepo taskRepo.TaskRepository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:     repo,
		taskRepo: taskRepo,
		l:        l,
	}
}
