package usecase

import (
	"task-scheduler/internal/task/repository"
	"task-scheduler/pkg/datemath"
	"task-scheduler/pkg/log"
)

// implUseCase is the private implementation of task.UseCase.
type implUseCase struct {
	repo       repository.Repository
	dateParser *datemath.Parser
	l          log.Logger
}

// New creates a new task UseCase implementation.
func New(repo repository.Repository, dateParser *datemath.Parser, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:       repo,
		dateParser: dateParser,
		l:          l,
	}
}
