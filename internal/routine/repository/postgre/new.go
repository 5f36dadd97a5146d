package postgre

import (
	"database/sql"
	"fmt"

	"task-scheduler/internal/routine/repository"
	"task-scheduler/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new PostgreSQL-backed Repository for the routine domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("routine/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("routine/repository/postgre.%s", method)
}
