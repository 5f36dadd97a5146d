package postgre

import (
	"context"
	"database/sql"

	"task-scheduler/internal/model"
	repo "task-scheduler/internal/task/repository"
)

// GetTaskRoutine reads the routine a task links to. Not-found follows the
// zero-value convention.
func (r *implRepository) GetTaskRoutine(ctx context.Context, routineID string) (model.Routine, error) {
	const query = `
		SELECT id, user_id, title, description, repeat_type, repeat_interval,
			estimated_minutes, active, created_at, updated_at
		FROM routines WHERE id = $1 LIMIT 1`

	var routine model.Routine
	var description sql.NullString
	err := r.db.QueryRowContext(ctx, query, routineID).Scan(
		&routine.ID, &routine.UserID, &routine.Title, &description, &routine.RepeatType,
		&routine.RepeatInterval, &routine.EstimatedMinutes, &routine.Active,
		&routine.CreatedAt, &routine.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return model.Routine{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetTaskRoutine"), err)
		return model.Routine{}, repo.ErrFailedToGet
	}
	routine.Description = description.String
	return routine, nil
}
