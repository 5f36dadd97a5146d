package postgre

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"task-scheduler/internal/model"
	repo "task-scheduler/internal/routine/repository"
)

const routineColumns = `id, user_id, title, description, repeat_type, repeat_interval,
	estimated_minutes, active, created_at, updated_at`

func scanRoutine(row interface{ Scan(...any) error }) (model.Routine, error) {
	var rt model.Routine
	var description sql.NullString
	err := row.Scan(
		&rt.ID, &rt.UserID, &rt.Title, &description, &rt.RepeatType, &rt.RepeatInterval,
		&rt.EstimatedMinutes, &rt.Active, &rt.CreatedAt, &rt.UpdatedAt,
	)
	if err != nil {
		return model.Routine{}, err
	}
	rt.Description = description.String
	return rt, nil
}

// CreateRoutine inserts a new Routine row and returns the created entity.
// Routines start active.
func (r *implRepository) CreateRoutine(ctx context.Context, opt repo.CreateRoutineOptions) (model.Routine, error) {
	query := fmt.Sprintf(`
		INSERT INTO routines (id, user_id, title, description, repeat_type, repeat_interval,
			estimated_minutes, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, TRUE, NOW(), NOW())
		RETURNING %s`, routineColumns)

	row := r.db.QueryRowContext(ctx, query,
		uuid.NewString(), opt.UserID, opt.Title, opt.Description,
		opt.RepeatType, opt.RepeatInterval, opt.EstimatedMinutes,
	)
	routine, err := scanRoutine(row)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateRoutine"), err)
		return model.Routine{}, repo.ErrFailedToInsert
	}
	return routine, nil
}

// GetOneRoutine retrieves a single Routine by the provided filters (AND
// condition). Returns zero-value Routine (ID == "") when not found.
func (r *implRepository) GetOneRoutine(ctx context.Context, opt repo.GetOneRoutineOptions) (model.Routine, error) {
	mods, args := r.buildGetOneQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM routines WHERE %s LIMIT 1", routineColumns, mods)

	routine, err := scanRoutine(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return model.Routine{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneRoutine"), err)
		return model.Routine{}, repo.ErrFailedToGet
	}
	return routine, nil
}

// ListRoutines returns all of the caller's routines, newest first, plus the
// total count.
func (r *implRepository) ListRoutines(ctx context.Context, userID string) ([]model.Routine, int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM routines WHERE user_id = $1", userID,
	).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListRoutines"), err)
		return nil, 0, repo.ErrFailedToList
	}

	query := fmt.Sprintf(
		"SELECT %s FROM routines WHERE user_id = $1 ORDER BY created_at DESC",
		routineColumns,
	)
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListRoutines"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	var routines []model.Routine
	for rows.Next() {
		routine, err := scanRoutine(rows)
		if err != nil {
			return nil, 0, repo.ErrFailedToList
		}
		routines = append(routines, routine)
	}
	return routines, total, nil
}

// UpdateRoutine writes only the non-nil fields of opt and returns the
// updated entity. updated_at is always bumped.
func (r *implRepository) UpdateRoutine(ctx context.Context, opt repo.UpdateRoutineOptions) (model.Routine, error) {
	sets, args := r.buildUpdateQuery(opt)
	query := fmt.Sprintf("UPDATE routines SET %s WHERE id = $%d RETURNING %s",
		sets, len(args)+1, routineColumns)
	args = append(args, opt.ID)

	routine, err := scanRoutine(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return model.Routine{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateRoutine"), err)
		return model.Routine{}, repo.ErrFailedToUpdate
	}
	return routine, nil
}

// DeleteRoutine removes a Routine by ID. Generated tasks keep their copied
// fields; only the routine_id link is nulled out (FK SET NULL).
func (r *implRepository) DeleteRoutine(ctx context.Context, id string) error {
	const query = `DELETE FROM routines WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteRoutine"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
