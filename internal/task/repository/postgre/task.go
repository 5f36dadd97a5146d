package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"task-scheduler/internal/model"
	repo "task-scheduler/internal/task/repository"
)

const taskColumns = `id, user_id, routine_id, title, description, category, planned_date,
	planned_start_time, estimated_minutes, priority, importance, status, tags, notes,
	actual_start_time, actual_end_time, actual_minutes, interruptions, created_at, updated_at`

func scanTask(row interface{ Scan(...any) error }) (model.Task, error) {
	var t model.Task
	var routineID, description, category, notes sql.NullString
	var plannedStart, actualStart, actualEnd sql.NullTime
	err := row.Scan(
		&t.ID, &t.UserID, &routineID, &t.Title, &description, &category, &t.PlannedDate,
		&plannedStart, &t.EstimatedMinutes, &t.Priority, &t.Importance, &t.Status,
		pq.Array(&t.Tags), &notes, &actualStart, &actualEnd, &t.ActualMinutes,
		&t.Interruptions, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return model.Task{}, err
	}
	t.RoutineID = routineID.String
	t.Description = description.String
	t.Category = category.String
	t.Notes = notes.String
	if plannedStart.Valid {
		t.PlannedStartTime = &plannedStart.Time
	}
	if actualStart.Valid {
		t.ActualStartTime = &actualStart.Time
	}
	if actualEnd.Valid {
		t.ActualEndTime = &actualEnd.Time
	}
	return t, nil
}

// CreateTask inserts a new Task row and returns the created entity.
// A (routine_id, planned_date) collision maps to ErrDuplicateRoutineTask.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	query := fmt.Sprintf(`
		INSERT INTO tasks (id, user_id, routine_id, title, description, category, planned_date,
			planned_start_time, estimated_minutes, priority, importance, status, tags,
			created_at, updated_at)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW(), NOW())
		RETURNING %s`, taskColumns)

	tags := opt.Tags
	if tags == nil {
		tags = []string{}
	}

	row := r.db.QueryRowContext(ctx, query,
		uuid.NewString(), opt.UserID, opt.RoutineID, opt.Title, opt.Description, opt.Category,
		opt.PlannedDate, opt.PlannedStartTime, opt.EstimatedMinutes,
		opt.Priority, opt.Importance, opt.Status, pq.Array(tags),
	)
	task, err := scanTask(row)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return model.Task{}, repo.ErrDuplicateRoutineTask
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}
	return task, nil
}

// GetOneTask retrieves a single Task by the provided filters (AND condition).
// Returns a zero-value Task (ID == "") when not found instead of an error.
func (r *implRepository) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (model.Task, error) {
	mods, args := r.buildGetOneQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM tasks WHERE %s LIMIT 1", taskColumns, mods)

	task, err := scanTask(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return model.Task{}, nil // not found is not an error
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneTask"), err)
		return model.Task{}, repo.ErrFailedToGet
	}
	return task, nil
}

// ListTasks returns the caller's tasks matching the filters, ordered by
// planned start time then creation time, plus the total count.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, int, error) {
	mods, args := r.buildListQuery(opt)

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM tasks WHERE %s", mods)
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}

	query := fmt.Sprintf(
		"SELECT %s FROM tasks WHERE %s ORDER BY planned_start_time ASC NULLS LAST, created_at ASC",
		taskColumns, mods,
	)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, 0, repo.ErrFailedToList
		}
		tasks = append(tasks, task)
	}
	return tasks, total, nil
}

// UpdateTask writes only the non-nil fields of opt and returns the updated
// entity. updated_at is always bumped.
func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
	sets, args := r.buildUpdateQuery(opt)
	query := fmt.Sprintf("UPDATE tasks SET %s WHERE id = $%d RETURNING %s",
		sets, len(args)+1, taskColumns)
	args = append(args, opt.ID)

	task, err := scanTask(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTask"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	return task, nil
}

// DeleteTask removes a Task by ID. Its time records go with it (FK cascade).
func (r *implRepository) DeleteTask(ctx context.Context, id string) error {
	const query = `DELETE FROM tasks WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTask"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
