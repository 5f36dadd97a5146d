package postgre

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"task-scheduler/internal/model"
	repo "task-scheduler/internal/task/repository"
)

// OpenTimeRecord appends a new work session with start time NOW.
func (r *implRepository) OpenTimeRecord(ctx context.Context, taskID string) (model.TimeRecord, error) {
	const query = `
		INSERT INTO time_records (id, task_id, start_time, created_at)
		VALUES ($1, $2, NOW(), NOW())
		RETURNING id, task_id, start_time, end_time, created_at`

	var rec model.TimeRecord
	var endTime sql.NullTime
	err := r.db.QueryRowContext(ctx, query, uuid.NewString(), taskID).Scan(
		&rec.ID, &rec.TaskID, &rec.StartTime, &endTime, &rec.CreatedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("OpenTimeRecord"), err)
		return model.TimeRecord{}, repo.ErrFailedToInsert
	}
	if endTime.Valid {
		rec.EndTime = &endTime.Time
	}
	return rec, nil
}

// CloseOpenTimeRecord stamps end_time on the task's open session, if any.
// A task without an open session is not an error.
func (r *implRepository) CloseOpenTimeRecord(ctx context.Context, taskID string) error {
	const query = `UPDATE time_records SET end_time = NOW() WHERE task_id = $1 AND end_time IS NULL`
	if _, err := r.db.ExecContext(ctx, query, taskID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CloseOpenTimeRecord"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}

// ListTimeRecords returns all sessions of a task ordered by start time.
func (r *implRepository) ListTimeRecords(ctx context.Context, taskID string) ([]model.TimeRecord, error) {
	const query = `
		SELECT id, task_id, start_time, end_time, created_at
		FROM time_records WHERE task_id = $1 ORDER BY start_time ASC`

	rows, err := r.db.QueryContext(ctx, query, taskID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTimeRecords"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var records []model.TimeRecord
	for rows.Next() {
		var rec model.TimeRecord
		var endTime sql.NullTime
		if err := rows.Scan(&rec.ID, &rec.TaskID, &rec.StartTime, &endTime, &rec.CreatedAt); err != nil {
			return nil, repo.ErrFailedToList
		}
		if endTime.Valid {
			rec.EndTime = &endTime.Time
		}
		records = append(records, rec)
	}
	return records, nil
}
