package postgre

import (
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"

	repo "task-scheduler/internal/task/repository"
)

// buildGetOneQuery builds WHERE clause + args for GetOneTask.
// All non-empty fields are applied as AND conditions.
func (r *implRepository) buildGetOneQuery(opt repo.GetOneTaskOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.ID != "" {
		conditions = append(conditions, fmt.Sprintf("id = $%d", idx))
		args = append(args, opt.ID)
		idx++
	}
	if opt.UserID != "" {
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", idx))
		args = append(args, opt.UserID)
		idx++
	}
	if opt.RoutineID != "" {
		conditions = append(conditions, fmt.Sprintf("routine_id = $%d", idx))
		args = append(args, opt.RoutineID)
		idx++
	}
	if opt.PlannedDate != nil {
		conditions = append(conditions, fmt.Sprintf("planned_date = $%d", idx))
		args = append(args, *opt.PlannedDate)
		idx++
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildListQuery builds WHERE clause + args for ListTasks.
func (r *implRepository) buildListQuery(opt repo.ListTasksOptions) (string, []any) {
	conditions := []string{"user_id = $1"}
	args := []any{opt.UserID}
	idx := 2

	if opt.DateFrom != nil && opt.DateTo != nil {
		conditions = append(conditions, fmt.Sprintf("planned_date >= $%d AND planned_date < $%d", idx, idx+1))
		args = append(args, *opt.DateFrom, *opt.DateTo)
		idx += 2
	}
	if opt.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", idx))
		args = append(args, opt.Status)
		idx++
	}

	return strings.Join(conditions, " AND "), args
}

// buildUpdateQuery builds the SET clause + args for UpdateTask from the
// non-nil fields only. updated_at is always included.
func (r *implRepository) buildUpdateQuery(opt repo.UpdateTaskOptions) (string, []any) {
	var sets []string
	var args []any
	idx := 1

	add := func(column string, value any) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, idx))
		args = append(args, value)
		idx++
	}

	if opt.Title != nil {
		add("title", *opt.Title)
	}
	if opt.Description != nil {
		add("description", *opt.Description)
	}
	if opt.Category != nil {
		add("category", *opt.Category)
	}
	if opt.PlannedDate != nil {
		add("planned_date", *opt.PlannedDate)
	}
	if opt.PlannedStartTime != nil {
		add("planned_start_time", *opt.PlannedStartTime)
	}
	if opt.EstimatedMinutes != nil {
		add("estimated_minutes", *opt.EstimatedMinutes)
	}
	if opt.Priority != nil {
		add("priority", *opt.Priority)
	}
	if opt.Importance != nil {
		add("importance", *opt.Importance)
	}
	if opt.Status != nil {
		add("status", *opt.Status)
	}
	if opt.Tags != nil {
		add("tags", pq.Array(*opt.Tags))
	}
	if opt.Notes != nil {
		add("notes", *opt.Notes)
	}
	if opt.ActualStartTime != nil {
		add("actual_start_time", *opt.ActualStartTime)
	}
	if opt.ActualEndTime != nil {
		add("actual_end_time", *opt.ActualEndTime)
	}
	if opt.ActualMinutes != nil {
		add("actual_minutes", *opt.ActualMinutes)
	}
	if opt.Interruptions != nil {
		add("interruptions", *opt.Interruptions)
	}

	add("updated_at", time.Now())
	return strings.Join(sets, ", "), args
}
