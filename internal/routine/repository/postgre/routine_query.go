package postgre

import (
	"fmt"
	"strings"
	"time"

	repo "task-scheduler/internal/routine/repository"
)

// buildGetOneQuery builds WHERE clause + args for GetOneRoutine.
func (r *implRepository) buildGetOneQuery(opt repo.GetOneRoutineOptions) (string, []any) {
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

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildUpdateQuery builds the SET clause + args for UpdateRoutine from the
// non-nil fields only. updated_at is always included.
func (r *implRepository) buildUpdateQuery(opt repo.UpdateRoutineOptions) (string, []any) {
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
	if opt.RepeatType != nil {
		add("repeat_type", *opt.RepeatType)
	}
	if opt.RepeatInterval != nil {
		add("repeat_interval", *opt.RepeatInterval)
	}
	if opt.EstimatedMinutes != nil {
		add("estimated_minutes", *opt.EstimatedMinutes)
	}
	if opt.Active != nil {
		add("active", *opt.Active)
	}

	add("updated_at", time.Now())
	return strings.Join(sets, ", "), args
}
