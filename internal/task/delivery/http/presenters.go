package http

import (
	"fmt"
	"time"

	"task-scheduler/internal/model"
	"task-scheduler/internal/task"
	"task-scheduler/internal/tracker"
)

// --- Request DTOs ---

type createReq struct {
	UserID string `json:"-"` // populated from the session

	Title            string     `json:"title"            binding:"required,min=1,max=255"`
	Description      string     `json:"description"      binding:"max=2000"`
	Category         string     `json:"category"         binding:"max=255"`
	PlannedDate      string     `json:"plannedDate"      binding:"required"`
	PlannedStartTime *time.Time `json:"plannedStartTime"`
	EstimatedMinutes int        `json:"estimatedMinutes" binding:"required"`
	Priority         string     `json:"priority"         binding:"omitempty,oneof=LOW MEDIUM HIGH URGENT"`
	Importance       string     `json:"importance"       binding:"omitempty,oneof=LOW MEDIUM HIGH CRITICAL"`
	Tags             []string   `json:"tags"`
	RoutineID        string     `json:"routineId"`

	plannedDate time.Time
}

func (r *createReq) validate() error {
	parsed, err := parseDate(r.PlannedDate)
	if err != nil {
		return err
	}
	r.plannedDate = parsed
	return nil
}

func (r *createReq) toInput() task.CreateTaskInput {
	return task.CreateTaskInput{
		UserID:           r.UserID,
		Title:            r.Title,
		Description:      r.Description,
		Category:         r.Category,
		PlannedDate:      r.plannedDate,
		PlannedStartTime: r.PlannedStartTime,
		EstimatedMinutes: r.EstimatedMinutes,
		Priority:         model.Priority(r.Priority),
		Importance:       model.Importance(r.Importance),
		Tags:             r.Tags,
		RoutineID:        r.RoutineID,
	}
}

// ---

type listReq struct {
	UserID string `form:"-"`
	Date   string `form:"date"`
	Status string `form:"status"`
}

func (r listReq) validate() error { return nil }

func (r listReq) toInput() task.ListTasksInput {
	return task.ListTasksInput{
		UserID: r.UserID,
		Date:   r.Date,
		Status: r.Status,
	}
}

// ---

type updateReq struct {
	ID     string `json:"-"` // populated from URI param
	UserID string `json:"-"`

	Title            *string    `json:"title"            binding:"omitempty,min=1,max=255"`
	Description      *string    `json:"description"      binding:"omitempty,max=2000"`
	Category         *string    `json:"category"         binding:"omitempty,max=255"`
	PlannedDate      *string    `json:"plannedDate"`
	PlannedStartTime *time.Time `json:"plannedStartTime"`
	EstimatedMinutes *int       `json:"estimatedMinutes"`
	Priority         *string    `json:"priority"`
	Importance       *string    `json:"importance"`
	Status           *string    `json:"status"`
	Tags             *[]string  `json:"tags"`
	Notes            *string    `json:"notes"`
	ActualStartTime  *time.Time `json:"actualStartTime"`
	ActualEndTime    *time.Time `json:"actualEndTime"`
	ActualMinutes    *int       `json:"actualMinutes"`
	Interruptions    *int       `json:"interruptions"`

	plannedDate *time.Time
}

func (r *updateReq) validate() error {
	if r.PlannedDate != nil {
		parsed, err := parseDate(*r.PlannedDate)
		if err != nil {
			return err
		}
		r.plannedDate = &parsed
	}
	return nil
}

func (r *updateReq) toInput() task.UpdateTaskInput {
	return task.UpdateTaskInput{
		ID:               r.ID,
		UserID:           r.UserID,
		Title:            r.Title,
		Description:      r.Description,
		Category:         r.Category,
		PlannedDate:      r.plannedDate,
		PlannedStartTime: r.PlannedStartTime,
		EstimatedMinutes: r.EstimatedMinutes,
		Priority:         r.Priority,
		Importance:       r.Importance,
		Status:           r.Status,
		Tags:             r.Tags,
		Notes:            r.Notes,
		ActualStartTime:  r.ActualStartTime,
		ActualEndTime:    r.ActualEndTime,
		ActualMinutes:    r.ActualMinutes,
		Interruptions:    r.Interruptions,
	}
}

// ---

type completeReq struct {
	ActualMinutes *int `json:"actualMinutes" binding:"required"`
}

// parseDate accepts "2006-01-02" or a full RFC3339 timestamp.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD or RFC3339", value)
}

// --- Response DTOs ---

type routineRefResp struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	EstimatedMinutes int    `json:"estimatedMinutes"`
}

type timeRecordResp struct {
	ID        string     `json:"id"`
	TaskID    string     `json:"taskId"`
	StartTime time.Time  `json:"startTime"`
	EndTime   *time.Time `json:"endTime,omitempty"`
}

// progressResp reports the running session measured against the estimate.
// Present only while a task is IN_PROGRESS.
type progressResp struct {
	ElapsedSeconds  int    `json:"elapsedSeconds"`
	ElapsedMinutes  int    `json:"elapsedMinutes"`
	ElapsedDisplay  string `json:"elapsedDisplay"`
	ProgressPercent int    `json:"progressPercent"`
	Overrun         bool   `json:"overrun"`
	OverMinutes     int    `json:"overMinutes,omitempty"`
}

type taskResp struct {
	ID               string           `json:"id"`
	UserID           string           `json:"userId"`
	RoutineID        string           `json:"routineId,omitempty"`
	Title            string           `json:"title"`
	Description      string           `json:"description,omitempty"`
	Category         string           `json:"category,omitempty"`
	PlannedDate      time.Time        `json:"plannedDate"`
	PlannedStartTime *time.Time       `json:"plannedStartTime,omitempty"`
	EstimatedMinutes int              `json:"estimatedMinutes"`
	Priority         string           `json:"priority"`
	Importance       string           `json:"importance"`
	Status           string           `json:"status"`
	Tags             []string         `json:"tags"`
	Notes            string           `json:"notes,omitempty"`
	ActualStartTime  *time.Time       `json:"actualStartTime,omitempty"`
	ActualEndTime    *time.Time       `json:"actualEndTime,omitempty"`
	ActualMinutes    int              `json:"actualMinutes"`
	Interruptions    int              `json:"interruptions"`
	Progress         *progressResp    `json:"progress,omitempty"`
	Routine          *routineRefResp  `json:"routine,omitempty"`
	Records          []timeRecordResp `json:"records,omitempty"`
	RecordCount      int              `json:"recordCount"`
	CreatedAt        time.Time        `json:"createdAt"`
	UpdatedAt        time.Time        `json:"updatedAt"`
}

func newTaskResp(out task.TaskOutput) taskResp {
	t := out.Task
	resp := taskResp{
		ID:               t.ID,
		UserID:           t.UserID,
		RoutineID:        t.RoutineID,
		Title:            t.Title,
		Description:      t.Description,
		Category:         t.Category,
		PlannedDate:      t.PlannedDate,
		PlannedStartTime: t.PlannedStartTime,
		EstimatedMinutes: t.EstimatedMinutes,
		Priority:         string(t.Priority),
		Importance:       string(t.Importance),
		Status:           string(t.Status),
		Tags:             t.Tags,
		Notes:            t.Notes,
		ActualStartTime:  t.ActualStartTime,
		ActualEndTime:    t.ActualEndTime,
		ActualMinutes:    t.ActualMinutes,
		Interruptions:    t.Interruptions,
		RecordCount:      out.RecordCount,
		CreatedAt:        t.CreatedAt,
		UpdatedAt:        t.UpdatedAt,
	}
	if resp.Tags == nil {
		resp.Tags = []string{}
	}
	if t.Status == model.StatusInProgress && t.ActualStartTime != nil {
		p := tracker.Compute(*t.ActualStartTime, time.Now(), t.EstimatedMinutes)
		resp.Progress = &progressResp{
			ElapsedSeconds:  p.ElapsedSeconds,
			ElapsedMinutes:  p.ElapsedMinutes,
			ElapsedDisplay:  tracker.FormatElapsed(p.ElapsedSeconds),
			ProgressPercent: p.Percent,
			Overrun:         p.Overrun,
			OverMinutes:     p.OverMinutes,
		}
	}
	if out.Routine != nil {
		resp.Routine = &routineRefResp{
			ID:               out.Routine.ID,
			Title:            out.Routine.Title,
			EstimatedMinutes: out.Routine.EstimatedMinutes,
		}
	}
	for _, rec := range out.Records {
		resp.Records = append(resp.Records, timeRecordResp{
			ID:        rec.ID,
			TaskID:    rec.TaskID,
			StartTime: rec.StartTime,
			EndTime:   rec.EndTime,
		})
	}
	return resp
}

// listItemResp is the list view: no session log embed.
type listResp struct {
	Tasks []taskResp `json:"tasks"`
	Total int        `json:"total"`
}

func newListResp(out task.ListTasksOutput) listResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(task.TaskOutput{Task: t})
	}
	return listResp{Tasks: tasks, Total: out.Total}
}
