package http

import (
	"fmt"
	"time"

	"task-scheduler/internal/model"
	"task-scheduler/internal/routine"
)

// --- Request DTOs ---

type createReq struct {
	UserID string `json:"-"` // populated from the session

	Title            string `json:"title"            binding:"required,min=1,max=255"`
	Description      string `json:"description"      binding:"max=2000"`
	RepeatType       string `json:"repeatType"       binding:"required,oneof=DAILY WEEKLY MONTHLY"`
	RepeatInterval   int    `json:"repeatInterval"   binding:"omitempty,min=1"`
	EstimatedMinutes int    `json:"estimatedMinutes" binding:"omitempty,min=1"`
}

func (r createReq) toInput() routine.CreateRoutineInput {
	return routine.CreateRoutineInput{
		UserID:           r.UserID,
		Title:            r.Title,
		Description:      r.Description,
		RepeatType:       model.RepeatType(r.RepeatType),
		RepeatInterval:   r.RepeatInterval,
		EstimatedMinutes: r.EstimatedMinutes,
	}
}

// ---

type updateReq struct {
	ID     string `json:"-"` // populated from URI param
	UserID string `json:"-"`

	Title            *string `json:"title"            binding:"omitempty,min=1,max=255"`
	Description      *string `json:"description"      binding:"omitempty,max=2000"`
	RepeatType       *string `json:"repeatType"`
	RepeatInterval   *int    `json:"repeatInterval"`
	EstimatedMinutes *int    `json:"estimatedMinutes"`
	Active           *bool   `json:"active"`
}

func (r updateReq) toInput() routine.UpdateRoutineInput {
	return routine.UpdateRoutineInput{
		ID:               r.ID,
		UserID:           r.UserID,
		Title:            r.Title,
		Description:      r.Description,
		RepeatType:       r.RepeatType,
		RepeatInterval:   r.RepeatInterval,
		EstimatedMinutes: r.EstimatedMinutes,
		Active:           r.Active,
	}
}

// ---

type generateReq struct {
	RoutineID string `json:"-"`
	UserID    string `json:"-"`

	PlannedDate string `json:"plannedDate" binding:"required"`

	plannedDate time.Time
}

func (r *generateReq) validate() error {
	parsed, err := parseDate(r.PlannedDate)
	if err != nil {
		return err
	}
	r.plannedDate = parsed
	return nil
}

func (r generateReq) toInput() routine.GenerateTaskInput {
	return routine.GenerateTaskInput{
		RoutineID:   r.RoutineID,
		UserID:      r.UserID,
		PlannedDate: r.plannedDate,
	}
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

type routineResp struct {
	ID               string     `json:"id"`
	UserID           string     `json:"userId"`
	Title            string     `json:"title"`
	Description      string     `json:"description,omitempty"`
	RepeatType       string     `json:"repeatType"`
	RepeatInterval   int        `json:"repeatInterval"`
	EstimatedMinutes int        `json:"estimatedMinutes"`
	Active           bool       `json:"active"`
	NextOccurrence   *time.Time `json:"nextOccurrence,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

func newRoutineResp(rt model.Routine) routineResp {
	resp := routineResp{
		ID:               rt.ID,
		UserID:           rt.UserID,
		Title:            rt.Title,
		Description:      rt.Description,
		RepeatType:       string(rt.RepeatType),
		RepeatInterval:   rt.RepeatInterval,
		EstimatedMinutes: rt.EstimatedMinutes,
		Active:           rt.Active,
		CreatedAt:        rt.CreatedAt,
		UpdatedAt:        rt.UpdatedAt,
	}
	// Inactive routines are never expanded, so they advertise no next day.
	if rt.Active {
		next := routine.NextOccurrence(rt, time.Now())
		resp.NextOccurrence = &next
	}
	return resp
}

type listResp struct {
	Routines []routineResp `json:"routines"`
	Total    int           `json:"total"`
}

func newListResp(out routine.ListRoutinesOutput) listResp {
	routines := make([]routineResp, len(out.Routines))
	for i, rt := range out.Routines {
		routines[i] = newRoutineResp(rt)
	}
	return listResp{Routines: routines, Total: out.Total}
}

type generatedTaskResp struct {
	ID               string    `json:"id"`
	UserID           string    `json:"userId"`
	RoutineID        string    `json:"routineId"`
	Title            string    `json:"title"`
	Description      string    `json:"description,omitempty"`
	PlannedDate      time.Time `json:"plannedDate"`
	EstimatedMinutes int       `json:"estimatedMinutes"`
	Priority         string    `json:"priority"`
	Importance       string    `json:"importance"`
	Status           string    `json:"status"`
}

func newGeneratedTaskResp(out routine.GenerateTaskOutput) generatedTaskResp {
	t := out.Task
	return generatedTaskResp{
		ID:               t.ID,
		UserID:           t.UserID,
		RoutineID:        t.RoutineID,
		Title:            t.Title,
		Description:      t.Description,
		PlannedDate:      t.PlannedDate,
		EstimatedMinutes: t.EstimatedMinutes,
		Priority:         string(t.Priority),
		Importance:       string(t.Importance),
		Status:           string(t.Status),
	}
}
