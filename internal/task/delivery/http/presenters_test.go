package http

import (
	"testing"
	"time"

	"task-scheduler/internal/model"
	"task-scheduler/internal/task"
)

func TestTaskRespProgress(t *testing.T) {
	t.Run("In Progress Task Carries Progress", func(t *testing.T) {
		started := time.Now().Add(-35 * time.Minute)
		out := task.TaskOutput{Task: model.Task{
			ID:               "task-1",
			Status:           model.StatusInProgress,
			ActualStartTime:  &started,
			EstimatedMinutes: 30,
		}}

		resp := newTaskResp(out)
		if resp.Progress == nil {
			t.Fatal("expected progress on an in-progress task")
		}
		if resp.Progress.ProgressPercent != 100 {
			t.Errorf("ProgressPercent = %d, want 100", resp.Progress.ProgressPercent)
		}
		if !resp.Progress.Overrun {
			t.Error("expected overrun flag")
		}
		if resp.Progress.OverMinutes != 5 {
			t.Errorf("OverMinutes = %d, want 5", resp.Progress.OverMinutes)
		}
	})

	t.Run("Pending Task Has No Progress", func(t *testing.T) {
		out := task.TaskOutput{Task: model.Task{
			ID:               "task-2",
			Status:           model.StatusPending,
			EstimatedMinutes: 30,
		}}

		if resp := newTaskResp(out); resp.Progress != nil {
			t.Error("expected no progress before the task starts")
		}
	})
}
