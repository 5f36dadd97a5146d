package usecase

import (
	"context"
	"testing"
	"time"

	"task-scheduler/internal/model"
	"task-scheduler/internal/task"
	"task-scheduler/pkg/datemath"
	"task-scheduler/pkg/log"
)

func newTestUseCase(t *testing.T, repo *memoryRepo) *implUseCase {
	t.Helper()
	parser, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	return New(repo, parser, log.NoopLogger{})
}

func seedTask(repo *memoryRepo, userID string, status model.TaskStatus) model.Task {
	t, _ := repo.CreateTask(context.Background(), taskSeedOptions(userID))
	t.Status = status
	repo.tasks[t.ID] = t
	return t
}

func TestStart(t *testing.T) {
	ctx := context.Background()

	t.Run("From PENDING", func(t *testing.T) {
		repo := newMemoryRepo()
		uc := newTestUseCase(t, repo)
		seeded := seedTask(repo, "user-1", model.StatusPending)

		out, err := uc.Start(ctx, "user-1", seeded.ID)
		if err != nil {
			t.Fatalf("Start: %v", err)
		}
		if out.Task.Status != model.StatusInProgress {
			t.Errorf("expected IN_PROGRESS, got %s", out.Task.Status)
		}
		if out.Task.ActualStartTime == nil {
			t.Error("expected actualStartTime to be set")
		}
		if out.RecordCount != 1 {
			t.Errorf("expected one open time record, got %d", out.RecordCount)
		}
	})

	t.Run("From PAUSED Keeps First Start Time", func(t *testing.T) {
		repo := newMemoryRepo()
		uc := newTestUseCase(t, repo)
		seeded := seedTask(repo, "user-1", model.StatusPaused)
		firstStart := time.Now().Add(-time.Hour)
		withStart := repo.tasks[seeded.ID]
		withStart.ActualStartTime = &firstStart
		repo.tasks[seeded.ID] = withStart

		out, err := uc.Start(ctx, "user-1", seeded.ID)
		if err != nil {
			t.Fatalf("Start: %v", err)
		}
		if !out.Task.ActualStartTime.Equal(firstStart) {
			t.Errorf("actualStartTime was overwritten: %v", out.Task.ActualStartTime)
		}
	})

	t.Run("From COMPLETED Rejected", func(t *testing.T) {
		repo := newMemoryRepo()
		uc := newTestUseCase(t, repo)
		seeded := seedTask(repo, "user-1", model.StatusCompleted)

		if _, err := uc.Start(ctx, "user-1", seeded.ID); err != task.ErrInvalidTransition {
			t.Errorf("expected ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("Not Owned Is NotFound", func(t *testing.T) {
		repo := newMemoryRepo()
		uc := newTestUseCase(t, repo)
		seeded := seedTask(repo, "user-1", model.StatusPending)

		if _, err := uc.Start(ctx, "user-2", seeded.ID); err != task.ErrTaskNotFound {
			t.Errorf("expected ErrTaskNotFound, got %v", err)
		}
	})
}

func TestPause(t *testing.T) {
	ctx := context.Background()

	t.Run("Increments Interruptions", func(t *testing.T) {
		repo := newMemoryRepo()
		uc := newTestUseCase(t, repo)
		seeded := seedTask(repo, "user-1", model.StatusInProgress)

		out, err := uc.Pause(ctx, "user-1", seeded.ID)
		if err != nil {
			t.Fatalf("Pause: %v", err)
		}
		if out.Task.Status != model.StatusPaused {
			t.Errorf("expected PAUSED, got %s", out.Task.Status)
		}
		if out.Task.Interruptions != 1 {
			t.Errorf("expected 1 interruption, got %d", out.Task.Interruptions)
		}
	})

	t.Run("From PENDING Rejected", func(t *testing.T) {
		repo := newMemoryRepo()
		uc := newTestUseCase(t, repo)
		seeded := seedTask(repo, "user-1", model.StatusPending)

		if _, err := uc.Pause(ctx, "user-1", seeded.ID); err != task.ErrInvalidTransition {
			t.Errorf("expected ErrInvalidTransition, got %v", err)
		}
	})
}

func TestComplete(t *testing.T) {
	ctx := context.Background()

	t.Run("From PENDING Rejected", func(t *testing.T) {
		repo := newMemoryRepo()
		uc := newTestUseCase(t, repo)
		seeded := seedTask(repo, "user-1", model.StatusPending)

		_, err := uc.Complete(ctx, task.CompleteTaskInput{ID: seeded.ID, UserID: "user-1", ActualMinutes: 10})
		if err != task.ErrInvalidTransition {
			t.Errorf("complete is only reachable after start; got %v", err)
		}
	})

	t.Run("Keeps Caller Supplied Minutes", func(t *testing.T) {
		repo := newMemoryRepo()
		uc := newTestUseCase(t, repo)
		seeded := seedTask(repo, "user-1", model.StatusInProgress)

		// 42 focused minutes regardless of wall time elapsed.
		out, err := uc.Complete(ctx, task.CompleteTaskInput{ID: seeded.ID, UserID: "user-1", ActualMinutes: 42})
		if err != nil {
			t.Fatalf("Complete: %v", err)
		}
		if out.Task.Status != model.StatusCompleted {
			t.Errorf("expected COMPLETED, got %s", out.Task.Status)
		}
		if out.Task.ActualMinutes != 42 {
			t.Errorf("expected caller-supplied 42 minutes, got %d", out.Task.ActualMinutes)
		}
		if out.Task.ActualEndTime == nil {
			t.Error("expected actualEndTime to be set")
		}
	})

	t.Run("Negative Minutes Rejected", func(t *testing.T) {
		repo := newMemoryRepo()
		uc := newTestUseCase(t, repo)
		seeded := seedTask(repo, "user-1", model.StatusInProgress)

		_, err := uc.Complete(ctx, task.CompleteTaskInput{ID: seeded.ID, UserID: "user-1", ActualMinutes: -1})
		if err == nil {
			t.Error("expected error for negative actualMinutes")
		}
	})
}
