package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"task-scheduler/internal/middleware"
	"task-scheduler/internal/model"
	"task-scheduler/internal/routine"
	"task-scheduler/pkg/log"
	"task-scheduler/pkg/scope"
)

type mockUseCase struct {
	output   routine.RoutineOutput
	list     routine.ListRoutinesOutput
	genOut   routine.GenerateTaskOutput
	err      error
	lastGen  routine.GenerateTaskInput
	lastCrea routine.CreateRoutineInput
}

func (m *mockUseCase) Create(ctx context.Context, input routine.CreateRoutineInput) (routine.RoutineOutput, error) {
	m.lastCrea = input
	return m.output, m.err
}

func (m *mockUseCase) List(ctx context.Context, userID string) (routine.ListRoutinesOutput, error) {
	return m.list, m.err
}

func (m *mockUseCase) Detail(ctx context.Context, userID, id string) (routine.RoutineOutput, error) {
	return m.output, m.err
}

func (m *mockUseCase) Update(ctx context.Context, input routine.UpdateRoutineInput) (routine.RoutineOutput, error) {
	return m.output, m.err
}

func (m *mockUseCase) Delete(ctx context.Context, userID, id string) error {
	return m.err
}

func (m *mockUseCase) GenerateTask(ctx context.Context, input routine.GenerateTaskInput) (routine.GenerateTaskOutput, error) {
	m.lastGen = input
	return m.genOut, m.err
}

func newTestContext(t *testing.T, method, path string, body any) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req, err := http.NewRequest(method, path, &buf)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	middleware.SetIdentity(c, scope.Payload{UserID: "user-1", Email: "user@example.com"})
	return c, w
}

func TestHandlerCreate(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		uc := &mockUseCase{output: routine.RoutineOutput{Routine: model.Routine{ID: "routine-1", Title: "Morning review"}}}
		h := New(log.NoopLogger{}, uc)

		c, w := newTestContext(t, http.MethodPost, "/api/v1/routines", gin.H{
			"title":      "Morning review",
			"repeatType": "DAILY",
		})
		h.Create(c)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		if uc.lastCrea.UserID != "user-1" {
			t.Errorf("userID not taken from session: %q", uc.lastCrea.UserID)
		}
	})

	t.Run("Bad Repeat Type Rejected By Binding", func(t *testing.T) {
		h := New(log.NoopLogger{}, &mockUseCase{})

		c, w := newTestContext(t, http.MethodPost, "/api/v1/routines", gin.H{
			"title":      "x",
			"repeatType": "HOURLY",
		})
		h.Create(c)

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})
}

func TestHandlerGenerateTask(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		uc := &mockUseCase{genOut: routine.GenerateTaskOutput{Task: model.Task{ID: "task-1", Status: model.StatusPending}}}
		h := New(log.NoopLogger{}, uc)

		c, w := newTestContext(t, http.MethodPost, "/api/v1/routines/routine-1/generate-task", gin.H{
			"plannedDate": "2026-03-14",
		})
		c.Params = gin.Params{{Key: "id", Value: "routine-1"}}
		h.GenerateTask(c)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		if uc.lastGen.RoutineID != "routine-1" {
			t.Errorf("routineID not taken from URI: %q", uc.lastGen.RoutineID)
		}
		want := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
		if !uc.lastGen.PlannedDate.Equal(want) {
			t.Errorf("plannedDate parsed wrong: %v", uc.lastGen.PlannedDate)
		}
	})

	t.Run("Duplicate Is 409", func(t *testing.T) {
		h := New(log.NoopLogger{}, &mockUseCase{err: routine.ErrTaskAlreadyGenerated})

		c, w := newTestContext(t, http.MethodPost, "/api/v1/routines/routine-1/generate-task", gin.H{
			"plannedDate": "2026-03-14",
		})
		c.Params = gin.Params{{Key: "id", Value: "routine-1"}}
		h.GenerateTask(c)

		if w.Code != http.StatusConflict {
			t.Errorf("expected 409, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("Unknown Routine Is 404", func(t *testing.T) {
		h := New(log.NoopLogger{}, &mockUseCase{err: routine.ErrRoutineNotFound})

		c, w := newTestContext(t, http.MethodPost, "/api/v1/routines/nope/generate-task", gin.H{
			"plannedDate": "2026-03-14",
		})
		c.Params = gin.Params{{Key: "id", Value: "nope"}}
		h.GenerateTask(c)

		if w.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", w.Code)
		}
	})

	t.Run("Missing Planned Date", func(t *testing.T) {
		h := New(log.NoopLogger{}, &mockUseCase{})

		c, w := newTestContext(t, http.MethodPost, "/api/v1/routines/routine-1/generate-task", gin.H{})
		c.Params = gin.Params{{Key: "id", Value: "routine-1"}}
		h.GenerateTask(c)

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})
}
