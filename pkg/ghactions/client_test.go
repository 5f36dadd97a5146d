package ghactions_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"task-scheduler/pkg/ghactions"
)

func TestClient(t *testing.T) {
	mux := http.NewServeMux()

	mux.HandleFunc("/repos/acme/scheduler/actions/workflows/ci.yml/runs", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if r.URL.Query().Get("status") != "completed" {
			t.Errorf("missing status query, got %q", r.URL.RawQuery)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"total_count": 2,
			"workflow_runs": []ghactions.WorkflowRun{
				{ID: 2, RunNumber: 12, Conclusion: "success", RunStartedAt: time.Now().Add(-3 * time.Minute), UpdatedAt: time.Now()},
				{ID: 1, RunNumber: 11, Conclusion: "failure"},
			},
		})
	})

	mux.HandleFunc("/repos/acme/scheduler/actions/runs/2/jobs", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"total_count": 1,
			"jobs": []ghactions.Job{
				{ID: 7, Name: "Test", Conclusion: "success", Steps: []ghactions.Step{
					{Name: "Cache npm dependencies", Conclusion: "success"},
				}},
			},
		})
	})

	mux.HandleFunc("/repos/acme/scheduler/actions/runs/404/jobs", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	ts := httptest.NewServer(mux)
	defer ts.Close()

	client := ghactions.NewClient("acme", "scheduler", "test-token").WithBaseURL(ts.URL)
	ctx := context.Background()

	t.Run("ListWorkflowRuns", func(t *testing.T) {
		runs, err := client.ListWorkflowRuns(ctx, ghactions.ListRunsOptions{
			Workflow: "ci.yml",
			Status:   "completed",
			PerPage:  50,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(runs) != 2 || runs[0].ID != 2 {
			t.Errorf("unexpected runs: %+v", runs)
		}
	})

	t.Run("ListRunJobs", func(t *testing.T) {
		jobs, err := client.ListRunJobs(ctx, 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(jobs) != 1 || jobs[0].Name != "Test" || len(jobs[0].Steps) != 1 {
			t.Errorf("unexpected jobs: %+v", jobs)
		}
	})

	t.Run("ListRunJobs Not Found", func(t *testing.T) {
		if _, err := client.ListRunJobs(ctx, 404); err == nil {
			t.Error("expected error for missing run")
		}
	})
}
