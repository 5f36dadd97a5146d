package ghactions

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

const (
	defaultBaseURL = "https://api.github.com"
	userAgent      = "task-scheduler-ci-monitor"

	// Unauthenticated GitHub API access allows 60 requests/hour; the limiter
	// spaces calls out far below both that and the authenticated secondary
	// limits.
	requestsPerSecond = 2
	requestBurst      = 1
)

// Client is the HTTP wrapper for the GitHub Actions REST API.
// All calls go through a shared rate limiter.
type Client struct {
	baseURL    string
	owner      string
	repo       string
	token      string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a new GitHub Actions client for one repository.
// Token is optional; without it the client runs against public-repo limits.
func NewClient(owner, repo, token string) *Client {
	return &Client{
		baseURL:    defaultBaseURL,
		owner:      owner,
		repo:       repo,
		token:      token,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		limiter:    rate.NewLimiter(rate.Limit(requestsPerSecond), requestBurst),
	}
}

// WithBaseURL overrides the API base URL. Intended for tests.
func (c *Client) WithBaseURL(baseURL string) *Client {
	c.baseURL = baseURL
	return c
}

// ListWorkflowRuns fetches runs of a workflow, most recent first.
func (c *Client) ListWorkflowRuns(ctx context.Context, opt ListRunsOptions) ([]WorkflowRun, error) {
	q := url.Values{}
	if opt.Status != "" {
		q.Set("status", opt.Status)
	}
	if opt.PerPage > 0 {
		q.Set("per_page", fmt.Sprintf("%d", opt.PerPage))
	}

	endpoint := fmt.Sprintf("%s/repos/%s/%s/actions/workflows/%s/runs?%s",
		c.baseURL, c.owner, c.repo, url.PathEscape(opt.Workflow), q.Encode())

	var out listRunsResponse
	if err := c.get(ctx, endpoint, &out); err != nil {
		return nil, fmt.Errorf("failed to list workflow runs: %w", err)
	}
	return out.WorkflowRuns, nil
}

// ListRunJobs fetches the jobs of a single workflow run.
func (c *Client) ListRunJobs(ctx context.Context, runID int64) ([]Job, error) {
	endpoint := fmt.Sprintf("%s/repos/%s/%s/actions/runs/%d/jobs", c.baseURL, c.owner, c.repo, runID)

	var out listJobsResponse
	if err := c.get(ctx, endpoint, &out); err != nil {
		return nil, fmt.Errorf("failed to list jobs for run %d: %w", runID, err)
	}
	return out.Jobs, nil
}

func (c *Client) get(ctx context.Context, endpoint string, v any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("User-Agent", userAgent)
	if c.token != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.token))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call GitHub API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("GitHub API error %d: %s", resp.StatusCode, string(raw))
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("failed to decode GitHub API response: %w", err)
	}
	return nil
}
