package ciperf

import (
	"context"
	"fmt"

	"task-scheduler/pkg/ghactions"
	"task-scheduler/pkg/log"
)

const defaultMaxRuns = 50

// Collector fetches completed workflow runs and folds each into a
// RunAnalysis. The GitHub client rate-limits between calls.
type Collector struct {
	client     *ghactions.Client
	l          log.Logger
	workflow   string
	maxRuns    int
	thresholds Thresholds
}

// NewCollector creates a Collector for one workflow file (e.g. "ci.yml").
func NewCollector(client *ghactions.Client, l log.Logger, workflow string, th Thresholds) *Collector {
	return &Collector{
		client:     client,
		l:          l,
		workflow:   workflow,
		maxRuns:    defaultMaxRuns,
		thresholds: th,
	}
}

// Collect fetches the recent completed runs and analyzes each one. A listing
// failure is fatal; a per-run job fetch failure only skips that run.
func (c *Collector) Collect(ctx context.Context) ([]RunAnalysis, error) {
	runs, err := c.client.ListWorkflowRuns(ctx, ghactions.ListRunsOptions{
		Workflow: c.workflow,
		Status:   "completed",
		PerPage:  c.maxRuns,
	})
	if err != nil {
		return nil, fmt.Errorf("list workflow runs: %w", err)
	}
	c.l.Infof(ctx, "ciperf: found %d completed workflow runs", len(runs))

	var analyses []RunAnalysis
	for _, run := range runs {
		jobs, err := c.client.ListRunJobs(ctx, run.ID)
		if err != nil {
			c.l.Warnf(ctx, "ciperf: skipping run #%d: %v", run.RunNumber, err)
			continue
		}
		analyses = append(analyses, AnalyzeRun(run, jobs, c.thresholds))
	}
	return analyses, nil
}
