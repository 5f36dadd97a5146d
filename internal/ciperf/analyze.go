package ciperf

import (
	"math"
	"strings"
	"time"

	"task-scheduler/pkg/ghactions"
)

// cacheHitNames marks the caches whose restore success counts as a hit.
var cacheHitNames = []string{"npm", "playwright", "next", "prisma", "go", "docker"}

// AnalyzeCacheEffectiveness inspects a run's job steps and classifies the
// cache-related ones. "Post" cleanup steps are ignored.
func AnalyzeCacheEffectiveness(jobs []ghactions.Job) CacheAnalysis {
	var steps []CacheStep
	for _, job := range jobs {
		for _, step := range job.Steps {
			name := strings.ToLower(step.Name)
			if !strings.Contains(name, "cache") || strings.Contains(name, "post") {
				continue
			}
			steps = append(steps, CacheStep{
				Name:       step.Name,
				Conclusion: step.Conclusion,
				Duration:   stepDuration(step.StartedAt, step.CompletedAt),
				Hit:        step.Conclusion == "success" && matchesCacheName(name),
			})
		}
	}

	analysis := CacheAnalysis{TotalSteps: len(steps), Details: steps}
	for _, s := range steps {
		if s.Hit {
			analysis.Hits++
		}
	}
	if analysis.TotalSteps > 0 {
		rate := float64(analysis.Hits) / float64(analysis.TotalSteps) * 100
		analysis.HitRate = math.Round(rate*100) / 100
	}
	return analysis
}

func matchesCacheName(name string) bool {
	for _, key := range cacheHitNames {
		if strings.Contains(name, key) {
			return true
		}
	}
	return false
}

func stepDuration(start, end time.Time) int {
	if start.IsZero() || end.IsZero() {
		return 0
	}
	return int(math.Round(end.Sub(start).Seconds()))
}

// AnalyzeRun folds one workflow run plus its jobs into a RunAnalysis.
func AnalyzeRun(run ghactions.WorkflowRun, jobs []ghactions.Job, th Thresholds) RunAnalysis {
	duration := stepDuration(run.RunStartedAt, run.UpdatedAt)
	cache := AnalyzeCacheEffectiveness(jobs)

	analysis := RunAnalysis{
		RunID:           run.ID,
		RunNumber:       run.RunNumber,
		Branch:          run.HeadBranch,
		Event:           run.Event,
		Conclusion:      run.Conclusion,
		CreatedAt:       run.CreatedAt,
		Duration:        duration,
		DurationMinutes: math.Round(float64(duration)/60*100) / 100,
		Cache:           cache,
		IsOptimal:       duration <= th.TotalTime && cache.HitRate >= th.CacheHitRate,
	}

	for _, job := range jobs {
		switch job.Name {
		case "Test":
			analysis.TestJobDuration = stepDuration(job.StartedAt, job.CompletedAt)
		case "Security Scan":
			analysis.SecurityJobDuration = stepDuration(job.StartedAt, job.CompletedAt)
		}
	}
	return analysis
}
