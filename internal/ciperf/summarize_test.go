package ciperf

import (
	"testing"
	"time"

	"task-scheduler/pkg/ghactions"
)

func runWith(duration int, hitRate float64, conclusion string) RunAnalysis {
	return RunAnalysis{
		Duration:   duration,
		Conclusion: conclusion,
		Cache:      CacheAnalysis{HitRate: hitRate},
	}
}

func TestSummarize(t *testing.T) {
	th := DefaultThresholds()

	t.Run("Empty Input Is No Data", func(t *testing.T) {
		s := Summarize(nil, th)
		if s.Trend != TrendNoData {
			t.Errorf("expected %q trend, got %q", TrendNoData, s.Trend)
		}
		if s.TotalRuns != 0 || s.AvgDuration != 0 || s.AvgCacheHitRate != 0 {
			t.Errorf("empty input must yield zero aggregates: %+v", s)
		}
	})

	t.Run("Uniform Runs Are Stable", func(t *testing.T) {
		var runs []RunAnalysis
		for i := 0; i < 8; i++ {
			runs = append(runs, runWith(141, 88, "success"))
		}
		s := Summarize(runs, th)
		if s.AvgDuration != 141 {
			t.Errorf("expected avgDuration 141, got %d", s.AvgDuration)
		}
		if s.AvgCacheHitRate != 88 {
			t.Errorf("expected avgCacheHitRate 88, got %g", s.AvgCacheHitRate)
		}
		if s.Trend != TrendStable {
			t.Errorf("n<=10 must be stable, got %q", s.Trend)
		}
		if s.OptimalRate != 100 {
			t.Errorf("all runs optimal, expected rate 100, got %d", s.OptimalRate)
		}
		if len(s.Alerts) != 0 {
			t.Errorf("no alerts expected: %+v", s.Alerts)
		}
	})

	t.Run("Recent Faster Than Older Is Improving", func(t *testing.T) {
		// Most-recent-first: 10 runs at 100s, then 5 older at 200s.
		var runs []RunAnalysis
		for i := 0; i < 10; i++ {
			runs = append(runs, runWith(100, 90, "success"))
		}
		for i := 0; i < 5; i++ {
			runs = append(runs, runWith(200, 90, "success"))
		}
		s := Summarize(runs, th)
		if s.Trend != TrendImproving {
			t.Errorf("expected improving, got %q", s.Trend)
		}
		if s.RecentAvgDuration != 100 {
			t.Errorf("expected recent avg 100, got %d", s.RecentAvgDuration)
		}
	})

	t.Run("Recent Slower Than Older Is Degrading", func(t *testing.T) {
		var runs []RunAnalysis
		for i := 0; i < 10; i++ {
			runs = append(runs, runWith(200, 90, "success"))
		}
		for i := 0; i < 5; i++ {
			runs = append(runs, runWith(100, 90, "success"))
		}
		s := Summarize(runs, th)
		if s.Trend != TrendDegrading {
			t.Errorf("expected degrading, got %q", s.Trend)
		}
	})

	t.Run("Slow Average Warns", func(t *testing.T) {
		runs := []RunAnalysis{runWith(400, 90, "success"), runWith(400, 90, "success")}
		s := Summarize(runs, th)
		if !hasAlert(s, "warning", "performance") {
			t.Errorf("expected performance warning: %+v", s.Alerts)
		}
	})

	t.Run("Low Cache Hit Rate Warns", func(t *testing.T) {
		runs := []RunAnalysis{runWith(100, 50, "success")}
		s := Summarize(runs, th)
		if !hasAlert(s, "warning", "cache") {
			t.Errorf("expected cache warning: %+v", s.Alerts)
		}
	})

	t.Run("Three Recent Failures Is An Error", func(t *testing.T) {
		runs := []RunAnalysis{
			runWith(100, 90, "failure"),
			runWith(100, 90, "success"),
			runWith(100, 90, "failure"),
			runWith(100, 90, "failure"),
			runWith(100, 90, "success"),
			runWith(100, 90, "failure"), // sixth run, outside the window
		}
		s := Summarize(runs, th)
		if !hasAlert(s, "error", "reliability") {
			t.Errorf("expected reliability error: %+v", s.Alerts)
		}
		if !s.HasCriticalAlert() {
			t.Error("reliability error must be critical")
		}
	})

	t.Run("Two Recent Failures Is Not", func(t *testing.T) {
		runs := []RunAnalysis{
			runWith(100, 90, "failure"),
			runWith(100, 90, "failure"),
			runWith(100, 90, "success"),
			runWith(100, 90, "success"),
			runWith(100, 90, "success"),
		}
		s := Summarize(runs, th)
		if hasAlert(s, "error", "reliability") {
			t.Errorf("2/5 failures must not raise the error: %+v", s.Alerts)
		}
	})
}

func hasAlert(s Summary, typ, category string) bool {
	for _, a := range s.Alerts {
		if a.Type == typ && a.Category == category {
			return true
		}
	}
	return false
}

func TestAnalyzeCacheEffectiveness(t *testing.T) {
	base := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	jobs := []ghactions.Job{
		{
			Name: "Test",
			Steps: []ghactions.Step{
				{Name: "Cache npm dependencies", Conclusion: "success", StartedAt: base, CompletedAt: base.Add(5 * time.Second)},
				{Name: "Cache playwright browsers", Conclusion: "failure", StartedAt: base, CompletedAt: base.Add(2 * time.Second)},
				{Name: "Post Cache npm dependencies", Conclusion: "success"},
				{Name: "Run tests", Conclusion: "success"},
			},
		},
	}

	analysis := AnalyzeCacheEffectiveness(jobs)
	if analysis.TotalSteps != 2 {
		t.Fatalf("expected 2 cache steps (post step excluded), got %d", analysis.TotalSteps)
	}
	if analysis.Hits != 1 {
		t.Errorf("expected 1 hit, got %d", analysis.Hits)
	}
	if analysis.HitRate != 50 {
		t.Errorf("expected 50%% hit rate, got %g", analysis.HitRate)
	}
	if analysis.Details[0].Duration != 5 {
		t.Errorf("expected 5s step duration, got %d", analysis.Details[0].Duration)
	}
}

func TestAnalyzeRun(t *testing.T) {
	base := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	run := ghactions.WorkflowRun{
		ID:           1,
		RunNumber:    7,
		HeadBranch:   "main",
		Conclusion:   "success",
		RunStartedAt: base,
		UpdatedAt:    base.Add(140 * time.Second),
	}
	jobs := []ghactions.Job{
		{
			Name:        "Test",
			StartedAt:   base,
			CompletedAt: base.Add(100 * time.Second),
			Steps: []ghactions.Step{
				{Name: "Cache npm dependencies", Conclusion: "success", StartedAt: base, CompletedAt: base.Add(time.Second)},
			},
		},
	}

	a := AnalyzeRun(run, jobs, DefaultThresholds())
	if a.Duration != 140 {
		t.Errorf("expected 140s duration, got %d", a.Duration)
	}
	if a.TestJobDuration != 100 {
		t.Errorf("expected 100s test job duration, got %d", a.TestJobDuration)
	}
	if !a.IsOptimal {
		t.Error("140s with full cache hits should be optimal")
	}
}

func TestMockRuns(t *testing.T) {
	runs := MockRuns(20)
	if len(runs) != 20 {
		t.Fatalf("expected 20 runs, got %d", len(runs))
	}
	failures := 0
	for _, r := range runs {
		if r.Duration < 90 || r.Duration > 210 {
			t.Errorf("duration out of range: %d", r.Duration)
		}
		if r.Cache.HitRate < 80 || r.Cache.HitRate > 100 {
			t.Errorf("hit rate out of range: %g", r.Cache.HitRate)
		}
		if r.Conclusion == "failure" {
			failures++
		}
	}
	if failures != 2 {
		t.Errorf("expected 2 failures in 20 mock runs, got %d", failures)
	}
}
