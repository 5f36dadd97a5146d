package ciperf

import (
	"fmt"
	"math"
	"time"
)

// Summarize aggregates run records into a Summary. Runs must be ordered
// most-recent-first. An empty input yields an explicit no-data result.
func Summarize(runs []RunAnalysis, th Thresholds) Summary {
	if len(runs) == 0 {
		return Summary{Trend: TrendNoData, AnalyzedAt: time.Now()}
	}

	var totalDuration int
	var totalHitRate float64
	fastest, slowest := runs[0].Duration, runs[0].Duration
	optimal := 0
	for _, r := range runs {
		totalDuration += r.Duration
		totalHitRate += r.Cache.HitRate
		if r.Duration < fastest {
			fastest = r.Duration
		}
		if r.Duration > slowest {
			slowest = r.Duration
		}
		if isOptimal(r, th) {
			optimal++
		}
	}

	n := len(runs)
	avgDuration := float64(totalDuration) / float64(n)
	avgHitRate := totalHitRate / float64(n)

	recent := runs[:min(10, n)]
	older := runs[min(10, n):]
	recentAvg := avgDurationOf(recent)

	trend := TrendStable
	if len(older) > 0 {
		olderAvg := avgDurationOf(older)
		change := (recentAvg - olderAvg) / olderAvg * 100
		switch {
		case change > th.DegradationPercent:
			trend = TrendDegrading
		case change < -th.DegradationPercent:
			trend = TrendImproving
		}
	}

	return Summary{
		TotalRuns:          n,
		AvgDuration:        int(math.Round(avgDuration)),
		AvgDurationMinutes: math.Round(avgDuration/60*100) / 100,
		AvgCacheHitRate:    math.Round(avgHitRate*100) / 100,
		FastestRun:         fastest,
		SlowestRun:         slowest,
		OptimalRuns:        optimal,
		OptimalRate:        int(math.Round(float64(optimal) / float64(n) * 100)),
		Trend:              trend,
		RecentAvgDuration:  int(math.Round(recentAvg)),
		Alerts:             buildAlerts(runs, avgDuration, avgHitRate, th),
		AnalyzedAt:         time.Now(),
	}
}

func isOptimal(r RunAnalysis, th Thresholds) bool {
	return r.Duration <= th.TotalTime && r.Cache.HitRate >= th.CacheHitRate
}

func avgDurationOf(runs []RunAnalysis) float64 {
	if len(runs) == 0 {
		return 0
	}
	total := 0
	for _, r := range runs {
		total += r.Duration
	}
	return float64(total) / float64(len(runs))
}

func buildAlerts(runs []RunAnalysis, avgDuration, avgHitRate float64, th Thresholds) []Alert {
	var alerts []Alert

	if avgDuration > float64(th.TotalTime) {
		alerts = append(alerts, Alert{
			Type:     "warning",
			Category: "performance",
			Message: fmt.Sprintf("Average CI duration (%d min) exceeds threshold (%d min)",
				int(math.Round(avgDuration/60)), th.TotalTime/60),
			Severity: "medium",
		})
	}

	if avgHitRate < th.CacheHitRate {
		alerts = append(alerts, Alert{
			Type:     "warning",
			Category: "cache",
			Message: fmt.Sprintf("Cache hit rate (%.2f%%) below optimal threshold (%.0f%%)",
				avgHitRate, th.CacheHitRate),
			Severity: "high",
		})
	}

	failures := 0
	for _, r := range runs[:min(5, len(runs))] {
		if r.Conclusion != "success" {
			failures++
		}
	}
	if failures >= 3 {
		alerts = append(alerts, Alert{
			Type:     "error",
			Category: "reliability",
			Message:  fmt.Sprintf("High failure rate in recent runs (%d/5)", failures),
			Severity: "high",
		})
	}

	return alerts
}
