package ciperf

import "time"

// Trend classifies recent run durations against the older baseline.
const (
	TrendStable    = "stable"
	TrendImproving = "improving"
	TrendDegrading = "degrading"
	TrendNoData    = "no-data"
)

// Thresholds controls optimality and alerting.
type Thresholds struct {
	// TotalTime is the duration warning threshold in seconds.
	TotalTime int
	// CacheHitRate is the minimum acceptable cache hit rate in percent.
	CacheHitRate float64
	// DegradationPercent is the trend sensitivity in percent.
	DegradationPercent float64
}

// DefaultThresholds returns the standard 5 minute / 85% / 20% settings.
func DefaultThresholds() Thresholds {
	return Thresholds{
		TotalTime:          300,
		CacheHitRate:       85,
		DegradationPercent: 20,
	}
}

// CacheStep is one cache-related step observed in a run's jobs.
type CacheStep struct {
	Name       string `json:"name"`
	Conclusion string `json:"conclusion"`
	Duration   int    `json:"duration"`
	Hit        bool   `json:"isHit"`
}

// CacheAnalysis summarizes the cache effectiveness of one run.
type CacheAnalysis struct {
	TotalSteps int         `json:"totalSteps"`
	Hits       int         `json:"hits"`
	HitRate    float64     `json:"hitRate"`
	Details    []CacheStep `json:"details"`
}

// RunAnalysis is the per-run record the aggregator works on.
type RunAnalysis struct {
	RunID               int64         `json:"runId"`
	RunNumber           int           `json:"runNumber"`
	Branch              string        `json:"branch"`
	Event               string        `json:"event"`
	Conclusion          string        `json:"conclusion"`
	CreatedAt           time.Time     `json:"createdAt"`
	Duration            int           `json:"duration"` // seconds
	DurationMinutes     float64       `json:"durationMinutes"`
	TestJobDuration     int           `json:"testJobDuration"`
	SecurityJobDuration int           `json:"securityJobDuration"`
	Cache               CacheAnalysis `json:"cache"`
	IsOptimal           bool          `json:"isOptimal"`
}

// Alert is a threshold violation surfaced by Summarize.
type Alert struct {
	Type     string `json:"type"` // "warning" or "error"
	Category string `json:"category"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
}

// Summary is the aggregate view over the analyzed runs.
type Summary struct {
	TotalRuns          int       `json:"totalRuns"`
	AvgDuration        int       `json:"avgDuration"` // seconds, rounded
	AvgDurationMinutes float64   `json:"avgDurationMinutes"`
	AvgCacheHitRate    float64   `json:"avgCacheHitRate"`
	FastestRun         int       `json:"fastestRun"`
	SlowestRun         int       `json:"slowestRun"`
	OptimalRuns        int       `json:"optimalRuns"`
	OptimalRate        int       `json:"optimalRate"` // percent, rounded
	Trend              string    `json:"trend"`
	RecentAvgDuration  int       `json:"recentAvgDuration"`
	Alerts             []Alert   `json:"alerts"`
	AnalyzedAt         time.Time `json:"analyzedAt"`
}

// HasCriticalAlert reports whether any alert is error-severity.
func (s Summary) HasCriticalAlert() bool {
	for _, a := range s.Alerts {
		if a.Type == "error" {
			return true
		}
	}
	return false
}
