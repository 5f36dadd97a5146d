package ciperf

import "time"

// SyntheticReport is the placeholder served before any real report exists:
// the mock run set summarized with default thresholds.
func SyntheticReport() (Summary, []RunAnalysis) {
	analyses := MockRuns(20)
	summary := Summarize(analyses, DefaultThresholds())
	summary.AnalyzedAt = time.Now()
	return summary, analyses
}
