package ciperf

import (
	"math/rand"
	"time"
)

// MockRuns builds a deterministic set of plausible run records for offline
// and test use: one run per day, most on main, roughly one failure in ten.
func MockRuns(n int) []RunAnalysis {
	rng := rand.New(rand.NewSource(42))
	now := time.Now()

	runs := make([]RunAnalysis, 0, n)
	for i := 0; i < n; i++ {
		duration := rng.Intn(120) + 90      // 90-210 seconds
		hitRate := float64(rng.Intn(20)+80) // 80-100%

		branch := "main"
		if i%5 == 0 {
			branch = "feature/test"
		}
		conclusion := "success"
		if i%10 == 0 {
			conclusion = "failure"
		}

		runs = append(runs, RunAnalysis{
			RunID:               int64(1000000 + i),
			RunNumber:           n - i,
			Branch:              branch,
			Event:               "push",
			Conclusion:          conclusion,
			CreatedAt:           now.AddDate(0, 0, -i),
			Duration:            duration,
			DurationMinutes:     float64(duration) / 60,
			TestJobDuration:     duration - 30,
			SecurityJobDuration: 45,
			Cache: CacheAnalysis{
				TotalSteps: 4,
				Hits:       int(hitRate * 4 / 100),
				HitRate:    hitRate,
			},
			IsOptimal: duration <= 150 && hitRate >= 85,
		})
	}
	return runs
}
