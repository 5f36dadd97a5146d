package tracker

import (
	"fmt"
	"time"
)

// Progress is a point-in-time view of a running work session measured
// against the task's estimate.
type Progress struct {
	ElapsedSeconds int
	ElapsedMinutes int // floor of elapsed seconds / 60

	// Percent is capped at 100 for display. RawPercent keeps going.
	Percent    int
	RawPercent int

	// Overrun is set once elapsed time exceeds the estimate.
	// OverMinutes is how far past the estimate the session is.
	Overrun     bool
	OverMinutes int
}

// Compute measures the session that started at `start` as of `now` against
// an estimate in minutes. A zero or negative estimate yields zero percent
// and never flags an overrun.
func Compute(start, now time.Time, estimatedMinutes int) Progress {
	elapsed := now.Sub(start)
	if elapsed < 0 {
		elapsed = 0
	}

	p := Progress{
		ElapsedSeconds: int(elapsed / time.Second),
	}
	p.ElapsedMinutes = p.ElapsedSeconds / 60

	if estimatedMinutes <= 0 {
		return p
	}

	p.RawPercent = p.ElapsedMinutes * 100 / estimatedMinutes
	p.Percent = p.RawPercent
	if p.Percent > 100 {
		p.Percent = 100
	}
	if p.ElapsedMinutes > estimatedMinutes {
		p.Overrun = true
		p.OverMinutes = p.ElapsedMinutes - estimatedMinutes
	}
	return p
}

// FormatElapsed renders a duration as h:mm:ss, or m:ss under an hour.
func FormatElapsed(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
