package tracker

import (
	"context"
	"testing"
	"time"
)

func TestCompute(t *testing.T) {
	base := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

	t.Run("Halfway Through Estimate", func(t *testing.T) {
		p := Compute(base, base.Add(15*time.Minute), 30)
		if p.Percent != 50 {
			t.Errorf("expected 50%%, got %d", p.Percent)
		}
		if p.ElapsedMinutes != 15 {
			t.Errorf("expected 15 elapsed minutes, got %d", p.ElapsedMinutes)
		}
		if p.Overrun {
			t.Error("no overrun expected at 50%")
		}
	})

	t.Run("Past Estimate Caps At Hundred", func(t *testing.T) {
		// 35 elapsed against a 30 minute estimate.
		p := Compute(base, base.Add(35*time.Minute), 30)
		if p.Percent != 100 {
			t.Errorf("display percent must cap at 100, got %d", p.Percent)
		}
		if p.RawPercent != 116 {
			t.Errorf("expected raw percent 116, got %d", p.RawPercent)
		}
		if !p.Overrun {
			t.Error("expected overrun flag")
		}
		if p.OverMinutes != 5 {
			t.Errorf("expected 5 minutes over, got %d", p.OverMinutes)
		}
	})

	t.Run("Exactly At Estimate Is Not Overrun", func(t *testing.T) {
		p := Compute(base, base.Add(30*time.Minute), 30)
		if p.Percent != 100 {
			t.Errorf("expected 100%%, got %d", p.Percent)
		}
		if p.Overrun {
			t.Error("hitting the estimate exactly is not an overrun")
		}
	})

	t.Run("Elapsed Minutes Floor", func(t *testing.T) {
		p := Compute(base, base.Add(90*time.Second), 30)
		if p.ElapsedMinutes != 1 {
			t.Errorf("expected floor to 1 minute, got %d", p.ElapsedMinutes)
		}
		if p.ElapsedSeconds != 90 {
			t.Errorf("expected 90 seconds, got %d", p.ElapsedSeconds)
		}
	})

	t.Run("Zero Estimate", func(t *testing.T) {
		p := Compute(base, base.Add(10*time.Minute), 0)
		if p.Percent != 0 || p.Overrun {
			t.Errorf("zero estimate must not produce percent or overrun: %+v", p)
		}
	})

	t.Run("Clock Skew Clamps To Zero", func(t *testing.T) {
		p := Compute(base, base.Add(-time.Minute), 30)
		if p.ElapsedSeconds != 0 {
			t.Errorf("negative elapsed must clamp to 0, got %d", p.ElapsedSeconds)
		}
	})
}

func TestFormatElapsed(t *testing.T) {
	cases := []struct {
		seconds int
		want    string
	}{
		{0, "0:00"},
		{59, "0:59"},
		{90, "1:30"},
		{3599, "59:59"},
		{3600, "1:00:00"},
		{3725, "1:02:05"},
	}
	for _, tc := range cases {
		if got := FormatElapsed(tc.seconds); got != tc.want {
			t.Errorf("FormatElapsed(%d) = %q, want %q", tc.seconds, got, tc.want)
		}
	}
}

func TestTicker(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	ticker := NewTicker(ctx, time.Now().Add(-10*time.Minute), 30)
	defer ticker.Stop()

	select {
	case p, ok := <-ticker.C:
		if !ok {
			t.Fatal("stream closed before first tick")
		}
		if p.ElapsedMinutes < 10 {
			t.Errorf("expected at least 10 elapsed minutes, got %d", p.ElapsedMinutes)
		}
	case <-ctx.Done():
		t.Fatal("no tick within timeout")
	}

	ticker.Stop()
	// After Stop the channel drains and closes.
	for range ticker.C {
	}
}
