package tracker

import (
	"context"
	"time"
)

// Ticker pushes a fresh Progress snapshot every second while a session is
// running. Stop (or cancelling the context) ends the stream and closes the
// channel.
type Ticker struct {
	C      <-chan Progress
	cancel context.CancelFunc
}

// Stop ends the stream. Safe to call more than once.
func (t *Ticker) Stop() {
	t.cancel()
}

// NewTicker starts a once-per-second Progress stream for a session that
// started at `start` against an estimate in minutes.
func NewTicker(ctx context.Context, start time.Time, estimatedMinutes int) *Ticker {
	ctx, cancel := context.WithCancel(ctx)
	ch := make(chan Progress, 1)

	go func() {
		defer close(ch)
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				select {
				case ch <- Compute(start, now, estimatedMinutes):
				default: // slow consumer, drop the tick
				}
			}
		}
	}()

	return &Ticker{C: ch, cancel: cancel}
}
