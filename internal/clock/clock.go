// Package clock provides context-aware waiting and retry pacing.
package clock

import (
	"context"
	"time"
)

// SleepWithContext waits for d and returns ctx.Err() if ctx ends first.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Backoff paces retries: each Next doubles the delay from Min up to Max.
// A zero Max leaves the delay uncapped. Min must be positive.
type Backoff struct {
	Min     time.Duration
	Max     time.Duration
	current time.Duration
}

// Next returns the delay before the next retry.
func (b *Backoff) Next() time.Duration {
	if b.current == 0 {
		b.current = b.Min
	} else if next := b.current * 2; next > b.current {
		b.current = next
	}
	if b.Max > 0 && b.current > b.Max {
		b.current = b.Max
	}
	return b.current
}

// Reset restarts the sequence at Min.
func (b *Backoff) Reset() {
	b.current = 0
}
