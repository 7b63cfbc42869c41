// Package clock holds context-aware waiting helpers for background loops.
package clock

import (
	"context"
	"time"
)

// SleepWithContext waits for the duration or returns early if the context is canceled.
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

// Backoff doubles a wait from Initial up to Max on every failure.
// The zero value is not usable; set Initial and Max.
type Backoff struct {
	Initial time.Duration
	Max     time.Duration

	current time.Duration
}

// Next returns the wait for the next failed attempt.
func (b *Backoff) Next() time.Duration {
	switch {
	case b.current == 0:
		b.current = b.Initial
	case b.current < b.Max:
		b.current *= 2
	}
	if b.current > b.Max {
		b.current = b.Max
	}
	return b.current
}

// Reset starts the sequence over after a success.
func (b *Backoff) Reset() {
	b.current = 0
}
