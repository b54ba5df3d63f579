package ports

import (
	"context"
	"time"
)

// StateStore is the durable client-side storage port. Each namespace maps to
// one JSON-compatible record. Load must report found=false for a missing or
// malformed record so callers fall back to their default state; it never
// returns an error for expected conditions.
type StateStore interface {
	Save(namespace string, v any) error
	Load(namespace string, v any) (found bool, err error)
	Delete(namespace string) error
}

// WaitFunc models the simulated latency of an external call. The default
// implementation sleeps; tests inject a no-op so nothing blocks.
type WaitFunc func(ctx context.Context, d time.Duration)

// SleepWait waits for d or until the context is cancelled.
func SleepWait(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

// NoWait returns immediately; for tests.
func NoWait(context.Context, time.Duration) {}
