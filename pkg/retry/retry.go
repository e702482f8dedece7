package retry

import (
	"context"
	"time"
)

// Do runs fn up to attempts times, doubling the delay between tries.
// It returns the last error once attempts are exhausted; callers that
// want degrade-not-fail behavior substitute their own sentinel result.
func Do(ctx context.Context, attempts int, initialDelay time.Duration, fn func() error) error {
	delay := initialDelay
	var err error
	for i := 0; i < attempts; i++ {
		if err = fn(); err == nil {
			return nil
		}
		if i == attempts-1 {
			break
		}
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}
		delay *= 2
	}
	return err
}
