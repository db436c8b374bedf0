// File: internal/common/timeout.go
package common

import (
	"context"
	"time"
)

// RaceTimeout runs load with a deadline. If the deadline passes before the
// load finishes, the fallback value is returned with ok=false and the load's
// eventual result is discarded, so a stalled network cannot hold a loading
// indicator open indefinitely.
func RaceTimeout[T any](ctx context.Context, timeout time.Duration, fallback T, load func(ctx context.Context) (T, error)) (T, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type result struct {
		value T
		err   error
	}
	done := make(chan result, 1)
	go func() {
		v, err := load(ctx)
		done <- result{value: v, err: err}
	}()

	select {
	case r := <-done:
		if r.err != nil {
			return fallback, false, r.err
		}
		return r.value, true, nil
	case <-ctx.Done():
		return fallback, false, nil
	}
}
