// Package tasks runs simulated long-running operations (integration
// connects, slow exports) behind an awaitable, cancellable interface instead
// of bare timers.
package tasks

import (
	"context"
	"time"
)

// Runner executes named tasks after a fixed delay modelling external-call
// latency. Fail, when set, injects a failure for the named task; tests use it
// to exercise error paths deterministically.
type Runner struct {
	Delay time.Duration
	Fail  func(name string) error
}

// Run waits the configured delay, then executes fn. Cancelling ctx during
// the wait aborts the task. The returned channel receives exactly one result
// and is buffered, so callers may also fire and forget.
func (r *Runner) Run(ctx context.Context, name string, fn func() error) <-chan error {
	done := make(chan error, 1)
	go func() {
		if r.Delay > 0 {
			t := time.NewTimer(r.Delay)
			defer t.Stop()
			select {
			case <-ctx.Done():
				done <- ctx.Err()
				return
			case <-t.C:
			}
		}
		if err := ctx.Err(); err != nil {
			done <- err
			return
		}
		if r.Fail != nil {
			if err := r.Fail(name); err != nil {
				done <- err
				return
			}
		}
		done <- fn()
	}()
	return done
}

// Await blocks until the task finishes or ctx is cancelled.
func Await(ctx context.Context, done <-chan error) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		return err
	}
}
