package async

import (
	"context"
	"time"
)

// Future represents the eventual result of an asynchronous computation.
// The result fields are written exactly once, before the done channel is
// closed, so reads after <-done are race-free.
type Future[U any] struct {
	result U
	err    error
	done   chan struct{}
}

// Run executes fn in its own goroutine and returns a Future for its result.
// If ctx is already cancelled, fn is not invoked and the future completes
// with the context error.
func Run[U any](ctx context.Context, fn func(context.Context) (U, error)) *Future[U] {
	f := &Future[U]{done: make(chan struct{})}

	go func() {
		defer close(f.done)

		if err := ctx.Err(); err != nil {
			f.err = err
			return
		}

		f.result, f.err = fn(ctx)
	}()

	return f
}

// Completed returns an already-resolved future holding the given result.
func Completed[U any](result U, err error) *Future[U] {
	f := &Future[U]{done: make(chan struct{})}
	f.result = result
	f.err = err
	close(f.done)
	return f
}

// Await blocks until the computation completes and returns its result.
func (f *Future[U]) Await() (U, error) {
	<-f.done
	return f.result, f.err
}

// AwaitTimeout waits for completion up to the given duration.
// Returns ErrTimeout if the future is still pending when it elapses; the
// computation keeps running and can still be awaited later.
func (f *Future[U]) AwaitTimeout(timeout time.Duration) (U, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-time.After(timeout):
		var zero U
		return zero, ErrTimeout
	}
}

// AwaitContext waits for completion or context cancellation, whichever
// comes first. On cancellation the context error is returned and the
// computation keeps running.
func (f *Future[U]) AwaitContext(ctx context.Context) (U, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-ctx.Done():
		var zero U
		return zero, ctx.Err()
	}
}

// Done returns a channel that is closed when the computation completes.
func (f *Future[U]) Done() <-chan struct{} {
	return f.done
}

// IsComplete reports whether the computation has completed without blocking.
func (f *Future[U]) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}
