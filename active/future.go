package active

import (
	"context"
	"sync"
)

// Future holds the deferred outcome of one asynchronous computation. The
// outcome is set exactly once; every accessor observes the same cached
// value and error once it is set.
//
// Type parameters:
//   - R: The result type produced by the computation
type Future[R any] struct {
	once  sync.Once
	done  chan struct{} // closed once the outcome is set
	value R
	err   error
}

func newFuture[R any]() *Future[R] {
	return &Future[R]{done: make(chan struct{})}
}

// complete records the terminal outcome. Only the first call wins; later
// calls are no-ops.
func (f *Future[R]) complete(value R, err error) {
	f.once.Do(func() {
		f.value = value
		f.err = err
		close(f.done)
	})
}

// Get blocks until the outcome is ready and returns it. It is safe to call
// any number of times, from any goroutine; every call yields the same
// terminal outcome.
func (f *Future[R]) Get() (R, error) {
	<-f.done
	return f.value, f.err
}

// GetWithContext blocks until the outcome is ready or ctx is done. A ready
// outcome always wins over a simultaneously cancelled context; otherwise
// the context error is returned and the computation keeps running.
func (f *Future[R]) GetWithContext(ctx context.Context) (R, error) {
	select {
	case <-f.done:
		return f.value, f.err
	default:
	}

	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero R
		return zero, ctx.Err()
	}
}

// TryGet returns the outcome without blocking. ready reports whether the
// outcome was available; when it is false, value and err are zero.
func (f *Future[R]) TryGet() (value R, err error, ready bool) {
	select {
	case <-f.done:
		return f.value, f.err, true
	default:
		var zero R
		return zero, nil, false
	}
}

// IsReady reports whether the outcome is available without blocking.
func (f *Future[R]) IsReady() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Done returns a channel that is closed once the outcome is ready, for use
// in select statements.
func (f *Future[R]) Done() <-chan struct{} {
	return f.done
}
