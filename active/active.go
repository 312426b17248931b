package active

import (
	"context"
	"fmt"
	"runtime"
	"sync/atomic"

	"golang.org/x/time/rate"

	"bardscore/internal/exec"
)

// ProcessFunc computes the output for one (key, value) input pair. It must
// be pure from the active object's perspective: no shared mutable state with
// other tasks. The context is the execution's own; it is never cancelled by
// a waiting caller.
//
// Type parameters:
//   - K: The key type identifying the input
//   - V: The input value type
//   - R: The result type
type ProcessFunc[K comparable, V any, R any] func(ctx context.Context, key K, value V) (R, error)

// ActiveObject decouples the invocation of a computation from its
// execution. It wraps one immutable (key, value) input and a processing
// function; Start submits the computation to an executor and returns
// immediately, and Get later blocks for the cached terminal outcome.
//
// Lifecycle: Created on construction, Running once started, then exactly
// one of Completed or Failed. The terminal outcome never changes.
type ActiveObject[K comparable, V any, R any] struct {
	key   K
	value V
	fn    ProcessFunc[K, V, R]

	executor exec.Executor
	limiter  *rate.Limiter
	fut      *Future[R]
	started  atomic.Bool
}

// New creates an ActiveObject for one (key, value) pair and its processing
// function. Nothing executes until Start is called. Objects created
// directly run on their own goroutine; use the pool factory to share a
// bounded executor or a rate limiter across a batch.
func New[K comparable, V any, R any](key K, value V, fn ProcessFunc[K, V, R]) *ActiveObject[K, V, R] {
	return newActiveObject(key, value, fn, exec.Go(), nil)
}

func newActiveObject[K comparable, V any, R any](
	key K,
	value V,
	fn ProcessFunc[K, V, R],
	executor exec.Executor,
	limiter *rate.Limiter,
) *ActiveObject[K, V, R] {
	return &ActiveObject[K, V, R]{
		key:      key,
		value:    value,
		fn:       fn,
		executor: executor,
		limiter:  limiter,
		fut:      newFuture[R](),
	}
}

// Start transitions the object from Created to Running and submits the
// computation for asynchronous execution. It returns immediately without
// waiting for completion. Calling Start again is a no-op.
func (ao *ActiveObject[K, V, R]) Start() {
	if !ao.started.CompareAndSwap(false, true) {
		return
	}
	ao.executor.Submit(ao.run)
}

// Get blocks the calling goroutine until the computation reaches a terminal
// state, then returns the computed output or the captured failure. It may be
// called any number of times and always yields the same cached outcome.
// Failures of the wrapped function wrap ErrTaskFailed.
func (ao *ActiveObject[K, V, R]) Get() (R, error) {
	return ao.fut.Get()
}

// GetWithContext is Get with an interruptible wait: when ctx is done before
// the computation finishes, the context's own error is returned — which is
// how an interrupted wait stays distinguishable from a failed computation —
// and the computation itself keeps running to its terminal state.
func (ao *ActiveObject[K, V, R]) GetWithContext(ctx context.Context) (R, error) {
	return ao.fut.GetWithContext(ctx)
}

// Params returns the original (key, value) input pair, for labeling results
// after the fact.
func (ao *ActiveObject[K, V, R]) Params() (K, V) {
	return ao.key, ao.value
}

// IsReady reports, without blocking, whether the computation has reached a
// terminal state.
func (ao *ActiveObject[K, V, R]) IsReady() bool {
	return ao.fut.IsReady()
}

// Done returns a channel that is closed once the computation reaches a
// terminal state, for use in select statements.
func (ao *ActiveObject[K, V, R]) Done() <-chan struct{} {
	return ao.fut.Done()
}

// run executes the wrapped function and records the terminal outcome.
func (ao *ActiveObject[K, V, R]) run() {
	result, err := ao.invoke(context.Background())
	if err != nil {
		ao.fut.complete(result, fmt.Errorf("%w: %w", ErrTaskFailed, err))
		return
	}
	ao.fut.complete(result, nil)
}

// invoke calls the wrapped function with panic recovery, so a panicking
// task surfaces as a Failed outcome instead of crashing the process.
func (ao *ActiveObject[K, V, R]) invoke(ctx context.Context) (result R, err error) {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			err = fmt.Errorf("task panic: %v\nstack trace:\n%s", r, buf[:n])
		}
	}()

	if ao.limiter != nil {
		if err := ao.limiter.Wait(ctx); err != nil {
			return result, err
		}
	}

	return ao.fn(ctx, ao.key, ao.value)
}
