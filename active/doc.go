// Package active implements the Active Object pattern: objects whose
// invocation is decoupled from their execution. Work runs asynchronously
// once started, and the caller retrieves the result later through a
// blocking accessor backed by a Future.
//
// The package is built for embarrassingly parallel batches: a pool factory
// turns a key→value mapping and one processing function into an array of
// active objects, one per entry, sharing no mutable state.
//
// # Basic Usage
//
//	score := func(ctx context.Context, title, text string) (float64, error) {
//	    return grade(text), nil
//	}
//
//	objects, err := active.MakeActiveObjects(score, plays)
//	if err != nil {
//	    return err
//	}
//
//	active.StartAll(objects)                 // fan-out: N concurrent executions
//	results, err := active.Harvest(objects)  // fan-in: construction order
//
// # Deferred Failures
//
// A failure inside one task never affects another task's execution; it
// surfaces only when that task's Get is reached. Computation failures and
// recovered panics wrap ErrTaskFailed. A caller whose own wait is cancelled
// gets the plain context error from GetWithContext instead, so the two
// causes stay distinguishable:
//
//	_, err := ao.GetWithContext(ctx)
//	switch {
//	case errors.Is(err, active.ErrTaskFailed): // the task itself failed
//	case errors.Is(err, context.Canceled):    // only our wait was interrupted
//	}
//
// Harvest treats the first deferred error of either kind as fatal for the
// whole batch and returns no partial results. HarvestAll is the documented
// deviation for callers that want per-entry failure isolation.
//
// # Execution Hosts
//
// By default every started object runs on its own goroutine. The factory
// options bound a batch to a fixed worker pool (WithWorkerCount) or gate
// execution starts with a shared token bucket (WithRateLimit); neither
// changes the semantics of Start or Get.
//
// Once started, a task always runs to a terminal state: there is no
// cancellation and no timeout of the work itself.
package active
