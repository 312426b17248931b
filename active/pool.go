package active

import (
	"context"
	"fmt"

	"bardscore/array"
)

// Entry is one (key, value) input pair for the ordered pool factory.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// Outcome is one harvested result, tagged with the key of the input that
// produced it. Err is only ever set by HarvestAll, the per-entry variant.
type Outcome[K comparable, R any] struct {
	Key   K
	Value R
	Err   error
}

// MakeActiveObjects constructs exactly one ActiveObject per entry of the
// source mapping, all bound to fn, and collects them into an Array in the
// mapping's iteration order (for a Go map that order is not deterministic
// across runs). It is a pure factory: no execution is started.
//
// Example:
//
//	objects, err := active.MakeActiveObjects(score, plays)
//	active.StartAll(objects)
//	results, err := active.Harvest(objects)
func MakeActiveObjects[K comparable, V any, R any](
	fn ProcessFunc[K, V, R],
	source map[K]V,
	opts ...Option,
) (*array.Array[*ActiveObject[K, V, R]], error) {
	if fn == nil {
		return nil, ErrNilFunction
	}
	if source == nil {
		return nil, ErrNilSource
	}

	cfg := newConfig(opts...)
	executor := cfg.executor(len(source))

	objects, err := array.NewWithCapacity[*ActiveObject[K, V, R]](len(source))
	if err != nil {
		return nil, err
	}
	for key, value := range source {
		objects.Add(newActiveObject(key, value, fn, executor, cfg.limiter))
	}
	return objects, nil
}

// MakeActiveObjectsOrdered is MakeActiveObjects for callers that need a
// deterministic construction (and therefore harvest) order: one
// ActiveObject per entry, in the order given.
func MakeActiveObjectsOrdered[K comparable, V any, R any](
	fn ProcessFunc[K, V, R],
	entries []Entry[K, V],
	opts ...Option,
) (*array.Array[*ActiveObject[K, V, R]], error) {
	if fn == nil {
		return nil, ErrNilFunction
	}
	if entries == nil {
		return nil, ErrNilSource
	}

	cfg := newConfig(opts...)
	executor := cfg.executor(len(entries))

	objects, err := array.NewWithCapacity[*ActiveObject[K, V, R]](len(entries))
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		objects.Add(newActiveObject(e.Key, e.Value, fn, executor, cfg.limiter))
	}
	return objects, nil
}

// StartAll starts every active object in the pool, fanning out as many
// independent concurrent executions with no completion-order guarantees and
// no inter-task coordination.
func StartAll[K comparable, V any, R any](objects *array.Array[*ActiveObject[K, V, R]]) {
	it := objects.Iterator()
	for it.HasNext() {
		ao, err := it.Next()
		if err != nil {
			return
		}
		ao.Start()
	}
}

// Harvest collects the outcome of every started active object sequentially,
// in the pool's construction order, regardless of actual completion order.
// The first failing Get aborts the harvest for the whole batch: the
// underlying error is returned and no partial results are kept.
func Harvest[K comparable, V any, R any](
	objects *array.Array[*ActiveObject[K, V, R]],
) (*array.Array[Outcome[K, R]], error) {
	return harvest(objects, func(ao *ActiveObject[K, V, R]) (R, error) {
		return ao.Get()
	})
}

// HarvestWithContext is Harvest with an interruptible wait: cancelling ctx
// aborts the harvest with the context's error while the remaining
// computations keep running to their terminal states.
func HarvestWithContext[K comparable, V any, R any](
	ctx context.Context,
	objects *array.Array[*ActiveObject[K, V, R]],
) (*array.Array[Outcome[K, R]], error) {
	return harvest(objects, func(ao *ActiveObject[K, V, R]) (R, error) {
		return ao.GetWithContext(ctx)
	})
}

func harvest[K comparable, V any, R any](
	objects *array.Array[*ActiveObject[K, V, R]],
	get func(*ActiveObject[K, V, R]) (R, error),
) (*array.Array[Outcome[K, R]], error) {
	results, err := array.NewWithCapacity[Outcome[K, R]](objects.Size())
	if err != nil {
		return nil, err
	}

	err = objects.ForEach(func(ao *ActiveObject[K, V, R]) error {
		value, err := get(ao)
		if err != nil {
			key, _ := ao.Params()
			return fmt.Errorf("harvest aborted at %v: %w", key, err)
		}
		key, _ := ao.Params()
		results.Add(Outcome[K, R]{Key: key, Value: value})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

// HarvestAll is the hardened per-entry variant of Harvest: failures are
// isolated to their own entry instead of aborting the batch. Every input
// yields exactly one Outcome, in construction order, carrying either its
// value or its error.
func HarvestAll[K comparable, V any, R any](
	objects *array.Array[*ActiveObject[K, V, R]],
) *array.Array[Outcome[K, R]] {
	results, _ := array.NewWithCapacity[Outcome[K, R]](objects.Size())

	it := objects.Iterator()
	for it.HasNext() {
		ao, err := it.Next()
		if err != nil {
			break
		}
		key, _ := ao.Params()
		value, err := ao.Get()
		results.Add(Outcome[K, R]{Key: key, Value: value, Err: err})
	}
	return results
}
