// Package array provides a generic, unsynchronized, growable array backed by
// a single contiguous buffer.
//
// Array[E] keeps its elements in insertion order at positions [0, Size()) and
// grows transparently on append using an amortized-constant policy: a lazily
// created array jumps straight to a small default capacity, after which each
// reallocation multiplies capacity by 1.5, clamped up to whatever the current
// operation immediately requires. Capacity never shrinks.
//
// # Basic Usage
//
//	a := array.New[int]()
//	a.Add(10)
//	a.Add(20)
//	v, err := a.Get(1) // 20, nil
//
// # Iteration
//
// Iterator returns an independent forward cursor per call. The cursor is
// fail-fast: if the backing buffer shrank underneath it since iteration
// began, the next advance reports ErrConcurrentModification instead of
// returning inconsistent elements. The cursor's own Remove deletes the last
// element it returned and may be called at most once per Next.
//
//	it := a.Iterator()
//	for it.HasNext() {
//	    v, err := it.Next()
//	    ...
//	}
//
// # Safety
//
// ToSlice and CopyInto hand out defensive copies; mutating them never
// affects the array. UncheckedSlice is the single documented exception: it
// returns the internal buffer itself and exists only for privileged
// performance-critical callers.
//
// Array is not safe for concurrent use. Share it between goroutines only
// when it is effectively read-only.
package array
