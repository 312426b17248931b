package array

// Iterator is a forward, single-pass cursor over an Array's live elements in
// insertion order. Each call to Array.Iterator yields an independent cursor.
//
// The cursor is fail-fast: Next reports ErrConcurrentModification when the
// backing buffer shrank below the cursor since iteration began, rather than
// trusting outside callers not to mutate mid-iteration.
type Iterator[E any] struct {
	arr *Array[E]

	// Next position to return.
	cursor int

	// Index of the last element returned; -1 when there is none (either
	// nothing was returned yet or Remove already consumed it).
	lastRet int
}

// Iterator returns a fresh cursor positioned before the first element.
func (a *Array[E]) Iterator() *Iterator[E] {
	return &Iterator[E]{arr: a, lastRet: -1}
}

// HasNext reports whether the iteration has more elements.
func (it *Iterator[E]) HasNext() bool {
	return it.cursor != it.arr.size
}

// Next returns the next element in the iteration. It returns
// ErrNoMoreElements once the iteration is exhausted and
// ErrConcurrentModification when the backing buffer shrank underneath the
// cursor.
func (it *Iterator[E]) Next() (E, error) {
	var zero E
	i := it.cursor
	if i >= it.arr.size {
		return zero, ErrNoMoreElements
	}
	if i >= len(it.arr.elems) {
		return zero, ErrConcurrentModification
	}
	it.cursor = i + 1
	it.lastRet = i
	return it.arr.elems[i], nil
}

// Remove deletes from the backing Array the last element returned by Next,
// shifting subsequent elements left. It may be called at most once per call
// to Next; calling it before any Next, or twice in a row, returns
// ErrIteratorState.
func (it *Iterator[E]) Remove() error {
	if it.lastRet < 0 {
		return ErrIteratorState
	}

	a := it.arr
	if it.cursor > a.size || it.lastRet >= a.size {
		return ErrConcurrentModification
	}

	copy(a.elems[it.lastRet:], a.elems[it.cursor:a.size])
	a.size--
	var zero E
	a.elems[a.size] = zero

	// Elements shifted left, so resume where the removed element sat.
	it.cursor = it.lastRet
	it.lastRet = -1
	return nil
}
