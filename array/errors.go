package array

import "errors"

var (
	// ErrNegativeCapacity is returned when a negative initial capacity is
	// requested at construction.
	ErrNegativeCapacity = errors.New("array: negative initial capacity")

	// ErrNilSource is returned when a nil source collection is passed where
	// elements are required.
	ErrNilSource = errors.New("array: nil source collection")

	// ErrIndexOutOfRange is returned by Get, Set and Remove when the index is
	// outside [0, Size()).
	ErrIndexOutOfRange = errors.New("array: index out of range")

	// ErrSelfAppend is returned when an array is appended to itself.
	ErrSelfAppend = errors.New("array: cannot append array to itself")

	// ErrNoMoreElements is returned by Iterator.Next once the iteration is
	// exhausted.
	ErrNoMoreElements = errors.New("array: no more elements")

	// ErrConcurrentModification is returned when an iterator detects that the
	// backing buffer shrank behind its back since iteration began.
	ErrConcurrentModification = errors.New("array: concurrent structural modification")

	// ErrIteratorState is returned by Iterator.Remove when it is called before
	// any Next, or twice without an intervening Next.
	ErrIteratorState = errors.New("array: remove called before next or twice in a row")
)
