package array

import "reflect"

// defaultCapacity is the capacity a lazily created array jumps to on its
// first growth.
const defaultCapacity = 10

// Array is a generic growable array over a single contiguous buffer.
// Elements occupy buffer positions [0, size) in insertion order; size also
// marks the next open slot an Add will fill.
//
// Type parameters:
//   - E: The element type
type Array[E any] struct {
	// Backing buffer. Its length is the array's capacity. A nil buffer marks
	// a lazily created array whose first growth targets defaultCapacity.
	elems []E

	// Number of live elements.
	size int
}

// New creates an empty Array whose buffer is materialized on demand: the
// first append grows it straight to the default capacity.
func New[E any]() *Array[E] {
	return &Array[E]{}
}

// NewWithCapacity creates an empty Array with the given initial capacity.
// A capacity of zero yields an explicit empty buffer (its first growth
// targets exactly what is needed, not the default capacity). A negative
// capacity returns ErrNegativeCapacity.
func NewWithCapacity[E any](capacity int) (*Array[E], error) {
	if capacity < 0 {
		return nil, ErrNegativeCapacity
	}
	return &Array[E]{elems: make([]E, capacity)}, nil
}

// FromSlice creates an Array containing a copy of src's elements in order.
// A nil source returns ErrNilSource.
func FromSlice[E any](src []E) (*Array[E], error) {
	if src == nil {
		return nil, ErrNilSource
	}
	elems := make([]E, len(src))
	copy(elems, src)
	return &Array[E]{elems: elems, size: len(src)}, nil
}

// Size returns the number of live elements.
func (a *Array[E]) Size() int {
	return a.size
}

// IsEmpty reports whether the Array contains no elements.
func (a *Array[E]) IsEmpty() bool {
	return a.size == 0
}

// Capacity returns the length of the backing buffer.
func (a *Array[E]) Capacity() int {
	return len(a.elems)
}

// Get returns the element at index. An index outside [0, Size()) returns
// ErrIndexOutOfRange.
func (a *Array[E]) Get(index int) (E, error) {
	if err := a.rangeCheck(index); err != nil {
		var zero E
		return zero, err
	}
	return a.elems[index], nil
}

// Set replaces the element at index with value. An index outside
// [0, Size()) returns ErrIndexOutOfRange.
func (a *Array[E]) Set(index int, value E) error {
	if err := a.rangeCheck(index); err != nil {
		return err
	}
	a.elems[index] = value
	return nil
}

// Add appends value at position Size(), growing the buffer first when it is
// full. It always succeeds and reports that the Array changed.
func (a *Array[E]) Add(value E) bool {
	a.ensureCapacity(a.size + 1)
	a.elems[a.size] = value
	a.size++
	return true
}

// AddAll appends every element of other in order, growing the buffer at most
// once. Appending an array to itself returns ErrSelfAppend; a nil argument
// returns ErrNilSource. It reports whether the Array changed.
func (a *Array[E]) AddAll(other *Array[E]) (bool, error) {
	if other == nil {
		return false, ErrNilSource
	}
	if other == a {
		return false, ErrSelfAppend
	}
	return a.appendSlice(other.elems[:other.size]), nil
}

// AddAllSlice appends every element of src in order, growing the buffer at
// most once. A nil source returns ErrNilSource. It reports whether the Array
// changed.
func (a *Array[E]) AddAllSlice(src []E) (bool, error) {
	if src == nil {
		return false, ErrNilSource
	}
	return a.appendSlice(src), nil
}

func (a *Array[E]) appendSlice(src []E) bool {
	if len(src) == 0 {
		return false
	}
	a.ensureCapacity(a.size + len(src))
	copy(a.elems[a.size:], src)
	a.size += len(src)
	return true
}

// Remove deletes the element at index, shifts every subsequent element left
// by one position, clears the now-unused trailing slot, and returns the
// removed element. An index outside [0, Size()) returns ErrIndexOutOfRange.
func (a *Array[E]) Remove(index int) (E, error) {
	var zero E
	if err := a.rangeCheck(index); err != nil {
		return zero, err
	}

	removed := a.elems[index]
	copy(a.elems[index:], a.elems[index+1:a.size])
	a.size--
	a.elems[a.size] = zero // drop the stale reference
	return removed, nil
}

// IndexOf returns the index of the first element equal to value, or -1 if no
// element matches. Equality is deep and zero-aware: a zero-value needle
// matches only a stored zero value.
func (a *Array[E]) IndexOf(value E) int {
	for i := 0; i < a.size; i++ {
		if reflect.DeepEqual(a.elems[i], value) {
			return i
		}
	}
	return -1
}

// ForEach applies action to each element in iteration order. The first error
// returned by action aborts the traversal and is returned to the caller.
func (a *Array[E]) ForEach(action func(E) error) error {
	it := a.Iterator()
	for it.HasNext() {
		v, err := it.Next()
		if err != nil {
			return err
		}
		if err := action(v); err != nil {
			return err
		}
	}
	return nil
}

// ReplaceAll replaces each element with the result of applying operator to
// it. The size of the Array never changes.
func (a *Array[E]) ReplaceAll(operator func(E) E) {
	for i := 0; i < a.size; i++ {
		a.elems[i] = operator(a.elems[i])
	}
}

// ToSlice returns an independent ordered copy of the live elements, suitable
// for general slice operations such as sorting. Mutating the returned slice
// never affects the Array, and vice versa.
func (a *Array[E]) ToSlice() []E {
	out := make([]E, a.size)
	copy(out, a.elems[:a.size])
	return out
}

// CopyInto copies the live elements into dest when dest is large enough and
// returns dest; if dest is strictly larger than Size(), the slot immediately
// after the copied elements is cleared. When dest is too small a fresh slice
// of exactly Size() elements is allocated and returned instead.
func (a *Array[E]) CopyInto(dest []E) []E {
	if len(dest) < a.size {
		out := make([]E, a.size)
		copy(out, a.elems[:a.size])
		return out
	}

	copy(dest, a.elems[:a.size])
	if len(dest) > a.size {
		var zero E
		dest[a.size] = zero
	}
	return dest
}

// UncheckedSlice returns the internal buffer itself. The result may be
// longer than Size() and its trailing slots may hold stale data. It exists
// for privileged performance-critical callers only; every other caller
// should use ToSlice.
func (a *Array[E]) UncheckedSlice() []E {
	return a.elems
}

func (a *Array[E]) rangeCheck(index int) error {
	if index < 0 || index >= a.size {
		return ErrIndexOutOfRange
	}
	return nil
}

// ensureCapacity makes the buffer large enough to hold minCapacity elements,
// growing it if necessary. A lazily created array raises the request to the
// default capacity floor first.
func (a *Array[E]) ensureCapacity(minCapacity int) {
	if a.elems == nil {
		minCapacity = max(defaultCapacity, minCapacity)
	}
	if minCapacity > len(a.elems) {
		a.grow(minCapacity)
	}
}

// grow reallocates the buffer to 1.5x its old capacity, clamped up to
// minCapacity when that growth is insufficient, and copies the live elements
// over. Capacity never shrinks.
func (a *Array[E]) grow(minCapacity int) {
	oldCapacity := len(a.elems)
	newCapacity := oldCapacity + oldCapacity/2
	if newCapacity < minCapacity {
		newCapacity = minCapacity
	}

	next := make([]E, newCapacity)
	copy(next, a.elems[:a.size])
	a.elems = next
}
