package owner

// UniqueArray is the sole owner of a heap array.
//
// It follows the Unique contract, with indexed access in place of a single
// dereference. Destroying the array disposes every element in index order.
// A nil slice is the empty state; a zero-length non-nil slice is still owned.
type UniqueArray[T any] struct {
	_     noCopy
	elems []T
}

// NewUniqueArray takes ownership of elems.
func NewUniqueArray[T any](elems []T) *UniqueArray[T] {
	return &UniqueArray[T]{elems: elems}
}

// MakeUniqueArray allocates n zero elements and owns them.
func MakeUniqueArray[T any](n int) *UniqueArray[T] {
	return NewUniqueArray(make([]T, n))
}

func (a *UniqueArray[T]) take() []T {
	elems := a.elems
	a.elems = nil
	return elems
}

// Move transfers the array to a new owner and leaves a empty.
func (a *UniqueArray[T]) Move() *UniqueArray[T] {
	return &UniqueArray[T]{elems: a.take()}
}

// MoveFrom takes other's array and then destroys the one a held.
func (a *UniqueArray[T]) MoveFrom(other *UniqueArray[T]) {
	if a == other {
		return
	}
	elems := other.take()
	old := a.take()
	a.elems = elems
	destroyEach(old)
}

// At returns the address of element i. Indexing outside the array panics.
func (a *UniqueArray[T]) At(i int) *T {
	return &a.elems[i]
}

// First returns the address of the first element, the array form of a
// dereference. It panics on an empty or zero-length array.
func (a *UniqueArray[T]) First() *T {
	return &a.elems[0]
}

// Get returns the owned slice without giving up ownership.
func (a *UniqueArray[T]) Get() []T {
	return a.elems
}

// Len returns the number of owned elements.
func (a *UniqueArray[T]) Len() int {
	return len(a.elems)
}

// Release empties a without destroying the elements and returns them.
func (a *UniqueArray[T]) Release() []T {
	return a.take()
}

// Reset takes ownership of elems and destroys the elements of the current
// array that elems does not cover. Resetting to a window of the owned array,
// such as a.Get()[1:], keeps the elements inside the window alive.
func (a *UniqueArray[T]) Reset(elems []T) {
	old := a.take()
	a.elems = elems
	lo, hi := sharedRange(old, elems)
	destroyEach(old[:lo])
	destroyEach(old[hi:])
}

// IsEmpty reports whether a owns nothing.
func (a *UniqueArray[T]) IsEmpty() bool {
	return a.elems == nil
}

// Drop destroys the array, if any, and leaves a empty.
func (a *UniqueArray[T]) Drop() {
	destroyEach(a.take())
}

// sharedRange returns the bounds of the part of old that elems also covers.
// lo == hi when the two do not overlap.
func sharedRange[T any](old, elems []T) (lo, hi int) {
	if len(old) == 0 || len(elems) == 0 {
		return 0, 0
	}
	if i := indexOf(old, &elems[0]); i >= 0 {
		return i, min(len(old), i+len(elems))
	}
	if j := indexOf(elems, &old[0]); j >= 0 {
		return 0, min(len(old), len(elems)-j)
	}
	return 0, 0
}

// indexOf returns the index of the element of s at address p, or -1.
func indexOf[T any](s []T, p *T) int {
	for i := range s {
		if &s[i] == p {
			return i
		}
	}
	return -1
}
