package owner

// SharedArray is one of possibly many owners of a heap array.
//
// It follows the Shared contract with indexed access. The count is shared by
// every handle of the group; the last handle to leave disposes each element in
// index order. Like Shared, a constructed handle always carries a count, so
// NewSharedArray[T](nil) reports a UseCount of 1.
type SharedArray[T any] struct {
	_     noCopy
	elems []T
	count *int
}

// NewSharedArray starts a sharing group for elems with a count of 1.
func NewSharedArray[T any](elems []T) *SharedArray[T] {
	a := &SharedArray[T]{}
	a.adopt(elems)
	return a
}

// MakeSharedArray allocates n zero elements and starts a group for them.
func MakeSharedArray[T any](n int) *SharedArray[T] {
	return NewSharedArray(make([]T, n))
}

func (a *SharedArray[T]) adopt(elems []T) {
	count := 1
	a.elems, a.count = elems, &count
}

func (a *SharedArray[T]) leave() {
	elems, count := a.elems, a.count
	a.elems, a.count = nil, nil
	if count == nil {
		return
	}
	*count--
	if *count == 0 {
		destroyEach(elems)
	}
}

func (a *SharedArray[T]) join(elems []T, count *int) {
	a.elems, a.count = elems, count
	if count != nil {
		*count++
	}
}

// Clone returns a new handle in a's group and increments the count.
func (a *SharedArray[T]) Clone() *SharedArray[T] {
	dst := &SharedArray[T]{}
	dst.join(a.elems, a.count)
	return dst
}

// Assign leaves a's current group and joins other's.
func (a *SharedArray[T]) Assign(other *SharedArray[T]) {
	if a == other {
		return
	}
	elems, count := other.elems, other.count
	if count != nil {
		*count++
	}
	a.leave()
	a.elems, a.count = elems, count
}

// Move transfers a's place in its group to a new handle.
func (a *SharedArray[T]) Move() *SharedArray[T] {
	dst := &SharedArray[T]{elems: a.elems, count: a.count}
	a.elems, a.count = nil, nil
	return dst
}

// MoveFrom leaves a's current group and takes over other's place.
func (a *SharedArray[T]) MoveFrom(other *SharedArray[T]) {
	if a == other {
		return
	}
	elems, count := other.elems, other.count
	other.elems, other.count = nil, nil
	a.leave()
	a.elems, a.count = elems, count
}

// At returns the address of element i. Indexing outside the array panics.
func (a *SharedArray[T]) At(i int) *T {
	return &a.elems[i]
}

// First returns the address of the first element.
func (a *SharedArray[T]) First() *T {
	return &a.elems[0]
}

// Get returns the shared slice.
func (a *SharedArray[T]) Get() []T {
	return a.elems
}

// Len returns the number of shared elements.
func (a *SharedArray[T]) Len() int {
	return len(a.elems)
}

// UseCount returns the number of handles in a's group, or 0 without a count.
func (a *SharedArray[T]) UseCount() int {
	if a.count == nil {
		return 0
	}
	return *a.count
}

// Reset leaves the current group and starts a new one for elems.
// Resetting to the slice already held keeps a in its group. elems must not
// otherwise overlap the shared array.
func (a *SharedArray[T]) Reset(elems []T) {
	if len(elems) > 0 && len(elems) == len(a.elems) && &elems[0] == &a.elems[0] {
		return
	}
	a.leave()
	a.adopt(elems)
}

// IsEmpty reports whether a holds no array.
func (a *SharedArray[T]) IsEmpty() bool {
	return a.elems == nil
}

// Drop leaves the group, destroying the elements when a was the last handle.
func (a *SharedArray[T]) Drop() {
	a.leave()
}
