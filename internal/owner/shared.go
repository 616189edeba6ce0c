package owner

import (
	"fmt"
	"reflect"
)

// control is the block every handle of a sharing group points at.
// origin is the allocation destroyed when count reaches zero; it stays the
// original address even when handles view the target through another type.
type control struct {
	count  int
	origin any
}

// Shared is one of possibly many owners of a heap value.
//
// Every handle in a group points at the same control block, and the count in
// that block equals the number of live handles. The target is destroyed once,
// by whichever Drop, Reset or Assign takes the count to zero.
//
// The zero value has no control block and reports a UseCount of 0. NewShared
// always allocates one, so NewShared[T](nil) reports 1 while IsEmpty is true.
// Shared must not be copied by value; use Clone.
type Shared[T any] struct {
	_    noCopy
	ptr  *T
	ctrl *control
}

// NewShared starts a sharing group for p with a count of 1.
func NewShared[T any](p *T) *Shared[T] {
	s := &Shared[T]{}
	s.adopt(p)
	return s
}

func (s *Shared[T]) adopt(p *T) {
	s.ptr, s.ctrl = p, &control{count: 1, origin: disposalTarget(p)}
}

// leave detaches s from its group and destroys the target when s was the
// last handle.
func (s *Shared[T]) leave() {
	c := s.ctrl
	s.ptr, s.ctrl = nil, nil
	if c == nil {
		return
	}
	c.count--
	if c.count == 0 {
		origin := c.origin
		c.origin = nil
		Destroy(origin)
	}
}

func (s *Shared[T]) join(p *T, c *control) {
	s.ptr, s.ctrl = p, c
	if c != nil {
		c.count++
	}
}

// Clone returns a new handle in s's group and increments the count.
func (s *Shared[T]) Clone() *Shared[T] {
	dst := &Shared[T]{}
	dst.join(s.ptr, s.ctrl)
	return dst
}

// Assign leaves s's current group and joins other's.
// Assigning a handle to itself changes nothing.
func (s *Shared[T]) Assign(other *Shared[T]) {
	if s == other {
		return
	}
	p, c := other.ptr, other.ctrl
	if c != nil {
		c.count++
	}
	s.leave()
	s.ptr, s.ctrl = p, c
}

// Move transfers s's place in its group to a new handle; the count does not
// change and s is left with no control block.
func (s *Shared[T]) Move() *Shared[T] {
	dst := &Shared[T]{ptr: s.ptr, ctrl: s.ctrl}
	s.ptr, s.ctrl = nil, nil
	return dst
}

// MoveFrom leaves s's current group and takes over other's place in its group.
func (s *Shared[T]) MoveFrom(other *Shared[T]) {
	if s == other {
		return
	}
	p, c := other.ptr, other.ctrl
	other.ptr, other.ctrl = nil, nil
	s.leave()
	s.ptr, s.ctrl = p, c
}

// Get returns the target address, or nil when s is empty.
func (s *Shared[T]) Get() *T {
	return s.ptr
}

// Value dereferences the target. It panics when s is empty.
func (s *Shared[T]) Value() T {
	return *s.ptr
}

// UseCount returns the number of handles in s's group, or 0 without a
// control block.
func (s *Shared[T]) UseCount() int {
	if s.ctrl == nil {
		return 0
	}
	return s.ctrl.count
}

// Reset leaves the current group and starts a new one for p with a count of 1.
// Resetting to the address already held keeps s in its group.
func (s *Shared[T]) Reset(p *T) {
	if p != nil && p == s.ptr {
		return
	}
	s.leave()
	s.adopt(p)
}

// IsEmpty reports whether s has no target address. The control block is not
// consulted.
func (s *Shared[T]) IsEmpty() bool {
	return s.ptr == nil
}

// Drop leaves the group, destroying the target when s was the last handle.
// Dropping a handle twice is harmless.
func (s *Shared[T]) Drop() {
	s.leave()
}

// StaticPointerCast returns a handle of type To in src's group and increments
// the count.
//
// The address is converted without a checked variant: same type, downcast from
// an interface to the concrete allocation behind it, or a conversion to an
// interface the target satisfies. Any other cast is a caller error and panics.
func StaticPointerCast[To, From any](src *Shared[From]) *Shared[To] {
	p, ok := castPointer[To](src.ptr)
	if !ok {
		panic(fmt.Sprintf("owner: invalid static cast from %v to %v", reflect.TypeFor[From](), reflect.TypeFor[To]()))
	}
	dst := &Shared[To]{}
	dst.join(p, src.ctrl)
	return dst
}
