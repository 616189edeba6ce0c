package linked

import (
	"iter"

	"github.com/conn-castle/ownerbench/internal/owner"
)

type sharedNode[T any] struct {
	data T
	next owner.Shared[sharedNode[T]]
}

// Dispose destroys the node's value and leaves the group of the next node.
func (n *sharedNode[T]) Dispose() {
	owner.DestroyValue(&n.data)
	n.next.Drop()
}

// SharedList is a singly-linked stack whose nodes hold the next node through
// owner.Shared. Only the list refers to its nodes, so every link carries a
// count of 1 and handles move rather than clone. The zero value is an empty
// list.
type SharedList[T any] struct {
	head   owner.Shared[sharedNode[T]]
	length int
}

// NewSharedList returns an empty list.
func NewSharedList[T any]() *SharedList[T] {
	return &SharedList[T]{}
}

// PushFront puts value at the front of the list.
func (l *SharedList[T]) PushFront(value T) {
	var node owner.Shared[sharedNode[T]]
	node.Reset(&sharedNode[T]{data: value})
	node.Get().next.MoveFrom(&l.head)
	l.head.MoveFrom(&node)
	l.length++
}

// PopFront destroys the front node. It does nothing on an empty list.
func (l *SharedList[T]) PopFront() {
	if l.head.IsEmpty() {
		return
	}
	var old owner.Shared[sharedNode[T]]
	old.MoveFrom(&l.head)
	l.head.MoveFrom(&old.Get().next)
	old.Drop()
	l.length--
}

// PeekFront returns the address of the front value, or nil when the list is
// empty.
func (l *SharedList[T]) PeekFront() *T {
	node := l.head.Get()
	if node == nil {
		return nil
	}
	return &node.data
}

// IsEmpty reports whether the list has no nodes.
func (l *SharedList[T]) IsEmpty() bool {
	return l.head.IsEmpty()
}

// Size returns the number of nodes.
func (l *SharedList[T]) Size() int {
	return l.length
}

// Clear pops every node, front first.
func (l *SharedList[T]) Clear() {
	for !l.head.IsEmpty() {
		l.PopFront()
	}
}

// Drop destroys the list. It is the same as Clear.
func (l *SharedList[T]) Drop() {
	l.Clear()
}

// Values yields the values from front to back.
func (l *SharedList[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for node := l.head.Get(); node != nil; node = node.next.Get() {
			if !yield(node.data) {
				return
			}
		}
	}
}
