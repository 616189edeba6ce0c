package linked

import (
	"iter"

	"github.com/conn-castle/ownerbench/internal/owner"
)

type uniqueNode[T any] struct {
	data T
	next owner.Unique[uniqueNode[T]]
}

// Dispose destroys the node's value and whatever chain it still owns.
// Lists unlink next before a node is destroyed, so this never recurses there.
func (n *uniqueNode[T]) Dispose() {
	owner.DestroyValue(&n.data)
	n.next.Drop()
}

// UniqueList is a singly-linked stack in which each node exclusively owns the
// next one. The zero value is an empty list. A UniqueList must not be copied.
type UniqueList[T any] struct {
	head   owner.Unique[uniqueNode[T]]
	length int
}

// NewUniqueList returns an empty list.
func NewUniqueList[T any]() *UniqueList[T] {
	return &UniqueList[T]{}
}

// PushFront puts value at the front of the list.
func (l *UniqueList[T]) PushFront(value T) {
	var node owner.Unique[uniqueNode[T]]
	node.Reset(&uniqueNode[T]{data: value})
	node.Get().next.MoveFrom(&l.head)
	l.head.MoveFrom(&node)
	l.length++
}

// PopFront destroys the front node. It does nothing on an empty list.
func (l *UniqueList[T]) PopFront() {
	if l.head.IsEmpty() {
		return
	}
	var old owner.Unique[uniqueNode[T]]
	old.MoveFrom(&l.head)
	l.head.MoveFrom(&old.Get().next)
	old.Drop()
	l.length--
}

// PeekFront returns the address of the front value, or nil when the list is
// empty.
func (l *UniqueList[T]) PeekFront() *T {
	node := l.head.Get()
	if node == nil {
		return nil
	}
	return &node.data
}

// IsEmpty reports whether the list has no nodes.
func (l *UniqueList[T]) IsEmpty() bool {
	return l.head.IsEmpty()
}

// Size returns the number of nodes.
func (l *UniqueList[T]) Size() int {
	return l.length
}

// Clear pops every node, front first.
func (l *UniqueList[T]) Clear() {
	for !l.head.IsEmpty() {
		l.PopFront()
	}
}

// Drop destroys the list. It is the same as Clear.
func (l *UniqueList[T]) Drop() {
	l.Clear()
}

// Values yields the values from front to back.
func (l *UniqueList[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for node := l.head.Get(); node != nil; node = node.next.Get() {
			if !yield(node.data) {
				return
			}
		}
	}
}
