package linked

import (
	"container/list"
	"testing"
)

func BenchmarkUniqueListPushFront(b *testing.B) {
	l := NewUniqueList[int]()
	for i := 0; i < b.N; i++ {
		l.PushFront(i)
	}
	b.StopTimer()
	l.Drop()
}

func BenchmarkSharedListPushFront(b *testing.B) {
	l := NewSharedList[int]()
	for i := 0; i < b.N; i++ {
		l.PushFront(i)
	}
	b.StopTimer()
	l.Drop()
}

// container/list is the standard library baseline.
func BenchmarkContainerListPushFront(b *testing.B) {
	l := list.New()
	for i := 0; i < b.N; i++ {
		l.PushFront(i)
	}
	b.StopTimer()
	l.Init()
}

func BenchmarkUniqueListPushPop(b *testing.B) {
	l := NewUniqueList[int]()
	for i := 0; i < b.N; i++ {
		l.PushFront(i)
		l.PopFront()
	}
}
