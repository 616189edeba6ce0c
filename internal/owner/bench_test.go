package owner

import "testing"

// Raw pointers are the baseline: the collector alone owns them.
func BenchmarkRawPointer(b *testing.B) {
	sink := make([]*int, 0, b.N)
	for i := 0; i < b.N; i++ {
		v := i
		sink = append(sink, &v)
	}
	_ = sink
}

func BenchmarkNewUnique(b *testing.B) {
	sink := make([]*Unique[int], 0, b.N)
	for i := 0; i < b.N; i++ {
		v := i
		sink = append(sink, NewUnique(&v))
	}
	b.StopTimer()
	for _, u := range sink {
		u.Drop()
	}
}

func BenchmarkNewShared(b *testing.B) {
	sink := make([]*Shared[int], 0, b.N)
	for i := 0; i < b.N; i++ {
		v := i
		sink = append(sink, NewShared(&v))
	}
	b.StopTimer()
	for _, s := range sink {
		s.Drop()
	}
}

func BenchmarkSharedCloneDrop(b *testing.B) {
	v := 1
	s := NewShared(&v)
	for i := 0; i < b.N; i++ {
		c := s.Clone()
		c.Drop()
	}
}
