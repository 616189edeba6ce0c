package owner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conn-castle/ownerbench/internal/testutil"
)

type tenBase interface {
	GetValue() int
}

type twenty struct {
	disposals *int
}

func (t *twenty) GetValue() int { return 20 }
func (t *twenty) Dispose() {
	if t.disposals != nil {
		*t.disposals++
	}
}

func TestSharedInitialization(t *testing.T) {
	s := NewShared(testutil.IntPtr(10))
	require.False(t, s.IsEmpty())
	assert.Equal(t, 10, s.Value())
	assert.Equal(t, 1, s.UseCount())
}

func TestSharedCloneSharesTarget(t *testing.T) {
	a := NewShared(testutil.IntPtr(10))
	b := a.Clone()

	assert.Equal(t, 10, b.Value())
	assert.Same(t, a.Get(), b.Get())
	assert.Equal(t, 2, a.UseCount())
	assert.Equal(t, 2, b.UseCount())
}

func TestSharedCountFollowsLiveHandles(t *testing.T) {
	counter := testutil.NewDisposeCounter()
	first := NewShared(counter.New(1))

	clones := make([]*Shared[testutil.Tracked], 0, 4)
	for i := 0; i < 4; i++ {
		clones = append(clones, first.Clone())
		assert.Equal(t, i+2, first.UseCount())
	}

	for i, c := range clones {
		c.Drop()
		assert.Equal(t, 4-i, first.UseCount())
		assert.Equal(t, 0, c.UseCount())
	}
	assert.Equal(t, 0, counter.Total())

	first.Drop()
	assert.Equal(t, 1, counter.Times(1), "last drop disposes exactly once")
	first.Drop()
	assert.Equal(t, 1, counter.Times(1))
}

func TestSharedAssign(t *testing.T) {
	counter := testutil.NewDisposeCounter()
	a := NewShared(counter.New(1))
	b := NewShared(counter.New(2))

	b.Assign(a)
	assert.Equal(t, 1, counter.Times(2), "b's old target had no other owner")
	assert.Equal(t, 2, a.UseCount())
	assert.Same(t, a.Get(), b.Get())

	a.Drop()
	assert.Equal(t, 1, b.UseCount())
	assert.Equal(t, 0, counter.Times(1))
	b.Drop()
	assert.Equal(t, 1, counter.Times(1))
}

func TestSharedSelfAssignIsNoop(t *testing.T) {
	counter := testutil.NewDisposeCounter()
	a := NewShared(counter.New(1))

	a.Assign(a)
	assert.Equal(t, 1, a.UseCount())
	assert.Equal(t, 0, counter.Total())
	assert.Equal(t, 1, a.Get().ID)
}

func TestSharedAssignWithinGroup(t *testing.T) {
	counter := testutil.NewDisposeCounter()
	a := NewShared(counter.New(1))
	b := a.Clone()

	b.Assign(a)
	assert.Equal(t, 2, a.UseCount())
	assert.Equal(t, 0, counter.Total())
}

func TestSharedMove(t *testing.T) {
	counter := testutil.NewDisposeCounter()
	a := NewShared(counter.New(1))
	b := a.Clone()

	moved := b.Move()
	assert.True(t, b.IsEmpty())
	assert.Equal(t, 0, b.UseCount())
	assert.Equal(t, 2, moved.UseCount())

	c := NewShared(counter.New(2))
	c.MoveFrom(moved)
	assert.Equal(t, 1, counter.Times(2))
	assert.Equal(t, 2, c.UseCount())
	assert.True(t, moved.IsEmpty())

	c.MoveFrom(c)
	assert.Equal(t, 2, c.UseCount())
}

func TestSharedReset(t *testing.T) {
	counter := testutil.NewDisposeCounter()
	a := NewShared(counter.New(1))
	b := a.Clone()

	a.Reset(counter.New(2))
	assert.Equal(t, 0, counter.Total(), "b still owns the first target")
	assert.Equal(t, 1, a.UseCount())
	assert.Equal(t, 1, b.UseCount())

	b.Reset(nil)
	assert.Equal(t, 1, counter.Times(1))
	assert.True(t, b.IsEmpty())
	assert.Equal(t, 1, b.UseCount())
}

func TestSharedResetToHeldAddress(t *testing.T) {
	counter := testutil.NewDisposeCounter()
	a := NewShared(counter.New(1))

	a.Reset(a.Get())
	assert.Equal(t, 0, counter.Total())
	assert.Equal(t, 1, a.UseCount())

	b := a.Clone()
	b.Reset(a.Get())
	assert.Equal(t, 2, a.UseCount(), "b stays in the group")

	a.Drop()
	b.Drop()
	assert.Equal(t, 1, counter.Times(1))
}

func TestSharedNullKeepsCount(t *testing.T) {
	s := NewShared[int](nil)
	assert.True(t, s.IsEmpty())
	assert.Equal(t, 1, s.UseCount())

	var zero Shared[int]
	assert.True(t, zero.IsEmpty())
	assert.Equal(t, 0, zero.UseCount())
	assert.Panics(t, func() { _ = zero.Value() })
}

func TestStaticPointerCastDowncast(t *testing.T) {
	var disposals int
	var base tenBase = &twenty{disposals: &disposals}
	basePtr := NewShared(&base)

	derived := StaticPointerCast[twenty](basePtr)
	assert.Equal(t, 2, derived.UseCount())
	assert.Same(t, base, derived.Get(), "downcast yields the original allocation")

	again := derived.Clone()
	assert.Equal(t, 3, derived.UseCount())
	assert.Equal(t, 3, basePtr.UseCount())
	assert.Equal(t, 20, again.Get().GetValue())

	basePtr.Drop()
	derived.Drop()
	assert.Equal(t, 0, disposals)
	again.Drop()
	assert.Equal(t, 1, disposals)
}

func TestStaticPointerCastUpcast(t *testing.T) {
	var disposals int
	derived := NewShared(&twenty{disposals: &disposals})

	base := StaticPointerCast[tenBase](derived)
	assert.Equal(t, 2, base.UseCount())
	assert.Equal(t, 20, base.Value().GetValue())

	derived.Drop()
	base.Drop()
	assert.Equal(t, 1, disposals)
}

func TestStaticPointerCastSameType(t *testing.T) {
	a := NewShared(testutil.IntPtr(7))
	b := StaticPointerCast[int](a)
	assert.Same(t, a.Get(), b.Get())
	assert.Equal(t, 2, a.UseCount())
}

func TestStaticPointerCastEmpty(t *testing.T) {
	empty := NewShared[tenBase](nil)
	cast := StaticPointerCast[twenty](empty)
	assert.True(t, cast.IsEmpty())
	assert.Equal(t, 2, empty.UseCount())
}

func TestStaticPointerCastInvalidPanics(t *testing.T) {
	s := NewShared(testutil.IntPtr(1))
	assert.PanicsWithValue(t, "owner: invalid static cast from int to string", func() {
		_ = StaticPointerCast[string](s)
	})
	assert.Equal(t, 1, s.UseCount())
}
