package harness

import (
	"container/list"
	"errors"
	"fmt"

	"github.com/conn-castle/ownerbench/internal/linked"
	"github.com/conn-castle/ownerbench/internal/messages"
	"github.com/conn-castle/ownerbench/internal/owner"
)

func expect[V comparable](what string, got, want V) error {
	if got != want {
		return fmt.Errorf(messages.HarnessCheckFmt, what, got, want)
	}
	return nil
}

func intPtr(v int) *int {
	return &v
}

// valuer is the polymorphic interface the subtyping checks dispatch through.
type valuer interface {
	GetValue() int
}

type valuer20 struct{}

func (*valuer20) GetValue() int { return 20 }

type valuer30 struct{}

func (*valuer30) GetValue() int { return 30 }

type valuer40 struct{}

func (*valuer40) GetValue() int { return 40 }

// disposalProbe counts how often it has been destroyed.
type disposalProbe struct {
	disposed int
}

func (p *disposalProbe) Dispose() { p.disposed++ }

func checkUniqueElement(*Exec) error {
	u := owner.NewUnique(intPtr(10))
	defer u.Drop()
	return expect("*p", u.Value(), 10)
}

func checkUniqueRelease(*Exec) error {
	u := owner.NewUnique(intPtr(20))
	raw := u.Release()
	if raw == nil {
		return expect("release", "nil", "address")
	}
	return errors.Join(
		expect("*raw", *raw, 20),
		expect("empty after release", u.IsEmpty(), true),
	)
}

func checkUniqueIndexing(*Exec) error {
	a := owner.MakeUniqueArray[int](5)
	defer a.Drop()
	for i := 0; i < 5; i++ {
		*a.At(i) = i * 10
	}
	var errs []error
	for i := 0; i < 5; i++ {
		errs = append(errs, expect(fmt.Sprintf("a[%d]", i), *a.At(i), i*10))
	}
	return errors.Join(errs...)
}

func checkUniqueSubtyping(*Exec) error {
	derived1 := owner.NewUnique(&valuer30{})
	base1, err := owner.UpcastUnique[valuer](derived1)
	if err != nil {
		return fmt.Errorf(messages.HarnessUpcastFailFmt, err)
	}
	defer base1.Drop()

	derived2 := owner.NewUnique(&valuer40{})
	base2, err := owner.UpcastUnique[valuer](derived2)
	if err != nil {
		return fmt.Errorf(messages.HarnessUpcastFailFmt, err)
	}
	defer base2.Drop()

	return errors.Join(
		expect("derived1 empty", derived1.IsEmpty(), true),
		expect("base1.GetValue()", base1.Value().GetValue(), 30),
		expect("derived2 empty", derived2.IsEmpty(), true),
		expect("base2.GetValue()", base2.Value().GetValue(), 40),
	)
}

func checkUniqueMove(*Exec) error {
	probe := &disposalProbe{}
	src := owner.NewUnique(probe)
	dst := src.Move()
	dst.MoveFrom(dst)
	errs := []error{
		expect("source empty", src.IsEmpty(), true),
		expect("self-move keeps target", dst.Get() == probe, true),
		expect("disposals before drop", probe.disposed, 0),
	}
	dst.Drop()
	errs = append(errs, expect("disposals after drop", probe.disposed, 1))
	return errors.Join(errs...)
}

func checkSharedInit(*Exec) error {
	s := owner.NewShared(intPtr(10))
	defer s.Drop()
	return errors.Join(
		expect("*p", s.Value(), 10),
		expect("use count", s.UseCount(), 1),
	)
}

func checkSharedCopy(*Exec) error {
	a := owner.NewShared(intPtr(10))
	defer a.Drop()
	b := a.Clone()
	defer b.Drop()
	return errors.Join(
		expect("*b", b.Value(), 10),
		expect("use count", a.UseCount(), 2),
	)
}

func checkSharedSubtyping(*Exec) error {
	var base valuer = &valuer20{}
	basePtr := owner.NewShared(&base)
	defer basePtr.Drop()

	derived := owner.StaticPointerCast[valuer20](basePtr)
	defer derived.Drop()
	countAfterCast := derived.UseCount()

	again := derived.Clone()
	defer again.Drop()

	return errors.Join(
		expect("use count after cast", countAfterCast, 2),
		expect("use count after copy", derived.UseCount(), 3),
		expect("GetValue()", derived.Get().GetValue(), 20),
	)
}

func checkSharedDestruction(*Exec) error {
	probe := &disposalProbe{}
	a := owner.NewShared(probe)
	b := a.Clone()
	c := b.Clone()

	a.Drop()
	b.Drop()
	before := probe.disposed
	c.Drop()
	c.Drop()
	return errors.Join(
		expect("disposals while shared", before, 0),
		expect("disposals after last drop", probe.disposed, 1),
	)
}

// intList is what the list checks need from either list variant.
type intList interface {
	PushFront(value int)
	PopFront()
	PeekFront() *int
	IsEmpty() bool
	Size() int
	Clear()
	Drop()
}

func listChecks(newList func() intList) []Case {
	return []Case{
		{Name: "pushing elements", Kind: KindFunctional, Run: func(*Exec) error {
			l := newList()
			defer l.Drop()
			l.PushFront(10)
			return expect("size", l.Size(), 1)
		}},
		{Name: "push, pop and size", Kind: KindFunctional, Run: func(*Exec) error {
			l := newList()
			defer l.Drop()
			l.PushFront(10)
			l.PopFront()
			return expect("size", l.Size(), 0)
		}},
		{Name: "empty list", Kind: KindFunctional, Run: func(*Exec) error {
			l := newList()
			defer l.Drop()
			return expect("empty", l.IsEmpty(), true)
		}},
		{Name: "clear", Kind: KindFunctional, Run: func(*Exec) error {
			l := newList()
			l.PushFront(10)
			l.PushFront(20)
			l.Clear()
			return errors.Join(
				expect("size", l.Size(), 0),
				expect("empty", l.IsEmpty(), true),
			)
		}},
		{Name: "peek order", Kind: KindFunctional, Run: func(*Exec) error {
			l := newList()
			defer l.Drop()
			l.PushFront(20)
			l.PushFront(10)
			first := *l.PeekFront()
			l.PopFront()
			return errors.Join(
				expect("front before pop", first, 10),
				expect("front after pop", *l.PeekFront(), 20),
				expect("size", l.Size(), 1),
			)
		}},
	}
}

func newUniqueIntList() intList { return linked.NewUniqueList[int]() }
func newSharedIntList() intList { return linked.NewSharedList[int]() }

func checkNativeInit(*Exec) error {
	p := new(int)
	*p = 10
	return expect("*p", *p, 10)
}

func checkNativeRelease(*Exec) error {
	held := intPtr(20)
	raw := held
	held = nil
	return errors.Join(
		expect("*raw", *raw, 20),
		expect("holder cleared", held == nil, true),
	)
}

func checkNativeCopy(*Exec) error {
	p1 := intPtr(20)
	p2 := p1
	return errors.Join(
		expect("*p2", *p2, 20),
		expect("same address", p1 == p2, true),
	)
}

func checkContainerList(*Exec) error {
	l := list.New()
	l.PushFront(20)
	l.PushFront(10)
	first := l.Front().Value.(int)
	l.Remove(l.Front())
	return errors.Join(
		expect("front before pop", first, 10),
		expect("front after pop", l.Front().Value.(int), 20),
		expect("size", l.Len(), 1),
	)
}
