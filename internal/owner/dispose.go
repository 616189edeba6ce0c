package owner

import "reflect"

// Disposer is implemented by targets that release resources of their own when
// their owner destroys them.
type Disposer interface {
	Dispose()
}

// Destroy disposes target when it implements Disposer.
// A nil target is ignored.
func Destroy(target any) {
	if target == nil {
		return
	}
	if d, ok := target.(Disposer); ok {
		d.Dispose()
	}
}

// DestroyValue destroys the value stored at p the way an owner of *p would:
// through *T when it is a Disposer, otherwise through the dynamic value when T
// is an interface type.
func DestroyValue[T any](p *T) {
	Destroy(disposalTarget(p))
}

// disposalTarget returns what destroying *p has to dispose: p itself, or the
// dynamic value stored at p when T is an interface type.
func disposalTarget[T any](p *T) any {
	if p == nil {
		return nil
	}
	if _, ok := any(p).(Disposer); ok {
		return p
	}
	if reflect.TypeFor[T]().Kind() == reflect.Interface {
		if v := any(*p); v != nil {
			return v
		}
	}
	return p
}

// destroyEach disposes every element of elems in index order.
func destroyEach[T any](elems []T) {
	for i := range elems {
		DestroyValue(&elems[i])
	}
}

// noCopy lets `go vet` (copylocks) report handles copied by value.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
