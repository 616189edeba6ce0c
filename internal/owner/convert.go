package owner

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrNotConvertible reports an upcast between unrelated target types.
var ErrNotConvertible = errors.New("owner: target type is not convertible")

// upcastPointer views p as a *B.
// It succeeds when D and B are the same type, when *D is assignable to B, or
// when the dynamic value of an interface D is assignable to B. An interface
// view gets its own slot; the underlying object is not copied when it is held
// by pointer.
func upcastPointer[B, D any](p *D) (*B, bool) {
	if p == nil {
		return nil, true
	}
	if same, ok := any(p).(*B); ok {
		return same, true
	}
	if view, ok := any(p).(B); ok {
		return &view, true
	}
	if view, ok := any(*p).(B); ok {
		return &view, true
	}
	return nil, false
}

// castPointer extends upcastPointer with the downcast from an interface value
// to the concrete allocation behind it.
func castPointer[To, From any](p *From) (*To, bool) {
	if p == nil {
		return nil, true
	}
	if down, ok := any(*p).(*To); ok {
		return down, true
	}
	return upcastPointer[To](p)
}

func conversionError[To, From any]() error {
	return fmt.Errorf("%w: %v to %v", ErrNotConvertible, reflect.TypeFor[From](), reflect.TypeFor[To]())
}
