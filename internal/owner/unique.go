package owner

// Unique is the sole owner of a single heap value.
//
// The zero value is an empty owner. Unique must not be copied; ownership moves
// with Move, MoveFrom and the upcast helpers, and the target is destroyed by
// Drop, Reset or a MoveFrom that replaces it.
type Unique[T any] struct {
	_      noCopy
	ptr    *T
	origin any
}

// NewUnique takes ownership of p. A nil p yields an empty owner.
func NewUnique[T any](p *T) *Unique[T] {
	u := &Unique[T]{}
	u.adopt(p)
	return u
}

// adopt stores p without touching the previous target.
func (u *Unique[T]) adopt(p *T) {
	u.ptr = p
	u.origin = disposalTarget(p)
}

// take empties u and returns what it held.
func (u *Unique[T]) take() (*T, any) {
	p, origin := u.ptr, u.origin
	u.ptr, u.origin = nil, nil
	return p, origin
}

// Move transfers the target to a new owner and leaves u empty.
func (u *Unique[T]) Move() *Unique[T] {
	dst := &Unique[T]{}
	dst.ptr, dst.origin = u.take()
	return dst
}

// MoveFrom takes other's target and then destroys the one u held; other is
// left empty. other may live inside u's current target, as when a node's
// owner is advanced to the node's successor. Moving an owner into itself
// changes nothing.
func (u *Unique[T]) MoveFrom(other *Unique[T]) {
	if u == other {
		return
	}
	p, origin := other.take()
	_, old := u.take()
	u.ptr, u.origin = p, origin
	Destroy(old)
}

// Get returns the target address, or nil when u is empty.
func (u *Unique[T]) Get() *T {
	return u.ptr
}

// Value dereferences the target. It panics when u is empty.
func (u *Unique[T]) Value() T {
	return *u.ptr
}

// Release empties u without destroying the target and hands the address to
// the caller. A second call returns nil.
func (u *Unique[T]) Release() *T {
	p, _ := u.take()
	return p
}

// Reset destroys the current target and takes ownership of p.
// Resetting to the address already owned keeps it alive.
func (u *Unique[T]) Reset(p *T) {
	if p != nil && p == u.ptr {
		return
	}
	_, old := u.take()
	u.adopt(p)
	Destroy(old)
}

// IsEmpty reports whether u owns nothing.
func (u *Unique[T]) IsEmpty() bool {
	return u.ptr == nil
}

// Drop destroys the target, if any, and leaves u empty.
func (u *Unique[T]) Drop() {
	_, old := u.take()
	Destroy(old)
}

// UpcastUnique moves src's target into a new owner of type B.
// It fails with ErrNotConvertible, leaving src untouched, unless *D (or the
// dynamic value of an interface D) is assignable to B.
func UpcastUnique[B, D any](src *Unique[D]) (*Unique[B], error) {
	dst := &Unique[B]{}
	if err := AssignUpcast(dst, src); err != nil {
		return nil, err
	}
	return dst, nil
}

// AssignUpcast is the assignment form of UpcastUnique: dst's current target is
// destroyed and replaced with src's, and src is left empty.
func AssignUpcast[B, D any](dst *Unique[B], src *Unique[D]) error {
	view, ok := upcastPointer[B](src.ptr)
	if !ok {
		return conversionError[B, D]()
	}
	if any(dst) == any(src) {
		return nil
	}
	_, origin := src.take()
	_, old := dst.take()
	Destroy(old)
	dst.ptr, dst.origin = view, origin
	return nil
}
