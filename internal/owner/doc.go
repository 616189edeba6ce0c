// Package owner provides explicit ownership handles for heap values.
//
// Unique and UniqueArray model a single owner: ownership moves between handles
// and is never duplicated. Shared and SharedArray model shared ownership through
// a reference count held outside the target; the target is destroyed when the
// last handle lets go of it.
//
// Destroying a target means calling its Dispose method when it implements
// Disposer and then forgetting the address so the collector can reclaim it.
// Handles are destroyed explicitly with Drop.
//
// None of the handles are safe for concurrent use. Counts are plain ints and
// callers must sequence every Clone, Assign and Drop on a sharing group.
package owner
