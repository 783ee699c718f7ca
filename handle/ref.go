package handle

// Ref aliases an instance of T whose storage is owned elsewhere, typically
// on the far side of a native boundary. A Ref never deallocates or takes
// ownership of the storage it points to.
//
// The caller must keep the referenced storage alive for as long as the Ref
// and every clone of it exist. The library does not and cannot check this.
//
// Despite the parallel access surface, Ref and Handle are not
// interchangeable: cloning a Ref copies the reference, not the value.
type Ref[T any] struct {
	ptr *T
}

// NewRef wraps an existing instance into a Ref without copying it. Panics
// if p is nil; use RefFromPtr for pointers of unknown provenance.
func NewRef[T any](p *T) Ref[T] {
	if p == nil {
		panic("attempted to create a ref from a nil pointer")
	}
	return Ref[T]{ptr: p}
}

// RefFromPtr wraps a possibly-nil pointer, reporting whether it was usable.
func RefFromPtr[T any](p *T) (Ref[T], bool) {
	if p == nil {
		return Ref[T]{}, false
	}
	return Ref[T]{ptr: p}, true
}

// Clone duplicates the reference only. The clone observes the exact same
// underlying instance: a mutation through either Ref is immediately visible
// through the other. No method of T is invoked, so T does not need to
// support duplication.
func (r Ref[T]) Clone() Ref[T] {
	return Ref[T]{ptr: r.ptr}
}

// Instance returns the referenced instance for reads and writes. All
// clones of this Ref share the returned storage.
func (r Ref[T]) Instance() *T {
	return r.ptr
}

// Ptr returns the raw reference.
func (r Ref[T]) Ptr() *T {
	return r.ptr
}

// Aliases reports whether two refs point at the same storage.
func (r Ref[T]) Aliases(o Ref[T]) bool {
	return r.ptr == o.ptr
}

// RefEqual reports whether two refs point at equal instances. Refs that
// alias the same storage are always equal.
func RefEqual[T comparable](a, b Ref[T]) bool {
	return *a.ptr == *b.ptr
}
