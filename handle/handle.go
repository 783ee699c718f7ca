package handle

// noShallowCopy gives go vet's copylocks check something to flag when a
// Handle is copied by assignment. Duplicating a Handle must go through
// Clone, which requires the wrapped type to support duplication.
type noShallowCopy struct{}

func (noShallowCopy) Lock()   {}
func (noShallowCopy) Unlock() {}

// Handle owns exactly one instance of T. The instance is never shared with
// another Handle: Clone produces an independently owned copy, and shallow
// struct copies are flagged by go vet.
//
// Handle must stay layout-identical to T (the guard field is zero-sized and
// declared first); FromRef depends on this.
type Handle[T any] struct {
	noShallowCopy noShallowCopy
	value         T
}

// New wraps a value instance into a Handle, taking ownership of it. The
// value is stored as passed, without transformation.
func New[T any](v T) *Handle[T] {
	return &Handle[T]{value: v}
}

// Instance returns the wrapped instance. The pointer borrows from the
// handle; it is valid for reads and writes but must not be retained past
// the handle's lifetime.
func (h *Handle[T]) Instance() *T {
	return &h.value
}

// Replace swaps the wrapped instance with *p. Neither value is copied
// beyond the swap itself.
func (h *Handle[T]) Replace(p *T) {
	h.value, *p = *p, h.value
}

// Unwrap returns the wrapped instance. The handle should not be used
// afterwards.
func (h *Handle[T]) Unwrap() T {
	return h.value
}

// Equal reports whether two handles wrap equal instances.
func Equal[T comparable](a, b *Handle[T]) bool {
	return a.value == b.value
}
