package handle

// Cloner is the duplication capability required to clone an owning Handle.
// Clone must return a deep copy: mutating the copy must never be observable
// through the original, so reference fields (slices, maps, pointers) have to
// be duplicated as well.
type Cloner[T any] interface {
	Clone() T
}

// Clone duplicates an owning handle. The result owns an independent copy of
// the wrapped instance produced by T's Clone method.
//
// This is a free function rather than a method so that the Cloner bound is
// checked at compile time; for types without the capability the operation
// simply does not exist.
func Clone[T Cloner[T]](h *Handle[T]) *Handle[T] {
	return New(h.value.Clone())
}
