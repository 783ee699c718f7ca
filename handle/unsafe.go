package handle

import "unsafe"

// FromRef reinterprets existing storage as a Handle without copying the
// value. The result is a borrowed view: it must not outlive the storage,
// and Unwrap or Replace on it act on that storage directly.
//
// This relies on Handle[T] being layout-identical to T.
func FromRef[T any](p *T) *Handle[T] {
	if p == nil {
		panic("attempted to view a nil pointer as a handle")
	}
	return (*Handle[T])(unsafe.Pointer(p))
}
