//go:build send_sync

package handle

// With the send_sync tag both handle types advertise cross-goroutine
// shareability for every T. See Shareable for the contract this asserts.

func (*Handle[T]) shareable() {}

func (Ref[T]) shareable() {}
