package handle

// Shareable marks a handle type as safe to transfer to and share between
// goroutines. It is satisfied by *Handle and Ref only when the module is
// built with the send_sync tag, and then unconditionally, regardless of
// the wrapped type.
//
// The marker is an unchecked assertion: enabling send_sync states that the
// caller has arranged for concurrent access to the wrapped values to be
// safe by some external means. The library performs no synchronization of
// its own, which matters most for Ref, where clones already share mutable
// access to one instance.
type Shareable interface {
	shareable()
}
