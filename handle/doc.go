// Package handle provides wrapper types for values that may also be
// reachable through foreign storage, such as structures allocated by a
// native library or living in WASM guest memory.
//
// [Handle] owns its value: cloning one produces an independent deep copy
// and requires the wrapped type to implement [Cloner]. [Ref] does not own
// anything: it aliases storage owned elsewhere, and cloning one copies the
// reference, so every clone observes and mutates the same underlying
// instance. The two types expose the same access surface but must never be
// treated as interchangeable.
package handle
