package heap

// Ref is a payload reference: the byte offset of an allocation's payload
// within its heap's backing buffer. Offsets rather than raw pointers keep
// the whole structure relocatable and free of dangling-pointer risk.
type Ref = int32

// NilRef is the null reference, returned for zero-sized requests and by
// failed allocations.
const NilRef Ref = -1

// Allocator is the allocation contract implemented by *Heap.
//
// It exists so consumers (the memctl driver, tests, future append-only
// variants) can depend on the operation set rather than the concrete heap.
type Allocator interface {
	// Alloc allocates n bytes and returns the payload reference plus a
	// slice aliasing the payload.
	Alloc(n int) (Ref, []byte, error)

	// Free releases the block addressed by r for reuse.
	Free(r Ref) error

	// Resize grows or shrinks the block addressed by r to n bytes,
	// preserving min(old, new) payload bytes.
	Resize(r Ref, n int) (Ref, []byte, error)

	// AllocZeroed allocates count*size bytes, zero-filled, guarding
	// against multiplication overflow.
	AllocZeroed(count, size int) (Ref, []byte, error)
}

var _ Allocator = (*Heap)(nil)
