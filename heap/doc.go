// Package heap implements a freestanding dynamic-memory allocator over a
// single pre-allocated backing buffer.
//
// # Overview
//
// A Heap owns one contiguous byte buffer and carves it into blocks tracked
// by an intrusive doubly-linked list of headers embedded in the buffer
// itself. Allocation is first-fit with splitting; freeing coalesces with
// free neighbors immediately, so no two adjacent blocks are ever both free.
// The heap never grows and never returns memory to the operating system.
//
// # References
//
// Callers receive a Ref, the byte offset of the allocation's payload within
// the heap's buffer, together with a []byte aliasing that payload:
//
//	h, err := heap.New(1 << 20)
//	if err != nil {
//	    return err
//	}
//	defer h.Close()
//
//	ref, buf, err := h.Alloc(64)
//	if err != nil {
//	    return err
//	}
//	copy(buf, payload)
//
//	// Later, release the block for reuse.
//	err = h.Free(ref)
//
// NilRef is the null reference. Alloc of a non-positive size returns NilRef
// with no error; Free(NilRef) is a no-op.
//
// # Operations
//
//   - Alloc(n): first-fit allocation, splitting oversized blocks
//   - Free(ref): release and coalesce with free neighbors
//   - Resize(ref, n): shrink in place, extend into a free successor, or
//     relocate with a prefix-preserving copy
//   - AllocZeroed(count, size): overflow-checked, zero-filled allocation
//   - Dump(w): read-only textual walk of the block chain
//
// # Error model
//
// Recoverable conditions surface as sentinel errors rather than a text side
// channel: ErrNoSpace (exhaustion), ErrBadRef (reference outside the managed
// extent), ErrDoubleFree, and ErrOverflow. All of them leave the heap
// unchanged. The only fatal condition is failing to reserve the backing
// buffer at construction.
//
// # Default heap
//
// Package-level Alloc/Free/Resize/AllocZeroed operate on a process-wide
// default heap. Init sizes it explicitly; an allocating call before Init
// creates it lazily with DefaultHeapSize.
//
// # Thread safety
//
// Heap instances are not thread-safe. Callers sharing one heap across
// goroutines must synchronize externally.
package heap
