package heap

import "io"

// The process-wide default heap. Library code should prefer an explicit
// *Heap; the package-level functions exist for programs that want a single
// ambient allocator in the malloc/free style.

var std *Heap

// Init sizes the default heap explicitly. Idempotent: the first successful
// call wins and later calls are no-ops, even with a different size.
func Init(size int) error {
	if std != nil {
		return nil
	}
	h, err := New(size)
	if err != nil {
		return err
	}
	std = h
	return nil
}

// ensure lazily creates the default heap with DefaultHeapSize. Only
// allocating operations trigger this.
func ensure() (*Heap, error) {
	if std == nil {
		if err := Init(DefaultHeapSize); err != nil {
			return nil, err
		}
	}
	return std, nil
}

// Alloc allocates from the default heap, creating it with DefaultHeapSize
// if no Init call has run yet.
func Alloc(n int) (Ref, []byte, error) {
	h, err := ensure()
	if err != nil {
		return NilRef, nil, err
	}
	return h.Alloc(n)
}

// Free releases a block of the default heap. A Free before any allocating
// call does not create the heap: NilRef is a no-op and anything else is a
// foreign reference.
func Free(r Ref) error {
	if std == nil {
		if r == NilRef {
			return nil
		}
		return ErrBadRef
	}
	return std.Free(r)
}

// Resize resizes a block of the default heap, allocating the heap lazily
// when r is NilRef.
func Resize(r Ref, n int) (Ref, []byte, error) {
	if std == nil && r != NilRef {
		return NilRef, nil, ErrBadRef
	}
	h, err := ensure()
	if err != nil {
		return NilRef, nil, err
	}
	return h.Resize(r, n)
}

// AllocZeroed performs an overflow-checked, zero-filled allocation from the
// default heap.
func AllocZeroed(count, size int) (Ref, []byte, error) {
	h, err := ensure()
	if err != nil {
		return NilRef, nil, err
	}
	return h.AllocZeroed(count, size)
}

// Dump reports the default heap's block chain, or a not-initialized notice
// when no allocating call has run yet.
func Dump(w io.Writer) {
	if std == nil {
		(&Heap{}).Dump(w)
		return
	}
	std.Dump(w)
}

// resetDefault drops the default heap. Test hook only; the public contract
// has no teardown.
func resetDefault() {
	if std != nil {
		_ = std.Close()
		std = nil
	}
}
