package heap

import (
	"math"

	"github.com/joshuapare/memkit/internal/layout"
)

// roundPayload rounds a request up to the alignment granularity and the
// minimum payload floor. Reports false when the request cannot fit any heap.
func roundPayload(n int) (int32, bool) {
	if n > maxHeapSize-layout.HeaderSize-layout.AlignmentMask {
		return 0, false
	}
	v := layout.Align(n)
	if v < layout.MinPayload {
		v = layout.MinPayload
	}
	return int32(v), true
}

// Alloc allocates n payload bytes and returns the payload reference plus a
// slice aliasing the payload. n <= 0 is a no-op returning NilRef. Returns
// ErrNoSpace when no free block fits; the heap never grows.
func (h *Heap) Alloc(n int) (Ref, []byte, error) {
	h.stats.AllocCalls++
	if n <= 0 {
		return NilRef, nil, nil
	}

	need, ok := roundPayload(n)
	if !ok {
		h.stats.FailedAllocs++
		return NilRef, nil, ErrNoSpace
	}

	b := h.findFit(need)
	if b == nilBlock {
		h.stats.FailedAllocs++
		if logAlloc {
			warnf("alloc %d: no fit (largest free %d)", need, h.LargestFree())
		}
		return NilRef, nil, ErrNoSpace
	}

	h.carve(b, need)
	h.setFree(b, false)
	h.stats.BytesAllocated += int64(h.size(b))
	return payloadOf(b), h.payloadSlice(b), nil
}

// Free releases the block addressed by r and coalesces it with free
// neighbors. Free(NilRef) is a no-op. A foreign reference returns ErrBadRef
// and a reference to an already-free block returns ErrDoubleFree; both
// leave the heap unchanged.
func (h *Heap) Free(r Ref) error {
	h.stats.FreeCalls++
	if r == NilRef {
		return nil
	}
	b, err := h.blockFor(r)
	if err != nil {
		return err
	}
	if h.isFree(b) {
		h.stats.DoubleFrees++
		if logAlloc {
			warnf("double free of ref %#x", r)
		}
		return ErrDoubleFree
	}
	h.stats.BytesFreed += int64(h.size(b))
	h.setFree(b, true)
	h.coalesce(b)
	return nil
}

// Resize changes the block addressed by r to n payload bytes, preserving
// the first min(old, new) bytes. Resize(NilRef, n) behaves as Alloc(n);
// Resize(r, 0) behaves as Free(r) and returns NilRef. On relocation the old
// block is freed and a new reference is returned; on failure the old block
// is left intact.
func (h *Heap) Resize(r Ref, n int) (Ref, []byte, error) {
	h.stats.ResizeCalls++
	if r == NilRef {
		return h.Alloc(n)
	}
	if n <= 0 {
		if err := h.Free(r); err != nil {
			return NilRef, nil, err
		}
		return NilRef, nil, nil
	}

	b, err := h.blockFor(r)
	if err != nil {
		return NilRef, nil, err
	}
	if h.isFree(b) {
		h.stats.DoubleFrees++
		return NilRef, nil, ErrDoubleFree
	}
	need, ok := roundPayload(n)
	if !ok {
		h.stats.FailedAllocs++
		return NilRef, nil, ErrNoSpace
	}

	if h.size(b) >= need {
		// Shrink in place. carve frees the remainder and merges it with a
		// free successor, so back-to-back shrinks cannot strand two
		// adjacent free blocks.
		h.carve(b, need)
		return r, h.payloadSlice(b), nil
	}

	if nxt := h.next(b); nxt != nilBlock && h.isFree(nxt) {
		combined := h.size(b) + layout.HeaderSize + h.size(nxt)
		if combined >= need {
			// Absorb the free successor, then trim back to the request.
			h.mergeNext(b)
			h.carve(b, need)
			return r, h.payloadSlice(b), nil
		}
	}

	// Relocate: allocate fresh, copy the surviving prefix, free the old.
	old := h.payloadSlice(b)
	nr, buf, err := h.Alloc(n)
	if err != nil {
		return NilRef, nil, err
	}
	copy(buf, old)
	h.setFree(b, true)
	h.stats.BytesFreed += int64(h.size(b))
	h.coalesce(b)
	return nr, buf, nil
}

// AllocZeroed allocates count*size bytes and zero-fills the payload.
// Zero count or size returns NilRef. The multiplication is overflow-checked
// before it happens; overflow returns ErrOverflow.
func (h *Heap) AllocZeroed(count, size int) (Ref, []byte, error) {
	if count <= 0 || size <= 0 {
		h.stats.AllocCalls++
		return NilRef, nil, nil
	}
	if count > math.MaxInt/size {
		h.stats.AllocCalls++
		h.stats.FailedAllocs++
		return NilRef, nil, ErrOverflow
	}
	r, buf, err := h.Alloc(count * size)
	if err != nil {
		return NilRef, nil, err
	}
	// The backing buffer starts zeroed, but reused blocks carry old bytes.
	clear(buf)
	return r, buf, nil
}

// Bytes returns the payload slice for a live reference.
func (h *Heap) Bytes(r Ref) ([]byte, error) {
	b, err := h.blockFor(r)
	if err != nil {
		return nil, err
	}
	if h.isFree(b) {
		return nil, ErrDoubleFree
	}
	return h.payloadSlice(b), nil
}

// findFit scans the chain from the lowest offset and returns the first free
// block whose payload fits need, or nilBlock. First-fit keeps allocations at
// low offsets, which together with immediate coalescing bounds fragmentation
// for steady alloc/free workloads.
func (h *Heap) findFit(need int32) int32 {
	for b := headBlock; b != nilBlock; b = h.next(b) {
		if h.isFree(b) && h.size(b) >= need {
			return b
		}
	}
	return nilBlock
}

// carve shrinks b's payload to need when the leftover can host a header
// plus the minimum payload floor, linking a new free block in behind it.
// A smaller leftover is absorbed into b instead of becoming an unusable
// sliver. The remainder is merged with a free successor immediately.
// b's free flag is left untouched.
func (h *Heap) carve(b, need int32) {
	if h.size(b) < need+layout.HeaderSize+layout.MinPayload {
		return
	}
	rem := h.size(b) - need - layout.HeaderSize
	nb := b + layout.HeaderSize + need

	h.setSize(nb, rem)
	h.setFree(nb, true)
	h.setPrev(nb, b)
	h.setNext(nb, h.next(b))
	if nxt := h.next(b); nxt != nilBlock {
		h.setPrev(nxt, nb)
	}
	h.setNext(b, nb)
	h.setSize(b, need)
	h.stats.SplitCount++

	if nxt := h.next(nb); nxt != nilBlock && h.isFree(nxt) {
		h.mergeNext(nb)
		h.stats.CoalesceForward++
	}
}

// coalesce merges a freshly freed block with a free successor first, then a
// free predecessor. The predecessor merge changes which header represents
// the region, so the surviving header is returned.
func (h *Heap) coalesce(b int32) int32 {
	if nxt := h.next(b); nxt != nilBlock && h.isFree(nxt) {
		h.mergeNext(b)
		h.stats.CoalesceForward++
	}
	if prv := h.prev(b); prv != nilBlock && h.isFree(prv) {
		h.mergeNext(prv)
		h.stats.CoalesceBackward++
		b = prv
	}
	return b
}

// mergeNext absorbs b's successor into b, folding the successor's header
// footprint into b's payload and excising it from the chain. The caller
// guarantees a successor exists.
func (h *Heap) mergeNext(b int32) {
	nxt := h.next(b)
	h.setSize(b, h.size(b)+layout.HeaderSize+h.size(nxt))
	h.setNext(b, h.next(nxt))
	if nn := h.next(nxt); nn != nilBlock {
		h.setPrev(nn, b)
	}
}
