package heap

import "github.com/joshuapare/memkit/internal/layout"

// Block navigation. Every helper here takes a header offset; the byte-level
// field placement lives in internal/layout and nothing outside this file
// re-derives raw offsets.

func (h *Heap) size(b int32) int32  { return layout.BlockSize(h.data, b) }
func (h *Heap) isFree(b int32) bool { return layout.BlockFree(h.data, b) }
func (h *Heap) next(b int32) int32  { return layout.BlockNext(h.data, b) }
func (h *Heap) prev(b int32) int32  { return layout.BlockPrev(h.data, b) }

func (h *Heap) setSize(b, v int32)      { layout.SetBlockSize(h.data, b, v) }
func (h *Heap) setFree(b int32, f bool) { layout.SetBlockFree(h.data, b, f) }
func (h *Heap) setNext(b, v int32)      { layout.SetBlockNext(h.data, b, v) }
func (h *Heap) setPrev(b, v int32)      { layout.SetBlockPrev(h.data, b, v) }

// headerOf translates a payload reference to its header offset.
// Exact inverse of payloadOf for every valid header.
func headerOf(r Ref) int32 {
	if r == NilRef {
		return nilBlock
	}
	return r - layout.HeaderSize
}

// payloadOf translates a header offset to its payload reference.
func payloadOf(b int32) Ref {
	if b == nilBlock {
		return NilRef
	}
	return b + layout.HeaderSize
}

// payloadSlice returns the payload bytes of the block headed at b.
func (h *Heap) payloadSlice(b int32) []byte {
	start := int(b) + layout.HeaderSize
	return h.data[start : start+int(h.size(b))]
}

// blockFor validates a caller-supplied reference and resolves its header.
// A reference must address a payload inside the managed extent on an
// Alignment boundary, and its header's size field must stay in range.
// Returns ErrBadRef for foreign references, ErrCorrupt for a header whose
// size field points outside the buffer.
func (h *Heap) blockFor(r Ref) (int32, error) {
	if int(r) < layout.HeaderSize || int(r) >= len(h.data) || r%layout.Alignment != 0 {
		h.stats.BadRefs++
		if logAlloc {
			warnf("ref %#x not from heap (extent %d bytes)", r, len(h.data))
		}
		return nilBlock, ErrBadRef
	}
	b := headerOf(r)
	sz := h.size(b)
	if sz < layout.MinPayload || int(b)+layout.HeaderSize+int(sz) > len(h.data) {
		h.stats.BadRefs++
		if logAlloc {
			warnf("ref %#x has invalid header (size=%d)", r, sz)
		}
		return nilBlock, ErrCorrupt
	}
	return b, nil
}
