package heap

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/memkit/internal/layout"
)

// newTestHeap creates a heap and closes it when the test finishes.
func newTestHeap(t *testing.T, size int) *Heap {
	t.Helper()
	h, err := New(size)
	require.NoError(t, err)
	t.Cleanup(func() { _ = h.Close() })
	return h
}

// requireChainValid walks the block chain and asserts the structural
// invariants that must hold after every public operation:
//   - blocks are address-ordered with no gaps and no overlaps
//   - prev links mirror next links
//   - no two adjacent blocks are both free
//   - every payload is aligned and at least the minimum floor
//   - the chain covers the whole buffer
func requireChainValid(t *testing.T, h *Heap) {
	t.Helper()
	prev := nilBlock
	end := int32(0)
	for b := headBlock; b != nilBlock; b = h.next(b) {
		require.Equal(t, end, b, "gap or overlap before header at %#x", b)
		require.Equal(t, prev, h.prev(b), "prev link broken at header %#x", b)
		if prev != nilBlock && h.isFree(prev) {
			require.False(t, h.isFree(b), "adjacent free blocks at %#x and %#x", prev, b)
		}
		require.GreaterOrEqual(t, int(h.size(b)), layout.MinPayload,
			"payload below minimum at %#x", b)
		require.Zero(t, int(h.size(b))%layout.Alignment,
			"unaligned payload size at %#x", b)
		prev = b
		end = b + layout.HeaderSize + h.size(b)
	}
	require.Equal(t, int32(len(h.data)), end, "chain does not cover the buffer")
}

// fillBytes writes a recognizable pattern into a payload.
func fillBytes(buf []byte, v byte) {
	for i := range buf {
		buf[i] = v
	}
}

// requireBytes asserts every byte of buf equals v.
func requireBytes(t *testing.T, buf []byte, v byte) {
	t.Helper()
	for i := range buf {
		require.Equal(t, v, buf[i], "payload corrupted at offset %d", i)
	}
}
