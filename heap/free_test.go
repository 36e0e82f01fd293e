package heap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_FreeNilRefIsNoOp(t *testing.T) {
	h := newTestHeap(t, 4096)

	before := h.DumpString()
	require.NoError(t, h.Free(NilRef))
	require.Equal(t, before, h.DumpString())
}

func Test_FreeForeignRefLeavesHeapUnchanged(t *testing.T) {
	h := newTestHeap(t, 4096)

	_, _, err := h.Alloc(64)
	require.NoError(t, err)
	before := h.DumpString()

	// Outside the extent entirely.
	require.ErrorIs(t, h.Free(Ref(1<<20)), ErrBadRef)
	// Before the first possible payload.
	require.ErrorIs(t, h.Free(Ref(0)), ErrBadRef)
	// Inside the extent but not on an alignment boundary.
	require.ErrorIs(t, h.Free(Ref(1234)), ErrBadRef)

	require.Equal(t, before, h.DumpString())
	require.Equal(t, 3, h.Stats().BadRefs)
}

func Test_FreeInteriorRefDetectedAsCorrupt(t *testing.T) {
	h := newTestHeap(t, 4096)

	r, _, err := h.Alloc(64)
	require.NoError(t, err)
	before := h.DumpString()

	// Aligned and in range, but pointing into the middle of a payload.
	// The bytes there read as an impossible header.
	require.ErrorIs(t, h.Free(r+32), ErrCorrupt)
	require.Equal(t, before, h.DumpString())
}

func Test_FreeDoubleFreeIsRejected(t *testing.T) {
	h := newTestHeap(t, 4096)

	r, _, err := h.Alloc(64)
	require.NoError(t, err)

	require.NoError(t, h.Free(r))
	before := h.DumpString()

	require.ErrorIs(t, h.Free(r), ErrDoubleFree)
	require.Equal(t, before, h.DumpString())
	require.Equal(t, 1, h.Stats().DoubleFrees)
	requireChainValid(t, h)
}

func Test_FreeCoalescesForward(t *testing.T) {
	h := newTestHeap(t, 1<<16)

	a, _, err := h.Alloc(64)
	require.NoError(t, err)
	b, _, err := h.Alloc(64)
	require.NoError(t, err)
	_, _, err = h.Alloc(64) // guard block keeps the tail out of the merge
	require.NoError(t, err)

	require.NoError(t, h.Free(b))
	blocks := h.NumBlocks()

	// Freeing a merges with the free b ahead of it.
	require.NoError(t, h.Free(a))
	require.Equal(t, blocks-1, h.NumBlocks())

	ha := headerOf(a)
	require.True(t, h.isFree(ha))
	require.Equal(t, int32(64+16+64), h.size(ha))
	requireChainValid(t, h)
}

func Test_FreeCoalescesBackward(t *testing.T) {
	h := newTestHeap(t, 1<<16)

	a, _, err := h.Alloc(64)
	require.NoError(t, err)
	b, _, err := h.Alloc(64)
	require.NoError(t, err)
	_, _, err = h.Alloc(64)
	require.NoError(t, err)

	require.NoError(t, h.Free(a))
	blocks := h.NumBlocks()

	// Freeing b merges into the free a behind it; a's header survives.
	require.NoError(t, h.Free(b))
	require.Equal(t, blocks-1, h.NumBlocks())

	ha := headerOf(a)
	require.True(t, h.isFree(ha))
	require.Equal(t, int32(64+16+64), h.size(ha))
	require.Equal(t, 1, h.Stats().CoalesceBackward)
	requireChainValid(t, h)
}

func Test_FreeCoalescesBothSides(t *testing.T) {
	h := newTestHeap(t, 1<<16)

	a, _, err := h.Alloc(64)
	require.NoError(t, err)
	b, _, err := h.Alloc(64)
	require.NoError(t, err)
	c, _, err := h.Alloc(64)
	require.NoError(t, err)
	_, _, err = h.Alloc(64)
	require.NoError(t, err)

	require.NoError(t, h.Free(a))
	require.NoError(t, h.Free(c))
	blocks := h.NumBlocks()

	// b's free merges with both neighbors, removing two headers.
	require.NoError(t, h.Free(b))
	require.Equal(t, blocks-2, h.NumBlocks())

	ha := headerOf(a)
	require.True(t, h.isFree(ha))
	require.Equal(t, int32(3*64+2*16), h.size(ha))
	requireChainValid(t, h)
}

func Test_FreeEverythingRestoresSingleBlock(t *testing.T) {
	h := newTestHeap(t, 1<<16)

	var refs []Ref
	for i := 0; i < 16; i++ {
		r, _, err := h.Alloc(50 + i*10)
		require.NoError(t, err)
		refs = append(refs, r)
	}

	// Free in a shuffled-ish order to exercise every merge direction.
	for _, i := range []int{3, 0, 15, 7, 1, 2, 9, 14, 5, 4, 11, 8, 13, 6, 10, 12} {
		require.NoError(t, h.Free(refs[i]))
		requireChainValid(t, h)
	}
	require.Equal(t, 1, h.NumBlocks())
	require.True(t, h.isFree(headBlock))
}
