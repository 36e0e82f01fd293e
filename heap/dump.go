package heap

import (
	"fmt"
	"io"
	"strings"

	"github.com/joshuapare/memkit/internal/layout"
)

// Dump writes a read-only report of the block chain to w: one line per
// block with header offset, payload offset, size, state, and neighbor
// offsets. Dump never mutates the heap and is safe at any point.
func (h *Heap) Dump(w io.Writer) {
	if h.data == nil {
		fmt.Fprintln(w, "heap: not initialized")
		return
	}
	fmt.Fprintf(w, "heap: total=%d bytes blocks=%d in-use=%d bytes\n",
		len(h.data), h.NumBlocks(), h.BytesInUse())
	idx := 0
	for b := headBlock; b != nilBlock; b = h.next(b) {
		state := "NO"
		if h.isFree(b) {
			state = "YES"
		}
		fmt.Fprintf(w, " block[%d] hdr=%#08x payload=%#08x size=%d free=%s prev=%d next=%d\n",
			idx, b, b+layout.HeaderSize, h.size(b), state, h.prev(b), h.next(b))
		idx++
	}
}

// DumpString returns the Dump report as a string, handy for tests that
// compare heap state before and after a rejected operation.
func (h *Heap) DumpString() string {
	var sb strings.Builder
	h.Dump(&sb)
	return sb.String()
}
