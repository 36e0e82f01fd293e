package heap

import (
	"fmt"

	"github.com/joshuapare/memkit/internal/layout"
	"github.com/joshuapare/memkit/internal/mem"
)

const (
	// DefaultHeapSize is the capacity used when an allocating call arrives
	// before Init (16 MiB).
	DefaultHeapSize = 16 << 20

	// maxHeapSize caps the backing buffer so every offset fits in an int32.
	maxHeapSize = 0x7FFFFFFF

	// headBlock is the offset of the first header. The chain starts at the
	// base of the buffer and covers it with no gaps.
	headBlock int32 = 0

	// nilBlock is the internal null header offset.
	nilBlock int32 = -1
)

// Heap is a first-fit free-list allocator over one fixed backing buffer.
// Not goroutine-safe; callers must synchronize externally.
type Heap struct {
	data    []byte
	release func() error
	stats   Stats
}

// New reserves a zero-filled backing buffer of at least size bytes (rounded
// up to layout.Alignment) and installs a single free block spanning the
// usable region. The buffer never grows, shrinks, or moves afterwards.
func New(size int) (*Heap, error) {
	if size <= 0 {
		return nil, fmt.Errorf("heap: invalid heap size %d", size)
	}
	if size > maxHeapSize-layout.AlignmentMask {
		return nil, fmt.Errorf("heap: heap size %d exceeds %d limit", size, maxHeapSize)
	}
	total := layout.Align(size)
	if total < layout.HeaderSize+layout.MinPayload {
		// Too small to hold even one minimum block.
		total = layout.HeaderSize + layout.MinPayload
	}

	data, release, err := mem.Reserve(total)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMapFailed, err)
	}

	h := &Heap{data: data, release: release}
	h.setSize(headBlock, int32(total-layout.HeaderSize))
	h.setFree(headBlock, true)
	h.setNext(headBlock, nilBlock)
	h.setPrev(headBlock, nilBlock)
	return h, nil
}

// Close releases the backing buffer. The heap is unusable afterwards; any
// refs previously handed out are invalidated.
func (h *Heap) Close() error {
	h.data = nil
	if h.release == nil {
		return nil
	}
	release := h.release
	h.release = nil
	return release()
}

// Capacity returns the byte extent of the backing buffer.
func (h *Heap) Capacity() int {
	return len(h.data)
}
