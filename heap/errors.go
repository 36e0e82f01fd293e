package heap

import "errors"

var (
	// ErrNoSpace indicates that no free block large enough was found.
	// The heap never grows; freeing blocks makes the request retryable.
	ErrNoSpace = errors.New("heap: no free block large enough")

	// ErrBadRef indicates a reference that does not address a payload
	// inside the managed heap extent. The heap is left unchanged.
	ErrBadRef = errors.New("heap: bad block reference")

	// ErrDoubleFree indicates a reference whose block is already free.
	// The heap is left unchanged.
	ErrDoubleFree = errors.New("heap: block already free")

	// ErrOverflow indicates that an AllocZeroed count*size product would
	// overflow. Detected before multiplying.
	ErrOverflow = errors.New("heap: allocation size overflows")

	// ErrMapFailed indicates that the backing buffer could not be
	// reserved. No heap operation can proceed after this.
	ErrMapFailed = errors.New("heap: cannot reserve backing buffer")

	// ErrCorrupt indicates a header whose fields point outside the heap.
	// Walks stop rather than read past the buffer.
	ErrCorrupt = errors.New("heap: block chain corrupt")
)
