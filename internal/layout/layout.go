// Package layout defines the in-buffer block header format used by the heap
// allocator. All byte-level field placement, alignment arithmetic, and endian
// handling lives here so higher-level packages never re-derive raw offsets.
package layout

const (
	// Alignment is the granularity every block size and block offset is
	// rounded to. Sixteen bytes keeps payloads usable for any Go scalar.
	Alignment = 16

	// AlignmentMask is Alignment-1, used for round-up arithmetic.
	AlignmentMask = Alignment - 1

	// HeaderSize is the size of a block header in bytes. The header is
	// exactly one Alignment unit, so payloads stay aligned with no padding.
	//
	// Layout (little-endian):
	//   0x00  uint32  payload size in bytes (Alignment-rounded)
	//   0x04  uint32  flags (bit 0: block is free)
	//   0x08  int32   offset of the next header, -1 when last
	//   0x0C  int32   offset of the previous header, -1 when first
	HeaderSize = 16

	// MinPayload is the smallest payload a block may carry. Splitting never
	// materializes a free block smaller than this floor.
	MinPayload = 32

	// Header field offsets.
	sizeField  = 0x00
	flagsField = 0x04
	nextField  = 0x08
	prevField  = 0x0C

	// flagFree marks a block as available for allocation.
	flagFree = 0x1
)

// Align returns n rounded up to the next Alignment boundary.
//
// Example:
//
//	Align(1)  = 16
//	Align(16) = 16
//	Align(17) = 32
func Align(n int) int {
	return (n + AlignmentMask) &^ AlignmentMask
}

// AlignI32 returns n rounded up to the next Alignment boundary.
// int32 version for use in allocator code to avoid G115 warnings.
func AlignI32(n int32) int32 {
	return (n + AlignmentMask) &^ AlignmentMask
}

// BlockSize reads the payload size of the header at offset b.
func BlockSize(data []byte, b int32) int32 {
	return int32(ReadU32(data, int(b)+sizeField))
}

// SetBlockSize writes the payload size of the header at offset b.
func SetBlockSize(data []byte, b, size int32) {
	PutU32(data, int(b)+sizeField, uint32(size))
}

// BlockFree reports whether the header at offset b is marked free.
func BlockFree(data []byte, b int32) bool {
	return ReadU32(data, int(b)+flagsField)&flagFree != 0
}

// SetBlockFree sets or clears the free flag of the header at offset b.
func SetBlockFree(data []byte, b int32, free bool) {
	var v uint32
	if free {
		v = flagFree
	}
	PutU32(data, int(b)+flagsField, v)
}

// BlockNext reads the next-header offset of the header at offset b.
// Returns -1 when b is the last block.
func BlockNext(data []byte, b int32) int32 {
	return ReadI32(data, int(b)+nextField)
}

// SetBlockNext writes the next-header offset of the header at offset b.
func SetBlockNext(data []byte, b, next int32) {
	PutI32(data, int(b)+nextField, next)
}

// BlockPrev reads the previous-header offset of the header at offset b.
// Returns -1 when b is the first block.
func BlockPrev(data []byte, b int32) int32 {
	return ReadI32(data, int(b)+prevField)
}

// SetBlockPrev writes the previous-header offset of the header at offset b.
func SetBlockPrev(data []byte, b, prev int32) {
	PutI32(data, int(b)+prevField, prev)
}
