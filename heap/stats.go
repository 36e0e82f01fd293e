package heap

// Stats holds cumulative operation counters. Counters only ever increase;
// snapshot metrics derived from the current chain live on Heap directly.
type Stats struct {
	AllocCalls       int   // Total Alloc() calls (including delegated ones)
	FreeCalls        int   // Total Free() calls
	ResizeCalls      int   // Total Resize() calls
	FailedAllocs     int   // Allocations refused for exhaustion or overflow
	SplitCount       int   // Blocks split on allocation or shrink
	CoalesceForward  int   // Merges with a free successor
	CoalesceBackward int   // Merges with a free predecessor
	DoubleFrees      int   // Free/Resize calls on an already-free block
	BadRefs          int   // References rejected as foreign or corrupt
	BytesAllocated   int64 // Total payload bytes handed out
	BytesFreed       int64 // Total payload bytes returned
}

// Stats returns a snapshot of the operation counters.
func (h *Heap) Stats() Stats {
	return h.stats
}

// BytesInUse returns the payload bytes currently held by callers.
// This excludes header overhead; see Utilization for the full picture.
func (h *Heap) BytesInUse() int {
	sum := 0
	for b := headBlock; b != nilBlock; b = h.next(b) {
		if !h.isFree(b) {
			sum += int(h.size(b))
		}
	}
	return sum
}

// NumBlocks returns the number of blocks in the chain, free and used.
func (h *Heap) NumBlocks() int {
	n := 0
	for b := headBlock; b != nilBlock; b = h.next(b) {
		n++
	}
	return n
}

// LargestFree returns the payload size of the largest free block, the upper
// bound on what the next Alloc can satisfy.
func (h *Heap) LargestFree() int {
	largest := 0
	for b := headBlock; b != nilBlock; b = h.next(b) {
		if h.isFree(b) && int(h.size(b)) > largest {
			largest = int(h.size(b))
		}
	}
	return largest
}

// Utilization returns the ratio of in-use payload bytes to total capacity
// (0.0 to 1.0). Returns 0.0 for a closed heap.
func (h *Heap) Utilization() float64 {
	if len(h.data) == 0 {
		return 0
	}
	return float64(h.BytesInUse()) / float64(len(h.data))
}
