package main

import (
	"fmt"
	"os"

	"github.com/joshuapare/memkit/heap"
	"github.com/spf13/cobra"
)

var (
	demoHeapSize int
	demoStats    bool
)

func init() {
	cmd := newDemoCmd()
	cmd.Flags().IntVar(&demoHeapSize, "heap-size", 1<<20, "Heap capacity in bytes")
	cmd.Flags().BoolVar(&demoStats, "stats", false, "Print allocator counters at the end")
	rootCmd.AddCommand(cmd)
}

func newDemoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the allocate/free/resize/zero-allocate demonstration",
		Long: `The demo command exercises every allocator operation against a fresh
heap and dumps the block chain between phases.

Example:
  memctl demo
  memctl demo --heap-size 65536
  memctl demo --stats`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo()
		},
	}
	return cmd
}

func runDemo() error {
	h, err := heap.New(demoHeapSize)
	if err != nil {
		return err
	}
	defer h.Close()

	printInfo("=== memkit demo starting (heap %d bytes) ===\n", h.Capacity())

	a, abuf, err := h.Alloc(64)
	if err != nil {
		return fmt.Errorf("alloc a: %w", err)
	}
	fill(abuf, 0xAA)
	printInfo("allocated a @ %#x\n", a)

	b, bbuf, err := h.Alloc(128)
	if err != nil {
		return fmt.Errorf("alloc b: %w", err)
	}
	fill(bbuf, 0xBB)
	printInfo("allocated b @ %#x\n", b)

	dump(h)

	if err := h.Free(a); err != nil {
		return fmt.Errorf("free a: %w", err)
	}
	printInfo("freed a\n")
	dump(h)

	b, _, err = h.Resize(b, 512)
	if err != nil {
		return fmt.Errorf("resize b: %w", err)
	}
	printInfo("resized b -> 512 @ %#x\n", b)
	dump(h)

	var blocks [8]heap.Ref
	for i := range blocks {
		r, _, allocErr := h.Alloc(50 + i*10)
		if allocErr != nil {
			return fmt.Errorf("alloc blocks[%d]: %w", i, allocErr)
		}
		blocks[i] = r
		printInfo("blocks[%d] = %#x\n", i, r)
	}
	dump(h)

	if err := h.Free(blocks[2]); err != nil {
		return fmt.Errorf("free blocks[2]: %w", err)
	}
	if err := h.Free(blocks[3]); err != nil {
		return fmt.Errorf("free blocks[3]: %w", err)
	}
	blocks[2], blocks[3] = heap.NilRef, heap.NilRef
	printInfo("freed blocks[2], blocks[3]\n")
	dump(h)

	z, zbuf, err := h.AllocZeroed(10, 4)
	if err != nil {
		return fmt.Errorf("zero-alloc: %w", err)
	}
	for i, v := range zbuf {
		if v != 0 {
			return fmt.Errorf("zero-alloc: byte %d is %#x, want 0", i, v)
		}
	}
	printInfo("zero-alloc test OK (%d bytes)\n", len(zbuf))
	if err := h.Free(z); err != nil {
		return fmt.Errorf("free zero-alloc: %w", err)
	}

	big, _, err := h.Alloc(1024)
	if err != nil {
		return fmt.Errorf("alloc big: %w", err)
	}
	printInfo("allocated big @ %#x\n", big)
	dump(h)

	big, _, err = h.Resize(big, 128)
	if err != nil {
		return fmt.Errorf("shrink big: %w", err)
	}
	printInfo("shrunk big -> 128 @ %#x\n", big)
	dump(h)

	for i, r := range blocks {
		if r == heap.NilRef {
			continue
		}
		if err := h.Free(r); err != nil {
			return fmt.Errorf("cleanup blocks[%d]: %w", i, err)
		}
	}
	if err := h.Free(b); err != nil {
		return fmt.Errorf("cleanup b: %w", err)
	}
	if err := h.Free(big); err != nil {
		return fmt.Errorf("cleanup big: %w", err)
	}

	printInfo("final heap:\n")
	h.Dump(os.Stdout)

	if demoStats {
		s := h.Stats()
		printInfo("allocs=%d frees=%d resizes=%d splits=%d coalesce=%d/%d failed=%d\n",
			s.AllocCalls, s.FreeCalls, s.ResizeCalls, s.SplitCount,
			s.CoalesceForward, s.CoalesceBackward, s.FailedAllocs)
	}

	printInfo("=== memkit demo finished ===\n")
	return nil
}

// dump prints the block chain unless running quiet or non-verbose.
func dump(h *heap.Heap) {
	if verbose && !quiet {
		h.Dump(os.Stdout)
	}
}

func fill(buf []byte, v byte) {
	for i := range buf {
		buf[i] = v
	}
}
