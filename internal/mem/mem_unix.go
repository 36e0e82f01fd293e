//go:build unix

package mem

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// Reserve obtains a zero-filled anonymous mapping of size bytes and returns
// it together with a release function. The mapping never backs a file; it is
// the allocator's single touch point with the system allocator.
func Reserve(size int) ([]byte, func() error, error) {
	if size <= 0 {
		return nil, nil, fmt.Errorf("mem: invalid reservation size %d", size)
	}
	data, err := unix.Mmap(-1, 0, size,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, nil, err
	}
	release := func() error {
		if data == nil {
			return nil
		}
		err := unix.Munmap(data)
		data = nil
		if errors.Is(err, unix.EINVAL) {
			// Treat double-unmap as no-op for callers.
			return nil
		}
		return err
	}
	return data, release, nil
}
