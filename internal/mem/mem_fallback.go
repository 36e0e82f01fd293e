//go:build !unix

// Package mem provides platform-specific reservation of the heap's backing
// buffer.
package mem

import "fmt"

// Reserve allocates through the Go runtime when anonymous mmap is not
// available. make() returns zero-filled memory, matching the unix path.
func Reserve(size int) ([]byte, func() error, error) {
	if size <= 0 {
		return nil, nil, fmt.Errorf("mem: invalid reservation size %d", size)
	}
	return make([]byte, size), func() error { return nil }, nil
}
