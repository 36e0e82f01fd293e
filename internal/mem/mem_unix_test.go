//go:build unix

package mem

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_ReserveReturnsZeroedBuffer(t *testing.T) {
	data, release, err := Reserve(1 << 16)
	require.NoError(t, err)
	require.Len(t, data, 1<<16)
	for i, v := range data {
		if v != 0 {
			t.Fatalf("byte %d is %#x, want 0", i, v)
		}
	}

	// The mapping must be writable.
	data[0] = 0xFF
	data[len(data)-1] = 0xFF

	require.NoError(t, release())
	// Releasing twice is a no-op.
	require.NoError(t, release())
}

func Test_ReserveRejectsNonPositiveSize(t *testing.T) {
	for _, size := range []int{0, -1} {
		data, release, err := Reserve(size)
		require.Error(t, err)
		require.Nil(t, data)
		require.Nil(t, release)
	}
}
