package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetUint32Slice(t *testing.T) {
	t.Run("returns slice with correct size", func(t *testing.T) {
		slice, cleanup := GetUint32Slice(128)
		defer cleanup()

		require.Len(t, slice, 128)
		require.GreaterOrEqual(t, cap(slice), 128)
	})

	t.Run("allocates new slice when capacity insufficient", func(t *testing.T) {
		_, cleanup1 := GetUint32Slice(10)
		cleanup1()

		slice, cleanup2 := GetUint32Slice(1000)
		defer cleanup2()

		require.Len(t, slice, 1000)
	})

	t.Run("zero size", func(t *testing.T) {
		slice, cleanup := GetUint32Slice(0)
		defer cleanup()

		require.Empty(t, slice)
	})
}
