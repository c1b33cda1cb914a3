package pool

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewByteBuffer(t *testing.T) {
	bb := NewByteBuffer(1024)

	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len(), "new buffer should have zero length")
	assert.Equal(t, 1024, cap(bb.B), "new buffer should have specified capacity")
}

func TestByteBuffer_AppendAndReset(t *testing.T) {
	bb := NewByteBuffer(16)

	bb.B = append(bb.B, "hello world"...)
	require.Equal(t, []byte("hello world"), bb.Bytes())
	require.Equal(t, 11, bb.Len())

	originalCap := cap(bb.B)
	bb.Reset()
	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, originalCap, cap(bb.B), "Reset should preserve capacity")
}

func TestByteBuffer_Grow(t *testing.T) {
	t.Run("sufficient capacity is a no-op", func(t *testing.T) {
		bb := NewByteBuffer(100)
		bb.B = append(bb.B, 1, 2, 3)
		first := &bb.B[0]

		bb.Grow(50)
		require.Same(t, first, &bb.B[0])
		require.Equal(t, 100, cap(bb.B))
	})

	t.Run("small buffer grows by default size", func(t *testing.T) {
		bb := NewByteBuffer(8)
		bb.B = append(bb.B, 1, 2, 3, 4)

		bb.Grow(16)
		require.GreaterOrEqual(t, cap(bb.B), 4+PayloadBufferDefaultSize)
		require.Equal(t, []byte{1, 2, 3, 4}, bb.B, "data should be preserved")
	})

	t.Run("grows by at least the required bytes", func(t *testing.T) {
		bb := NewByteBuffer(8)
		bb.Grow(PayloadBufferDefaultSize * 3)
		require.GreaterOrEqual(t, cap(bb.B)-bb.Len(), PayloadBufferDefaultSize*3)
	})

	t.Run("large buffer grows by a quarter", func(t *testing.T) {
		bb := NewByteBuffer(PayloadBufferDefaultSize * 8)
		bb.B = bb.B[:cap(bb.B)]

		bb.Grow(1)
		require.GreaterOrEqual(t, cap(bb.B), PayloadBufferDefaultSize*10)
	})
}

func TestByteBufferPool_GetPut(t *testing.T) {
	p := NewByteBufferPool(64, 128)

	bb := p.Get()
	require.NotNil(t, bb)
	require.Equal(t, 0, bb.Len())

	bb.B = append(bb.B, "data"...)
	p.Put(bb)

	// buffers handed back out are always empty
	again := p.Get()
	require.Equal(t, 0, again.Len())

	require.NotPanics(t, func() { p.Put(nil) })
}

func TestByteBufferPool_DropsOversizedBuffers(t *testing.T) {
	p := NewByteBufferPool(8, 16)

	big := NewByteBuffer(1024)
	big.B = append(big.B, "oversized"...)
	p.Put(big)

	// an oversized buffer is discarded before Reset, so its content survives
	require.Equal(t, 9, big.Len())
}

func TestPayloadPool_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for range 100 {
				bb := GetPayloadBuffer()
				bb.B = append(bb.B, byte(id))
				assert.Equal(t, 1, bb.Len())
				PutPayloadBuffer(bb)
			}
		}(i)
	}
	wg.Wait()
}
