package rowbuffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArenaAllocator_AllocateAndReset(t *testing.T) {
	a := newArenaAllocator(4096, 4)

	buf := a.Allocate(128)
	require.Len(t, buf, 128)

	buf2 := a.Reallocate(256, buf)
	require.Len(t, buf2, 256)
	assert.Equal(t, buf[:128], buf2[:128])

	a.Reset() // must not panic
}

func TestNewArenaAllocator_WrapsCheckedAllocatorOnRequest(t *testing.T) {
	plain := NewArenaAllocator(4096, 4, false)
	if _, ok := plain.(resettableAllocator); !ok {
		t.Fatalf("expected unchecked arena allocator to implement resettableAllocator")
	}

	checked := NewArenaAllocator(4096, 4, true)
	if _, ok := checked.(resettableAllocator); ok {
		t.Fatalf("CheckedAllocator should not itself expose Reset")
	}
}
