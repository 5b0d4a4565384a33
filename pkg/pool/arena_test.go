package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArenaPool_AllocWithinChunk(t *testing.T) {
	p := NewArenaPool(1024, 2)

	a := p.Alloc(100)
	b := p.Alloc(100)
	require.Len(t, a, 100)
	require.Len(t, b, 100)

	copy(a, []byte("hello"))
	assert.Equal(t, "hello", string(a[:5]))
	assert.NotEqual(t, "hello", string(b[:5]), "distinct allocations must not alias")
}

func TestArenaPool_OverflowsToNewArena(t *testing.T) {
	p := NewArenaPool(64, 2)

	first := p.Alloc(64)
	second := p.Alloc(64) // the first arena is full, so this needs a second
	require.Len(t, first, 64)
	require.Len(t, second, 64)
	assert.Len(t, p.arenas, 2)
}

func TestArenaPool_FallsBackToDirectAllocBeyondMaxArenas(t *testing.T) {
	p := NewArenaPool(16, 1)

	p.Alloc(16) // fills the only arena
	extra := p.Alloc(16)
	require.Len(t, extra, 16)
	assert.Len(t, p.arenas, 1, "must not grow past maxArenas")
}

func TestArenaPool_AllocLargerThanChunkGoesDirect(t *testing.T) {
	p := NewArenaPool(16, 4)

	buf := p.Alloc(1024)
	require.Len(t, buf, 1024)
	assert.Empty(t, p.arenas, "oversized alloc must not consume an arena slot")
}

func TestArenaPool_ResetReclaimsArenas(t *testing.T) {
	p := NewArenaPool(64, 1)

	p.Alloc(64)
	require.Len(t, p.arenas, 1)

	p.Reset()
	buf := p.Alloc(64)
	require.Len(t, buf, 64)
	assert.Len(t, p.arenas, 1, "Reset reuses the existing arena instead of allocating a new one")
}
