package rowbuffer

import (
	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/flowlane/rowbuffer/pkg/pool"
)

// arenaAllocator adapts the teacher's pool.ArenaPool to Arrow's
// memory.Allocator interface, realizing spec.md's "shared arena-style
// allocator" (§2, §4.2, §5) on top of an existing arena implementation
// rather than a bespoke one. Individual Free calls are no-ops: arena memory
// is reclaimed in bulk by Reset, which a Buffer invokes from Close.
type arenaAllocator struct {
	arenas *pool.ArenaPool
}

func newArenaAllocator(chunkBytes, maxArenas int) *arenaAllocator {
	return &arenaAllocator{arenas: pool.NewArenaPool(chunkBytes, maxArenas)}
}

func (a *arenaAllocator) Allocate(size int) []byte {
	return a.arenas.Alloc(size)
}

func (a *arenaAllocator) Free(_ []byte) {}

func (a *arenaAllocator) Reallocate(size int, b []byte) []byte {
	newBuf := a.arenas.Alloc(size)
	copy(newBuf, b)
	return newBuf
}

// Reset reclaims every allocation served by this allocator. Only safe once
// every builder/array backed by it has been released.
func (a *arenaAllocator) Reset() {
	a.arenas.Reset()
}

// resettableAllocator is implemented by allocators that can reclaim all of
// their memory in bulk. Buffer.Close uses it when present.
type resettableAllocator interface {
	Reset()
}

// NewArenaAllocator builds a memory.Allocator backed by an arena pool with
// the given chunk size and maximum number of chunks, optionally wrapped in
// Arrow's leak-detecting CheckedAllocator (see spec.md §8 scenario S6).
func NewArenaAllocator(chunkBytes, maxArenas int, checked bool) memory.Allocator {
	base := newArenaAllocator(chunkBytes, maxArenas)
	if !checked {
		return base
	}
	return memory.NewCheckedAllocator(base)
}
