// Package pool provides the arena memory pool backing the row buffer's
// column vectors: a small set of large pre-allocated chunks, served out in
// slices and reclaimed in bulk rather than individually.
package pool

import "sync"

// ArenaPool is a bump allocator over a bounded set of fixed-size chunks.
// Allocations are served from the first arena with enough remaining space;
// once every arena is full, allocations fall back to direct make([]byte, n).
// Individual allocations cannot be freed; Reset reclaims every arena at once.
type ArenaPool struct {
	mu        sync.Mutex
	arenas    []*Arena
	chunkSize int
	maxArenas int
}

// Arena is a single pre-allocated chunk served by bump-pointer allocation.
type Arena struct {
	data   []byte
	offset int
}

// NewArenaPool creates an arena pool with the given chunk size and maximum
// number of chunks.
func NewArenaPool(chunkSize, maxArenas int) *ArenaPool {
	return &ArenaPool{
		chunkSize: chunkSize,
		maxArenas: maxArenas,
		arenas:    make([]*Arena, 0, maxArenas),
	}
}

// Alloc returns size bytes from the pool, thread-safe.
func (p *ArenaPool) Alloc(size int) []byte {
	if size > p.chunkSize {
		return make([]byte, size)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	for _, arena := range p.arenas {
		if arena.offset+size <= len(arena.data) {
			start := arena.offset
			arena.offset += size
			return arena.data[start:arena.offset]
		}
	}

	if len(p.arenas) < p.maxArenas {
		arena := &Arena{data: make([]byte, p.chunkSize)}
		p.arenas = append(p.arenas, arena)
		arena.offset = size
		return arena.data[0:size]
	}

	return make([]byte, size)
}

// Reset reclaims every arena's memory at once. Byte slices previously
// returned by Alloc must not be used after Reset.
func (p *ArenaPool) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, arena := range p.arenas {
		arena.offset = 0
	}
}
