package rowbuffer

import (
	"sync"
	"sync/atomic"

	"github.com/apache/arrow-go/v18/arrow/memory"
)

// Channel is the row buffer's view of its owning streaming-ingest channel:
// the non-owning collaborator contract of spec.md §6/§9. A Buffer never
// outlives its Channel, so this is expressed as a plain borrowed interface
// rather than any form of shared ownership.
type Channel interface {
	// Allocator returns the shared allocator backing this channel's column vectors.
	Allocator() memory.Allocator
	// FullyQualifiedName identifies the channel for diagnostics and logging.
	FullyQualifiedName() string
	// NextRowSequencer atomically increments and returns the channel's
	// monotonic row sequencer.
	NextRowSequencer() int64
	// OffsetToken returns the last externally-known row boundary.
	OffsetToken() string
	// SetOffsetToken records a new row boundary.
	SetOffsetToken(token string)
}

// SimpleChannel is a minimal Channel implementation suitable for standalone
// use and for tests: one allocator, one atomic sequencer, one mutex-guarded
// offset token.
type SimpleChannel struct {
	name  string
	alloc memory.Allocator

	seq atomic.Int64

	mu    sync.RWMutex
	token string
}

// NewSimpleChannel builds a SimpleChannel bound to alloc.
func NewSimpleChannel(fullyQualifiedName string, alloc memory.Allocator) *SimpleChannel {
	return &SimpleChannel{name: fullyQualifiedName, alloc: alloc}
}

func (c *SimpleChannel) Allocator() memory.Allocator { return c.alloc }

func (c *SimpleChannel) FullyQualifiedName() string { return c.name }

func (c *SimpleChannel) NextRowSequencer() int64 { return c.seq.Add(1) }

func (c *SimpleChannel) OffsetToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *SimpleChannel) SetOffsetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}
