package rowbuffer

import (
	"testing"

	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/stretchr/testify/assert"
)

func TestSimpleChannel(t *testing.T) {
	alloc := memory.NewGoAllocator()
	ch := NewSimpleChannel("db.schema.table", alloc)

	assert.Equal(t, "db.schema.table", ch.FullyQualifiedName())
	assert.Same(t, alloc, ch.Allocator())

	assert.Equal(t, int64(1), ch.NextRowSequencer())
	assert.Equal(t, int64(2), ch.NextRowSequencer())

	assert.Equal(t, "", ch.OffsetToken())
	ch.SetOffsetToken("abc")
	assert.Equal(t, "abc", ch.OffsetToken())
}
