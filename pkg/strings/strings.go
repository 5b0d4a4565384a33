// Package strings provides the pooled string formatting helper used by
// pkg/errors to build error messages without leaning on fmt.Sprintf's
// per-call allocation.
package strings

import (
	"fmt"
	"reflect"
	"sync"
	"unsafe"
)

// BytesToString converts a byte slice to a string without allocation.
// WARNING: the returned string shares memory with b; do not mutate b
// after calling this.
func BytesToString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return *(*string)(unsafe.Pointer(&b))
}

// StringToBytes converts a string to a byte slice without allocation.
// WARNING: the returned slice shares memory with s; do not mutate it.
func StringToBytes(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	sh := (*reflect.StringHeader)(unsafe.Pointer(&s))
	bh := reflect.SliceHeader{Data: sh.Data, Len: sh.Len, Cap: sh.Len}
	return *(*[]byte)(unsafe.Pointer(&bh))
}

// Builder is a minimal append-only byte buffer implementing io.Writer, used
// as the scratch space for pooled Sprintf calls.
type Builder struct {
	buf []byte
}

// NewBuilder creates a builder with the given initial capacity.
func NewBuilder(capacity int) *Builder {
	return &Builder{buf: make([]byte, 0, capacity)}
}

// Write implements io.Writer.
func (b *Builder) Write(p []byte) (n int, err error) {
	b.buf = append(b.buf, p...)
	return len(p), nil
}

// String returns the built string using a zero-copy conversion. The
// returned string is only valid until the next Reset.
func (b *Builder) String() string {
	return BytesToString(b.buf)
}

// Reset empties the builder for reuse.
func (b *Builder) Reset() {
	b.buf = b.buf[:0]
}

// Clone copies s into freshly allocated memory, for callers that need to
// outlive a pooled Builder's buffer.
func Clone(s string) string {
	if len(s) == 0 {
		return ""
	}
	b := make([]byte, len(s))
	copy(b, StringToBytes(s))
	return BytesToString(b)
}

// BuilderSize selects which pooled-builder size class to draw from.
type BuilderSize int

const (
	Small  BuilderSize = iota // < 1KB
	Medium                    // 1KB - 16KB
	Large                     // 16KB+
)

var (
	smallBuilderPool  = &sync.Pool{New: func() interface{} { return NewBuilder(1024) }}
	mediumBuilderPool = &sync.Pool{New: func() interface{} { return NewBuilder(16 * 1024) }}
	largeBuilderPool  = &sync.Pool{New: func() interface{} { return NewBuilder(64 * 1024) }}
)

func poolFor(size BuilderSize) *sync.Pool {
	switch size {
	case Medium:
		return mediumBuilderPool
	case Large:
		return largeBuilderPool
	default:
		return smallBuilderPool
	}
}

// GetBuilder retrieves a pooled, reset builder of the given size class.
func GetBuilder(size BuilderSize) *Builder {
	builder := poolFor(size).Get().(*Builder)
	builder.Reset()
	return builder
}

// PutBuilder returns a builder to its size class's pool.
func PutBuilder(builder *Builder, size BuilderSize) {
	if builder == nil {
		return
	}
	builder.Reset()
	poolFor(size).Put(builder)
}

// Sprintf is a pooled alternative to fmt.Sprintf: it formats into a scratch
// Builder drawn from a size-classed pool and clones the result so it
// outlives the builder's return to the pool.
func Sprintf(format string, args ...interface{}) string {
	if len(args) == 0 {
		return format
	}

	estimatedSize := len(format) + len(args)*16
	size := Small
	if estimatedSize > 16*1024 {
		size = Large
	} else if estimatedSize > 1024 {
		size = Medium
	}

	builder := GetBuilder(size)
	defer PutBuilder(builder, size)

	fmt.Fprintf(builder, format, args...)
	return Clone(builder.String())
}
