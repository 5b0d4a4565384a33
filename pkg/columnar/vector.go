// Package columnar provides the row buffer's Column Store: one append-only,
// null-aware Vector per schema column, backed by an Arrow array.Builder so
// that a flush can transfer ownership of the accumulated values without
// copying them.
package columnar

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/decimal128"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/flowlane/rowbuffer/pkg/rowschema"
)

// Vector is an append-only, null-aware column vector backed by an Arrow
// array builder. It is the Column Vector of the row buffer's columnar
// storage layer: one Vector per schema column, all sharing the buffer's
// allocator.
type Vector interface {
	// Len returns the number of logical rows (including nulls) appended so far.
	Len() int
	// AppendNull marks the cell at the current row index as null.
	AppendNull()
	// SetValidCount asserts the vector's length matches n before a transfer.
	// Arrow builders already track length per append, so this is a
	// consistency check rather than a mutation.
	SetValidCount(n int) error
	// TransferOut hands back an exclusively-owned, immutable Arrow array
	// holding everything appended so far, and leaves the vector empty and
	// ready to accept further appends.
	TransferOut() arrow.Array
	// Release discards the vector's backing builder, returning its memory
	// to the allocator.
	Release()
}

// Int8Vector, Int16Vector, Int32Vector, Int64Vector append fixed-width signed
// integers (storage kinds i8/i16/i32/i64).
type Int8Vector struct{ b *array.Int8Builder }
type Int16Vector struct{ b *array.Int16Builder }
type Int32Vector struct{ b *array.Int32Builder }
type Int64Vector struct{ b *array.Int64Builder }

// DecimalVector appends fixed-precision decimal128 values (storage kind decimal128).
type DecimalVector struct {
	b               *array.Decimal128Builder
	precision, scale int32
}

// StringVector appends UTF-8 text (storage kind utf8).
type StringVector struct{ b *array.StringBuilder }

// NewVector constructs the Vector appropriate for plan.StorageKind, backed
// by alloc (normally the row buffer's shared arena allocator).
func NewVector(plan *rowschema.ColumnPlan, alloc memory.Allocator) (Vector, error) {
	switch plan.StorageKind {
	case rowschema.StorageInt8:
		return &Int8Vector{b: array.NewInt8Builder(alloc)}, nil
	case rowschema.StorageInt16:
		return &Int16Vector{b: array.NewInt16Builder(alloc)}, nil
	case rowschema.StorageInt32:
		return &Int32Vector{b: array.NewInt32Builder(alloc)}, nil
	case rowschema.StorageInt64:
		return &Int64Vector{b: array.NewInt64Builder(alloc)}, nil
	case rowschema.StorageDecimal128:
		dtype := &arrow.Decimal128Type{Precision: plan.Precision, Scale: plan.Scale}
		return &DecimalVector{
			b:         array.NewDecimal128Builder(alloc, dtype),
			precision: plan.Precision,
			scale:     plan.Scale,
		}, nil
	case rowschema.StorageUTF8:
		return &StringVector{b: array.NewStringBuilder(alloc)}, nil
	default:
		return nil, fmt.Errorf("columnar: unsupported storage kind %s", plan.StorageKind)
	}
}

func (v *Int8Vector) Len() int        { return v.b.Len() }
func (v *Int8Vector) AppendNull()     { v.b.AppendNull() }
func (v *Int8Vector) Append(n int8)   { v.b.Append(n) }
func (v *Int8Vector) TransferOut() arrow.Array { return v.b.NewArray() }
func (v *Int8Vector) Release()                 { v.b.Release() }
func (v *Int8Vector) SetValidCount(n int) error { return assertLen(v.b.Len(), n) }

func (v *Int16Vector) Len() int        { return v.b.Len() }
func (v *Int16Vector) AppendNull()     { v.b.AppendNull() }
func (v *Int16Vector) Append(n int16)  { v.b.Append(n) }
func (v *Int16Vector) TransferOut() arrow.Array { return v.b.NewArray() }
func (v *Int16Vector) Release()                 { v.b.Release() }
func (v *Int16Vector) SetValidCount(n int) error { return assertLen(v.b.Len(), n) }

func (v *Int32Vector) Len() int        { return v.b.Len() }
func (v *Int32Vector) AppendNull()     { v.b.AppendNull() }
func (v *Int32Vector) Append(n int32)  { v.b.Append(n) }
func (v *Int32Vector) TransferOut() arrow.Array { return v.b.NewArray() }
func (v *Int32Vector) Release()                 { v.b.Release() }
func (v *Int32Vector) SetValidCount(n int) error { return assertLen(v.b.Len(), n) }

func (v *Int64Vector) Len() int        { return v.b.Len() }
func (v *Int64Vector) AppendNull()     { v.b.AppendNull() }
func (v *Int64Vector) Append(n int64)  { v.b.Append(n) }
func (v *Int64Vector) TransferOut() arrow.Array { return v.b.NewArray() }
func (v *Int64Vector) Release()                 { v.b.Release() }
func (v *Int64Vector) SetValidCount(n int) error { return assertLen(v.b.Len(), n) }

func (v *DecimalVector) Len() int    { return v.b.Len() }
func (v *DecimalVector) AppendNull() { v.b.AppendNull() }
func (v *DecimalVector) Append(n decimal128.Num) { v.b.Append(n) }
func (v *DecimalVector) TransferOut() arrow.Array { return v.b.NewArray() }
func (v *DecimalVector) Release()                 { v.b.Release() }
func (v *DecimalVector) SetValidCount(n int) error { return assertLen(v.b.Len(), n) }

func (v *StringVector) Len() int          { return v.b.Len() }
func (v *StringVector) AppendNull()       { v.b.AppendNull() }
func (v *StringVector) Append(s string)   { v.b.Append(s) }
func (v *StringVector) TransferOut() arrow.Array { return v.b.NewArray() }
func (v *StringVector) Release()                 { v.b.Release() }
func (v *StringVector) SetValidCount(n int) error { return assertLen(v.b.Len(), n) }

func assertLen(got, want int) error {
	if got != want {
		return fmt.Errorf("columnar: vector length %d does not match expected valid count %d", got, want)
	}
	return nil
}
