package stats

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRowBufferStats_IncNull(t *testing.T) {
	s := NewRowBufferStats()
	assert.Equal(t, int64(0), s.NullCount())
	s.IncNull()
	s.IncNull()
	assert.Equal(t, int64(2), s.NullCount())
}

func TestRowBufferStats_AddInt(t *testing.T) {
	s := NewRowBufferStats()
	assert.Nil(t, s.MinInt())
	assert.Nil(t, s.MaxInt())

	s.AddInt(big.NewInt(5))
	assert.Equal(t, big.NewInt(5), s.MinInt())
	assert.Equal(t, big.NewInt(5), s.MaxInt())

	s.AddInt(big.NewInt(-3))
	s.AddInt(big.NewInt(10))
	assert.Equal(t, big.NewInt(-3), s.MinInt())
	assert.Equal(t, big.NewInt(10), s.MaxInt())
}

func TestRowBufferStats_AddStr(t *testing.T) {
	s := NewRowBufferStats()
	minStr, ok := s.MinStr()
	assert.False(t, ok)
	assert.Equal(t, "", minStr)

	s.AddStr("banana")
	s.AddStr("apple")
	s.AddStr("cherry")

	min, ok := s.MinStr()
	assert.True(t, ok)
	assert.Equal(t, "apple", min)
	max, ok := s.MaxStr()
	assert.True(t, ok)
	assert.Equal(t, "cherry", max)
}

func TestRowBufferStats_SetMaxLength(t *testing.T) {
	s := NewRowBufferStats()
	s.SetMaxLength(3)
	s.SetMaxLength(10)
	s.SetMaxLength(7)
	assert.Equal(t, int64(10), s.MaxLength())
}

func TestBuildEpInfo(t *testing.T) {
	a := NewRowBufferStats()
	a.AddInt(big.NewInt(1))
	a.AddInt(big.NewInt(100))

	b := NewRowBufferStats()
	b.AddStr("x")
	b.SetMaxLength(1)
	b.IncNull()

	info := BuildEpInfo(2, map[string]*RowBufferStats{"A": a, "B": b})

	assert.Equal(t, int64(2), info.RowCount)
	assert.Len(t, info.ColumnEps, 2)
	assert.Equal(t, big.NewInt(1), info.ColumnEps["A"].MinIntValue)
	assert.Equal(t, big.NewInt(100), info.ColumnEps["A"].MaxIntValue)
	assert.Equal(t, int64(1), info.ColumnEps["B"].NullCount)
	assert.True(t, info.ColumnEps["B"].HasStrValue)
	assert.Equal(t, "x", info.ColumnEps["B"].MinStrValue)
}
