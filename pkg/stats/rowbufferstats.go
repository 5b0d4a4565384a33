// Package stats aggregates per-column running statistics for the row
// buffer, seeding the min/max index the downstream file encoder writes
// into the flushed blob's metadata.
package stats

import "math/big"

// RowBufferStats is the running-stats object for a single column. The row
// buffer's flush lock already serializes all updates, so no additional
// synchronization is needed inside this type.
type RowBufferStats struct {
	nullCount int64
	maxLength int64

	hasInt bool
	minInt *big.Int
	maxInt *big.Int

	hasStr bool
	minStr string
	maxStr string
}

// NewRowBufferStats returns a fresh stats object with all fields unset.
func NewRowBufferStats() *RowBufferStats {
	return &RowBufferStats{}
}

// IncNull increments the null counter.
func (s *RowBufferStats) IncNull() {
	s.nullCount++
}

// AddInt folds n into the running min/max over the integer domain. The
// first observation seeds both bounds.
func (s *RowBufferStats) AddInt(n *big.Int) {
	if !s.hasInt {
		s.minInt = new(big.Int).Set(n)
		s.maxInt = new(big.Int).Set(n)
		s.hasInt = true
		return
	}
	if n.Cmp(s.minInt) < 0 {
		s.minInt = new(big.Int).Set(n)
	}
	if n.Cmp(s.maxInt) > 0 {
		s.maxInt = new(big.Int).Set(n)
	}
}

// AddStr folds s into the running min/max over Unicode codepoint order.
func (s *RowBufferStats) AddStr(str string) {
	if !s.hasStr {
		s.minStr, s.maxStr = str, str
		s.hasStr = true
		return
	}
	if str < s.minStr {
		s.minStr = str
	}
	if str > s.maxStr {
		s.maxStr = str
	}
}

// SetMaxLength raises the observed max byte length to max(prev, length).
func (s *RowBufferStats) SetMaxLength(length int64) {
	if length > s.maxLength {
		s.maxLength = length
	}
}

// NullCount returns the number of null cells observed so far.
func (s *RowBufferStats) NullCount() int64 { return s.nullCount }

// MaxLength returns the largest observed string byte length.
func (s *RowBufferStats) MaxLength() int64 { return s.maxLength }

// MinInt and MaxInt return the running integer bounds, or nil if unset.
func (s *RowBufferStats) MinInt() *big.Int {
	if !s.hasInt {
		return nil
	}
	return s.minInt
}

func (s *RowBufferStats) MaxInt() *big.Int {
	if !s.hasInt {
		return nil
	}
	return s.maxInt
}

// MinStr and MaxStr return the running string bounds, and whether any
// string value has been observed.
func (s *RowBufferStats) MinStr() (string, bool) { return s.minStr, s.hasStr }
func (s *RowBufferStats) MaxStr() (string, bool) { return s.maxStr, s.hasStr }

// FileColumnProperties is the derived min/max/null/length payload for a
// single column, handed to the downstream indexer as part of an EpInfo.
type FileColumnProperties struct {
	MinIntValue *big.Int
	MaxIntValue *big.Int
	MinStrValue string
	MaxStrValue string
	HasStrValue bool
	MaxLength   int64
	NullCount   int64
}

func newFileColumnProperties(s *RowBufferStats) FileColumnProperties {
	minStr, hasStr := s.MinStr()
	maxStr, _ := s.MaxStr()
	return FileColumnProperties{
		MinIntValue: s.MinInt(),
		MaxIntValue: s.MaxInt(),
		MinStrValue: minStr,
		MaxStrValue: maxStr,
		HasStrValue: hasStr,
		MaxLength:   s.MaxLength(),
		NullCount:   s.NullCount(),
	}
}

// EpInfo is the sole communication from the row buffer to the downstream
// indexer: the row count of a flushed batch plus one FileColumnProperties
// per column.
type EpInfo struct {
	RowCount  int64
	ColumnEps map[string]FileColumnProperties
}

// BuildEpInfo derives an EpInfo from a flush's row count and the per-column
// stats table, keyed by normalized column name.
func BuildEpInfo(rowCount int64, colStats map[string]*RowBufferStats) EpInfo {
	info := EpInfo{
		RowCount:  rowCount,
		ColumnEps: make(map[string]FileColumnProperties, len(colStats)),
	}
	for name, s := range colStats {
		info.ColumnEps[name] = newFileColumnProperties(s)
	}
	return info
}
