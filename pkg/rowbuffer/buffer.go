// Package rowbuffer implements the in-memory, columnar row buffer of a
// streaming ingestion channel: it accepts loosely-typed rows, validates and
// coerces them against a server-supplied column schema, accumulates the
// values column-by-column, maintains per-column statistics, and periodically
// hands the accumulated batch off to a flush pipeline.
package rowbuffer

import (
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/apache/arrow-go/v18/arrow"
	"go.uber.org/zap"

	"github.com/flowlane/rowbuffer/pkg/columnar"
	rberrors "github.com/flowlane/rowbuffer/pkg/errors"
	"github.com/flowlane/rowbuffer/pkg/logger"
	"github.com/flowlane/rowbuffer/pkg/metrics"
	"github.com/flowlane/rowbuffer/pkg/rowschema"
	"github.com/flowlane/rowbuffer/pkg/stats"
)

// bytesPerCellOverhead is the fixed per-entry bookkeeping cost charged
// against buffer_size for every cell a row supplies (explicit nulls
// included), independent of its type or value, mirroring the original row
// buffer's accounting. The null padding appended for a column absent from a
// row is not charged.
const bytesPerCellOverhead = 0.125

// ChannelData is the immutable hand-off artifact produced by a flush: the
// Flush Snapshot of spec.md §2/§6. The flush consumer assumes exclusive
// ownership of Vectors and is responsible for their eventual release.
type ChannelData struct {
	Vectors      map[string]arrow.Array
	RowCount     int64
	BufferSize   float64
	RowSequencer int64
	OffsetToken  string
	EpInfo       stats.EpInfo
}

// Release releases every vector owned by this snapshot.
func (d *ChannelData) Release() {
	for _, arr := range d.Vectors {
		arr.Release()
	}
}

// Buffer is the row buffer's public surface: setup_schema, insert_rows,
// flush, reset, close, size (spec.md §4.3).
type Buffer struct {
	cfg     Config
	channel Channel
	log     *zap.Logger

	mu sync.Mutex // flush_lock: serializes insert_rows and flush

	schema  []*rowschema.ColumnPlan
	byName  map[string]int
	vectors []columnar.Vector
	colStat []*stats.RowBufferStats

	rowCount   atomic.Int64
	bufferSize atomic.Uint64 // math.Float64bits(buffer_size); volatile per spec.md §5

	closed bool
}

// New constructs an empty row buffer bound to channel and to channel's
// allocator, per spec.md's lifecycle: "created empty, bound to an allocator
// and an owning channel." SetupSchema must be called before any row is
// inserted.
func New(channel Channel, cfg Config) (*Buffer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Buffer{
		cfg:     cfg,
		channel: channel,
		log:     logger.Get().With(zap.String("channel", channel.FullyQualifiedName())),
	}, nil
}

// SetupSchema resolves the supplied column descriptors, allocates one empty
// vector and one stats object per column, and installs them. It must be
// called exactly once, before any InsertRows call; a second call is
// rejected outright rather than silently discarding state a concurrent
// flush may be observing.
func (b *Buffer) SetupSchema(columns []rowschema.ColumnDescriptor) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.schema != nil {
		return rberrors.New(rberrors.ErrorTypeConfig, "setup_schema called more than once on the same buffer")
	}

	plans, err := rowschema.ResolveAll(columns)
	if err != nil {
		return err
	}

	alloc := b.channel.Allocator()
	vectors := make([]columnar.Vector, len(plans))
	colStat := make([]*stats.RowBufferStats, len(plans))
	byName := make(map[string]int, len(plans))
	for i, plan := range plans {
		vec, err := columnar.NewVector(plan, alloc)
		if err != nil {
			for _, built := range vectors[:i] {
				if built != nil {
					built.Release()
				}
			}
			return err
		}
		vectors[i] = vec
		colStat[i] = stats.NewRowBufferStats()
		byName[plan.NormalizedName] = i
	}

	b.schema = plans
	b.vectors = vectors
	b.colStat = colStat
	b.byName = byName
	return nil
}

// InsertRows converts and appends each row in order, then records
// offsetToken as the channel's latest persisted boundary. A row that fails
// to convert aborts the whole call with an invalid_row error; rows already
// appended before the failing row are not rolled back, matching the
// original implementation's row-at-a-time, no-rollback behavior (spec.md
// §9). An empty batch is a no-op except for the offset token update.
func (b *Buffer) InsertRows(rows []map[string]interface{}, offsetToken string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return rberrors.New(rberrors.ErrorTypeConfig, "insert_rows called on a closed buffer")
	}
	if b.schema == nil {
		return rberrors.New(rberrors.ErrorTypeConfig, "insert_rows called before setup_schema")
	}

	fqn := b.channel.FullyQualifiedName()
	for _, row := range rows {
		added, err := b.convertRow(row)
		if err != nil {
			b.log.Error("row conversion failed", zap.Error(err))
			metrics.RowBufferConversionErrors.WithLabelValues(fqn).Inc()
			return rberrors.WrapInvalidRow(err, "failed to convert row to columnar storage")
		}
		b.addBufferSize(added)
		b.rowCount.Add(1)
	}
	b.channel.SetOffsetToken(offsetToken)
	if len(rows) > 0 {
		metrics.RowBufferRowsInserted.WithLabelValues(fqn).Add(float64(len(rows)))
		metrics.RowBufferRowCount.WithLabelValues(fqn).Set(float64(b.rowCount.Load()))
		metrics.RowBufferSize.WithLabelValues(fqn).Set(b.size())
	}
	return nil
}

// Flush atomically takes ownership of every accumulated vector and the
// buffer's row/size counters, resets the buffer to empty, and returns the
// resulting snapshot. It returns (nil, nil) when there is nothing to flush,
// mirroring the original's outer row-count check so an idle flush timer
// never pays for a lock acquisition's contention on an empty buffer.
func (b *Buffer) Flush() (*ChannelData, error) {
	if b.rowCount.Load() == 0 {
		return nil, nil
	}

	start := time.Now()
	fqn := b.channel.FullyQualifiedName()
	defer func() {
		metrics.RowBufferFlushDuration.WithLabelValues(fqn).Observe(float64(time.Since(start).Nanoseconds()))
	}()

	b.mu.Lock()
	defer b.mu.Unlock()

	rowCount := b.rowCount.Load()
	if rowCount == 0 {
		// Lost the race with another caller; nothing left to flush.
		return nil, nil
	}

	vectors := make(map[string]arrow.Array, len(b.schema))
	colStats := make(map[string]*stats.RowBufferStats, len(b.schema))
	for i, plan := range b.schema {
		if err := b.vectors[i].SetValidCount(int(rowCount)); err != nil {
			return nil, rberrors.Wrap(err, rberrors.ErrorTypeInternal, "vector length mismatch at flush")
		}
		vectors[plan.NormalizedName] = b.vectors[i].TransferOut()
		colStats[plan.NormalizedName] = b.colStat[i]
	}

	data := &ChannelData{
		Vectors:      vectors,
		RowCount:     rowCount,
		BufferSize:   b.size(),
		RowSequencer: b.channel.NextRowSequencer(),
		OffsetToken:  b.channel.OffsetToken(),
		EpInfo:       stats.BuildEpInfo(rowCount, colStats),
	}

	b.resetLocked()
	metrics.RowBufferRowCount.WithLabelValues(fqn).Set(0)
	metrics.RowBufferSize.WithLabelValues(fqn).Set(0)
	return data, nil
}

// Reset clears every vector, zeroes the row and size counters, and replaces
// every stats entry with a fresh one. Clearing a vector releases its backing
// memory; the vector does not keep its previous capacity. Exposed
// for callers that need to discard an in-progress batch without flushing
// it; Flush calls the unexported resetLocked form as its own last step.
func (b *Buffer) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, vec := range b.vectors {
		vec.TransferOut().Release() // clears the builder, discarding its contents
	}
	b.resetLocked()
}

// resetLocked clears row count, buffer size, and per-column stats, leaving
// the (now-empty) vectors in place for reuse. Callers must hold mu.
func (b *Buffer) resetLocked() {
	b.rowCount.Store(0)
	b.bufferSize.Store(0)
	for i := range b.colStat {
		b.colStat[i] = stats.NewRowBufferStats()
	}
}

// Close releases every vector's backing builder and, if the channel's
// allocator can reclaim its memory in bulk, resets it. Close is idempotent.
func (b *Buffer) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	for _, vec := range b.vectors {
		vec.Release()
	}
	if ra, ok := b.channel.Allocator().(resettableAllocator); ok {
		ra.Reset()
	}
	b.closed = true
	return nil
}

// Size returns the current estimated buffer size in bytes.
func (b *Buffer) Size() float64 {
	return b.size()
}

// RowCount returns the number of rows currently accumulated (not yet flushed).
func (b *Buffer) RowCount() int64 {
	return b.rowCount.Load()
}

// Metrics returns a snapshot of the buffer's current counters, following
// the Connector.Metrics() convention used elsewhere in this module.
func (b *Buffer) Metrics() map[string]interface{} {
	return map[string]interface{}{
		"channel":    b.channel.FullyQualifiedName(),
		"row_count":  b.rowCount.Load(),
		"buffer_size": b.size(),
		"closed":     b.closed,
	}
}

func (b *Buffer) size() float64 {
	return math.Float64frombits(b.bufferSize.Load())
}

func (b *Buffer) addBufferSize(delta float64) {
	for {
		old := b.bufferSize.Load()
		newVal := math.Float64frombits(old) + delta
		if b.bufferSize.CompareAndSwap(old, math.Float64bits(newVal)) {
			return
		}
	}
}
