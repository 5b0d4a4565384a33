// Package rowbuffer implements the in-memory, columnar row buffer of a
// streaming ingestion channel: the component that sits between a producer
// appending loosely-typed rows and a flush pipeline that hands a completed
// batch off to durable storage.
//
// A Buffer accepts a server-supplied column schema, validates and coerces
// each incoming cell against it, accumulates values column-by-column in
// Arrow array builders, and maintains per-column running statistics
// (null count, min/max, max string length) that seed a downstream
// min/max index. A single producer may append rows while a single
// flusher extracts a snapshot without copying; the two are serialized by
// one mutex per buffer.
//
// # Architecture
//
// The row buffer is built from five cooperating pieces, each its own
// package:
//
// 1. Schema Resolver (pkg/rowschema): turns a server column descriptor
// (logical type, physical type, precision, scale, nullability) into an
// immutable ColumnPlan describing the column's storage kind and its
// preserved wire metadata.
//
// 2. Column Store (pkg/columnar): one append-only, null-aware Vector per
// schema column, backed by an Arrow array.Builder sharing the buffer's
// allocator. TransferOut hands back an exclusively-owned array and
// leaves the builder empty.
//
// 3. Row Buffer Core (pkg/rowbuffer): the public surface —
// SetupSchema/InsertRows/Flush/Reset/Close/Size — holding the schema
// plan, the column vectors, the stats table, and the flush_lock mutex
// that serializes InsertRows against Flush.
//
// 4. Statistics Aggregator (pkg/stats): one RowBufferStats per column,
// updated online as cells are appended, reduced into an EpInfo payload
// at flush time.
//
// 5. Flush Snapshot (ChannelData, in pkg/rowbuffer): the immutable
// hand-off artifact a flush produces — owned column vectors, row count,
// buffer size estimate, row sequencer, offset token, and EpInfo.
//
// # Quick start
//
//	import (
//	    "github.com/flowlane/rowbuffer/pkg/rowbuffer"
//	    "github.com/flowlane/rowbuffer/pkg/rowschema"
//	)
//
//	alloc := rowbuffer.NewArenaAllocator(16<<20, 8, false)
//	channel := rowbuffer.NewSimpleChannel("db.schema.table", alloc)
//	buf, _ := rowbuffer.New(channel, rowbuffer.DefaultConfig())
//
//	_ = buf.SetupSchema([]rowschema.ColumnDescriptor{
//	    {Name: "ID", LogicalType: rowschema.LogicalFixed, PhysicalType: rowschema.PhysicalSB8},
//	})
//	_ = buf.InsertRows([]map[string]interface{}{{"ID": 1}, {"ID": 2}}, "offset-1")
//
//	snapshot, _ := buf.Flush()
//	defer snapshot.Release()
//
// # Key packages
//
//	pkg/rowbuffer    - public surface, conversion dispatch, arena allocator
//	pkg/rowschema    - schema resolution and column-name normalization
//	pkg/columnar     - Arrow-backed column vectors
//	pkg/stats        - per-column running statistics and EpInfo
//	pkg/errors       - structured error handling (invalid_row, unknown_data_type)
//	pkg/logger       - structured logging
//	pkg/metrics      - Prometheus counters/gauges/histograms for the buffer
//
// # Concurrency
//
// At most one producer calls InsertRows at a time and at most one
// flusher calls Flush; both are serialized by the buffer's own mutex, so
// callers coordinating multiple producers must do so externally. Rows
// within and across InsertRows calls preserve insertion order in the
// flushed snapshot, and the row sequencer returned by successive flushes
// of the same channel is strictly increasing.
//
// # Out of scope
//
// The buffer does not talk to the network, does not encrypt or encode
// flushed batches into a storage file format, and does not persist
// anything durably — it is purely volatile until a caller-owned flush
// consumer takes ownership of a ChannelData snapshot.
//
// # License
//
// Released under the Apache 2.0 License. See LICENSE file for details.
package rowbuffer
