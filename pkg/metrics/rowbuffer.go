// Package metrics exposes the row buffer's Prometheus instrumentation:
// rows inserted, conversion errors, flush duration, and the current
// buffer_size/row_count gauges, all labeled by channel.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RowBufferRowsInserted tracks the total number of rows successfully
	// appended to a row buffer, labeled by channel.
	RowBufferRowsInserted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rowbuffer_rows_inserted_total",
			Help: "Total number of rows inserted into the row buffer",
		},
		[]string{"channel"},
	)

	// RowBufferConversionErrors tracks per-row conversion failures.
	RowBufferConversionErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rowbuffer_conversion_errors_total",
			Help: "Total number of rows that failed schema-driven conversion",
		},
		[]string{"channel"},
	)

	// RowBufferFlushDuration tracks the wall-clock duration of a flush that
	// found rows pending, including any wait for the flush lock, in
	// nanoseconds.
	RowBufferFlushDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "rowbuffer_flush_duration_nanoseconds",
			Help: "Duration of a row buffer flush in nanoseconds",
			Buckets: []float64{
				1e3, // 1μs
				1e4,
				1e5,
				1e6, // 1ms
				1e7,
				1e8, // 100ms
				1e9, // 1s
			},
		},
		[]string{"channel"},
	)

	// RowBufferSize tracks the current estimated buffer_size of a row
	// buffer between flushes.
	RowBufferSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "rowbuffer_buffer_size_bytes",
			Help: "Current estimated size of the row buffer in bytes",
		},
		[]string{"channel"},
	)

	// RowBufferRowCount tracks the current row count of a row buffer
	// between flushes.
	RowBufferRowCount = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "rowbuffer_row_count",
			Help: "Current number of rows accumulated in the row buffer",
		},
		[]string{"channel"},
	)
)
