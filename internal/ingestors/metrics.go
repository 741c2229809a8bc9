package ingestors

import (
	"customer-stats/internal/shared/metrics"
)

const (
	fieldResult = "result"

	resultStored   = "stored"
	resultRejected = "rejected"
)

var (
	metricLinesIngestedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "lines_ingested_total",
		},
		[]string{fieldResult},
	)

	metricBatchesFlushedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "batches_flushed_total",
		},
		[]string{metrics.FieldErrorCode},
	)
)
