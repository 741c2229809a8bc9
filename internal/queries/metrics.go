package queries

import (
	"customer-stats/internal/shared/metrics"
)

var (
	metricStatsQueriesTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubQuery,
			Name:      "stats_queries_total",
		},
		[]string{metrics.FieldErrorCode},
	)
)
