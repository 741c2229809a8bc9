package aggregators

import (
	"customer-stats/internal/shared/metrics"
)

// metricDayGroupsComputedTotal counts per-day groups produced by Aggregate,
// labelled by the percentile method in use.
var (
	metricDayGroupsComputedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "day_groups_computed_total",
		},
		[]string{"quantile_method"},
	)
)
