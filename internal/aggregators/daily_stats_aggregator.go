package aggregators

import (
	"fmt"
	"slices"
	"time"

	"customer-stats/internal/models"
)

const p99 = 99

// DailyStatsAggregator turns raw records into per-day statistics. It performs
// no I/O and keeps no state between calls.
//
//go:generate mockgen -source=daily_stats_aggregator.go -destination=./mocks/daily_stats_aggregator_mock.go -package=mocks
type DailyStatsAggregator interface {
	// Aggregate keeps the records of customerID with Timestamp >= from, groups
	// them by UTC calendar day and returns one entry per day in ascending date
	// order. It returns ErrEmptyInput when nothing matches.
	Aggregate(records []*models.LogRecord, customerID string, from time.Time) ([]*models.DailyStats, error)
}

type dailyStatsAggregator struct {
	method models.QuantileMethod
}

func NewDailyStatsAggregator(method models.QuantileMethod) DailyStatsAggregator {
	if method == "" {
		method = models.QuantileNearestRank
	}
	return &dailyStatsAggregator{method: method}
}

func (a *dailyStatsAggregator) Aggregate(records []*models.LogRecord, customerID string, from time.Time) ([]*models.DailyStats, error) {
	days := make(map[string]*dayAccumulator)
	for _, r := range records {
		if r == nil || r.CustomerID != customerID || r.Timestamp.Before(from) {
			continue
		}
		day := r.Day()
		acc, ok := days[day]
		if !ok {
			acc = newDayAccumulator(customerID, day)
			days[day] = acc
		}
		if err := acc.add(r); err != nil {
			return nil, err
		}
	}

	if len(days) == 0 {
		return nil, ErrEmptyInput
	}

	dates := make([]string, 0, len(days))
	for day := range days {
		dates = append(dates, day)
	}
	slices.Sort(dates)

	result := make([]*models.DailyStats, 0, len(dates))
	for _, day := range dates {
		result = append(result, days[day].stats(a.method))
	}
	metricDayGroupsComputedTotal.WithLabelValues(string(a.method)).Add(float64(len(result)))
	return result, nil
}

// dayAccumulator collects the records of one customer for one day.
type dayAccumulator struct {
	customerID string
	date       string
	successful int64
	failed     int64
	sum        float64
	durations  []float64
}

func newDayAccumulator(customerID, date string) *dayAccumulator {
	return &dayAccumulator{customerID: customerID, date: date}
}

func (d *dayAccumulator) add(r *models.LogRecord) error {
	if r.CustomerID != d.customerID {
		return fmt.Errorf("customerID mismatch: acc=%q, record=%q", d.customerID, r.CustomerID)
	}
	if r.Day() != d.date {
		return fmt.Errorf("date mismatch: acc=%q, record=%q", d.date, r.Day())
	}

	if r.IsSuccess() {
		d.successful++
	} else {
		d.failed++
	}
	d.sum += r.Duration
	d.durations = append(d.durations, r.Duration)
	return nil
}

func (d *dayAccumulator) stats(method models.QuantileMethod) *models.DailyStats {
	total := d.successful + d.failed
	sorted := slices.Clone(d.durations)
	slices.Sort(sorted)

	var p99Latency float64
	switch method {
	case models.QuantileExclusive:
		p99Latency = exclusiveQuantile(sorted, p99, 100)
	default:
		p99Latency = nearestRank(sorted, p99)
	}

	return &models.DailyStats{
		Date:               d.date,
		SuccessfulRequests: d.successful,
		FailedRequests:     d.failed,
		Uptime:             models.UptimePercent(d.successful, total),
		AverageLatency:     d.sum / float64(total),
		MedianLatency:      median(sorted),
		P99Latency:         p99Latency,
	}
}
