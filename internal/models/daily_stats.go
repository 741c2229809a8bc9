package models

// DailyStats are the statistics of one customer for one calendar day. They are
// recomputed from stored records on every query.
//
// Example JSON:
//
//	{
//	  "date": "2024-01-01",
//	  "successful_requests": 1,
//	  "failed_requests": 1,
//	  "uptime": 50,
//	  "average_latency": 0.2,
//	  "median_latency": 0.2,
//	  "p99_latency": 0.3
//	}
type DailyStats struct {
	Date               string  `json:"date"`
	SuccessfulRequests int64   `json:"successful_requests"`
	FailedRequests     int64   `json:"failed_requests"`
	Uptime             float64 `json:"uptime"`
	AverageLatency     float64 `json:"average_latency"`
	MedianLatency      float64 `json:"median_latency"`
	P99Latency         float64 `json:"p99_latency"`
}

func (s *DailyStats) TotalRequests() int64 {
	return s.SuccessfulRequests + s.FailedRequests
}

// UptimePercent returns successful/total*100, or 0 when there were no requests.
func UptimePercent(successful, total int64) float64 {
	if total <= 0 {
		return 0
	}
	return float64(successful) / float64(total) * 100
}
