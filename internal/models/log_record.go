package models

import "time"

// TimestampLayout is the layout of the date and time fields of a log line, and
// the layout timestamps are stored with.
const TimestampLayout = "2006-01-02 15:04:05"

// DateLayout is the calendar-day layout used for grouping and query bounds.
const DateLayout = "2006-01-02"

// SuccessStatusCode is the only status code counted as a successful request.
const SuccessStatusCode = 200

// LogRecord is one parsed and validated access-log line.
// Records are never mutated after parsing.
type LogRecord struct {
	Timestamp   time.Time `json:"timestamp"`
	CustomerID  string    `json:"customerId"`
	RequestPath string    `json:"requestPath"`
	StatusCode  int       `json:"statusCode"`
	Duration    float64   `json:"duration"` // seconds
}

func (r *LogRecord) IsSuccess() bool {
	return r.StatusCode == SuccessStatusCode
}

// Day returns the calendar date of the record, e.g. "2024-01-15".
func (r *LogRecord) Day() string {
	return r.Timestamp.UTC().Format(DateLayout)
}
