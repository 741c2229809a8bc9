package ingestors

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"customer-stats/internal/models"
)

// logLineFields is the field count of "date time customer_id path status duration".
const logLineFields = 6

// ParseError is returned by ParseLine for any line that is not a valid record.
type ParseError struct {
	Kind   models.RejectionKind
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Reason)
}

// ParseLine turns one raw access-log line into a LogRecord, e.g.
//
//	2024-01-15 10:23:01 cust_42 /v1/resource 200 0.042
//
// Fields are separated by runs of whitespace. The timestamp is read as UTC.
// The returned error is always a *ParseError.
func ParseLine(line string) (*models.LogRecord, error) {
	fields := strings.Fields(line)
	if len(fields) != logLineFields {
		return nil, &ParseError{
			Kind:   models.RejectMalformedLine,
			Reason: fmt.Sprintf("expected %d fields, got %d", logLineFields, len(fields)),
		}
	}

	// Month, day, minute and second must be zero-padded; the hour may not be.
	timestamp, err := time.ParseInLocation(models.TimestampLayout, fields[0]+" "+fields[1], time.UTC)
	if err != nil {
		return nil, &ParseError{
			Kind:   models.RejectBadTimestamp,
			Reason: fmt.Sprintf("invalid timestamp %q", fields[0]+" "+fields[1]),
		}
	}

	statusCode, err := strconv.Atoi(fields[4])
	if err != nil {
		return nil, &ParseError{
			Kind:   models.RejectBadNumeric,
			Reason: fmt.Sprintf("invalid status code %q", fields[4]),
		}
	}

	duration, err := strconv.ParseFloat(fields[5], 64)
	if err != nil || math.IsNaN(duration) || math.IsInf(duration, 0) || duration < 0 {
		return nil, &ParseError{
			Kind:   models.RejectBadNumeric,
			Reason: fmt.Sprintf("invalid duration %q", fields[5]),
		}
	}

	return &models.LogRecord{
		Timestamp:   timestamp,
		CustomerID:  fields[2],
		RequestPath: fields[3],
		StatusCode:  statusCode,
		Duration:    duration,
	}, nil
}
