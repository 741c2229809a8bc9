package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIngestSummary_AddRejection_BoundsDetails(t *testing.T) {
	t.Parallel()

	summary := NewIngestSummary("run", "reader:test", time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC))
	for i := 1; i <= MaxRecordedRejections+5; i++ {
		kind := RejectMalformedLine
		if i%2 == 0 {
			kind = RejectBadNumeric
		}
		summary.AddRejection(Rejection{LineNumber: i, Kind: kind, Reason: "bad"})
	}

	assert.Equal(t, MaxRecordedRejections+5, summary.RejectedCount)
	assert.Len(t, summary.Rejections, MaxRecordedRejections)
	assert.Equal(t, 1, summary.Rejections[0].LineNumber)
	assert.Equal(t, MaxRecordedRejections, summary.Rejections[MaxRecordedRejections-1].LineNumber)
	assert.Equal(t, 53, summary.RejectionsByKind[RejectMalformedLine])
	assert.Equal(t, 52, summary.RejectionsByKind[RejectBadNumeric])
}

func TestLogRecord_DayAndSuccess(t *testing.T) {
	t.Parallel()

	record := &LogRecord{
		Timestamp:  time.Date(2024, 1, 15, 23, 59, 59, 0, time.UTC),
		CustomerID: "cust_42",
		StatusCode: 200,
	}
	assert.Equal(t, "2024-01-15", record.Day())
	assert.True(t, record.IsSuccess())

	record.StatusCode = 201
	assert.False(t, record.IsSuccess())
}

func TestUptimePercent(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0.0, UptimePercent(0, 0))
	assert.Equal(t, 50.0, UptimePercent(1, 2))
	assert.Equal(t, 100.0, UptimePercent(3, 3))
	assert.Equal(t, 0.0, UptimePercent(0, 4))
}
