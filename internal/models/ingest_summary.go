package models

import "time"

// RejectionKind tags why a log line was not turned into a LogRecord.
type RejectionKind string

const (
	RejectMalformedLine RejectionKind = "malformed_line"
	RejectBadTimestamp  RejectionKind = "bad_timestamp"
	RejectBadNumeric    RejectionKind = "bad_numeric"
)

// MaxRecordedRejections bounds IngestSummary.Rejections. RejectedCount and
// RejectionsByKind keep counting past it.
const MaxRecordedRejections = 100

// Rejection describes one skipped line.
type Rejection struct {
	LineNumber int           `json:"lineNumber"`
	Kind       RejectionKind `json:"kind"`
	Reason     string        `json:"reason"`
}

// IngestSummary is the outcome of one ingestion run over a line source.
//
// Example JSON:
//
//	{
//	  "runId": "01ARZ3NDEKTSV4RRFFQ69G5FAV",
//	  "source": "file:api_requests.log",
//	  "startedAt": "2024-01-15T10:00:00Z",
//	  "finishedAt": "2024-01-15T10:00:02Z",
//	  "storedCount": 2,
//	  "rejectedCount": 1,
//	  "committedBatches": 1,
//	  "rejectionsByKind": {"malformed_line": 1},
//	  "rejections": [{"lineNumber": 2, "kind": "malformed_line", "reason": "expected 6 fields, got 1"}]
//	}
type IngestSummary struct {
	RunID            string                `json:"runId"`
	Source           string                `json:"source"`
	StartedAt        time.Time             `json:"startedAt"`
	FinishedAt       time.Time             `json:"finishedAt"`
	StoredCount      int                   `json:"storedCount"`
	RejectedCount    int                   `json:"rejectedCount"`
	CommittedBatches int                   `json:"committedBatches"`
	RejectionsByKind map[RejectionKind]int `json:"rejectionsByKind"`
	Rejections       []Rejection           `json:"rejections"`
	// FailureCode is the error code of a run that stopped early, empty otherwise.
	FailureCode      string                `json:"failureCode,omitempty"`
}

func NewIngestSummary(runID, source string, startedAt time.Time) *IngestSummary {
	return &IngestSummary{
		RunID:            runID,
		Source:           source,
		StartedAt:        startedAt,
		RejectionsByKind: make(map[RejectionKind]int),
		Rejections:       make([]Rejection, 0),
	}
}

// AddRejection counts a rejected line and keeps its details while under
// MaxRecordedRejections.
func (s *IngestSummary) AddRejection(rejection Rejection) {
	s.RejectedCount++
	s.RejectionsByKind[rejection.Kind]++
	if len(s.Rejections) < MaxRecordedRejections {
		s.Rejections = append(s.Rejections, rejection)
	}
}
