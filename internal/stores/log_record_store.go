package stores

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"customer-stats/internal/models"
)

// LogRecordStore persists parsed access-log records.
//
// AppendBatch is atomic: either every record of the call is visible to later
// reads or none is. Records are append-only and never deduplicated.
//
//go:generate mockgen -source=log_record_store.go -destination=./mocks/log_record_store_mock.go -package=mocks
type LogRecordStore interface {
	AppendBatch(ctx context.Context, records []*models.LogRecord) error
	// Scan returns the records of customerID with Timestamp >= from, ordered by timestamp.
	Scan(ctx context.Context, customerID string, from time.Time) ([]*models.LogRecord, error)
	// Exists reports whether any record of customerID was ever stored.
	Exists(ctx context.Context, customerID string) (bool, error)
}

type logRecordStore struct {
	db *sql.DB
}

func NewLogRecordStore(db *sql.DB) LogRecordStore {
	return &logRecordStore{db: db}
}

func (s *logRecordStore) AppendBatch(ctx context.Context, records []*models.LogRecord) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO records (timestamp, customer_id, request_path, status_code, duration)
	VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		if _, err := stmt.ExecContext(ctx,
			r.Timestamp.UTC().Format(models.TimestampLayout),
			r.CustomerID,
			r.RequestPath,
			r.StatusCode,
			r.Duration,
		); err != nil {
			return fmt.Errorf("failed to insert record: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit batch: %w", err)
	}
	return nil
}

func (s *logRecordStore) Scan(ctx context.Context, customerID string, from time.Time) ([]*models.LogRecord, error) {
	// Layout is fixed-width, so text comparison orders like time.
	rows, err := s.db.QueryContext(ctx, `
	SELECT timestamp, customer_id, request_path, status_code, duration
	FROM records
	WHERE customer_id = ? AND timestamp >= ?
	ORDER BY timestamp, id`,
		customerID, from.UTC().Format(models.TimestampLayout))
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer rows.Close()

	records := make([]*models.LogRecord, 0)
	for rows.Next() {
		var (
			record    models.LogRecord
			timestamp string
		)
		if err := rows.Scan(&timestamp, &record.CustomerID, &record.RequestPath, &record.StatusCode, &record.Duration); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		record.Timestamp, err = time.ParseInLocation(models.TimestampLayout, timestamp, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("failed to parse stored timestamp %q: %w", timestamp, err)
		}
		records = append(records, &record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate records: %w", err)
	}
	return records, nil
}

func (s *logRecordStore) Exists(ctx context.Context, customerID string) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM records WHERE customer_id = ?)`, customerID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check customer: %w", err)
	}
	return exists, nil
}
