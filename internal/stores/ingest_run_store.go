package stores

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"customer-stats/internal/models"
	"customer-stats/internal/shared/filestorages"
)

var (
	ErrIngestRunNotFound      = errors.New("ingest run not found")
	ErrIngestRunAlreadyExists = errors.New("ingest run already exists")
)

// IngestRunStore keeps the JSON report of every completed ingestion run,
// keyed by run id. Reports are written once.
//
//go:generate mockgen -source=ingest_run_store.go -destination=./mocks/ingest_run_store_mock.go -package=mocks
type IngestRunStore interface {
	Put(ctx context.Context, summary *models.IngestSummary) error
	Get(ctx context.Context, runID string) (*models.IngestSummary, error)
}

type ingestRunStore struct {
	fileStorage filestorages.FileStorage
	dir         string
}

func NewIngestRunStore(fileStorage filestorages.FileStorage) IngestRunStore {
	return &ingestRunStore{fileStorage: fileStorage, dir: "ingest-runs"}
}

func (s *ingestRunStore) Put(ctx context.Context, summary *models.IngestSummary) error {
	jsonData, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("failed to marshal ingest run: %w", err)
	}

	_, err = s.fileStorage.Put(ctx, s.key(summary.RunID), bytes.NewReader(jsonData), filestorages.PutOptions{AllowOverwrite: false})
	if err != nil {
		if errors.Is(err, filestorages.ErrFileAlreadyExists) {
			return ErrIngestRunAlreadyExists
		}
		return fmt.Errorf("failed to put ingest run: %w", err)
	}
	return nil
}

func (s *ingestRunStore) Get(ctx context.Context, runID string) (*models.IngestSummary, error) {
	reader, err := s.fileStorage.Get(ctx, s.key(runID))
	if err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) {
			return nil, ErrIngestRunNotFound
		}
		return nil, fmt.Errorf("failed to get ingest run: %w", err)
	}
	defer reader.Close()

	var summary models.IngestSummary
	if err := json.NewDecoder(reader).Decode(&summary); err != nil {
		return nil, fmt.Errorf("failed to decode ingest run: %w", err)
	}
	return &summary, nil
}

func (s *ingestRunStore) key(runID string) string {
	return fmt.Sprintf("%s/%s.json", s.dir, runID)
}
