package sources

import (
	"context"
	"errors"
)

// ErrSourceUnavailable is returned by Open when a source cannot be read at all.
var ErrSourceUnavailable = errors.New("source unavailable")

// ErrLineTooLong is returned by Next for a line over MaxLineBytes. The reader
// skips that line and stays usable.
var ErrLineTooLong = errors.New("line too long")

// MaxLineBytes bounds a single log line.
const MaxLineBytes = 1024 * 1024

// LineSource is a named, re-openable stream of raw log lines.
//
//go:generate mockgen -source=source.go -destination=./mocks/source_mock.go -package=mocks
type LineSource interface {
	// Name identifies the source in logs and ingest reports, e.g. "file:/var/log/api.log".
	Name() string
	// Open starts reading. Errors wrap ErrSourceUnavailable.
	Open(ctx context.Context) (LineReader, error)
}

// LineReader yields lines in source order without their trailing newline.
type LineReader interface {
	// Next returns io.EOF once the source is exhausted. Errors wrapping
	// ErrLineTooLong affect only the current line.
	Next(ctx context.Context) (string, error)
	Close() error
}
