package sources

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// FileSource reads a local log file. Files ending in ".gz" or ".zst" are
// decompressed transparently.
type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) Name() string {
	return "file:" + s.path
}

func (s *FileSource) Open(ctx context.Context) (LineReader, error) {
	file, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrSourceUnavailable, s.Name(), err)
	}

	switch {
	case strings.HasSuffix(s.path, ".gz"):
		gz, err := gzip.NewReader(file)
		if err != nil {
			_ = file.Close()
			return nil, fmt.Errorf("%w: %s: open gzip: %w", ErrSourceUnavailable, s.Name(), err)
		}
		return newLineReader(gz, func() error {
			return errors.Join(gz.Close(), file.Close())
		}), nil
	case strings.HasSuffix(s.path, ".zst"):
		dec, err := zstd.NewReader(file)
		if err != nil {
			_ = file.Close()
			return nil, fmt.Errorf("%w: %s: open zstd: %w", ErrSourceUnavailable, s.Name(), err)
		}
		return newLineReader(dec, func() error {
			dec.Close()
			return file.Close()
		}), nil
	default:
		return newLineReader(io.Reader(file), file.Close), nil
	}
}
